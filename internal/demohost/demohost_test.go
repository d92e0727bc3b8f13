package demohost

import (
	"bytes"
	"testing"

	"github.com/mabhi256/marshal48/internal/marshal/host"
)

func TestAttributeOrderPreserved(t *testing.T) {
	obj, err := NewFactory()("Point")
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if err := obj.SetAttribute("y", int64(2)); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	if err := obj.SetAttribute("x", int64(1)); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	// Re-setting an existing key must not change its position.
	if err := obj.SetAttribute("y", int64(3)); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}

	lister := obj.(host.AttributeLister)
	pairs := lister.ListAttributes()
	if len(pairs) != 2 || pairs[0].Key != "y" || pairs[1].Key != "x" {
		t.Fatalf("got %+v", pairs)
	}
	if pairs[0].Val.(int64) != 3 {
		t.Fatalf("y should have been updated in place, got %v", pairs[0].Val)
	}
}

func TestDumpWithoutLoadIsUnsupported(t *testing.T) {
	obj, _ := NewFactory()("Bytes")
	if _, err := obj.Invoke("dump", nil); err != host.ErrMethodNotSupported {
		t.Fatalf("got %v, want ErrMethodNotSupported", err)
	}
}

func TestLoadThenDumpRoundTrips(t *testing.T) {
	obj, _ := NewFactory()("Bytes")
	payload := []byte{0x01, 0x02, 0x03}
	if _, err := obj.Invoke("load", payload); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, err := obj.Invoke("dump", nil)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !bytes.Equal(got.([]byte), payload) {
		t.Fatalf("got % x, want % x", got, payload)
	}
}

func TestInvokeUnknownMethod(t *testing.T) {
	obj, _ := NewFactory()("X")
	if _, err := obj.Invoke("frobnicate", nil); err != host.ErrMethodNotSupported {
		t.Fatalf("got %v, want ErrMethodNotSupported", err)
	}
}
