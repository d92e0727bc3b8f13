package model

import (
	"testing"

	"github.com/mabhi256/marshal48/internal/marshal/host"
)

type fakeHostValue struct {
	class string
	attrs map[string]any
}

func newFakeHostValue(class string) host.Value {
	return &fakeHostValue{class: class, attrs: make(map[string]any)}
}

func (f *fakeHostValue) SetAttribute(key string, v any) error {
	f.attrs[key] = v
	return nil
}

func (f *fakeHostValue) Invoke(method string, arg any) (any, error) {
	return nil, host.ErrMethodNotSupported
}

func fakeFactory(className string) (host.Value, error) {
	return newFakeHostValue(className), nil
}

func TestToHostScalars(t *testing.T) {
	caps := host.New(fakeFactory)

	got, err := (&Value{Kind: KindInt, IntVal: 7}).ToHost(caps)
	if err != nil || got.(int64) != 7 {
		t.Fatalf("Int: got %v, %v", got, err)
	}

	got, err = NewConstant(KindNil).ToHost(caps)
	if err != nil || got != nil {
		t.Fatalf("Nil: got %v, %v", got, err)
	}

	got, err = NewConstant(KindTrue).ToHost(caps)
	if err != nil || got != true {
		t.Fatalf("True: got %v, %v", got, err)
	}
}

func TestToHostArrayCaches(t *testing.T) {
	caps := host.New(fakeFactory)
	arr := &Value{Kind: KindArray, Ref: Ref{Kind: RegObject, ID: 0}}
	arr.Elements = []*Value{{Kind: KindInt, IntVal: 1}}
	arr.ResetCache()

	first, err := arr.ToHost(caps)
	if err != nil {
		t.Fatalf("ToHost: %v", err)
	}
	second, err := arr.ToHost(caps)
	if err != nil {
		t.Fatalf("ToHost (cached): %v", err)
	}
	s1, ok1 := first.([]any)
	s2, ok2 := second.([]any)
	if !ok1 || !ok2 || &s1[0] != &s2[0] {
		t.Fatalf("expected the same backing slice on repeat projection")
	}
}

func TestToHostSelfReferentialArray(t *testing.T) {
	caps := host.New(fakeFactory)
	arr := &Value{Kind: KindArray, Ref: Ref{Kind: RegObject, ID: 0}}
	arr.Elements = []*Value{arr}
	arr.ResetCache()

	got, err := arr.ToHost(caps)
	if err != nil {
		t.Fatalf("ToHost: %v", err)
	}
	slice := got.([]any)
	if slice[0].([]any)[0] == nil {
		t.Fatalf("self-reference resolved to nil")
	}
}

func TestToHostHashPreservesOrder(t *testing.T) {
	caps := host.New(fakeFactory)
	h := &Value{Kind: KindHash, Ref: Ref{Kind: RegObject, ID: 0}}
	h.Pairs = []Pair{
		{Key: &Value{Kind: KindSymbol, Name: []byte("b")}, Val: &Value{Kind: KindInt, IntVal: 2}},
		{Key: &Value{Kind: KindSymbol, Name: []byte("a")}, Val: &Value{Kind: KindInt, IntVal: 1}},
	}
	h.ResetCache()

	got, err := h.ToHost(caps)
	if err != nil {
		t.Fatalf("ToHost: %v", err)
	}
	om := got.(host.OrderedMap)
	if len(om) != 2 || om[0].Key != "b" || om[1].Key != "a" {
		t.Fatalf("got %+v, order not preserved", om)
	}
}

func TestToHostObjectAssignsAttributes(t *testing.T) {
	caps := host.New(fakeFactory)
	obj := &Value{Kind: KindObject, ClassName: "Point", Ref: Ref{Kind: RegObject, ID: 0}}
	obj.Attrs = []Attribute{
		{Key: &Value{Kind: KindSymbol, Name: []byte("@x")}, Val: &Value{Kind: KindInt, IntVal: 3}},
	}
	obj.ResetCache()

	got, err := obj.ToHost(caps)
	if err != nil {
		t.Fatalf("ToHost: %v", err)
	}
	hv := got.(*fakeHostValue)
	if hv.class != "Point" {
		t.Fatalf("class = %q", hv.class)
	}
	if v, _ := hv.attrs["x"]; v.(int64) != 3 {
		t.Fatalf("attrs[x] = %v, want 3 (leading @ stripped)", v)
	}
}

func TestToHostObjectFactoryFailure(t *testing.T) {
	caps := host.New(func(className string) (host.Value, error) {
		return nil, host.ErrMethodNotSupported
	})
	obj := &Value{Kind: KindObject, ClassName: "Broken", Ref: Ref{Kind: RegObject, ID: 0}}
	obj.ResetCache()

	if _, err := obj.ToHost(caps); err == nil {
		t.Fatalf("expected a factory failure error")
	}
}
