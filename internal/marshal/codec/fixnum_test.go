package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mabhi256/marshal48/internal/marshal/model"
)

func decodeFixnumBytes(t *testing.T, raw []byte) int64 {
	t.Helper()
	v, err := DecodeFixnum(NewReader(bytes.NewReader(raw)))
	if err != nil {
		t.Fatalf("DecodeFixnum(% x): %v", raw, err)
	}
	return v
}

func TestDecodeFixnum(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
		want int64
	}{
		{"zero", []byte{0x00}, 0},
		{"short positive one", []byte{0x06}, 1},
		{"short positive max", []byte{0x7F}, 122},
		{"short negative close to zero", []byte{0x80}, -5},
		{"short negative far from zero", []byte{0xFB}, -128},
		{"0xFF byte form decodes -6 too", []byte{0xFF, 0x07}, -6},
		{"byte form -254", []byte{0xFF, 0xFF}, -254},
		{"long positive width1", []byte{0x01, 0x7B}, 123},
		{"long positive width2", []byte{0x02, 0x00, 0x01}, 256},
		{"long positive width4", []byte{0x04, 0xFF, 0xFF, 0xFF, 0x7F}, 0x7FFFFFFF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := decodeFixnumBytes(t, c.raw); got != c.want {
				t.Fatalf("got %d want %d", got, c.want)
			}
		})
	}
}

func TestDecodeFixnumUnsupportedLongNegative(t *testing.T) {
	for _, cc := range []byte{0xFC, 0xFD, 0xFE} {
		_, err := DecodeFixnum(NewReader(bytes.NewReader([]byte{cc, 0x01})))
		if !errors.Is(err, model.ErrUnsupportedFixnum) {
			t.Fatalf("cc=%#x: got %v, want ErrUnsupportedFixnum", cc, err)
		}
	}
}

func encodeFixnumBytes(t *testing.T, n int64) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := EncodeFixnum(w, n); err != nil {
		t.Fatalf("EncodeFixnum(%d): %v", n, err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return buf.Bytes()
}

func TestEncodeFixnumRoundTrip(t *testing.T) {
	values := []int64{0, 1, 122, 123, -1, -5, -6, -128, -254, 255, 256, 65535, 0x7FFFFFFF, -4, -3}
	for _, n := range values {
		raw := encodeFixnumBytes(t, n)
		got, err := DecodeFixnum(NewReader(bytes.NewReader(raw)))
		if err != nil {
			t.Fatalf("n=%d: decode of encoded form % x failed: %v", n, raw, err)
		}
		if got != n {
			t.Fatalf("n=%d: round-trip got %d (raw % x)", n, got, raw)
		}
	}
}

func TestEncodeFixnumShortestForm(t *testing.T) {
	if got := encodeFixnumBytes(t, 0); len(got) != 1 {
		t.Fatalf("zero should encode to 1 byte, got % x", got)
	}
	if got := encodeFixnumBytes(t, 1); len(got) != 1 {
		t.Fatalf("1 should encode to 1 byte, got % x", got)
	}
	if got := encodeFixnumBytes(t, -6); len(got) != 1 {
		t.Fatalf("-6 is within the short negative range, should encode to 1 byte, got % x", got)
	}
	if got := encodeFixnumBytes(t, -129); len(got) != 2 {
		t.Fatalf("-129 is below the short negative range, should encode to 2 bytes, got % x", got)
	}
}

func TestEncodeFixnumOverflow(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeFixnum(NewWriter(&buf), -255)
	if !errors.Is(err, model.ErrEncodeOverflow) {
		t.Fatalf("got %v, want ErrEncodeOverflow", err)
	}
}
