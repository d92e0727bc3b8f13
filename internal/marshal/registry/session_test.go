package registry

import (
	"testing"

	"github.com/mabhi256/marshal48/internal/marshal/model"
)

func TestNewSymbolAssignsDenseIDs(t *testing.T) {
	s := New()
	a := s.NewSymbol([]byte("a"))
	b := s.NewSymbol([]byte("b"))

	if a.Ref.Kind != model.RegSymbol || a.Ref.ID != 0 {
		t.Fatalf("a.Ref = %+v", a.Ref)
	}
	if b.Ref.ID != 1 {
		t.Fatalf("b.Ref = %+v", b.Ref)
	}
	if len(s.Symbols()) != 2 {
		t.Fatalf("Symbols() len = %d", len(s.Symbols()))
	}
}

func TestNewSymbolAlwaysCreatesFresh(t *testing.T) {
	s := New()
	a := s.NewSymbol([]byte("dup"))
	b := s.NewSymbol([]byte("dup"))
	if a == b {
		t.Fatalf("NewSymbol should not dedup")
	}
	if len(s.Symbols()) != 2 {
		t.Fatalf("Symbols() len = %d, want 2", len(s.Symbols()))
	}
}

func TestInternSymbolDedups(t *testing.T) {
	s := New()
	a := s.InternSymbol([]byte("dup"))
	b := s.InternSymbol([]byte("dup"))
	if a != b {
		t.Fatalf("InternSymbol should return the same Value for the same name")
	}
	if len(s.Symbols()) != 1 {
		t.Fatalf("Symbols() len = %d, want 1", len(s.Symbols()))
	}
}

func TestInternStringDedupsByContent(t *testing.T) {
	s := New()
	a := s.InternString([]byte("hello"))
	b := s.InternString([]byte("hello"))
	c := s.InternString([]byte("world"))
	if a != b {
		t.Fatalf("InternString should dedup identical content")
	}
	if a == c {
		t.Fatalf("InternString should not dedup distinct content")
	}
}

func TestNewStringNeverDedups(t *testing.T) {
	s := New()
	a := s.NewString([]byte("hello"))
	b := s.NewString([]byte("hello"))
	if a == b {
		t.Fatalf("NewString should always create a fresh value")
	}
}

func TestLookupObjectOutOfRange(t *testing.T) {
	s := New()
	s.NewArray()
	if _, err := s.LookupObject(5); err != model.ErrBadReference {
		t.Fatalf("got %v, want ErrBadReference", err)
	}
}

func TestLookupObjectRoundTrip(t *testing.T) {
	s := New()
	arr := s.NewArray()
	got, err := s.LookupObject(arr.Ref.ID)
	if err != nil {
		t.Fatalf("LookupObject: %v", err)
	}
	if got != arr {
		t.Fatalf("LookupObject returned a different value")
	}
}

func TestConstantsAreNotRegistered(t *testing.T) {
	s := New()
	n := s.NewNil()
	if n.Ref.Kind != model.RegNone {
		t.Fatalf("Nil Ref.Kind = %v, want RegNone", n.Ref.Kind)
	}
	if len(s.Objects()) != 0 {
		t.Fatalf("constants should not appear in the object table")
	}
}

func TestIntIsNeverRegistered(t *testing.T) {
	s := New()
	n := s.NewInt(42)
	if n.Ref.Kind != model.RegNone {
		t.Fatalf("Int Ref.Kind = %v, want RegNone", n.Ref.Kind)
	}
}

func TestSelfReferentialArrayRegistersBeforeFilling(t *testing.T) {
	s := New()
	arr := s.NewArray()
	arr.Elements = []*model.Value{arr}

	got, err := s.LookupObject(arr.Ref.ID)
	if err != nil {
		t.Fatalf("LookupObject: %v", err)
	}
	if got.Elements[0] != got {
		t.Fatalf("self-reference not preserved: %+v", got)
	}
}
