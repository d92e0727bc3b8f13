package explorer

import (
	"testing"

	"github.com/mabhi256/marshal48/internal/marshal/model"
	"github.com/mabhi256/marshal48/internal/marshal/registry"
)

func TestIsComposite(t *testing.T) {
	cases := []struct {
		kind model.Kind
		want bool
	}{
		{model.KindNil, false},
		{model.KindInt, false},
		{model.KindSymbol, false},
		{model.KindArray, true},
		{model.KindHash, true},
		{model.KindObject, true},
		{model.KindUserDefined, true},
		{model.KindUserMarshal, true},
	}
	for _, c := range cases {
		if got := isComposite(&model.Value{Kind: c.kind}); got != c.want {
			t.Fatalf("isComposite(%v) = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestBuildChildrenArray(t *testing.T) {
	s := registry.New()
	arr := s.NewArray()
	arr.Elements = []*model.Value{s.NewInt(1), s.NewInt(2)}

	children := buildChildren(arr)
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if children[0].label != "[0] 1" || children[1].label != "[1] 2" {
		t.Fatalf("labels = %q, %q", children[0].label, children[1].label)
	}
}

func TestBuildChildrenUserMarshalPrependsNested(t *testing.T) {
	s := registry.New()
	class := s.InternSymbol([]byte("Duration"))
	nested := s.NewInt(5)
	um := s.NewUserMarshal(class, nested)

	children := buildChildren(um)
	if len(children) != 1 {
		t.Fatalf("got %d children, want 1", len(children))
	}
	if children[0].value != nested {
		t.Fatalf("expected the nested value to be the first child")
	}
}

func TestNewModelBuildsThreeRoots(t *testing.T) {
	s := registry.New()
	root := s.NewArray()
	root.Elements = []*model.Value{s.NewInt(1)}

	m := New(root, s)
	if len(m.roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(m.roots))
	}
	if !m.roots[0].expanded {
		t.Fatalf("decoded root should start expanded")
	}
	if m.roots[1].expanded || m.roots[2].expanded {
		t.Fatalf("object/symbol table roots should start collapsed")
	}
}

func TestRebuildVisibleRespectsExpansion(t *testing.T) {
	s := registry.New()
	root := s.NewArray()
	root.Elements = []*model.Value{s.NewInt(1), s.NewInt(2)}

	m := New(root, s)
	before := len(m.visible)

	m.roots[1].expanded = true
	m.rebuildVisible()
	after := len(m.visible)

	if after <= before {
		t.Fatalf("expanding the object table should reveal more rows: before=%d after=%d", before, after)
	}
}

func TestRebuildVisibleClampsCursor(t *testing.T) {
	s := registry.New()
	root := s.NewArray()
	m := New(root, s)

	m.cursor = 1000
	m.rebuildVisible()
	if m.cursor != len(m.visible)-1 {
		t.Fatalf("cursor = %d, want clamped to %d", m.cursor, len(m.visible)-1)
	}
}

func TestSearchCandidatesIncludesSymbolsAndClasses(t *testing.T) {
	s := registry.New()
	s.InternSymbol([]byte("id"))
	class := s.InternSymbol([]byte("Point"))
	s.NewObject(class)

	m := New(s.NewNil(), s)
	candidates := m.searchCandidates()

	foundSymbol, foundClass := false, false
	for _, c := range candidates {
		if c == ":id" {
			foundSymbol = true
		}
		if c == "Point" {
			foundClass = true
		}
	}
	if !foundSymbol {
		t.Fatalf("expected :id among search candidates, got %v", candidates)
	}
	if !foundClass {
		t.Fatalf("expected Point among search candidates, got %v", candidates)
	}
}
