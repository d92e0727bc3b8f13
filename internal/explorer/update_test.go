package explorer

import (
	"testing"

	"github.com/mabhi256/marshal48/internal/marshal/model"
	"github.com/mabhi256/marshal48/internal/marshal/registry"
)

func TestToggleCursorExpandsAndBuildsLazily(t *testing.T) {
	s := registry.New()
	root := s.NewArray()
	root.Elements = []*model.Value{s.NewInt(1), s.NewInt(2)}

	m := New(root, s)
	m.roots[0].expanded = false
	m.roots[0].built = false
	m.roots[0].children = nil
	m.rebuildVisible()
	m.cursor = 0

	before := len(m.visible)
	m.toggleCursor()
	if len(m.visible) <= before {
		t.Fatalf("expected expansion to reveal array elements")
	}
	if !m.roots[0].built {
		t.Fatalf("expected children to be built lazily on first expand")
	}
}

func TestCollapseCursorHidesChildren(t *testing.T) {
	s := registry.New()
	root := s.NewArray()
	root.Elements = []*model.Value{s.NewInt(1)}

	m := New(root, s)
	expanded := len(m.visible)

	m.cursor = 0
	m.collapseCursor()
	if len(m.visible) >= expanded {
		t.Fatalf("expected collapse to hide the array's elements")
	}
}

func TestJumpToObjectTableFindsTarget(t *testing.T) {
	s := registry.New()
	class := s.InternSymbol([]byte("Point"))
	obj := s.NewObject(class)
	root := s.NewArray()
	root.Elements = []*model.Value{obj}

	m := New(root, s)
	m.cursor = 1 // the array's only element row, right under the expanded root

	m.jumpToObjectTable()
	if m.status != "" {
		t.Fatalf("unexpected status: %q", m.status)
	}
	if m.visible[m.cursor].value != obj {
		t.Fatalf("cursor did not land on the object table entry for the target object")
	}
}

func TestJumpToObjectTableRejectsNonObject(t *testing.T) {
	s := registry.New()
	root := s.NewArray()
	root.Elements = []*model.Value{s.NewInt(1)}

	m := New(root, s)
	m.cursor = 1 // the Int element row

	m.jumpToObjectTable()
	if m.status == "" {
		t.Fatalf("expected a status message for a non-object target")
	}
}

func TestContainsFoldIsCaseInsensitive(t *testing.T) {
	if !containsFold("symbol#3 :Name", "name") {
		t.Fatalf("expected case-insensitive match")
	}
	if containsFold("short", "longer than haystack") {
		t.Fatalf("expected no match when needle is longer than haystack")
	}
}
