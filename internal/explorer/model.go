// Package explorer implements the interactive tree browser over a decoded
// Session, sitting beside (not inside) the codec. Grounded on internal/tui/app.go's
// bubbletea Model/Update/View loop and internal/tui/types.go's
// scroll-position/tab-state shape, generalized from GC-log tabs to a
// lazily-expanded value tree plus a fuzzy symbol/class search overlay.
package explorer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sahilm/fuzzy"

	"github.com/mabhi256/marshal48/internal/marshal"
	"github.com/mabhi256/marshal48/internal/marshal/model"
	"github.com/mabhi256/marshal48/internal/marshal/registry"
)

// node is one row of the flattened, lazily-expanded forest: the decoded
// root, the object table, and the symbol table.
type node struct {
	value    *model.Value
	label    string
	depth    int
	expanded bool
	built    bool
	children []*node
}

func isComposite(v *model.Value) bool {
	switch v.Kind {
	case model.KindArray, model.KindHash, model.KindObject, model.KindUserDefined, model.KindUserMarshal:
		return true
	default:
		return false
	}
}

// buildChildren expands one level of v's children, lazily — the tree
// never walks further than the user has asked to see.
func buildChildren(v *model.Value) []*node {
	const labelBudget = 56
	switch v.Kind {
	case model.KindArray:
		out := make([]*node, len(v.Elements))
		for i, el := range v.Elements {
			out[i] = &node{value: el, label: fmt.Sprintf("[%d] %s", i, marshal.ReprWithBudget(el, labelBudget))}
		}
		return out

	case model.KindHash:
		out := make([]*node, len(v.Pairs))
		for i, p := range v.Pairs {
			out[i] = &node{
				value: p.Val,
				label: fmt.Sprintf("%s => %s", marshal.ReprWithBudget(p.Key, 24), marshal.ReprWithBudget(p.Val, labelBudget)),
			}
		}
		return out

	case model.KindObject, model.KindUserDefined, model.KindUserMarshal:
		out := make([]*node, 0, len(v.Attrs)+1)
		if v.Kind == model.KindUserMarshal && v.Nested != nil {
			out = append(out, &node{value: v.Nested, label: "marshal_load " + marshal.ReprWithBudget(v.Nested, labelBudget)})
		}
		for _, a := range v.Attrs {
			out = append(out, &node{
				value: a.Val,
				label: fmt.Sprintf("%s = %s", marshal.ReprWithBudget(a.Key, 24), marshal.ReprWithBudget(a.Val, labelBudget)),
			})
		}
		return out

	default:
		return nil
	}
}

// viewMode selects which key handler and which pane Update/View use.
type viewMode int

const (
	modeTree viewMode = iota
	modeSearch
)

// Model is the explorer's bubbletea state.
type Model struct {
	session *registry.Session

	roots         []*node // "Decoded value", "Object table", "Symbol table"
	objectByRefID []*node // roots[1].children, indexed by Ref.ID for O(1) jump
	visible       []*node
	cursor        int

	mode    viewMode
	search  textinput.Model
	matches []fuzzy.Match

	width, height int
	status        string
}

// New builds the explorer's initial state over a decoded root and the
// Session that owns it.
func New(root *model.Value, session *registry.Session) Model {
	objects := session.Objects()
	objectNodes := make([]*node, len(objects))
	for i, v := range objects {
		objectNodes[i] = &node{value: v, label: fmt.Sprintf("object#%d %s %s", i, v.Kind, marshal.ReprWithBudget(v, 48))}
	}

	symbols := session.Symbols()
	symbolNodes := make([]*node, len(symbols))
	for i, v := range symbols {
		symbolNodes[i] = &node{value: v, label: fmt.Sprintf("symbol#%d %s", i, v.Repr(model.NewReprCtx(48)))}
	}

	rootNode := &node{value: root, label: "decoded root: " + marshal.ReprWithBudget(root, 48), expanded: true}
	rootNode.children = buildChildren(root)
	rootNode.built = true

	objectTable := &node{label: fmt.Sprintf("object table (%d)", len(objectNodes)), children: objectNodes, built: true}
	symbolTable := &node{label: fmt.Sprintf("symbol table (%d)", len(symbolNodes)), children: symbolNodes, built: true}

	search := textinput.New()
	search.Placeholder = "fuzzy search symbols and class names"
	search.Prompt = "/ "

	m := Model{
		session:       session,
		roots:         []*node{rootNode, objectTable, symbolTable},
		objectByRefID: objectNodes,
		search:        search,
	}
	m.rebuildVisible()
	return m
}

func (m *Model) rebuildVisible() {
	m.visible = m.visible[:0]
	for _, r := range m.roots {
		m.flatten(r, 0)
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) flatten(n *node, depth int) {
	n.depth = depth
	m.visible = append(m.visible, n)
	if n.expanded {
		for _, c := range n.children {
			m.flatten(c, depth+1)
		}
	}
}

// searchCandidates lists the strings the fuzzy search box matches
// against: every symbol name, plus every distinct class name in the
// object table.
func (m *Model) searchCandidates() []string {
	seenClass := make(map[string]bool)
	var out []string
	for _, v := range m.session.Symbols() {
		out = append(out, ":"+string(v.Name))
	}
	for _, v := range m.session.Objects() {
		if v.ClassName == "" || seenClass[v.ClassName] {
			continue
		}
		seenClass[v.ClassName] = true
		out = append(out, v.ClassName)
	}
	return out
}
