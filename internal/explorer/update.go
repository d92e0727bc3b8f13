package explorer

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/mabhi256/marshal48/internal/marshal"
	"github.com/mabhi256/marshal48/internal/marshal/model"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model, dispatching by viewMode the way
// internal/tui/app.go dispatches by current tab.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.updateTree(msg)
	}
	return m, nil
}

func (m Model) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "enter", "right", "l":
		m.toggleCursor()
	case "left", "h":
		m.collapseCursor()

	case "g":
		m.jumpToObjectTable()

	case "y":
		m.copySelected()

	case "/":
		m.mode = modeSearch
		m.status = ""
		m.search.SetValue("")
		m.search.Focus()
		m.matches = nil
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeTree
		m.search.Blur()
		return m, nil

	case "enter":
		m.applySearchSelection()
		m.mode = modeTree
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.matches = fuzzy.Find(m.search.Value(), m.searchCandidates())
	return m, cmd
}

// toggleCursor expands or collapses the selected composite node,
// building its children on first expansion.
func (m *Model) toggleCursor() {
	n := m.visible[m.cursor]
	if n.value == nil || !isComposite(n.value) {
		if len(n.children) == 0 {
			return
		}
	}
	if !n.built {
		n.children = buildChildren(n.value)
		n.built = true
	}
	n.expanded = !n.expanded
	m.rebuildVisible()
}

func (m *Model) collapseCursor() {
	n := m.visible[m.cursor]
	if n.expanded {
		n.expanded = false
		m.rebuildVisible()
	}
}

// jumpToObjectTable moves the cursor to the selected value's entry in the
// object table forest section: once decoded, a back-reference and its
// target are the same *model.Value, so "jumping" means showing that
// value's own slot rather than a repeated subtree.
func (m *Model) jumpToObjectTable() {
	n := m.visible[m.cursor]
	if n.value == nil || n.value.Ref.Kind != model.RegObject {
		m.status = "not a registered object"
		return
	}
	target := m.objectByRefID[n.value.Ref.ID]

	objectTable := m.roots[1]
	if !objectTable.expanded {
		objectTable.expanded = true
		m.rebuildVisible()
	}
	for i, vn := range m.visible {
		if vn == target {
			m.cursor = i
			m.status = ""
			return
		}
	}
	m.status = "object table entry not visible"
}

func (m *Model) copySelected() {
	n := m.visible[m.cursor]
	if n.value == nil {
		m.status = "nothing to copy"
		return
	}
	text := marshal.Repr(n.value)
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied to clipboard"
}

// applySearchSelection expands the symbol or object table section and
// places the cursor on the best fuzzy match.
func (m *Model) applySearchSelection() {
	if len(m.matches) == 0 {
		return
	}
	picked := m.matches[0].Str

	m.roots[1].expanded = true
	m.roots[2].expanded = true
	m.rebuildVisible()

	for i, n := range m.visible {
		if n.label == "" {
			continue
		}
		if containsFold(n.label, picked) {
			m.cursor = i
			return
		}
	}
}

func containsFold(haystack, needle string) bool {
	hl, nl := []rune(haystack), []rune(needle)
	if len(nl) == 0 || len(nl) > len(hl) {
		return false
	}
	for i := 0; i+len(nl) <= len(hl); i++ {
		match := true
		for j, r := range nl {
			if toLower(hl[i+j]) != toLower(r) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
