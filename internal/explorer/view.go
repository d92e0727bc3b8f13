package explorer

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/marshal48/internal/marshal/model"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	treeWidth := m.width * 2 / 3
	sideWidth := m.width - treeWidth - 4

	tree := boxStyle.Width(treeWidth).Height(m.height - 4).Render(m.renderTree())
	side := boxStyle.Width(sideWidth).Height(m.height - 4).Render(m.renderSummary())

	body := lipgloss.JoinHorizontal(lipgloss.Top, tree, side)

	var bottom string
	if m.mode == modeSearch {
		bottom = m.renderSearch()
	} else {
		bottom = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("marshal48 explorer"), body, bottom)
}

func (m Model) renderTree() string {
	var b strings.Builder
	top, bottom := visibleWindow(m.cursor, len(m.visible), m.height-6)
	for i := top; i < bottom; i++ {
		n := m.visible[i]
		line := strings.Repeat("  ", n.depth) + nodePrefix(n) + n.label
		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else if n.value != nil {
			line = textStyle.Render(line)
		} else {
			line = mutedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func nodePrefix(n *node) string {
	if len(n.children) == 0 && !(n.value != nil && isComposite(n.value) && !n.built) {
		return "  "
	}
	if n.expanded {
		return "v "
	}
	return "> "
}

func visibleWindow(cursor, total, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	top := cursor - height/2
	if top < 0 {
		top = 0
	}
	bottom := top + height
	if bottom > total {
		bottom = total
		top = bottom - height
	}
	return top, bottom
}

// renderSummary shows a bar chart of how many registered objects fall
// into each Kind.
func (m Model) renderSummary() string {
	counts := make(map[model.Kind]int)
	for _, v := range m.session.Objects() {
		counts[v.Kind]++
	}

	kinds := []model.Kind{
		model.KindString, model.KindArray, model.KindHash, model.KindObject,
		model.KindUserDefined, model.KindUserMarshal,
	}

	data := make([]barchart.BarData, 0, len(kinds))
	for _, k := range kinds {
		if counts[k] == 0 {
			continue
		}
		data = append(data, barchart.BarData{
			Label: k.String(),
			Values: []barchart.BarValue{
				{Name: k.String(), Value: float64(counts[k]), Style: kindStyle},
			},
		})
	}

	bc := barchart.New(20, 10)
	bc.PushAll(data)
	bc.Draw()

	status := m.status
	if status == "" {
		status = fmt.Sprintf("%d symbols / %d objects", len(m.session.Symbols()), len(m.session.Objects()))
	}

	return titleStyle.Render("object kinds") + "\n" + bc.View() + "\n\n" + mutedStyle.Render(status)
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteByte('\n')
	for i, match := range m.matches {
		if i >= 8 {
			break
		}
		b.WriteString(mutedStyle.Render("  " + match.Str))
		b.WriteByte('\n')
	}
	return helpStyle.Render(b.String())
}

func (m Model) renderHelp() string {
	return helpStyle.Render("up/down/j/k move  enter/l expand  h collapse  g object table  y copy  / search  q quit")
}
