package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
)

// =============================================================================
// VariantListModel - Interactive graph variant selection
// =============================================================================

// VariantChoice is one selectable graph artifact in a parser output directory.
type VariantChoice struct {
	Variant   codegraph.Variant
	Path      string
	NodeCount int
	EdgeCount int
}

// VariantListModel is the bubbletea model for interactive variant selection.
// Selected stays nil when the user quits without choosing.
type VariantListModel struct {
	Choices  []VariantChoice
	Cursor   int
	Selected *VariantChoice
}

// NewVariantListModel creates a new variant list model.
func NewVariantListModel(choices []VariantChoice) VariantListModel {
	return VariantListModel{Choices: choices}
}

func (m VariantListModel) Init() tea.Cmd {
	return nil
}

func (m VariantListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Choices)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Choices) > 0 {
			m.Selected = &m.Choices[m.Cursor]
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m VariantListModel) View() string {
	rows := make([][]string, 0, len(m.Choices))
	for i, ch := range m.Choices {
		marker := "  "
		if i == m.Cursor {
			marker = "▸ "
		}
		rows = append(rows, []string{
			marker,
			string(ch.Variant),
			filepath.Base(ch.Path),
			strconv.Itoa(ch.NodeCount),
			strconv.Itoa(ch.EdgeCount),
		})
	}

	header := lipgloss.NewStyle().Foreground(colorSubtle).Bold(true)
	selected := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	normal := lipgloss.NewStyle().Foreground(colorText)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("", "Variant", "File", "Nodes", "Edges").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case -1:
				return header
			case m.Cursor:
				return selected
			default:
				return normal
			}
		})

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select Graph Variant"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")
	b.WriteString(tbl.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Choices))))
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// variantChoices loads each discovered artifact so the picker can show
// its size. Artifacts that fail to parse are skipped rather than
// aborting the selection.
func variantChoices(dir string, variants []codegraph.Variant) []VariantChoice {
	var choices []VariantChoice
	for _, v := range variants {
		g, err := codegraph.LoadVariant(dir, v)
		if err != nil {
			continue
		}
		choices = append(choices, VariantChoice{
			Variant:   v,
			Path:      filepath.Join(dir, v.Filename()),
			NodeCount: len(g.Nodes),
			EdgeCount: len(g.Edges),
		})
	}
	return choices
}
