package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/item"
)

// Browser styles
var (
	browseSelectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseContainerStyle = lipgloss.NewStyle().Foreground(colorCyan)
	browseLeafStyle      = lipgloss.NewStyle().Foreground(colorWhite)
	browseDimStyle       = lipgloss.NewStyle().Foreground(colorDim)
)

// newBrowseCmd creates the browse command, an interactive tree browser for
// a pack.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <pack>",
		Short: "Browse a pack interactively",
		Long: `Browse a pack in an interactive tree view.

Keys:
  up/k, down/j  move the cursor
  enter/space   expand or collapse a container
  q             quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadPack(args[0])
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newBrowseModel(root)).Run()
			return err
		},
	}
}

// =============================================================================
// BrowseModel - Interactive pack tree
// =============================================================================

// browseRow is one visible line of the tree: an item plus its indentation
// depth.
type browseRow struct {
	item  *item.Item
	depth int
}

// browseModel is the bubbletea model for the pack browser. Containers start
// collapsed except the root; expanded state is tracked per item ID so it
// survives re-flattening.
type browseModel struct {
	root     *item.Item
	expanded map[string]bool
	rows     []browseRow
	cursor   int
	height   int
	offset   int
}

func newBrowseModel(root *item.Item) browseModel {
	m := browseModel{
		root:     root,
		expanded: map[string]bool{root.ID: true},
		height:   20,
	}
	m.rebuild()
	return m
}

// rebuild recomputes the visible rows from the expansion state.
func (m *browseModel) rebuild() {
	m.rows = m.rows[:0]
	m.collect(m.root, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *browseModel) collect(it *item.Item, depth int) {
	m.rows = append(m.rows, browseRow{item: it, depth: depth})
	if it.IsContainer() && m.expanded[it.ID] {
		for _, c := range it.Contents {
			m.collect(c, depth+1)
		}
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			it := m.rows[m.cursor].item
			if it.IsContainer() {
				m.expanded[it.ID] = !m.expanded[it.ID]
				m.rebuild()
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.root.Name))
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("  %d items", item.Total(m.root))))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("↑/↓ navigate  ⏎ expand/collapse  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		it := row.item

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := "  "
		if it.IsContainer() {
			if m.expanded[it.ID] {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}

		line := cursor + strings.Repeat("  ", row.depth) + marker + describeItem(it)

		switch {
		case i == m.cursor:
			b.WriteString(browseSelectedStyle.Render(line))
		case it.IsContainer():
			b.WriteString(browseContainerStyle.Render(line))
		default:
			b.WriteString(browseLeafStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))

	return b.String()
}
