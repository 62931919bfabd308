package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	apperrors "github.com/scenewire/scenewire/pkg/errors"
	"github.com/scenewire/scenewire/pkg/wire"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing a serialized wire
// tree interactively.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [scene.json]",
		Short: "Browse a serialized wire tree interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var root wire.Node
			if err := json.Unmarshal(data, &root); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "failed to parse wire tree %s", args[0])
			}

			model := newTreeModel(&root)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("run tree browser: %w", err)
			}
			return nil
		},
	}
}

// =============================================================================
// TreeModel - Interactive wire tree browser
// =============================================================================

// treeRow is one flattened line of the wire tree.
type treeRow struct {
	node  *wire.Node
	depth int
}

// treeModel is the bubbletea model for wire tree navigation. The tree is
// flattened once up front; expansion state lives in the collapsed set.
type treeModel struct {
	root      *wire.Node
	rows      []treeRow
	collapsed map[string]bool
	cursor    int
	height    int
	offset    int
}

func newTreeModel(root *wire.Node) *treeModel {
	m := &treeModel{
		root:      root,
		collapsed: make(map[string]bool),
		height:    20,
	}
	m.reflow()
	return m
}

// reflow rebuilds the visible rows honoring collapsed subtrees.
func (m *treeModel) reflow() {
	m.rows = m.rows[:0]
	var walk func(n *wire.Node, depth int)
	walk = func(n *wire.Node, depth int) {
		if n == nil {
			return
		}
		m.rows = append(m.rows, treeRow{node: n, depth: depth})
		if m.collapsed[n.ID] {
			return
		}
		for _, dep := range n.Dependencies {
			walk(dep, depth+1)
		}
	}
	walk(m.root, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *treeModel) Init() tea.Cmd {
	return nil
}

func (m *treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			id := m.rows[m.cursor].node.ID
			m.collapsed[id] = !m.collapsed[id]
			m.reflow()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m *treeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Wire Tree"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ fold  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		fold := " "
		if len(row.node.Dependencies) > 0 {
			fold = "▾"
			if m.collapsed[row.node.ID] {
				fold = "▸"
			}
		}

		line := fmt.Sprintf("%s%s%s %s %s",
			cursor,
			strings.Repeat("  ", row.depth),
			fold,
			row.node.Type,
			listDimStyle.Render(row.node.ID))

		if i == m.cursor {
			line = listSelectedStyle.Render(line)
		} else {
			line = listNormalStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	return b.String()
}

// detailView summarizes the selected node under the list.
func (m *treeModel) detailView() string {
	if m.cursor >= len(m.rows) {
		return ""
	}
	n := m.rows[m.cursor].node

	parts := []string{
		fmt.Sprintf("%d properties", len(n.Properties)),
		fmt.Sprintf("%d calls", len(n.Calls)),
		fmt.Sprintf("%d dependencies", len(n.Dependencies)),
	}

	var calls []string
	for _, call := range n.Calls {
		calls = append(calls, call.Method)
	}
	detail := StyleDim.Render(strings.Join(parts, " · "))
	if len(calls) > 0 {
		detail += "\n" + StyleDim.Render("calls: ") + StyleValue.Render(strings.Join(calls, ", "))
	}
	return detail
}
