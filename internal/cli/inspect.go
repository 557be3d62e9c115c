package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/splitpack/splitpack/pkg/graph"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command: an interactive browser
// over the connected components of a graph file.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [graph.json]",
		Short: "Browse the connected components of a graph interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			file, err := graph.ReadFile(input)
			if err != nil {
				return fmt.Errorf("load graph %s: %w", input, err)
			}
			g, d, err := file.Build()
			if err != nil {
				return fmt.Errorf("build graph: %w", err)
			}

			rows := componentRows(g, d)
			if len(rows) == 0 {
				printInfo("Graph is empty")
				return nil
			}

			model := newComponentListModel(input, rows)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// componentRow summarizes one connected component for display.
type componentRow struct {
	Index  int
	Nodes  int
	Edges  int
	Width  float64
	Height float64
	IDs    []string
}

func componentRows(g *graph.Graph, d *graph.Drawing) []componentRow {
	ccs := graph.SplitComponents(g)
	rows := make([]componentRow, 0, ccs.Count())
	for i := 0; i < ccs.Count(); i++ {
		nodes := ccs.Nodes(i)
		row := componentRow{
			Index: i,
			Nodes: len(nodes),
			Edges: len(ccs.Edges(i)),
			IDs:   make([]string, 0, len(nodes)),
		}
		for _, v := range nodes {
			row.IDs = append(row.IDs, v.ID)
		}
		sort.Strings(row.IDs)

		first := true
		var loX, loY, hiX, hiY float64
		for _, v := range nodes {
			p := d.Pos(v.ID)
			s := d.Size(v.ID)
			x0, y0 := p.X-s.W/2, p.Y-s.H/2
			x1, y1 := p.X+s.W/2, p.Y+s.H/2
			if first {
				loX, loY, hiX, hiY = x0, y0, x1, y1
				first = false
				continue
			}
			loX = min(loX, x0)
			loY = min(loY, y0)
			hiX = max(hiX, x1)
			hiY = max(hiY, y1)
		}
		row.Width = hiX - loX
		row.Height = hiY - loY
		rows = append(rows, row)
	}
	return rows
}

// componentListModel is the bubbletea model for component browsing.
type componentListModel struct {
	Title  string
	Rows   []componentRow
	Cursor int
	Height int
	Offset int
}

func newComponentListModel(title string, rows []componentRow) componentListModel {
	return componentListModel{
		Title:  title,
		Rows:   rows,
		Height: 15,
	}
}

func (m componentListModel) Init() tea.Cmd {
	return nil
}

func (m componentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m componentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Components of " + m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", r.Index),
			fmt.Sprintf("%d", r.Nodes),
			fmt.Sprintf("%d", r.Edges),
			fmt.Sprintf("%.0f×%.0f", r.Width, r.Height),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Component", "Nodes", "Edges", "Extent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	sel := m.Rows[m.Cursor]
	ids := sel.IDs
	const maxShown = 12
	truncated := false
	if len(ids) > maxShown {
		ids = ids[:maxShown]
		truncated = true
	}
	detail := strings.Join(ids, ", ")
	if truncated {
		detail += fmt.Sprintf(", … (%d more)", len(sel.IDs)-maxShown)
	}
	b.WriteString(listDimStyle.Render("  nodes: " + detail))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
