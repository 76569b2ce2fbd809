package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/AndySiamas/LayoutLens/pkg/pipeline"
	"github.com/AndySiamas/LayoutLens/pkg/validate"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	detailStyle     = lipgloss.NewStyle().Foreground(colorWhite).PaddingLeft(2)
	suggestionStyle = lipgloss.NewStyle().Foreground(colorGreen).PaddingLeft(2)
)

// =============================================================================
// IssueListModel - Interactive report browser
// =============================================================================

// IssueListModel is the bubbletea model for browsing a report's issues.
// The table shows one row per issue; the full message of the row under the
// cursor is shown below it.
type IssueListModel struct {
	Kind   validate.Kind
	Issues []validate.Issue
	Cursor int
	Height int
	Offset int
	Width  int
}

// NewIssueListModel creates a new issue list model.
func NewIssueListModel(r *validate.Report) IssueListModel {
	return IssueListModel{
		Kind:   r.Kind,
		Issues: r.Issues,
		Height: 10,
		Width:  100,
	}
}

func (m IssueListModel) Init() tea.Cmd {
	return nil
}

func (m IssueListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Issues)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(len(m.Issues)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = max(msg.Height-14, 3)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m IssueListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s report", titleCase(string(m.Kind)))))
	b.WriteString("  ")
	b.WriteString(StyleWarning.Render(pluralize(len(m.Issues), "issue")))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Issues) == 0 {
		b.WriteString(StyleSuccess.Render("No issues."))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Issues))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		is := m.Issues[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		fix := "-"
		if is.Suggestion != nil {
			fix = fmt.Sprintf("Δ(%.2f, %.2f)", is.Suggestion.DX, is.Suggestion.DY)
		}
		rows = append(rows, []string{cursor, fmt.Sprintf("%d", i+1), string(is.Code), strings.Join(is.Elements, ", "), fix})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Code", "Elements", "Fix").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Issues) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle().PaddingRight(1)
			switch {
			case idx == m.Cursor:
				return base.Foreground(colorCyan).Bold(true)
			case col == 4 && m.Issues[idx].Suggestion != nil:
				return base.Foreground(colorGreen)
			default:
				return base.Foreground(colorGray)
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	cur := m.Issues[m.Cursor]
	width := max(m.Width-4, 20)
	b.WriteString(detailStyle.Width(width).Render(cur.Message))
	b.WriteString("\n")
	if s := cur.Suggestion; s != nil {
		b.WriteString(suggestionStyle.Render(fmt.Sprintf("→ move '%s' to (%.2f, %.2f)", s.ElementID, s.NewX, s.NewY)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Issues))))

	return b.String()
}

// browseIssues runs the issue browser until the user quits, then prints the
// plain report so it stays in the terminal scrollback.
func browseIssues(res *pipeline.Result) error {
	p := tea.NewProgram(NewIssueListModel(res.Report), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("issue browser: %w", err)
	}
	fmt.Print(res.Report.String())
	fmt.Println()
	fmt.Println(statsLine(res))
	return nil
}
