package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/issueclone/issueclone/pkg/github"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// IssueListModel - Interactive issue browser
// =============================================================================

// IssueListModel is the bubbletea model for browsing a repository's issues.
type IssueListModel struct {
	Repo   string
	Issues []github.Issue
	Cursor int
	Height int
	Offset int
}

// NewIssueListModel creates a new issue list model.
func NewIssueListModel(repo string, issues []github.Issue) IssueListModel {
	return IssueListModel{
		Repo:   repo,
		Issues: issues,
		Cursor: 0,
		Height: 15,
		Offset: 0,
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
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m IssueListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Issues in " + m.Repo))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	b.WriteString(renderIssueTable(m.Issues, m.Height, m.Offset, m.Cursor))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Issues))))

	return b.String()
}

// =============================================================================
// Table Rendering
// =============================================================================

// renderIssueTable renders a window of issues as a bordered table.
// cursor marks the highlighted row; pass -1 for a static table.
func renderIssueTable(issues []github.Issue, height, offset, cursor int) string {
	end := offset + height
	if end > len(issues) {
		end = len(issues)
	}

	rows := [][]string{}
	for i := offset; i < end; i++ {
		issue := issues[i]

		marker := "  "
		if i == cursor {
			marker = "▸ "
		}

		rows = append(rows, []string{
			marker,
			fmt.Sprintf("#%d", issue.Number),
			truncate(issue.Title, 60),
			truncate(labelNames(issue.Labels), 30),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Title", "Labels").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			isCurrent := offset+row == cursor
			switch {
			case isCurrent && col == 3:
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			case isCurrent:
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorGray)
			case col == 3:
				return lipgloss.NewStyle().Foreground(colorDim)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	return t.Render()
}

// =============================================================================
// Helpers
// =============================================================================

// labelNames joins label names for display.
func labelNames(labels []github.Label) string {
	if len(labels) == 0 {
		return "—"
	}
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return strings.Join(names, ", ")
}

// truncate shortens a string to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
