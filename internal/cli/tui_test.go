package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/issueclone/issueclone/pkg/github"
)

func makeTestIssues(n int) []github.Issue {
	issues := make([]github.Issue, n)
	for i := range issues {
		issues[i] = github.Issue{
			Number: i + 1,
			Title:  fmt.Sprintf("issue %d", i+1),
		}
	}
	return issues
}

// pressKey sends a key to the model and returns the updated model.
func pressKey(t *testing.T, m IssueListModel, key tea.KeyMsg) IssueListModel {
	t.Helper()
	updated, _ := m.Update(key)
	model, ok := updated.(IssueListModel)
	if !ok {
		t.Fatalf("got model of type %T, want IssueListModel", updated)
	}
	return model
}

func TestNewIssueListModel(t *testing.T) {
	m := NewIssueListModel("acme/source", makeTestIssues(3))

	if m.Repo != "acme/source" {
		t.Errorf("got repo %q, want %q", m.Repo, "acme/source")
	}
	if m.Cursor != 0 {
		t.Errorf("got cursor %d, want 0", m.Cursor)
	}
	if m.Height != 15 {
		t.Errorf("got height %d, want 15", m.Height)
	}
	if m.Init() != nil {
		t.Error("Init should return no command")
	}
}

func TestIssueListModelNavigation(t *testing.T) {
	m := NewIssueListModel("acme/source", makeTestIssues(20))

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	// Moving past the window scrolls the offset
	for i := 0; i < 16; i++ {
		m = pressKey(t, m, down)
	}
	if m.Cursor != 16 {
		t.Errorf("got cursor %d, want 16", m.Cursor)
	}
	if m.Offset != 2 {
		t.Errorf("got offset %d, want 2", m.Offset)
	}

	// Moving back up scrolls the offset back
	for i := 0; i < 15; i++ {
		m = pressKey(t, m, up)
	}
	if m.Cursor != 1 {
		t.Errorf("got cursor %d, want 1", m.Cursor)
	}
	if m.Offset != 1 {
		t.Errorf("got offset %d, want 1", m.Offset)
	}
}

func TestIssueListModelNavigationBounds(t *testing.T) {
	m := NewIssueListModel("acme/source", makeTestIssues(2))

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("got cursor %d at top, want 0", m.Cursor)
	}

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	for i := 0; i < 5; i++ {
		m = pressKey(t, m, j)
	}
	if m.Cursor != 1 {
		t.Errorf("got cursor %d at bottom, want 1", m.Cursor)
	}
}

func TestIssueListModelQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewIssueListModel("acme/source", makeTestIssues(3))
			_, cmd := m.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("got %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestIssueListModelWindowSize(t *testing.T) {
	m := NewIssueListModel("acme/source", makeTestIssues(3))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(IssueListModel)
	if m.Height != 24 {
		t.Errorf("got height %d, want 24", m.Height)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m = updated.(IssueListModel)
	if m.Height != 5 {
		t.Errorf("got height %d, want the minimum of 5", m.Height)
	}
}

func TestIssueListModelView(t *testing.T) {
	m := NewIssueListModel("acme/source", makeTestIssues(3))
	view := m.View()

	for _, want := range []string{"Issues in acme/source", "#2", "issue 3", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestRenderIssueTable(t *testing.T) {
	issues := []github.Issue{
		{Number: 42, Title: "Fix the frobnicator", Labels: []github.Label{{Name: "bug"}}},
		{Number: 43, Title: "Add a widget"},
	}

	out := renderIssueTable(issues, len(issues), 0, -1)
	for _, want := range []string{"#42", "Fix the frobnicator", "bug", "Title"} {
		if !strings.Contains(out, want) {
			t.Errorf("table is missing %q", want)
		}
	}
	if strings.Contains(out, "▸") {
		t.Error("static table should not contain a cursor marker")
	}

	out = renderIssueTable(issues, len(issues), 0, 0)
	if !strings.Contains(out, "▸") {
		t.Error("table with cursor should contain the cursor marker")
	}
}

func TestLabelNames(t *testing.T) {
	tests := []struct {
		name   string
		labels []github.Label
		want   string
	}{
		{"none", nil, "—"},
		{"one", []github.Label{{Name: "bug"}}, "bug"},
		{"several", []github.Label{{Name: "bug"}, {Name: "help wanted"}}, "bug, help wanted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := labelNames(tt.labels); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world", 8, "hello..."},
		{"multibyte", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.s, tt.max); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
