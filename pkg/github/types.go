package github

// Issue represents an issue returned by the GitHub API.
// Only the fields needed for copying are decoded; everything else
// (state, assignees, milestone, timestamps) is ignored.
type Issue struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	Labels []Label `json:"labels"`
}

// Label represents an issue label. Only the name survives a copy;
// color and description are left for the destination to assign.
type Label struct {
	Name string `json:"name"`
}

// NewIssue is the creation payload for an issue. It serializes to
// exactly three keys: title, body, and labels.
type NewIssue struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// NewIssueFrom builds a creation payload from a fetched issue, copying
// the title, body, and label names in their original order. The label
// slice is always non-nil so it serializes as [] rather than null.
func NewIssueFrom(issue Issue) NewIssue {
	labels := make([]string, len(issue.Labels))
	for i, l := range issue.Labels {
		labels[i] = l.Name
	}
	return NewIssue{
		Title:  issue.Title,
		Body:   issue.Body,
		Labels: labels,
	}
}

// User represents a GitHub user.
type User struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
