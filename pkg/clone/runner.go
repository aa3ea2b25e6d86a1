package clone

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/issueclone/issueclone/pkg/github"
)

// Service is the slice of the GitHub client the runner needs.
// *github.Client satisfies it; tests substitute fakes.
type Service interface {
	ListIssues(ctx context.Context, repo string, page int) ([]github.Issue, error)
	CreateIssue(ctx context.Context, repo string, issue github.NewIssue) (*github.Issue, error)
}

// Progress is called after each successfully copied issue with the
// source issue and the running total.
type Progress func(issue github.Issue, copied int)

// Stats summarizes a completed run.
type Stats struct {
	Issues  int           // issues created in the destination
	Pages   int           // non-empty pages processed
	Elapsed time.Duration // wall-clock time for the whole run
}

// Runner copies issues from one repository to another, strictly
// sequentially: each create finishes before the next starts, and a page
// is fully copied before the next page is fetched.
//
// The Runner keeps no state between runs and persists nothing. When a
// run fails partway through, the issues already created stay in the
// destination and there is no record of which ones they were.
type Runner struct {
	Service  Service
	Logger   *log.Logger
	Progress Progress
}

// NewRunner creates a runner backed by the given service.
// If logger is nil, the default logger is used.
func NewRunner(svc Service, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Service: svc, Logger: logger}
}

// Run copies every issue from source into dest and returns run totals.
// It pages through the source starting at page 1 and stops at the first
// empty page. Any error from a fetch or a create aborts the run
// immediately; issues created before the failure are not rolled back.
func (r *Runner) Run(ctx context.Context, source, dest string) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}
	page := 1

	for {
		issues, err := r.Service.ListIssues(ctx, source, page)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		if len(issues) == 0 {
			break
		}
		stats.Pages++
		r.Logger.Debug("fetched page", "page", page, "issues", len(issues))

		for _, issue := range issues {
			if _, err := r.Service.CreateIssue(ctx, dest, github.NewIssueFrom(issue)); err != nil {
				return nil, fmt.Errorf("copy issue #%d %q: %w", issue.Number, issue.Title, err)
			}
			stats.Issues++
			r.Logger.Debug("copied issue", "number", issue.Number, "title", issue.Title)
			if r.Progress != nil {
				r.Progress(issue, stats.Issues)
			}
		}

		page++
	}

	stats.Elapsed = time.Since(start)
	r.Logger.Info("copy complete",
		"issues", stats.Issues,
		"pages", stats.Pages,
		"duration", stats.Elapsed)

	return stats, nil
}

// FetchAll walks the same pagination as Run but only accumulates,
// for read-only previews of what a copy would pick up.
func FetchAll(ctx context.Context, svc Service, repo string) ([]github.Issue, error) {
	var all []github.Issue
	page := 1

	for {
		issues, err := svc.ListIssues(ctx, repo, page)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		if len(issues) == 0 {
			break
		}
		all = append(all, issues...)
		page++
	}

	return all, nil
}
