// Package pkg provides the core libraries for copying GitHub issues.
//
// # Overview
//
// Issueclone reads every issue from a source repository and recreates it,
// in order, in a destination repository. The pkg directory is organized
// into three areas:
//
//  1. [github] - GitHub REST API client (pagination, issue creation)
//  2. [clone] - Copy orchestration (page walk, sequential creation, stats)
//  3. [config] - Persisted settings and credential resolution
//
// # Architecture
//
// The data flow for a copy run:
//
//	Source repository
//	         ↓
//	    [github] package (list issues, 100 per page)
//	         ↓
//	    [clone] package (walk pages, copy each issue in order)
//	         ↓
//	    [github] package (create issues in the destination)
//
// The walk is strictly sequential. Each issue is created before the next
// is attempted, and the first failed request aborts the whole run.
//
// # Quick Start
//
// Copy every issue from one repository to another:
//
//	client := github.NewClient(token, "")
//	runner := clone.NewRunner(client, nil)
//	stats, err := runner.Run(ctx, "Avnu/gptp", "githubnext/workspace-blank")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("copied %d issues across %d pages\n", stats.Issues, stats.Pages)
//
// # Main Packages
//
// [github] - Client for the GitHub issues API. ListIssues fetches one page
// of up to 100 issues, CreateIssue posts a single issue with its title,
// body, and label names, and FetchUser verifies a credential. Non-2xx
// responses surface as [github.APIError]. Requests are never retried.
//
// [clone] - Runner walks the source repository page by page and copies
// each issue into the destination, preserving API ordering. FetchAll
// performs the same walk without writing, for read-only listings.
//
// [config] - TOML config file under the XDG config directory plus
// resolution of the token and API base URL across flags, environment
// variables, and the file.
//
// # Common Workflows
//
// List without copying:
//
//	issues, _ := clone.FetchAll(ctx, client, "Avnu/gptp")
//
// Point the client at a GitHub Enterprise instance:
//
//	client := github.NewClient(token, "https://github.example.com/api/v3")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/github/...     # Specific package
//
// [github]: https://pkg.go.dev/github.com/issueclone/issueclone/pkg/github
// [clone]: https://pkg.go.dev/github.com/issueclone/issueclone/pkg/clone
// [config]: https://pkg.go.dev/github.com/issueclone/issueclone/pkg/config
package pkg
