// Package github provides a minimal HTTP client for the GitHub REST API.
//
// # Overview
//
// The client covers exactly the operations issue copying needs: listing a
// repository's issues page by page, creating issues, and fetching the
// authenticated user for token verification. Repositories are addressed
// by "owner/name" references, validated with [ParseRepoRef].
//
// # Authentication
//
// A personal access token is sent as "Authorization: token <value>".
// An empty token sends unauthenticated requests, which works for reading
// public repositories but is subject to much lower rate limits. Creating
// issues always requires a token.
//
// # Pagination
//
// [Client.ListIssues] fetches one page at a time with a fixed page size
// of 100. An empty page means the repository has no more issues; callers
// drive the loop (see the clone package).
//
// # Errors
//
// Any response outside the 2xx range is returned as an [APIError]
// carrying the status code and the raw response body. The client never
// retries; transient failures surface immediately.
package github
