package github

import (
	"fmt"
	"io"
	"net/http"
)

// APIError is returned for any GitHub response outside the 2xx range.
// The response body is kept verbatim so callers can surface GitHub's
// own error message.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error (%d): %s", e.StatusCode, e.Body)
}

// checkStatus converts a non-2xx response into an *APIError, consuming
// the response body.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
}
