// Package clone implements the sequential issue-copy loop: fetch a page
// of issues from the source repository, recreate each one in the
// destination, and advance until a fetch comes back empty. The first
// error from either side aborts the run.
package clone
