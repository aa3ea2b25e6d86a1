package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/issueclone/issueclone/pkg/clone"
	"github.com/issueclone/issueclone/pkg/github"
)

// cloneCommand creates the clone command, the core of the tool.
func (c *CLI) cloneCommand() *cobra.Command {
	var (
		flags   apiFlags
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "clone SOURCE DEST",
		Short: "Copy all issues from one repository to another",
		Long: `Copy every issue from the source repository into the destination.

Issues are fetched a page at a time and recreated one by one, keeping
the title, body, and labels. Comments, assignees, milestones, and the
open/closed state are not copied. The first failed request aborts the
run; issues created before the failure stay in the destination.

Both repositories are "owner/name" references. A token with the repo
scope is required.

Examples:
  issueclone clone Avnu/gptp githubnext/workspace-blank
  issueclone clone src/repo dst/repo --token ghp_xxx`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runClone(cmd.Context(), args[0], args[1], &flags, timeout)
		},
	}

	addAPIFlags(cmd, &flags)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall timeout for the copy (0 means no limit)")

	return cmd
}

func (c *CLI) runClone(ctx context.Context, source, dest string, flags *apiFlags, timeout time.Duration) error {
	if _, _, err := github.ParseRepoRef(source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if _, _, err := github.ParseRepoRef(dest); err != nil {
		return fmt.Errorf("destination: %w", err)
	}

	client, _, err := c.newClient(flags, true)
	if err != nil {
		return err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	printInfo("Copying issues from %s to %s", StyleHighlight.Render(source), StyleHighlight.Render(dest))

	spinner := newSpinnerWithContext(ctx, "Fetching first page...")
	spinner.Start()

	runner := clone.NewRunner(client, c.Logger)
	runner.Progress = func(issue github.Issue, copied int) {
		spinner.SetMessage(fmt.Sprintf("Copied %d issues...", copied))
	}

	stats, err := runner.Run(ctx, source, dest)
	if err != nil {
		spinner.StopWithError("Copy aborted")
		return err
	}
	spinner.Stop()

	if stats.Issues == 0 {
		printInfo("No issues to copy in %s", source)
		return nil
	}

	printSuccess("Copied %d issues to %s", stats.Issues, StyleHighlight.Render(dest))
	printRunStats(stats.Issues, stats.Pages, stats.Elapsed)

	return nil
}
