package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/issueclone/issueclone/pkg/clone"
	"github.com/issueclone/issueclone/pkg/config"
	"github.com/issueclone/issueclone/pkg/github"
)

// listCommand creates the list command, a read-only preview of a copy.
func (c *CLI) listCommand() *cobra.Command {
	var (
		flags       apiFlags
		interactive bool
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list REPO",
		Short: "List the issues a copy would pick up",
		Long: `Fetch every issue from a repository, page by page, and print the
number, title, and labels: the exact set 'issueclone clone' would copy.

Works without a token on public repositories.

Examples:
  issueclone list Avnu/gptp
  issueclone list Avnu/gptp --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), args[0], &flags, interactive, timeout)
		},
	}

	addAPIFlags(cmd, &flags)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse issues in an interactive list")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall timeout for the fetch (0 means no limit)")

	return cmd
}

func (c *CLI) runList(ctx context.Context, repo string, flags *apiFlags, interactive bool, timeout time.Duration) error {
	if _, _, err := github.ParseRepoRef(repo); err != nil {
		return err
	}

	client, source, err := c.newClient(flags, false)
	if err != nil {
		return err
	}
	if source == config.SourceNone {
		printWarning("No token set; only public repositories are readable")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching issues from %s...", repo))
	spinner.Start()
	issues, err := clone.FetchAll(ctx, client, repo)
	if err != nil {
		spinner.StopWithError("Fetch failed")
		return err
	}
	spinner.Stop()

	if len(issues) == 0 {
		printInfo("No issues in %s", repo)
		return nil
	}

	if interactive {
		m := NewIssueListModel(repo, issues)
		p := tea.NewProgram(m)
		_, err := p.Run()
		return err
	}

	printSuccess("%s issues in %s", StyleNumber.Render(fmt.Sprintf("%d", len(issues))), StyleHighlight.Render(repo))
	printNewline()
	fmt.Println(renderIssueTable(issues, len(issues), 0, -1))
	printNewline()
	printNextStep("Copy them", fmt.Sprintf("%s clone %s OWNER/REPO", appName, repo))

	return nil
}
