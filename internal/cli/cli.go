// Package cli implements the issueclone command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/issueclone/issueclone/pkg/buildinfo"
	"github.com/issueclone/issueclone/pkg/config"
	"github.com/issueclone/issueclone/pkg/github"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "issueclone"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "issueclone copies issues between GitHub repositories",
		Long:         `issueclone copies issues (title, body, labels) from one GitHub repository to another through the REST API, fetching one page at a time and recreating each issue in order.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.cloneCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.authCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// apiFlags are the connection flags shared by commands that talk to GitHub.
type apiFlags struct {
	token  string
	apiURL string
}

// addAPIFlags registers the shared connection flags on a command.
func addAPIFlags(cmd *cobra.Command, flags *apiFlags) {
	cmd.Flags().StringVar(&flags.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN and the config file)")
	cmd.Flags().StringVar(&flags.apiURL, "api-url", "", "GitHub API base URL (for GitHub Enterprise)")
}

// newClient builds a GitHub client from flags, environment variables, and
// the config file. With requireToken set, a missing credential is an error
// before any request is made.
func (c *CLI) newClient(flags *apiFlags, requireToken bool) (*github.Client, config.Source, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.SourceNone, err
	}

	token, source := config.ResolveToken(flags.token, cfg)
	if requireToken && token == "" {
		return nil, source, fmt.Errorf("no GitHub token (use --token, set %s, or run '%s auth login')", config.EnvToken, appName)
	}

	apiURL, urlSource := config.ResolveAPIURL(flags.apiURL, cfg)
	c.Logger.Debug("resolved GitHub client", "token_source", source, "api_url", apiURL, "api_url_source", urlSource)

	return github.NewClient(token, apiURL), source, nil
}
