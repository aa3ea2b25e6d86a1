package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/issueclone/issueclone/pkg/config"
	"github.com/issueclone/issueclone/pkg/github"
)

// verifyTimeout bounds the GET /user check during login and status.
const verifyTimeout = 30 * time.Second

// authCommand creates the auth command with subcommands.
func (c *CLI) authCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored GitHub credential",
		Long: `Store, inspect, or remove the personal access token used for GitHub.

The token is a static credential kept in the config file (0600);
issueclone never refreshes or rotates it. A --token flag or the
GITHUB_TOKEN variable always takes precedence over the stored value.`,
	}

	cmd.AddCommand(c.authLoginCommand())
	cmd.AddCommand(c.authLogoutCommand())
	cmd.AddCommand(c.authStatusCommand())

	return cmd
}

// authLoginCommand creates the login subcommand.
func (c *CLI) authLoginCommand() *cobra.Command {
	var flags apiFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify and store a personal access token",
		Long: `Verify a GitHub personal access token and store it in the config file.

Create a token with the repo scope at https://github.com/settings/tokens
and pass it with --token, or paste it at the prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := flags.token
			if token == "" {
				token = promptToken()
			}
			if token == "" {
				return fmt.Errorf("no token provided (use --token or paste one at the prompt)")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			apiURL, _ := config.ResolveAPIURL(flags.apiURL, cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), verifyTimeout)
			defer cancel()

			spinner := newSpinnerWithContext(ctx, "Verifying token...")
			spinner.Start()
			user, err := github.NewClient(token, apiURL).FetchUser(ctx)
			if err != nil {
				spinner.StopWithError("Token rejected")
				return fmt.Errorf("verify token: %w", err)
			}
			spinner.Stop()

			cfg.Token = token
			if flags.apiURL != "" {
				cfg.APIURL = flags.apiURL
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			printSuccess("Logged in as @%s", user.Login)
			if path, err := config.Path(); err == nil {
				printDetail("Token saved to %s", path)
			}
			printNextStep("Copy issues", appName+" clone SOURCE DEST")

			return nil
		},
	}

	addAPIFlags(cmd, &flags)
	return cmd
}

// authLogoutCommand creates the logout subcommand.
func (c *CLI) authLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Token == "" {
				printInfo("No stored token")
				return nil
			}

			cfg.Token = ""
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			printSuccess("Logged out")
			return nil
		},
	}
}

// authStatusCommand creates the status subcommand.
func (c *CLI) authStatusCommand() *cobra.Command {
	var flags apiFlags

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the authenticated GitHub user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			token, source := config.ResolveToken(flags.token, cfg)
			if token == "" {
				printInfo("Not logged in")
				printDetail("Run '%s auth login' or set %s", appName, config.EnvToken)
				return nil
			}
			apiURL, _ := config.ResolveAPIURL(flags.apiURL, cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), verifyTimeout)
			defer cancel()

			spinner := newSpinnerWithContext(ctx, "Verifying token...")
			spinner.Start()
			user, err := github.NewClient(token, apiURL).FetchUser(ctx)
			if err != nil {
				spinner.StopWithError("Token invalid")
				return fmt.Errorf("verify token: %w", err)
			}
			spinner.Stop()

			printSuccess("GitHub credential")
			printKeyValue("Username", "@"+user.Login)
			if user.Name != "" {
				printKeyValue("Name", user.Name)
			}
			if user.Email != "" {
				printKeyValue("Email", user.Email)
			}
			printKeyValue("Token", config.Redact(token))
			printKeyValue("Source", string(source))
			if apiURL != "" {
				printKeyValue("API URL", apiURL)
			}

			return nil
		},
	}

	addAPIFlags(cmd, &flags)
	return cmd
}

// promptToken asks for a token on stdin and returns the trimmed line.
func promptToken() string {
	printInline("Paste your GitHub personal access token: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	fmt.Println()
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
