package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/issueclone/issueclone/pkg/config"
	"github.com/issueclone/issueclone/pkg/github"
)

// configCommand creates the config command with subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the issueclone configuration",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the path subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configShowCommand creates the show subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			apiURL := cfg.APIURL
			if apiURL == "" {
				apiURL = github.DefaultBaseURL + " (default)"
			}
			token := config.Redact(cfg.Token)
			if token == "" {
				token = "<not set>"
			}

			printKeyValue("API URL", apiURL)
			printKeyValue("Token", token)
			return nil
		},
	}
}
