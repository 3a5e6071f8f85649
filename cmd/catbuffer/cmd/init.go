package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/catbuffer/pkg/config"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with a generated API key",
		Long: `Create a configuration file with default settings and a freshly
generated API key, and create the data directory.

Examples:
  catbuffer init
  catbuffer init --config ./catbuffer.yaml --data-dir ./data
  catbuffer init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(cmd)
			force, _ := cmd.Flags().GetBool("force")

			if config.ConfigExists(path) && !force {
				return errors.Newf("configuration already exists at %s (use --force to replace it)", path)
			}

			dataDir, _ := cmd.Flags().GetString("data-dir")
			cfg, err := config.BootstrapConfig(path, dataDir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
				return errors.Wrap(err, "failed to create data dir")
			}

			cmd.Printf("Configuration written to %s\n", path)
			cmd.Printf("Data directory: %s\n", cfg.DataDir)
			cmd.Printf("API key: %s\n", cfg.Security.APIKey)
			cmd.Printf("\nStart the server with:\n  catbuffer serve --config %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Replace an existing configuration")
	return cmd
}
