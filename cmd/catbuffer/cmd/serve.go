package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/catbuffer/pkg/api"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the catbuffer REST API server. Settings come from the config
file and can be overridden with flags. An empty API key disables
authentication.

Examples:
  catbuffer serve
  catbuffer serve --port 9000 --bind 0.0.0.0
  catbuffer serve --config ./catbuffer.yaml --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			c, err := requireContainer()
			if err != nil {
				return err
			}

			serverConfig := api.ServerConfig{
				Bind:        cfg.Bind,
				Port:        cfg.Port,
				APIKey:      cfg.Security.APIKey,
				MaxBodySize: cfg.Security.MaxBodySize,
			}
			if cmd.Flags().Changed("port") {
				serverConfig.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("bind") {
				serverConfig.Bind, _ = cmd.Flags().GetString("bind")
			}
			if cmd.Flags().Changed("api-key") {
				serverConfig.APIKey, _ = cmd.Flags().GetString("api-key")
			}
			if serverConfig.Port < 1 || serverConfig.Port > 65535 {
				return errors.Newf("port %d out of range", serverConfig.Port)
			}

			serverConfig.Policy, err = policyFromFlags(cmd)
			if err != nil {
				return err
			}

			store, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cmd.Printf("Starting catbuffer server on %s:%d\n", serverConfig.Bind, serverConfig.Port)
			cmd.Printf("Data directory: %s\n", cfg.DataDir)

			return c.GetServerFactory().CreateServerStarter().StartServer(ctx, store, serverConfig)
		},
	}
	cmd.Flags().IntP("port", "p", 8080, "Port to listen on (default from config)")
	cmd.Flags().String("bind", "127.0.0.1", "Address to bind (default from config)")
	cmd.Flags().String("api-key", "", "API key clients must send in X-API-Key (default from config)")
	addPolicyFlags(cmd)
	return cmd
}
