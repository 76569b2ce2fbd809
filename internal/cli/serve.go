package cli

import (
	"github.com/spf13/cobra"

	"github.com/AndySiamas/LayoutLens/internal/server"
	"github.com/AndySiamas/LayoutLens/pkg/cache"
)

// apiKeyPrefix scopes HTTP API cache entries away from CLI ones.
const apiKeyPrefix = "api:"

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			r, err := c.newRunner(ctx, cfg, noCache, cache.NewScopedKeyer(nil, apiKeyPrefix))
			if err != nil {
				return err
			}
			defer r.Close()

			logger := loggerFromContext(ctx)
			srv := server.New(r, logger, server.Options{MaxBodyBytes: cfg.Server.MaxBodyBytes})
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+defaultAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	return cmd
}
