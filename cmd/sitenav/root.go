package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mchmarny/sitenav/pkg/config"
	"github.com/mchmarny/sitenav/pkg/logger"
)

const appName = "sitenav"

var (
	version = "dev"     // Set at build time via -ldflags "-X main.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X main.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X main.date=date"
)

type options struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Render the navigation menu of a static site",
		Long: `sitenav resolves, for every page of a static site, which navigation
menu variant to show and which entry is active, and renders the menu
into the page's #navbar-placeholder (or the start of its body).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			logger.SetDefault(cmd.ErrOrStderr(), cfg.LogFormat, appName, version, cfg.LogLevel)

			slog.Debug("starting sitenav", "commit", commit, "date", date, "config", opts.configPath)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "sitenav.yaml", "config file path")

	cmd.AddCommand(
		newBuildCmd(opts),
		newServeCmd(opts),
		newResolveCmd(opts),
	)

	return cmd
}
