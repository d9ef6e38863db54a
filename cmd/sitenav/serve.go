package main

import (
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mchmarny/sitenav/pkg/metric"
	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/server"
)

func newServeCmd(opts *options) *cobra.Command {
	f := &buildFlags{}
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve it for local preview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyBuildFlags(cmd, opts, f)
			if cmd.Flags().Changed("port") {
				opts.cfg.Port = port
			}
			if err := opts.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			if _, err := newBuilder(opts, metric.NewNavCounters(reg)).Build(ctx); err != nil {
				return err
			}

			return server.New(append(opts.cfg.ServerOptions(),
				server.WithSimpleHealth(),
				server.WithRegistry(reg),
				server.WithPrometheusMetrics(),
				server.WithHandler("/nav", nav.Site{Root: opts.cfg.SiteRoot}.Handler()),
				server.WithSiteDir(opts.cfg.Out),
			)...).Serve(ctx)
		},
	}

	addBuildFlags(cmd, f)
	cmd.Flags().IntVar(&port, "port", server.DefaultPort, "port to serve on (overrides config)")

	return cmd
}
