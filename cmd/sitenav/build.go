package main

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mchmarny/sitenav/pkg/metric"
	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/site"
)

type buildFlags struct {
	src      string
	out      string
	basePath string
}

func newBuildCmd(opts *options) *cobra.Command {
	f := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the navigation menu into every page of the site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyBuildFlags(cmd, opts, f)
			if err := opts.cfg.Validate(); err != nil {
				return err
			}

			report, err := newBuilder(opts, metric.NoopNavCounters()).Build(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	addBuildFlags(cmd, f)

	return cmd
}

func addBuildFlags(cmd *cobra.Command, f *buildFlags) {
	cmd.Flags().StringVar(&f.src, "src", "", "site source directory (overrides config)")
	cmd.Flags().StringVar(&f.out, "out", "", "output directory (overrides config)")
	cmd.Flags().StringVar(&f.basePath, "base-path", "", "path prefix of every page location, e.g. /sajeevan16.github.io")
}

func applyBuildFlags(cmd *cobra.Command, opts *options, f *buildFlags) {
	if cmd.Flags().Changed("src") {
		opts.cfg.Src = f.src
	}
	if cmd.Flags().Changed("out") {
		opts.cfg.Out = f.out
	}
	if cmd.Flags().Changed("base-path") {
		opts.cfg.BasePath = f.basePath
	}
}

func newBuilder(opts *options, counters metric.NavCounters) *site.Builder {
	cfg := opts.cfg
	return &site.Builder{
		Src:         cfg.Src,
		Out:         cfg.Out,
		BasePath:    cfg.BasePath,
		Site:        nav.Site{Root: cfg.SiteRoot},
		Include:     cfg.Include,
		Exclude:     cfg.Exclude,
		Concurrency: cfg.Concurrency,
		Logger:      slog.Default(),
		Counters:    counters,
	}
}
