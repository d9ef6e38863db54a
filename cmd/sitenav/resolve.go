package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mchmarny/sitenav/pkg/nav"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve LOCATION...",
		Short: "Print the resolved navigation state of page locations as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := nav.Site{Root: opts.cfg.SiteRoot}

			menus := make([]nav.Menu, 0, len(args))
			for _, location := range args {
				menus = append(menus, s.Resolve(location))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(menus)
		},
	}
}
