package main

import (
	"fmt"
	"log/slog"

	"wgc/cmd/wgc/ui"

	"github.com/spf13/cobra"
)

func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the declaration without printing any config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nw, err := loadNetwork(opts.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			// Keepalive has to be set per node or per route to take effect.
			if ka := nw.Declaration().PersistentKeepalive; ka != nil {
				slog.Warn("global persistentKeepalive is not applied to peers", "value", *ka)
				fmt.Fprintln(out, ui.WarnMsg("global persistentKeepalive (%d) is ignored; set it on nodes or routes", *ka))
			}

			fmt.Fprintln(out, ui.SuccessMsg("%s is valid, nodes: %d", nw.Prefix(), len(nw.Nodes())))
			return nil
		},
	}
}
