package main

import (
	"fmt"
	"strconv"

	"wgc/cmd/wgc/ui"

	"github.com/spf13/cobra"
)

func nodesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"ls"},
		Short:   "List the declared nodes with their derived public keys",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nw, err := loadNetwork(opts.configPath)
			if err != nil {
				return err
			}

			names := nw.Nodes()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				node, _ := nw.Node(name)
				pub, _ := nw.PublicKey(name)

				port := "-"
				if node.ListenPort != nil {
					port = strconv.Itoa(int(*node.ListenPort))
				}
				endpoint := "-"
				if node.PublicAddress != nil && *node.PublicAddress != "" {
					endpoint = *node.PublicAddress
				}
				rows = append(rows, []string{name, node.Address, port, endpoint, pub})
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Table([]string{"Node", "Address", "Port", "Endpoint", "Public key"}, rows))
			return nil
		},
	}
}
