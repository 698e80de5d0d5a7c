package main

import (
	"errors"
	"fmt"
	"log/slog"

	"wgc/cmd/wgc/ui"
	"wgc/internal/declaration"
	"wgc/internal/topology"
	"wgc/internal/wgconf"

	"github.com/spf13/cobra"
)

// loadNetwork reads, validates and derives keys for the declaration at path.
func loadNetwork(path string) (*topology.Network, error) {
	slog.Debug("loading declaration", "path", path, "codec", declaration.CodecForPath(path))
	decl, err := declaration.Load(path)
	if err != nil {
		return nil, err
	}

	nw, err := topology.Build(decl)
	if err != nil {
		return nil, fmt.Errorf("invalid declaration %s: %w", path, err)
	}
	slog.Debug("declaration valid", "network", nw.Prefix(), "nodes", len(nw.Nodes()))
	return nw, nil
}

func runExport(cmd *cobra.Command, opts rootOptions) error {
	format, err := wgconf.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	nw, err := loadNetwork(opts.configPath)
	if err != nil {
		return err
	}

	node := opts.node
	if node == "" {
		node, err = ui.Select("Select a node", nw.Nodes(), "use --node <name>")
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Muted("no node selected"))
			return nil
		}
		if err != nil {
			return err
		}
	}

	cfg, err := nw.Resolve(node, opts.all)
	if err != nil {
		return err
	}
	slog.Debug("resolved node", "node", node, "peers", len(cfg.Peers), "all", opts.all)

	return wgconf.Render(cmd.OutOrStdout(), wgconf.FromConfig(cfg), format)
}
