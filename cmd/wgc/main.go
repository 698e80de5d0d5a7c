package main

import (
	"fmt"
	"io"
	"os"

	"wgc/cmd/wgc/ui"
	"wgc/internal/logging"
	"wgc/internal/wgconf"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	defaultConfigPath = "./config.yml"
	envConfig         = "WGC_CONFIG"
)

type rootOptions struct {
	configPath    string
	node          string
	format        string
	all           bool
	debug         bool
	noInteraction bool
}

func main() {
	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err once, as "error: <msg>" behind the failure mark.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.ErrorMsg("error: %v", err))
}

func rootCmd() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "wgc",
		Short: "Generate WireGuard configs for every node of a declared network",
		Long: "wgc reads one network declaration and prints the WireGuard config a\n" +
			"single node has to run. Without --node an interactive picker is shown.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelWarn
			if opts.debug {
				level = logging.LevelDebug
			}
			if err := logging.Configure(level); err != nil {
				return err
			}
			ui.ConfigureInteraction(opts.noInteraction)

			// WGC_CONFIG only applies when --config was not given.
			if !cmd.Flags().Changed("config") {
				if env := os.Getenv(envConfig); env != "" {
					opts.configPath = env
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Network declaration file (yaml, toml or json); env "+envConfig)
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&opts.noInteraction, "no-interaction", false, "Never prompt; fail when a value is missing")

	root.Flags().StringVarP(&opts.node, "node", "n", "", "Node to export (prompted when omitted)")
	root.Flags().StringVarP(&opts.format, "format", "f", string(wgconf.FormatConf), fmt.Sprintf("Output format %v", wgconf.Formats))
	root.Flags().BoolVarP(&opts.all, "all", "a", false, "Add every other node as a peer, not only routed ones")

	root.AddCommand(nodesCmd(&opts))
	root.AddCommand(checkCmd(&opts))
	root.AddCommand(keygenCmd())

	return root
}
