package main

import (
	"fmt"

	"wgc/internal/keys"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a fresh WireGuard key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			private, public, err := keys.Generate()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PrivateKey = %s\nPublicKey = %s\n", private, public)
			return nil
		},
	}
}
