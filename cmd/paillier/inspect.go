package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/leafn/paillier/pkg/paillier"
)

func (a *app) inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "print the size, variant and fingerprint of a key file",
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := readPublicKey(a.v.GetString("key"))
			if err != nil {
				return err
			}
			variant := "full"
			if pk.G().Cmp(new(big.Int).Add(pk.N(), big.NewInt(1))) == 0 {
				variant = "simple"
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "bits: %d\n", pk.BitLen())
			fmt.Fprintf(w, "variant: %s\n", variant)
			fmt.Fprintf(w, "fingerprint: %s\n", pk.Fingerprint())
			return nil
		},
	}
	cmd.Flags().String("key", "", "public or private key file")
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the module version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), paillier.ModuleVersion())
		},
	}
}
