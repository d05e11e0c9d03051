package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leafn/paillier/pkg/paillier"
)

func (a *app) keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "generate a key pair and write it to --out and --out.pub",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.v.GetString("out")
			if out == "" {
				return errors.New("--out is required")
			}
			cfg := &paillier.Config{
				MinBitLength: a.v.GetInt("min-bits"),
				Logger:       a.logger,
			}
			bits, simple := a.v.GetInt("bits"), a.v.GetBool("simple")

			pk, sk, err := paillier.GenerateRandomKeys(cmd.Context(), bits, simple, cfg)
			if err != nil {
				return err
			}
			if err := writeKeyPair(out, pk, sk); err != nil {
				return err
			}
			a.logger.Info(cmd.Context(), "key pair written", "path", out, "bits", bits, "simple", simple)
			fmt.Fprintln(cmd.OutOrStdout(), pk.Fingerprint())
			return nil
		},
	}
	cmd.Flags().Int("bits", 2048, "modulus bit length (even)")
	cmd.Flags().Bool("simple", true, "use g = n+1")
	cmd.Flags().Int("min-bits", paillier.DefaultMinBitLength, "refuse moduli below this size")
	cmd.Flags().String("out", "", "private key path; the public key goes to <out>.pub")
	return cmd
}
