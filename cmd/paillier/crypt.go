package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
)

func (a *app) encryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "encrypt a decimal plaintext",
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := readPublicKey(a.v.GetString("key"))
			if err != nil {
				return err
			}
			m, err := parseDecimal("m", a.v.GetString("m"))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.v.GetBool("zkp") {
				r, c, err := pk.EncryptForZKP(m)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "c: %s\nr: %s\n", c, r)
				return nil
			}
			c, err := pk.Encrypt(m)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, c)
			return nil
		},
	}
	cmd.Flags().String("key", "", "public or private key file")
	cmd.Flags().String("m", "", "plaintext in [0, n)")
	cmd.Flags().Bool("zkp", false, "also print the randomness r")
	return cmd
}

func (a *app) decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "decrypt a decimal ciphertext",
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := readPrivateKey(a.v.GetString("key"))
			if err != nil {
				return err
			}
			c, err := parseDecimal("c", a.v.GetString("c"))
			if err != nil {
				return err
			}
			m, err := sk.Decrypt(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().String("key", "", "private key file")
	cmd.Flags().String("c", "", "ciphertext")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "homomorphically add ciphertexts",
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := readPublicKey(a.v.GetString("key"))
			if err != nil {
				return err
			}
			raw, err := cmd.Flags().GetStringArray("c")
			if err != nil {
				return err
			}
			if len(raw) == 0 {
				return errors.New("at least one --c is required")
			}
			cs := make([]*big.Int, len(raw))
			for i, s := range raw {
				if cs[i], err = parseDecimal("c", s); err != nil {
					return err
				}
			}
			sum, err := pk.AddCiphers(cs...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().String("key", "", "public or private key file")
	cmd.Flags().StringArray("c", nil, "ciphertext (repeatable)")
	return cmd
}
