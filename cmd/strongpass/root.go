package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strongpass/strongpass-go/internal/model"
	"github.com/strongpass/strongpass-go/internal/passgen"
	"github.com/strongpass/strongpass-go/internal/service"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "strongpass",
		Short:        "Generate strong passwords and rate their strength",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newGenerateCmd(), newStrengthCmd())
	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	var (
		length                                 int
		count                                  int
		uppercase, lowercase, numbers, symbols bool
		showStrength, useCrypto                bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The service maps 0 to its default; the flag has its own.
			if length < service.MinLength {
				return service.ErrLengthTooShort
			}

			src := passgen.MathSource()
			if useCrypto {
				src = passgen.CryptoSource()
			}
			svc := service.NewGeneratorService(src)

			resp, err := svc.Generate(model.GenerateRequest{
				Length:    length,
				Uppercase: &uppercase,
				Lowercase: &lowercase,
				Numbers:   &numbers,
				Symbols:   &symbols,
				Count:     count,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, pw := range resp.Passwords {
				if showStrength {
					fmt.Fprintf(out, "%s\t%s (%d/%d)\n", pw.Password, pw.Strength.Label, pw.Strength.Score, passgen.MaxScore)
					continue
				}
				fmt.Fprintln(out, pw.Password)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 12, "Password length (at least 1)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passwords to generate")
	cmd.Flags().BoolVar(&uppercase, "uppercase", true, "Include uppercase letters (A-Z)")
	cmd.Flags().BoolVar(&lowercase, "lowercase", true, "Include lowercase letters (a-z)")
	cmd.Flags().BoolVar(&numbers, "numbers", true, "Include digits (0-9)")
	cmd.Flags().BoolVar(&symbols, "symbols", true, "Include symbols")
	cmd.Flags().BoolVarP(&showStrength, "show-strength", "s", false, "Print the strength label next to each password")
	cmd.Flags().BoolVar(&useCrypto, "crypto", false, "Draw from crypto/rand instead of the default source")
	return cmd
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Rate the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.NewGeneratorService(nil).Strength(model.StrengthRequest{Password: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d/%d)\n", resp.Label, resp.Score, passgen.MaxScore)
			return nil
		},
	}
}
