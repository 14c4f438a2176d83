package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/securevault/securevault-go/internal/crypto"
	"github.com/securevault/securevault-go/internal/model"
	"github.com/securevault/securevault-go/internal/service"
	"github.com/securevault/securevault-go/internal/strength"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	length         int
	noUppercase    bool
	noLowercase    bool
	noNumbers      bool
	noSymbols      bool
	excludeSimilar bool
	count          int
	seed           uint64
	repair         string
	showStrength   bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			repair, ok := crypto.ParseRepairMode(f.repair)
			if !ok {
				return fmt.Errorf("unknown repair mode %q (want overwrite or distinct)", f.repair)
			}

			source := crypto.CryptoSource()
			if cmd.Flags().Changed("seed") {
				source = crypto.NewSeededSource(f.seed)
			}
			svc := service.NewGeneratorService(source, repair, nil)

			req := model.GenerateRequest{
				Length:         &f.length,
				Uppercase:      boolPtr(!f.noUppercase),
				Lowercase:      boolPtr(!f.noLowercase),
				Numbers:        boolPtr(!f.noNumbers),
				Symbols:        boolPtr(!f.noSymbols),
				ExcludeSimilar: boolPtr(f.excludeSimilar),
			}

			out := cmd.OutOrStdout()
			for i := 0; i < f.count; i++ {
				resp, err := svc.Generate(context.Background(), "", req)
				if err != nil {
					return err
				}
				if f.showStrength {
					fmt.Fprintf(out, "%s  %s\n", resp.Password, levelString(resp.Strength))
					continue
				}
				fmt.Fprintln(out, resp.Password)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "l", service.DefaultLength, "password length (8-64)")
	cmd.Flags().BoolVar(&f.noUppercase, "no-uppercase", false, "leave out uppercase letters")
	cmd.Flags().BoolVar(&f.noLowercase, "no-lowercase", false, "leave out lowercase letters")
	cmd.Flags().BoolVar(&f.noNumbers, "no-numbers", false, "leave out digits")
	cmd.Flags().BoolVar(&f.noSymbols, "no-symbols", false, "leave out symbols")
	cmd.Flags().BoolVar(&f.excludeSimilar, "exclude-similar", false, "leave out look-alike characters (iIlL1oO0)")
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "number of passwords to generate")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed a deterministic generator (not for real passwords)")
	cmd.Flags().StringVar(&f.repair, "repair", crypto.RepairOverwrite.String(), "class repair mode: overwrite or distinct")
	cmd.Flags().BoolVarP(&f.showStrength, "show-strength", "s", false, "print the strength rating next to each password")

	return cmd
}

func levelString(r strength.Result) string {
	switch r.Level {
	case strength.LevelStrong:
		return color.GreenString(r.Label)
	case strength.LevelMedium:
		return color.YellowString(r.Label)
	default:
		return color.RedString(r.Label)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
