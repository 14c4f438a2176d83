package main

import (
	"fmt"

	"github.com/securevault/securevault-go/internal/strength"
	"github.com/spf13/cobra"
)

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength PASSWORD",
		Short: "Rate the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := strength.Evaluate(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s (score %d/4)\n", levelString(r), r.Score)
			return nil
		},
	}
}
