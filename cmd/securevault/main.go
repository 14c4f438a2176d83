// Command securevault generates passwords and encrypts text from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "securevault",
		Short: "SecureVault - generate passwords and encrypt text locally.",
		Long: `SecureVault generates random passwords from configurable character classes,
rates password strength, and encrypts or decrypts text with a passphrase.

Usage:
  securevault <command> [flags]

Run 'securevault help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newEncryptCmd())
	root.AddCommand(newDecryptCmd())
	root.AddCommand(newStrengthCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗")+" "+err.Error())
		os.Exit(1)
	}
}
