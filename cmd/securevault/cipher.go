package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/securevault/securevault-go/internal/crypto"
	"github.com/securevault/securevault-go/internal/model"
	"github.com/securevault/securevault-go/internal/service"
	"github.com/spf13/cobra"
)

type cipherFlags struct {
	password string
	method   string
	format   string
}

func (f *cipherFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "passphrase (required)")
	cmd.Flags().StringVarP(&f.method, "method", "m", string(crypto.MethodAES256), "cipher: AES-256, Triple DES or Blowfish")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(crypto.FormatBase64), "encoding: Base64 or Hex")
	cmd.MarkFlagRequired("password")
}

func newEncryptCmd() *cobra.Command {
	var f cipherFlags

	cmd := &cobra.Command{
		Use:   "encrypt [TEXT|-]",
		Short: "Encrypt text with a passphrase",
		Long:  "Encrypt TEXT with a passphrase. With no argument or '-' the text is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			resp, err := service.NewCipherService(nil).Encrypt(context.Background(), "", model.CipherRequest{
				Text: text, Password: f.password, Method: f.method, Format: f.format,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Output)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newDecryptCmd() *cobra.Command {
	var f cipherFlags

	cmd := &cobra.Command{
		Use:   "decrypt [TEXT|-]",
		Short: "Decrypt text produced by encrypt",
		Long:  "Decrypt TEXT with a passphrase. With no argument or '-' the text is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			resp, err := service.NewCipherService(nil).Decrypt(context.Background(), model.CipherRequest{
				Text: text, Password: f.password, Method: f.method, Format: f.format,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Output)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

// readInput returns the positional text, or stdin without its trailing newline.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
