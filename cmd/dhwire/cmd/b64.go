package cmd

import (
	"bytes"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/dhwire/b64"
)

var errInvalid = errors.New("invalid base64")

func (a *app) newB64Cmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "b64",
		Short: "Encode, decode or validate Base64",
	}

	var trim bool
	encode := &cobra.Command{
		Use:   "encode",
		Short: "Encode stdin as Base64",
		Long: `Encode stdin as Base64.

Input bytes are encoded exactly as read; pass --trim to drop leading and
trailing whitespace from text input first.

Example:
  dhwire b64 encode < blob.bin
  echo 'Man' | dhwire b64 encode --trim`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAll(cmd)
			if err != nil {
				return err
			}
			if trim {
				data = bytes.TrimSpace(data)
			}
			a.log.Debug("encode", zap.Int("bytes", len(data)))
			return writeText(cmd, b64.Encode(data))
		},
	}
	encode.Flags().BoolVar(&trim, "trim", false, "Trim surrounding whitespace from the input before encoding")

	decode := &cobra.Command{
		Use:   "decode",
		Short: "Decode Base64 from stdin to raw bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd)
			if err != nil {
				return err
			}
			out, err := decodeBase64(s)
			if err != nil {
				a.log.Warn("decode failed", zap.Error(err), zap.Int("chars", len(s)))
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check that stdin is well-formed Base64",
		Long: `Check that stdin is well-formed Base64.

Only the length and the character set are checked; padding placement is not.
Exits non-zero when the input is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd)
			if err != nil {
				return err
			}
			if !b64.IsValid(stripSpace(s)) {
				if err := writeText(cmd, "invalid"); err != nil {
					return err
				}
				return errInvalid
			}
			return writeText(cmd, "valid")
		},
	}

	c.AddCommand(encode, decode, validate)
	return c
}
