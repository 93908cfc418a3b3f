// Package cmd implements the dhwire command line: Base64 and TLV encoding
// over stdin/stdout.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/dhwire/b64"
)

type app struct {
	verbose bool
	log     *zap.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "dhwire",
		Short: "Base64 and TLV encoder/decoder",
		Long: `dhwire encodes and decodes the Base64 text form and the
type-length-value binary form used for descriptor exchange.

Input is read from stdin and output written to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(a.newB64Cmd(), a.newTLVCmd())
	return root
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core).Named("dhwire")
}

// readInput reads all of stdin and trims surrounding whitespace, which
// shells and editors tend to add to text input.
func readInput(cmd *cobra.Command) (string, error) {
	b, err := readAll(cmd)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(b)), nil
}

func readAll(cmd *cobra.Command) ([]byte, error) {
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

func writeText(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

// stripSpace removes interior whitespace so wrapped Base64 and hex dumps are
// accepted.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func decodeBase64(s string) ([]byte, error) {
	return b64.Decode(stripSpace(s))
}
