package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/dhwire/b64"
	"github.com/unkn0wn-root/dhwire/tlv"
)

func (a *app) newTLVCmd() *cobra.Command {
	var useBase64 bool

	c := &cobra.Command{
		Use:   "tlv",
		Short: "Encode or decode type-length-value lists",
	}
	c.PersistentFlags().BoolVar(&useBase64, "base64", false, "Use Base64 instead of hex for the binary form")

	encode := &cobra.Command{
		Use:   "encode TYPE:HEX...",
		Short: "Encode items into the binary form",
		Long: `Encode items into the binary form.

Each argument is TYPE:HEX where TYPE is a 16-bit number (decimal or 0x-prefixed)
and HEX is the value. An empty HEX encodes an empty value.

Example:
  dhwire tlv encode 1:4142 0x3:`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make(tlv.List, 0, len(args))
			for _, arg := range args {
				it, err := parseItem(arg)
				if err != nil {
					return err
				}
				items = append(items, it)
			}
			if err := items.Validate(); err != nil {
				return err
			}
			out := tlv.Encode(items)
			a.log.Debug("encoded", zap.Int("items", len(items)), zap.Int("bytes", len(out)))
			if useBase64 {
				return writeText(cmd, b64.Encode(out))
			}
			return writeText(cmd, hex.EncodeToString(out))
		},
	}

	var rejectTrailing bool
	decode := &cobra.Command{
		Use:   "decode",
		Short: "Decode the binary form read from stdin",
		Long: `Decode the binary form read from stdin.

Prints one line per item: type, value length, value as hex.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd)
			if err != nil {
				return err
			}
			var raw []byte
			if useBase64 {
				raw, err = decodeBase64(s)
			} else {
				raw, err = hex.DecodeString(stripSpace(s))
			}
			if err != nil {
				return fmt.Errorf("input: %w", err)
			}

			dec := tlv.Decoder{RejectTrailing: rejectTrailing}
			items, err := dec.Decode(raw)
			if err != nil {
				a.log.Warn("decode failed", zap.Error(err), zap.Int32("code", tlv.Code(err)), zap.Int("bytes", len(raw)))
				return err
			}
			w := cmd.OutOrStdout()
			for _, it := range items {
				if _, err := fmt.Fprintf(w, "%d %d %x\n", it.Type, len(it.Value), it.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}
	decode.Flags().BoolVar(&rejectTrailing, "strict", false, "Fail on trailing bytes shorter than an item header")

	c.AddCommand(encode, decode)
	return c
}

func parseItem(arg string) (tlv.Item, error) {
	typ, val, ok := strings.Cut(arg, ":")
	if !ok {
		return tlv.Item{}, fmt.Errorf("item %q: want TYPE:HEX", arg)
	}
	t, err := strconv.ParseUint(typ, 0, 16)
	if err != nil {
		return tlv.Item{}, fmt.Errorf("item %q: type: %w", arg, err)
	}
	v, err := hex.DecodeString(val)
	if err != nil {
		return tlv.Item{}, fmt.Errorf("item %q: value: %w", arg, err)
	}
	return tlv.Item{Type: uint16(t), Value: v}, nil
}
