package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/dhwire/b64"
	"github.com/unkn0wn-root/dhwire/tlv"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestB64Command(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		out, _, err := run(t, "Man", "b64", "encode")
		require.NoError(t, err)
		assert.Equal(t, "TWFu\n", out)
	})

	t.Run("encode keeps whitespace bytes", func(t *testing.T) {
		out, _, err := run(t, "Ma\n", "b64", "encode")
		require.NoError(t, err)
		assert.Equal(t, "TWEK\n", out)
	})

	t.Run("encode trim", func(t *testing.T) {
		out, _, err := run(t, " Ma\n", "b64", "encode", "--trim")
		require.NoError(t, err)
		assert.Equal(t, "TWE=\n", out)
	})

	t.Run("encode decode round trip", func(t *testing.T) {
		for _, payload := range []string{"a\n", " \tpayload \r\n", "\x00\x0b\x0c", ""} {
			encoded, _, err := run(t, payload, "b64", "encode")
			require.NoError(t, err)
			decoded, _, err := run(t, encoded, "b64", "decode")
			require.NoError(t, err)
			assert.Equal(t, payload, decoded, "payload %q", payload)
		}
	})

	t.Run("decode", func(t *testing.T) {
		out, _, err := run(t, "TWFu\n", "b64", "decode")
		require.NoError(t, err)
		assert.Equal(t, "Man", out)
	})

	t.Run("decode wrapped input", func(t *testing.T) {
		out, _, err := run(t, "TWFu\nTWE=\n", "b64", "decode")
		require.NoError(t, err)
		assert.Equal(t, "ManMa", out)
	})

	t.Run("decode bad length", func(t *testing.T) {
		_, stderr, err := run(t, "abc", "b64", "decode")
		assert.ErrorIs(t, err, b64.ErrLength)
		assert.Contains(t, stderr, "decode failed")
	})

	t.Run("validate", func(t *testing.T) {
		out, _, err := run(t, "TWE=", "b64", "validate")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)

		out, _, err = run(t, "TW@=", "b64", "validate")
		assert.ErrorIs(t, err, errInvalid)
		assert.Equal(t, "invalid\n", out)
	})
}

func TestTLVCommand(t *testing.T) {
	t.Run("encode hex", func(t *testing.T) {
		out, _, err := run(t, "", "tlv", "encode", "1:4142")
		require.NoError(t, err)
		assert.Equal(t, "0001000000024142\n", out)
	})

	t.Run("encode base64", func(t *testing.T) {
		out, _, err := run(t, "", "tlv", "encode", "--base64", "1:4142")
		require.NoError(t, err)
		assert.Equal(t, "AAEAAAACQUI=\n", out)
	})

	t.Run("encode hex type and empty value", func(t *testing.T) {
		out, _, err := run(t, "", "tlv", "encode", "0x10:", "2:ff")
		require.NoError(t, err)
		assert.Equal(t, "001000000000"+"000200000001ff\n", out)
	})

	t.Run("encode bad argument", func(t *testing.T) {
		for _, arg := range []string{"1", "70000:00", "x:00", "1:zz"} {
			_, _, err := run(t, "", "tlv", "encode", arg)
			assert.Error(t, err, arg)
		}
	})

	t.Run("decode", func(t *testing.T) {
		out, _, err := run(t, "0001000000024142 000300000000\n", "tlv", "decode")
		require.NoError(t, err)
		assert.Equal(t, "1 2 4142\n3 0 \n", out)
	})

	t.Run("decode base64", func(t *testing.T) {
		out, _, err := run(t, "AAEAAAACQUI=", "tlv", "decode", "--base64")
		require.NoError(t, err)
		assert.Equal(t, "1 2 4142\n", out)
	})

	t.Run("decode truncated", func(t *testing.T) {
		_, stderr, err := run(t, "00010000000541", "tlv", "decode")
		assert.ErrorIs(t, err, tlv.ErrInvalidLength)
		assert.Contains(t, stderr, "-10001")
	})

	t.Run("trailing bytes", func(t *testing.T) {
		out, _, err := run(t, "00010000000241420000", "tlv", "decode")
		require.NoError(t, err)
		assert.Equal(t, "1 2 4142\n", out)

		_, _, err = run(t, "00010000000241420000", "tlv", "decode", "--strict")
		assert.ErrorIs(t, err, tlv.ErrTrailingBytes)
	})
}
