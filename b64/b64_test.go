package b64

import (
	"bytes"
	"encoding/base64"
	"errors"
	"math/rand"
	"testing"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	return b
}

func TestEncodeKnownVectors(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{}, ""},
		{[]byte("M"), "TQ=="},
		{[]byte("Ma"), "TWE="},
		{[]byte{0x4D, 0x61, 0x6E}, "TWFu"},
		{[]byte("foobar"), "Zm9vYmFy"},
		{[]byte{0xFB, 0xFF}, "+/8="},
		{[]byte{0x00, 0x00, 0x00}, "AAAA"},
	}
	for _, tc := range cases {
		if got := Encode(tc.in); got != tc.want {
			t.Fatalf("Encode(%x) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeKnownVectors(t *testing.T) {
	if got := mustDecode(t, "TWFu"); !bytes.Equal(got, []byte{0x4D, 0x61, 0x6E}) {
		t.Fatalf("Decode(TWFu) = %x", got)
	}
	if got := mustDecode(t, "TQ=="); !bytes.Equal(got, []byte("M")) {
		t.Fatalf("Decode(TQ==) = %x", got)
	}
	if got := mustDecode(t, "TWE="); !bytes.Equal(got, []byte("Ma")) {
		t.Fatalf("Decode(TWE=) = %x", got)
	}
	got := mustDecode(t, "")
	if got == nil || len(got) != 0 {
		t.Fatalf("Decode(\"\") should be empty non-nil, got %#v", got)
	}
}

func TestRoundTripMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 300; n++ {
		b := make([]byte, n)
		r.Read(b)

		enc := Encode(b)
		if want := base64.StdEncoding.EncodeToString(b); enc != want {
			t.Fatalf("n=%d: Encode mismatch with stdlib: got %q want %q", n, enc, want)
		}
		if len(enc) != EncodedLen(n) {
			t.Fatalf("n=%d: EncodedLen=%d actual=%d", n, EncodedLen(n), len(enc))
		}
		dec := mustDecode(t, enc)
		if !bytes.Equal(dec, b) {
			t.Fatalf("n=%d: round trip mismatch", n)
		}
	}
}

func TestDecodeRejectsBadLength(t *testing.T) {
	for _, s := range []string{"A", "AB", "ABC", "ABCDE"} {
		if _, err := Decode(s); !errors.Is(err, ErrLength) {
			t.Fatalf("Decode(%q): expected ErrLength, got %v", s, err)
		}
	}
}

func TestDecodeRejectsBadCharacter(t *testing.T) {
	_, err := Decode("TW-u")
	if !errors.Is(err, ErrCharacter) {
		t.Fatalf("expected ErrCharacter, got %v", err)
	}
	var ce *CorruptInputError
	if !errors.As(err, &ce) || ce.Offset != 2 || ce.Char != '-' {
		t.Fatalf("unexpected corrupt input detail: %#v", err)
	}

	if _, err := Decode("TWFu\nTWFu"); err == nil {
		t.Fatalf("line breaks must be rejected")
	}
}

func TestDecodeLenientPadding(t *testing.T) {
	// '=' in the first two slots still decodes as zero bits.
	got := mustDecode(t, "=AAA")
	if !bytes.Equal(got, []byte{0, 0, 0}) {
		t.Fatalf("Decode(=AAA) = %x", got)
	}
	// '=' mid-stream decodes instead of failing.
	got = mustDecode(t, "TQ==TWFu")
	if !bytes.Equal(got, []byte{'M', 'M', 'a', 'n'}) {
		t.Fatalf("Decode(TQ==TWFu) = %x", got)
	}
	// slot 3 padding alone suppresses only the middle byte.
	got = mustDecode(t, "TW=u")
	if len(got) != 2 {
		t.Fatalf("Decode(TW=u) len = %d want 2", len(got))
	}
}

func TestDecodeOrEmpty(t *testing.T) {
	if got := DecodeOrEmpty("bad!"); len(got) != 0 {
		t.Fatalf("expected empty on error, got %x", got)
	}
	if got := DecodeOrEmpty("TWFu"); string(got) != "Man" {
		t.Fatalf("DecodeOrEmpty(TWFu) = %q", got)
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"TWFu", true},
		{"TQ==", true},
		{"TWF", false},
		{"TW-u", false},
		{"====", true}, // placement is not checked
		{"=AAA", true},
		{"+/+/", true},
	}
	for _, tc := range cases {
		if got := IsValid(tc.in); got != tc.want {
			t.Fatalf("IsValid(%q) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidDoesNotImplyCanonical(t *testing.T) {
	// "TR==" carries non-zero unused bits; it is accepted and decodes to the
	// same byte as the canonical "TQ==".
	a, b := "TQ==", "TR=="
	if !IsValid(a) || !IsValid(b) {
		t.Fatalf("expected both inputs to be valid")
	}
	da, db := mustDecode(t, a), mustDecode(t, b)
	if !bytes.Equal(da, db) {
		t.Fatalf("decoded mismatch: %x vs %x", da, db)
	}
	if Encode(db) != a {
		t.Fatalf("re-encoding %q should give the canonical %q", b, a)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add("TWFu")
	f.Add("TQ==")
	f.Add("=A=A")
	f.Fuzz(func(t *testing.T, s string) {
		b, err := Decode(s)
		if err != nil {
			return
		}
		if !IsValid(s) && s != "" {
			t.Fatalf("Decode accepted %q but IsValid rejected it", s)
		}
		if len(b) > DecodedLen(len(s)) {
			t.Fatalf("decoded %d bytes from %d chars", len(b), len(s))
		}
	})
}
