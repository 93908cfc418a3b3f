package zerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/dhwire"
)

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	l.Debug("hidden", dhwire.Fields{"k": 1})
	l.Error("provider failed", dhwire.Fields{"op": "set", "err": errors.New("timeout")})

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["level"] != "error" || rec["op"] != "set" || rec["err"] != "timeout" || rec["message"] != "provider failed" {
		t.Fatalf("unexpected record %v", rec)
	}
}
