package redis

import (
	"errors"
	"testing"
)

// Round trips need a live server; this only covers construction.
func TestNewRequiresClient(t *testing.T) {
	if _, err := New(Config{Prefix: "dh:"}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("expected ErrNilClient, got %v", err)
	}
}
