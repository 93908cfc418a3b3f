package dhwire

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/dhwire/codec"
	pr "github.com/unkn0wn-root/dhwire/provider"
)

type SetCostFunc func(key string, raw []byte) int64

// Store persists values of type V on a Provider. Serialization is handled by
// a pluggable Codec[V]; every entry is wrapped in a versioned TLV envelope.
type Store[V any] interface {
	Enabled() bool
	Close(context.Context) error

	Get(ctx context.Context, key string) (v V, ok bool, err error)
	// GetEntry is Get plus the entry's write time (zero if the entry has none).
	GetEntry(ctx context.Context, key string) (v V, storedAt time.Time, ok bool, err error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Options tune the behavior of a Store.
// Namespace, Provider and Codec are required; others have sensible defaults.
type Options[V any] struct {
	// Required
	Namespace string // logical namespace to avoid collisions. e.g. "descriptor", "command"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	DefaultTTL     time.Duration // 0 => 10m
	Disabled       bool          // default false (enabled)
	ComputeSetCost SetCostFunc   // default 1
	// TextSafe stores entries as Base64 text, for providers or tooling that
	// only handle printable values.
	TextSafe bool
	// Now is used to stamp entries; defaults to time.Now.
	Now func() time.Time
}

func New[V any](opts Options[V]) (Store[V], error) {
	s, err := newStore[V](opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}
