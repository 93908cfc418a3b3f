package dhwire

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/unkn0wn-root/dhwire/b64"
	"github.com/unkn0wn-root/dhwire/codec"
	"github.com/unkn0wn-root/dhwire/internal/wire"
	pr "github.com/unkn0wn-root/dhwire/provider"
)

type store[V any] struct {
	ns             string
	provider       pr.Provider
	codec          codec.Codec[V]
	codecName      string
	log            Logger
	hooks          Hooks
	enabled        bool
	textSafe       bool
	defaultTTL     time.Duration
	computeSetCost SetCostFunc
	now            func() time.Time
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("dhwire: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("dhwire: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("dhwire: namespace is required")
	}

	opts = opts.withDefaults()
	s := &store[V]{
		ns:             opts.Namespace,
		provider:       opts.Provider,
		codec:          opts.Codec,
		codecName:      codec.NameOf(opts.Codec),
		log:            opts.Logger,
		hooks:          opts.Hooks,
		enabled:        !opts.Disabled,
		textSafe:       opts.TextSafe,
		defaultTTL:     opts.DefaultTTL,
		computeSetCost: opts.ComputeSetCost,
		now:            opts.Now,
	}
	return s, nil
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	if s.provider != nil {
		return s.provider.Close(ctx)
	}
	return nil
}

func (s *store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	v, _, ok, err := s.GetEntry(ctx, key)
	return v, ok, err
}

func (s *store[V]) GetEntry(ctx context.Context, key string) (V, time.Time, bool, error) {
	var zero V
	if !s.enabled {
		return zero, time.Time{}, false, nil
	}
	k := s.storageKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		s.hooks.ProviderError("get", k, err)
		return zero, time.Time{}, false, &EntryError{Key: key, Op: "get", Err: err}
	}
	if !ok {
		return zero, time.Time{}, false, nil
	}

	if s.textSafe {
		raw, err = b64.Decode(string(raw))
		if err != nil {
			s.reject(ctx, k, ReasonTextDecode, err)
			return zero, time.Time{}, false, nil
		}
	}
	e, err := wire.DecodeEntry(raw)
	if err != nil {
		s.reject(ctx, k, ReasonCorrupt, err)
		return zero, time.Time{}, false, nil
	}
	if e.Codec != "" && s.codecName != "" && e.Codec != s.codecName {
		s.reject(ctx, k, ReasonCodecMismatch, fmt.Errorf("stored with %q, reading with %q", e.Codec, s.codecName))
		return zero, time.Time{}, false, nil
	}
	v, err := s.codec.Decode(e.Payload)
	if err != nil {
		s.reject(ctx, k, ReasonValueDecode, err)
		return zero, time.Time{}, false, nil
	}
	var storedAt time.Time
	if e.StoredAt != 0 {
		storedAt = time.Unix(0, e.StoredAt)
	}
	return v, storedAt, true, nil
}

func (s *store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, err := s.codec.Encode(value)
	if err != nil {
		return &EntryError{Key: key, Op: "encode", Err: err}
	}
	raw, err := wire.EncodeEntry(wire.Entry{
		Codec:    s.codecName,
		StoredAt: s.now().UnixNano(),
		Payload:  payload,
	})
	if err != nil {
		return &EntryError{Key: key, Op: "encode", Err: err}
	}
	if s.textSafe {
		raw = []byte(b64.Encode(raw))
	}

	k := s.storageKey(key)
	ok, err := s.provider.Set(ctx, k, raw, s.computeSetCost(k, raw), ttl)
	if err != nil {
		s.hooks.ProviderError("set", k, err)
		return &EntryError{Key: key, Op: "set", Err: err}
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("set rejected by provider", entryFields(s.ns, key, len(raw)))
	}
	return nil
}

func (s *store[V]) Delete(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	k := s.storageKey(key)
	if err := s.provider.Del(ctx, k); err != nil {
		s.hooks.ProviderError("del", k, err)
		return &EntryError{Key: key, Op: "del", Err: err}
	}
	return nil
}

// reject drops an undecodable entry so the next Set starts clean.
func (s *store[V]) reject(ctx context.Context, storageKey, reason string, cause error) {
	s.hooks.EntryRejected(storageKey, reason)
	f := entryFields(s.ns, strings.TrimPrefix(storageKey, s.ns+":"), -1)
	f["reason"] = reason
	f["err"] = cause
	s.log.Warn("dropping undecodable entry", f)
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.hooks.ProviderError("del", storageKey, err)
	}
}

func (s *store[V]) storageKey(userKey string) string {
	// isolate by namespace
	return s.ns + ":" + userKey
}
