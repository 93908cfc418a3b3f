// Package pebble is a persistent provider on top of cockroachdb/pebble.
//
// Pebble has no native expiry, so each stored value is prefixed with an
// 8-byte big-endian deadline (unix nanos, 0 = none). Get strips the prefix,
// which keeps the provider byte-for-byte transparent, and lazily deletes
// expired keys.
package pebble

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	pb "github.com/cockroachdb/pebble"

	pr "github.com/unkn0wn-root/dhwire/provider"
)

const deadlineLen = 8

var (
	ErrNoDB      = errors.New("pebble provider: Dir or DB required")
	errShortBlob = errors.New("pebble provider: value shorter than deadline prefix")
)

type Provider struct {
	db      *pb.DB
	write   *pb.WriteOptions
	ownsDB  bool
	nowFunc func() time.Time
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	// Dir opens (or creates) a database at this path. Ignored if DB is set.
	Dir     string
	Options *pb.Options
	// DB reuses an already open database; Close leaves it open.
	DB *pb.DB
	// Sync fsyncs every write.
	Sync bool
}

func New(cfg Config) (*Provider, error) {
	p := &Provider{write: pb.NoSync, nowFunc: time.Now}
	if cfg.Sync {
		p.write = pb.Sync
	}
	switch {
	case cfg.DB != nil:
		p.db = cfg.DB
	case cfg.Dir != "":
		db, err := pb.Open(cfg.Dir, cfg.Options)
		if err != nil {
			return nil, err
		}
		p.db, p.ownsDB = db, true
	default:
		return nil, ErrNoDB
	}
	return p, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, closer, err := p.db.Get([]byte(key))
	if errors.Is(err, pb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()

	if len(v) < deadlineLen {
		return nil, false, errShortBlob
	}
	if d := int64(binary.BigEndian.Uint64(v[:deadlineLen])); d != 0 && p.nowFunc().UnixNano() >= d {
		if err := p.db.Delete([]byte(key), p.write); err != nil {
			return nil, false, fmt.Errorf("pebble provider: drop expired key: %w", err)
		}
		return nil, false, nil
	}
	// v is only valid until closer.Close
	out := make([]byte, len(v)-deadlineLen)
	copy(out, v[deadlineLen:])
	return out, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var deadline int64
	if ttl > 0 {
		deadline = p.nowFunc().Add(ttl).UnixNano()
	}
	buf := make([]byte, deadlineLen, deadlineLen+len(value))
	binary.BigEndian.PutUint64(buf, uint64(deadline))
	buf = append(buf, value...)
	if err := p.db.Set([]byte(key), buf, p.write); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	return p.db.Delete([]byte(key), p.write)
}

func (p *Provider) Close(_ context.Context) error {
	if !p.ownsDB {
		return nil
	}
	return p.db.Close()
}
