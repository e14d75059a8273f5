// Package store implements the client's durable cache tier: a quota-bounded
// key/value database with JSON (de)serialization at the boundary.
//
// Reads never fail on a corrupt or missing value; the caller keeps its
// fallback. Writes that hit the quota are recovered by pruning non-essential
// keys and retrying once; if that still fails the value is kept in memory so
// the current process observes its own write.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/wheelmarket/wheelmarket/internal/logging"
)

type Store struct {
	kv  KV
	log logging.Logger

	mu sync.Mutex
	// mem overlays the durable tier with values whose persistence failed
	// after prune-and-retry. Overlay entries win over durable ones.
	mem map[string][]byte
}

func New(kv KV, log logging.Logger) *Store {
	return &Store{kv: kv, log: log, mem: make(map[string][]byte)}
}

// Load reads key into dest. It returns false — leaving dest untouched — when
// the key is absent, unreadable, or holds corrupt JSON; the caller then uses
// its own fallback.
func (s *Store) Load(ctx context.Context, key string, dest any) bool {
	s.mu.Lock()
	raw, inMem := s.mem[key]
	s.mu.Unlock()

	if !inMem {
		b, err := s.kv.Get(ctx, key)
		if err != nil {
			s.log.Warn(ctx, "cache read failed", "key", key, "error", err)
			return false
		}
		if b == nil {
			return false
		}
		raw = b
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn(ctx, "corrupt cache entry ignored", "key", key, "error", err)
		return false
	}
	return true
}

// Save serializes v under key. Quota exhaustion is absorbed: non-essential
// keys are pruned and the write retried once; a still-failing write parks the
// value in memory and Save reports success. Only a serialization problem is
// returned as an error.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding cache[%s]: %w", key, err)
	}

	if err := s.setDurable(ctx, key, raw); err != nil {
		s.mu.Lock()
		s.mem[key] = raw
		s.mu.Unlock()
		s.log.Warn(ctx, "cache write degraded to memory only", "key", key, "error", err)
		return nil
	}

	s.mu.Lock()
	delete(s.mem, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) setDurable(ctx context.Context, key string, raw []byte) error {
	err := s.kv.Set(ctx, key, raw)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrQuotaExceeded) {
		return err
	}

	s.log.Warn(ctx, "cache quota hit, pruning", "key", key)
	s.prune(ctx, key)

	return s.kv.Set(ctx, key, raw)
}

// prune deletes every non-essential key except the one being written.
func (s *Store) prune(ctx context.Context, keep string) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		s.log.Warn(ctx, "cache prune failed", "error", err)
		return
	}
	for _, k := range keys {
		if k == keep || essential(k) {
			continue
		}
		if err := s.kv.Delete(ctx, k); err != nil {
			s.log.Warn(ctx, "cache prune delete failed", "key", k, "error", err)
		}
	}
}

// Delete removes key from both tiers. Failures are logged, not returned:
// a leftover cache entry is harmless.
func (s *Store) Delete(ctx context.Context, key string) {
	s.mu.Lock()
	delete(s.mem, key)
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Warn(ctx, "cache delete failed", "key", key, "error", err)
	}
}
