package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Collection keys. One key per collection, the whole collection serialized
// as a single JSON value.
const (
	KeyPatients      = "patients"
	KeyProfessionals = "professionals"
	KeyAppointments  = "appointments"
	KeyQueue         = "queue"
	KeyFeedbacks     = "feedbacks"
	KeyEvents        = "events"
	KeyCounters      = "counters"
)

// ErrCorrupted is returned when a stored collection cannot be decoded.
// Callers decide whether to surface or re-initialize; the store never
// silently resets data.
var ErrCorrupted = errors.New("stored collection is corrupted")

// KV is the minimal contract a storage backend must satisfy.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store exposes the named collections over a KV backend.
//
// Every mutating flow (read-modify-write of one or more collections) must run
// inside Atomic, which serializes writers within the process. Plain reads are
// point-in-time snapshots and need no locking.
type Store struct {
	kv KV
	mu sync.Mutex
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Atomic runs fn under the store's single-writer lock.
func (s *Store) Atomic(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Load decodes the collection under key into out. A missing key leaves out
// untouched, so callers get their zero value (empty slice or map).
func (s *Store) Load(ctx context.Context, key string, out interface{}) error {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupted, key, err)
	}
	return nil
}

// Save serializes value as the whole collection under key.
func (s *Store) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
