package service

import (
	"context"
	"fmt"

	"clinic-front-desk/internal/infrastructure/store"
)

// ID prefixes for the record kinds that use counter-based identifiers.
const (
	PrefixProfessional = "pro"
	PrefixPatient      = "pac"
	PrefixAppointment  = "apt"
	PrefixQueue        = "q"
	PrefixFeedback     = "fb"
)

// ticketKeyPrefix scopes ticket counters per calendar date.
const ticketKeyPrefix = "ticket_"

// SequenceService hands out record ids and per-day queue tickets from the
// counters collection. Counters only grow and persist across restarts.
//
// Callers are expected to hold the store's writer lock (Store.Atomic); the
// service itself performs a plain read-increment-write.
type SequenceService struct {
	store *store.Store
}

func NewSequenceService(s *store.Store) *SequenceService {
	return &SequenceService{store: s}
}

// NextID returns "<prefix>_<n>" with n unique within the prefix for the
// lifetime of the store.
func (s *SequenceService) NextID(ctx context.Context, prefix string) (string, error) {
	n, err := s.increment(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%d", prefix, n), nil
}

// NextTicket returns the next queue ticket for the given date (YYYY-MM-DD):
// A001, A002, ... Each date counts independently from A001. Past 999 the
// number simply grows to four digits.
func (s *SequenceService) NextTicket(ctx context.Context, date string) (string, error) {
	n, err := s.increment(ctx, ticketKeyPrefix+date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("A%03d", n), nil
}

func (s *SequenceService) increment(ctx context.Context, key string) (int64, error) {
	counters := map[string]int64{}
	if err := s.store.Load(ctx, store.KeyCounters, &counters); err != nil {
		return 0, err
	}
	counters[key]++
	if err := s.store.Save(ctx, store.KeyCounters, counters); err != nil {
		return 0, err
	}
	return counters[key], nil
}
