package service

import (
	"context"
	"testing"

	"clinic-front-desk/internal/infrastructure/store"
)

func TestNextIDMonotonicPerPrefix(t *testing.T) {
	ctx := context.Background()
	seq := NewSequenceService(store.NewStore(store.NewMemoryKV()))

	for i, want := range []string{"pac_1", "pac_2", "pac_3"} {
		got, err := seq.NextID(ctx, PrefixPatient)
		if err != nil {
			t.Fatalf("NextID #%d: %v", i+1, err)
		}
		if got != want {
			t.Fatalf("NextID #%d = %s, want %s", i+1, got, want)
		}
	}

	// A different prefix counts independently.
	got, err := seq.NextID(ctx, PrefixAppointment)
	if err != nil {
		t.Fatalf("NextID: %v", err)
	}
	if got != "apt_1" {
		t.Fatalf("NextID(apt) = %s, want apt_1", got)
	}
}

func TestNextIDSurvivesStoreReload(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()

	seq := NewSequenceService(store.NewStore(kv))
	if _, err := seq.NextID(ctx, PrefixQueue); err != nil {
		t.Fatalf("NextID: %v", err)
	}

	// A fresh store over the same backend keeps counting.
	reloaded := NewSequenceService(store.NewStore(kv))
	got, err := reloaded.NextID(ctx, PrefixQueue)
	if err != nil {
		t.Fatalf("NextID: %v", err)
	}
	if got != "q_2" {
		t.Fatalf("NextID after reload = %s, want q_2", got)
	}
}

func TestNextTicketPerDate(t *testing.T) {
	ctx := context.Background()
	seq := NewSequenceService(store.NewStore(store.NewMemoryKV()))

	for i, want := range []string{"A001", "A002", "A003"} {
		got, err := seq.NextTicket(ctx, "2026-01-05")
		if err != nil {
			t.Fatalf("NextTicket #%d: %v", i+1, err)
		}
		if got != want {
			t.Fatalf("NextTicket #%d = %s, want %s", i+1, got, want)
		}
	}

	// Another date restarts at A001.
	got, err := seq.NextTicket(ctx, "2026-01-06")
	if err != nil {
		t.Fatalf("NextTicket: %v", err)
	}
	if got != "A001" {
		t.Fatalf("NextTicket(other date) = %s, want A001", got)
	}
}

func TestNextTicketGrowsPastThreeDigits(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore(store.NewMemoryKV())
	if err := s.Save(ctx, store.KeyCounters, map[string]int64{"ticket_2026-01-05": 999}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	seq := NewSequenceService(s)
	got, err := seq.NextTicket(ctx, "2026-01-05")
	if err != nil {
		t.Fatalf("NextTicket: %v", err)
	}
	if got != "A1000" {
		t.Fatalf("NextTicket past 999 = %s, want A1000", got)
	}
}
