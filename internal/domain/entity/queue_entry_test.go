package entity

import "testing"

func TestQueueStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to QueueStatus
		want     bool
	}{
		{QueueStatusWaiting, QueueStatusCalled, true},
		{QueueStatusWaiting, QueueStatusNoShow, true},
		{QueueStatusWaiting, QueueStatusInService, false},
		{QueueStatusWaiting, QueueStatusFinished, false},
		{QueueStatusCalled, QueueStatusInService, true},
		{QueueStatusCalled, QueueStatusWaiting, false},
		{QueueStatusCalled, QueueStatusNoShow, false},
		{QueueStatusInService, QueueStatusFinished, true},
		{QueueStatusInService, QueueStatusCalled, false},
		{QueueStatusFinished, QueueStatusWaiting, false},
		{QueueStatusNoShow, QueueStatusCalled, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestQueueEntryIsActive(t *testing.T) {
	active := []QueueStatus{QueueStatusWaiting, QueueStatusCalled, QueueStatusInService}
	for _, s := range active {
		e := QueueEntry{Status: s}
		if !e.IsActive() {
			t.Errorf("%s should be active", s)
		}
	}
	for _, s := range []QueueStatus{QueueStatusFinished, QueueStatusNoShow} {
		e := QueueEntry{Status: s}
		if e.IsActive() {
			t.Errorf("%s should not be active", s)
		}
	}
}
