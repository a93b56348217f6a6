package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	domainRepo "clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
)

type queueRepository struct{}

func NewQueueRepository() domainRepo.QueueRepository {
	return &queueRepository{}
}

func (r *queueRepository) FindAll(ctx context.Context, s *store.Store) ([]entity.QueueEntry, error) {
	var entries []entity.QueueEntry
	if err := s.Load(ctx, store.KeyQueue, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *queueRepository) FindByID(ctx context.Context, s *store.Store, id string) (*entity.QueueEntry, error) {
	entries, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			e := entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *queueRepository) FindByDate(ctx context.Context, s *store.Store, date string) ([]entity.QueueEntry, error) {
	entries, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.QueueEntry, 0, len(entries))
	for _, e := range entries {
		if e.CreatedAt.Format("2006-01-02") == date {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// FindActiveByAppointmentID returns the entry still on the board for the
// appointment, if any. Finished and no-show entries do not count.
func (r *queueRepository) FindActiveByAppointmentID(ctx context.Context, s *store.Store, appointmentID string) (*entity.QueueEntry, error) {
	entries, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].AppointmentID == appointmentID && entries[i].IsActive() {
			e := entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *queueRepository) Append(ctx context.Context, s *store.Store, entry *entity.QueueEntry) error {
	entries, err := r.FindAll(ctx, s)
	if err != nil {
		return err
	}
	entries = append(entries, *entry)
	return s.Save(ctx, store.KeyQueue, entries)
}

func (r *queueRepository) Update(ctx context.Context, s *store.Store, entry *entity.QueueEntry) error {
	entries, err := r.FindAll(ctx, s)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = *entry
			break
		}
	}
	return s.Save(ctx, store.KeyQueue, entries)
}

// Delete removes the entry; removing an unknown id is a no-op.
func (r *queueRepository) Delete(ctx context.Context, s *store.Store, id string) error {
	entries, err := r.FindAll(ctx, s)
	if err != nil {
		return err
	}
	kept := make([]entity.QueueEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.Save(ctx, store.KeyQueue, kept)
}
