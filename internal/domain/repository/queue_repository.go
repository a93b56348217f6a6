package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/infrastructure/store"
)

type QueueRepository interface {
	FindAll(ctx context.Context, s *store.Store) ([]entity.QueueEntry, error)
	FindByID(ctx context.Context, s *store.Store, id string) (*entity.QueueEntry, error)
	FindByDate(ctx context.Context, s *store.Store, date string) ([]entity.QueueEntry, error)
	FindActiveByAppointmentID(ctx context.Context, s *store.Store, appointmentID string) (*entity.QueueEntry, error)
	Append(ctx context.Context, s *store.Store, entry *entity.QueueEntry) error
	Update(ctx context.Context, s *store.Store, entry *entity.QueueEntry) error
	Delete(ctx context.Context, s *store.Store, id string) error
}
