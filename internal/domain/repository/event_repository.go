package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/infrastructure/store"
)

type EventRepository interface {
	FindAll(ctx context.Context, s *store.Store) ([]entity.Event, error)
	Append(ctx context.Context, s *store.Store, event *entity.Event) error
}
