package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	domainRepo "clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
)

type eventRepository struct{}

func NewEventRepository() domainRepo.EventRepository {
	return &eventRepository{}
}

func (r *eventRepository) FindAll(ctx context.Context, s *store.Store) ([]entity.Event, error) {
	var events []entity.Event
	if err := s.Load(ctx, store.KeyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Append(ctx context.Context, s *store.Store, event *entity.Event) error {
	events, err := r.FindAll(ctx, s)
	if err != nil {
		return err
	}
	events = append(events, *event)
	return s.Save(ctx, store.KeyEvents, events)
}
