package service

import (
	"context"
	"time"

	"clinic-front-desk/internal/delivery/http/middleware"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventService records the front-desk activity trail. Recording is
// best-effort: a failed write is logged and never fails the operation
// that triggered it.
type EventService interface {
	Record(ctx context.Context, action, entityName, entityID string, metadata map[string]interface{})
}

type eventService struct {
	store     *store.Store
	log       *logrus.Logger
	eventRepo repository.EventRepository
}

func NewEventService(s *store.Store, log *logrus.Logger, eventRepo repository.EventRepository) EventService {
	return &eventService{
		store:     s,
		log:       log,
		eventRepo: eventRepo,
	}
}

func (s *eventService) Record(ctx context.Context, action, entityName, entityID string, metadata map[string]interface{}) {
	requestID, _ := middleware.GetRequestIDFromContext(ctx)

	event := &entity.Event{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		RequestID: requestID,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}

	err := s.store.Atomic(func() error {
		return s.eventRepo.Append(ctx, s.store, event)
	})
	if err != nil {
		s.log.Warnf("Failed to record event %s for %s/%s: %+v", action, entityName, entityID, err)
	}
}
