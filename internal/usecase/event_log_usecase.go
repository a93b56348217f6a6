package usecase

import (
	"context"

	"clinic-front-desk/internal/converter"
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"

	"github.com/sirupsen/logrus"
)

type EventLogUsecase interface {
	GetAllEvents(ctx context.Context) (*dto.EventListResponse, error)
}

type eventLogUsecase struct {
	store     *store.Store
	log       *logrus.Logger
	eventRepo repository.EventRepository
}

func NewEventLogUsecase(
	s *store.Store,
	log *logrus.Logger,
	eventRepo repository.EventRepository,
) EventLogUsecase {
	return &eventLogUsecase{
		store:     s,
		log:       log,
		eventRepo: eventRepo,
	}
}

func (u *eventLogUsecase) GetAllEvents(ctx context.Context) (*dto.EventListResponse, error) {
	events, err := u.eventRepo.FindAll(ctx, u.store)
	if err != nil {
		u.log.Warnf("Failed to find all events: %+v", err)
		return nil, err
	}

	return &dto.EventListResponse{
		Events: converter.EventsToResponses(events),
		Total:  len(events),
	}, nil
}
