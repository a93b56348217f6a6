package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-front-desk/internal/converter"
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
	"clinic-front-desk/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueEntryNotFound = errors.New("queue entry not found")
	ErrAlreadyCheckedIn   = errors.New("appointment already has an active queue entry")
	ErrInvalidQueueStatus = errors.New("invalid queue status")
	ErrInvalidTransition  = errors.New("invalid queue status transition")
)

type QueueUsecase interface {
	CheckIn(ctx context.Context, appointmentID string) (*dto.QueueEntryResponse, error)
	SetQueueStatus(ctx context.Context, id string, status string) (*dto.QueueEntryResponse, error)
	RemoveFromQueue(ctx context.Context, id string) error
	GetQueue(ctx context.Context, date string) (*dto.QueueListResponse, error)
}

type queueUsecase struct {
	store           *store.Store
	log             *logrus.Logger
	queueRepo       repository.QueueRepository
	appointmentRepo repository.AppointmentRepository
	sequence        *service.SequenceService
	events          service.EventService
}

func NewQueueUsecase(
	s *store.Store,
	log *logrus.Logger,
	queueRepo repository.QueueRepository,
	appointmentRepo repository.AppointmentRepository,
	sequence *service.SequenceService,
	events service.EventService,
) QueueUsecase {
	return &queueUsecase{
		store:           s,
		log:             log,
		queueRepo:       queueRepo,
		appointmentRepo: appointmentRepo,
		sequence:        sequence,
		events:          events,
	}
}

// CheckIn converts a scheduled appointment into a waiting queue entry with a
// ticket scoped to the appointment's date, and marks the appointment as
// checked in. A second check-in while an entry is still on the board is a
// conflict.
func (u *queueUsecase) CheckIn(ctx context.Context, appointmentID string) (*dto.QueueEntryResponse, error) {
	var entry *entity.QueueEntry

	err := u.store.Atomic(func() error {
		appointment, err := u.appointmentRepo.FindByID(ctx, u.store, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		active, err := u.queueRepo.FindActiveByAppointmentID(ctx, u.store, appointmentID)
		if err != nil {
			return err
		}
		if active != nil {
			return ErrAlreadyCheckedIn
		}

		ticket, err := u.sequence.NextTicket(ctx, appointment.Date)
		if err != nil {
			return err
		}
		id, err := u.sequence.NextID(ctx, service.PrefixQueue)
		if err != nil {
			return err
		}

		entry = &entity.QueueEntry{
			ID:             id,
			Ticket:         ticket,
			AppointmentID:  appointment.ID,
			PatientID:      appointment.PatientID,
			ProfessionalID: appointment.ProfessionalID,
			Status:         entity.QueueStatusWaiting,
			CreatedAt:      time.Now().UTC(),
		}
		if err := u.queueRepo.Append(ctx, u.store, entry); err != nil {
			return err
		}

		appointment.Status = entity.AppointmentStatusCheckedIn
		return u.appointmentRepo.Update(ctx, u.store, appointment)
	})
	if err != nil {
		if !errors.Is(err, ErrAppointmentNotFound) && !errors.Is(err, ErrAlreadyCheckedIn) {
			u.log.Warnf("Failed to check in appointment %s: %+v", appointmentID, err)
		}
		return nil, err
	}

	u.events.Record(ctx, entity.EventActionQueueCheckIn, "queue", entry.ID, map[string]interface{}{
		"appointment_id": appointmentID,
		"ticket":         entry.Ticket,
	})

	u.log.Infof("Check-in: entry=%s, ticket=%s, appointment=%s", entry.ID, entry.Ticket, appointmentID)
	return converter.QueueEntryToResponse(entry), nil
}

// SetQueueStatus moves an entry along the lifecycle, enforcing the
// forward-only transition graph.
func (u *queueUsecase) SetQueueStatus(ctx context.Context, id string, status string) (*dto.QueueEntryResponse, error) {
	newStatus := entity.QueueStatus(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidQueueStatus
	}

	var entry *entity.QueueEntry

	err := u.store.Atomic(func() error {
		found, err := u.queueRepo.FindByID(ctx, u.store, id)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrQueueEntryNotFound
		}

		if !found.Status.CanTransitionTo(newStatus) {
			return ErrInvalidTransition
		}

		found.Status = newStatus
		if err := u.queueRepo.Update(ctx, u.store, found); err != nil {
			return err
		}
		entry = found
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrQueueEntryNotFound) && !errors.Is(err, ErrInvalidTransition) {
			u.log.Warnf("Failed to set queue entry %s status: %+v", id, err)
		}
		return nil, err
	}

	u.events.Record(ctx, entity.EventActionQueueStatus, "queue", id, map[string]interface{}{
		"status": status,
	})

	return converter.QueueEntryToResponse(entry), nil
}

// RemoveFromQueue deletes an entry from the board; unknown ids are a no-op.
func (u *queueUsecase) RemoveFromQueue(ctx context.Context, id string) error {
	err := u.store.Atomic(func() error {
		return u.queueRepo.Delete(ctx, u.store, id)
	})
	if err != nil {
		u.log.Warnf("Failed to remove queue entry %s: %+v", id, err)
		return err
	}

	u.events.Record(ctx, entity.EventActionQueueRemove, "queue", id, nil)
	return nil
}

// GetQueue returns the board in creation order, optionally for one date.
func (u *queueUsecase) GetQueue(ctx context.Context, date string) (*dto.QueueListResponse, error) {
	var (
		entries []entity.QueueEntry
		err     error
	)
	if date != "" {
		entries, err = u.queueRepo.FindByDate(ctx, u.store, date)
	} else {
		entries, err = u.queueRepo.FindAll(ctx, u.store)
	}
	if err != nil {
		u.log.Warnf("Failed to find queue entries: %+v", err)
		return nil, err
	}

	return &dto.QueueListResponse{
		Entries: converter.QueueEntriesToResponses(entries),
		Total:   len(entries),
	}, nil
}
