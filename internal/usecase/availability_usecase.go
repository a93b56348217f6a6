package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
)

// defaultSlotMinutes is assumed when a roster entry carries no slot size.
const defaultSlotMinutes = 30

type AvailabilityUsecase interface {
	AvailableSlots(ctx context.Context, professionalID, date string) (*dto.SlotListResponse, error)
}

type availabilityUsecase struct {
	store            *store.Store
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	s *store.Store,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		store:            s,
		log:              log,
		professionalRepo: professionalRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// AvailableSlots enumerates the open HH:MM slots of a professional on a date,
// earliest first. A day outside the professional's work days yields an empty
// list, not an error. The result is a pure function of the current ledger,
// recomputed on every call.
func (u *availabilityUsecase) AvailableSlots(ctx context.Context, professionalID, date string) (*dto.SlotListResponse, error) {
	professional, err := u.professionalRepo.FindByID(ctx, u.store, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	slots := []string{}
	if !professional.WorksOn(day.Weekday()) {
		return &dto.SlotListResponse{
			ProfessionalID: professionalID,
			Date:           date,
			Slots:          slots,
		}, nil
	}

	start, err := clockToMinutes(professional.Start)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	end, err := clockToMinutes(professional.End)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	step := professional.SlotMinutes
	if step <= 0 {
		step = defaultSlotMinutes
	}

	// Walk in fixed increments; a slot that would overrun the end of the
	// working window is dropped entirely.
	for m := start; m+step <= end; m += step {
		slot := minutesToClock(m)
		busy, err := u.appointmentRepo.IsSlotBusy(ctx, u.store, professionalID, date, slot)
		if err != nil {
			return nil, err
		}
		if !busy {
			slots = append(slots, slot)
		}
	}

	return &dto.SlotListResponse{
		ProfessionalID: professionalID,
		Date:           date,
		Slots:          slots,
		Total:          len(slots),
	}, nil
}

// clockToMinutes converts "HH:MM" to the minute offset from midnight.
func clockToMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// minutesToClock formats a minute offset from midnight as zero-padded "HH:MM".
func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
