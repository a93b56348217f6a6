package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	domainRepo "clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) FindAll(ctx context.Context, s *store.Store) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := s.Load(ctx, store.KeyAppointments, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, s *store.Store, id string) (*entity.Appointment, error) {
	appointments, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			a := appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) FindByDate(ctx context.Context, s *store.Store, date string) ([]entity.Appointment, error) {
	appointments, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Date == date {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, s *store.Store, patientID string) ([]entity.Appointment, error) {
	appointments, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.PatientID == patientID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// IsSlotBusy reports whether a non-cancelled appointment already claims the
// (professional, date, time) slot.
func (r *appointmentRepository) IsSlotBusy(ctx context.Context, s *store.Store, professionalID, date, timeStr string) (bool, error) {
	appointments, err := r.FindAll(ctx, s)
	if err != nil {
		return false, err
	}
	for i := range appointments {
		if appointments[i].ClaimsSlot(professionalID, date, timeStr) {
			return true, nil
		}
	}
	return false, nil
}

func (r *appointmentRepository) Append(ctx context.Context, s *store.Store, appointment *entity.Appointment) error {
	appointments, err := r.FindAll(ctx, s)
	if err != nil {
		return err
	}
	appointments = append(appointments, *appointment)
	return s.Save(ctx, store.KeyAppointments, appointments)
}

func (r *appointmentRepository) Update(ctx context.Context, s *store.Store, appointment *entity.Appointment) error {
	appointments, err := r.FindAll(ctx, s)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == appointment.ID {
			appointments[i] = *appointment
			break
		}
	}
	return s.Save(ctx, store.KeyAppointments, appointments)
}
