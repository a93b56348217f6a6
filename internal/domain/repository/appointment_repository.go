package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/infrastructure/store"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context, s *store.Store) ([]entity.Appointment, error)
	FindByID(ctx context.Context, s *store.Store, id string) (*entity.Appointment, error)
	FindByDate(ctx context.Context, s *store.Store, date string) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, s *store.Store, patientID string) ([]entity.Appointment, error)
	IsSlotBusy(ctx context.Context, s *store.Store, professionalID, date, timeStr string) (bool, error)
	Append(ctx context.Context, s *store.Store, appointment *entity.Appointment) error
	Update(ctx context.Context, s *store.Store, appointment *entity.Appointment) error
}
