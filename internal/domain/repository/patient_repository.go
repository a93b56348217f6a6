package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/infrastructure/store"
)

type PatientRepository interface {
	FindAll(ctx context.Context, s *store.Store) ([]entity.Patient, error)
	FindByID(ctx context.Context, s *store.Store, id string) (*entity.Patient, error)
	FindByCPF(ctx context.Context, s *store.Store, cpf string) (*entity.Patient, error)
	FindByEmail(ctx context.Context, s *store.Store, email string) (*entity.Patient, error)
	FindByDoc(ctx context.Context, s *store.Store, docOrEmail string) (*entity.Patient, error)
	Save(ctx context.Context, s *store.Store, patient *entity.Patient) error
}
