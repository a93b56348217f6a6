package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/infrastructure/store"
)

type ProfessionalRepository interface {
	FindAll(ctx context.Context, s *store.Store) ([]entity.Professional, error)
	FindByID(ctx context.Context, s *store.Store, id string) (*entity.Professional, error)
	FindBySpecialty(ctx context.Context, s *store.Store, specialty string) ([]entity.Professional, error)
	SaveAll(ctx context.Context, s *store.Store, professionals []entity.Professional) error
}
