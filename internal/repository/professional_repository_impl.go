package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	domainRepo "clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) FindAll(ctx context.Context, s *store.Store) ([]entity.Professional, error) {
	var professionals []entity.Professional
	if err := s.Load(ctx, store.KeyProfessionals, &professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) FindByID(ctx context.Context, s *store.Store, id string) (*entity.Professional, error) {
	professionals, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range professionals {
		if professionals[i].ID == id {
			p := professionals[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *professionalRepository) FindBySpecialty(ctx context.Context, s *store.Store, specialty string) ([]entity.Professional, error) {
	professionals, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Professional, 0, len(professionals))
	for _, p := range professionals {
		if p.Specialty == specialty {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *professionalRepository) SaveAll(ctx context.Context, s *store.Store, professionals []entity.Professional) error {
	return s.Save(ctx, store.KeyProfessionals, professionals)
}
