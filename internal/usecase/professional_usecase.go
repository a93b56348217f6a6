package usecase

import (
	"context"
	"errors"

	"clinic-front-desk/internal/converter"
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
	"clinic-front-desk/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrProfessionalNotFound = errors.New("professional not found")
)

type ProfessionalUsecase interface {
	GetProfessionals(ctx context.Context, specialty string) (*dto.ProfessionalListResponse, error)
	GetProfessional(ctx context.Context, id string) (*dto.ProfessionalResponse, error)
	EnsureRoster(ctx context.Context) error
}

type professionalUsecase struct {
	store            *store.Store
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	sequence         *service.SequenceService
}

func NewProfessionalUsecase(
	s *store.Store,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	sequence *service.SequenceService,
) ProfessionalUsecase {
	return &professionalUsecase{
		store:            s,
		log:              log,
		professionalRepo: professionalRepo,
		sequence:         sequence,
	}
}

// GetProfessionals returns the roster, optionally filtered by exact specialty.
func (u *professionalUsecase) GetProfessionals(ctx context.Context, specialty string) (*dto.ProfessionalListResponse, error) {
	var (
		professionals []entity.Professional
		err           error
	)
	if specialty != "" {
		professionals, err = u.professionalRepo.FindBySpecialty(ctx, u.store, specialty)
	} else {
		professionals, err = u.professionalRepo.FindAll(ctx, u.store)
	}
	if err != nil {
		u.log.Warnf("Failed to find professionals: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(professionals),
		Total:         len(professionals),
	}, nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, id string) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(ctx, u.store, id)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", id, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

// EnsureRoster seeds the demo roster once, when the collection is empty.
// The roster is immutable afterwards.
func (u *professionalUsecase) EnsureRoster(ctx context.Context) error {
	return u.store.Atomic(func() error {
		existing, err := u.professionalRepo.FindAll(ctx, u.store)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		templates := []entity.Professional{
			{Name: "Dra. Ana Lima", Specialty: "Psiquiatra", WorkDays: []int{1, 2, 3, 4, 5}, Start: "08:00", End: "12:00", SlotMinutes: 30},
			{Name: "Dr. Bruno Souza", Specialty: "Psicólogo", WorkDays: []int{1, 2, 3, 4, 5}, Start: "13:30", End: "18:00", SlotMinutes: 30},
			{Name: "Dra. Carla Nogueira", Specialty: "Terapeuta", WorkDays: []int{2, 4, 6}, Start: "09:00", End: "13:00", SlotMinutes: 30},
			{Name: "Dr. Diego Santos", Specialty: "Psiquiatra", WorkDays: []int{1, 3, 5}, Start: "14:00", End: "19:00", SlotMinutes: 30},
		}

		roster := make([]entity.Professional, 0, len(templates))
		for _, p := range templates {
			id, err := u.sequence.NextID(ctx, service.PrefixProfessional)
			if err != nil {
				return err
			}
			p.ID = id
			roster = append(roster, p)
		}

		if err := u.professionalRepo.SaveAll(ctx, u.store, roster); err != nil {
			return err
		}

		u.log.Infof("Seeded professional roster with %d entries", len(roster))
		return nil
	})
}
