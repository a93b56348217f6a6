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
	ErrPatientNotFound = errors.New("patient not found")
	ErrEmailInUse      = errors.New("email already belongs to another patient")
)

type PatientUsecase interface {
	UpsertPatient(ctx context.Context, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error)
	GetPatientByDoc(ctx context.Context, docOrEmail string) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	store       *store.Store
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	sequence    *service.SequenceService
	events      service.EventService
}

func NewPatientUsecase(
	s *store.Store,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	sequence *service.SequenceService,
	events service.EventService,
) PatientUsecase {
	return &patientUsecase{
		store:       s,
		log:         log,
		patientRepo: patientRepo,
		sequence:    sequence,
		events:      events,
	}
}

// UpsertPatient registers a patient or updates the existing record.
//
// CPF is the authoritative key: a CPF match merges the non-empty incoming
// fields into the existing record. An email that already belongs to a patient
// with a different CPF is a conflict, never a silent merge.
func (u *patientUsecase) UpsertPatient(ctx context.Context, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error) {
	var result *entity.Patient

	err := u.store.Atomic(func() error {
		if req.Email != "" {
			byEmail, err := u.patientRepo.FindByEmail(ctx, u.store, req.Email)
			if err != nil {
				return err
			}
			if byEmail != nil && byEmail.CPF != req.CPF {
				return ErrEmailInUse
			}
		}

		existing, err := u.patientRepo.FindByCPF(ctx, u.store, req.CPF)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Merge(entity.Patient{
				Name:  req.Name,
				Email: req.Email,
				Phone: req.Phone,
			})
			if err := u.patientRepo.Save(ctx, u.store, existing); err != nil {
				return err
			}
			result = existing
			return nil
		}

		id, err := u.sequence.NextID(ctx, service.PrefixPatient)
		if err != nil {
			return err
		}
		patient := &entity.Patient{
			ID:    id,
			Name:  req.Name,
			CPF:   req.CPF,
			Email: req.Email,
			Phone: req.Phone,
		}
		if err := u.patientRepo.Save(ctx, u.store, patient); err != nil {
			return err
		}
		result = patient
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailInUse) {
			u.log.Warnf("Failed to upsert patient %s: %+v", req.CPF, err)
		}
		return nil, err
	}

	u.events.Record(ctx, entity.EventActionPatientUpsert, "patient", result.ID, nil)

	return converter.PatientToResponse(result), nil
}

// GetPatientByDoc looks a patient up by CPF or email.
func (u *patientUsecase) GetPatientByDoc(ctx context.Context, docOrEmail string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByDoc(ctx, u.store, docOrEmail)
	if err != nil {
		u.log.Warnf("Failed to find patient by doc: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.store)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
