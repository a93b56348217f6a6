package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	domainRepo "clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindAll(ctx context.Context, s *store.Store) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := s.Load(ctx, store.KeyPatients, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, s *store.Store, id string) (*entity.Patient, error) {
	patients, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			p := patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *patientRepository) FindByCPF(ctx context.Context, s *store.Store, cpf string) (*entity.Patient, error) {
	patients, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].CPF == cpf {
			p := patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *patientRepository) FindByEmail(ctx context.Context, s *store.Store, email string) (*entity.Patient, error) {
	patients, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].Email == email {
			p := patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

// FindByDoc looks a patient up by CPF or email, whichever matches first.
func (r *patientRepository) FindByDoc(ctx context.Context, s *store.Store, docOrEmail string) (*entity.Patient, error) {
	patients, err := r.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].CPF == docOrEmail || patients[i].Email == docOrEmail {
			p := patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Save replaces the patient with the same ID, or appends when the ID is new.
func (r *patientRepository) Save(ctx context.Context, s *store.Store, patient *entity.Patient) error {
	patients, err := r.FindAll(ctx, s)
	if err != nil {
		return err
	}
	replaced := false
	for i := range patients {
		if patients[i].ID == patient.ID {
			patients[i] = *patient
			replaced = true
			break
		}
	}
	if !replaced {
		patients = append(patients, *patient)
	}
	return s.Save(ctx, store.KeyPatients, patients)
}
