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
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrSlotTaken                = errors.New("time slot is already booked")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status string) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context, date, patientID string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	store            *store.Store
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	sequence         *service.SequenceService
	events           service.EventService
}

func NewAppointmentUsecase(
	s *store.Store,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
	sequence *service.SequenceService,
	events service.EventService,
) AppointmentUsecase {
	return &appointmentUsecase{
		store:            s,
		log:              log,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		sequence:         sequence,
		events:           events,
	}
}

// CreateAppointment books a slot. Slot freedom is re-validated inside the
// store's writer section, so two near-simultaneous bookings for the same
// (professional, date, time) cannot both succeed: the loser gets ErrSlotTaken.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	patient, err := u.patientRepo.FindByID(ctx, u.store, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	professional, err := u.professionalRepo.FindByID(ctx, u.store, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", req.ProfessionalID, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	apptType := req.Type
	if apptType == "" {
		apptType = entity.AppointmentTypeDefault
	}

	var appointment *entity.Appointment

	err = u.store.Atomic(func() error {
		busy, err := u.appointmentRepo.IsSlotBusy(ctx, u.store, req.ProfessionalID, req.Date, req.Time)
		if err != nil {
			return err
		}
		if busy {
			return ErrSlotTaken
		}

		id, err := u.sequence.NextID(ctx, service.PrefixAppointment)
		if err != nil {
			return err
		}

		appointment = &entity.Appointment{
			ID:             id,
			PatientID:      req.PatientID,
			Specialty:      req.Specialty,
			Date:           req.Date,
			Time:           req.Time,
			ProfessionalID: req.ProfessionalID,
			Type:           apptType,
			Status:         entity.AppointmentStatusScheduled,
			CreatedAt:      time.Now().UTC(),
		}
		return u.appointmentRepo.Append(ctx, u.store, appointment)
	})
	if err != nil {
		if !errors.Is(err, ErrSlotTaken) {
			u.log.Warnf("Failed to create appointment: %+v", err)
		}
		return nil, err
	}

	u.events.Record(ctx, entity.EventActionAppointmentCreate, "appointment", appointment.ID, map[string]interface{}{
		"professional_id": appointment.ProfessionalID,
		"date":            appointment.Date,
		"time":            appointment.Time,
	})

	u.log.Infof("Appointment created: id=%s, professional=%s, slot=%s %s", appointment.ID, appointment.ProfessionalID, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointmentStatus overwrites the status and returns the updated record.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id string, status string) (*dto.AppointmentResponse, error) {
	newStatus := entity.AppointmentStatus(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidAppointmentStatus
	}

	var appointment *entity.Appointment

	err := u.store.Atomic(func() error {
		found, err := u.appointmentRepo.FindByID(ctx, u.store, id)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrAppointmentNotFound
		}

		found.Status = newStatus
		if err := u.appointmentRepo.Update(ctx, u.store, found); err != nil {
			return err
		}
		appointment = found
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAppointmentNotFound) {
			u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
		}
		return nil, err
	}

	u.events.Record(ctx, entity.EventActionAppointmentStatus, "appointment", id, map[string]interface{}{
		"status": status,
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.store, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetAppointments lists the ledger, optionally narrowed by date or patient.
func (u *appointmentUsecase) GetAppointments(ctx context.Context, date, patientID string) (*dto.AppointmentListResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)
	switch {
	case date != "":
		appointments, err = u.appointmentRepo.FindByDate(ctx, u.store, date)
	case patientID != "":
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, u.store, patientID)
	default:
		appointments, err = u.appointmentRepo.FindAll(ctx, u.store)
	}
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
