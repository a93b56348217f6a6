package usecase

import (
	"context"
	"io"
	"testing"

	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
	repoImpl "clinic-front-desk/internal/repository"
	"clinic-front-desk/internal/service"

	"github.com/sirupsen/logrus"
)

// testEnv wires the full usecase stack over an in-memory store.
type testEnv struct {
	store            *store.Store
	professionalRepo repository.ProfessionalRepository
	queueRepo        repository.QueueRepository

	patients      PatientUsecase
	professionals ProfessionalUsecase
	availability  AvailabilityUsecase
	appointments  AppointmentUsecase
	queue         QueueUsecase
	feedback      FeedbackUsecase
	eventLog      EventLogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := store.NewStore(store.NewMemoryKV())

	log := logrus.New()
	log.SetOutput(io.Discard)

	patientRepo := repoImpl.NewPatientRepository()
	professionalRepo := repoImpl.NewProfessionalRepository()
	appointmentRepo := repoImpl.NewAppointmentRepository()
	queueRepo := repoImpl.NewQueueRepository()
	feedbackRepo := repoImpl.NewFeedbackRepository()
	eventRepo := repoImpl.NewEventRepository()

	sequenceService := service.NewSequenceService(s)
	eventService := service.NewEventService(s, log, eventRepo)

	return &testEnv{
		store:            s,
		professionalRepo: professionalRepo,
		queueRepo:        queueRepo,
		patients:         NewPatientUsecase(s, log, patientRepo, sequenceService, eventService),
		professionals:    NewProfessionalUsecase(s, log, professionalRepo, sequenceService),
		availability:     NewAvailabilityUsecase(s, log, professionalRepo, appointmentRepo),
		appointments:     NewAppointmentUsecase(s, log, appointmentRepo, patientRepo, professionalRepo, sequenceService, eventService),
		queue:            NewQueueUsecase(s, log, queueRepo, appointmentRepo, sequenceService, eventService),
		feedback:         NewFeedbackUsecase(s, log, feedbackRepo, appointmentRepo, sequenceService, eventService),
		eventLog:         NewEventLogUsecase(s, log, eventRepo),
	}
}

// addProfessional puts a roster entry in place, bypassing the seeded demo roster.
func (e *testEnv) addProfessional(t *testing.T, p entity.Professional) {
	t.Helper()
	ctx := context.Background()

	existing, err := e.professionalRepo.FindAll(ctx, e.store)
	if err != nil {
		t.Fatalf("FindAll professionals: %v", err)
	}
	if err := e.professionalRepo.SaveAll(ctx, e.store, append(existing, p)); err != nil {
		t.Fatalf("SaveAll professionals: %v", err)
	}
}

// addPatient registers a patient and returns its id.
func (e *testEnv) addPatient(t *testing.T, name, cpf, email string) string {
	t.Helper()

	patient, err := e.patients.UpsertPatient(context.Background(), &dto.UpsertPatientRequest{
		Name:  name,
		CPF:   cpf,
		Email: email,
	})
	if err != nil {
		t.Fatalf("UpsertPatient: %v", err)
	}
	return patient.ID
}

// bookAppointment creates an appointment and returns its id.
func (e *testEnv) bookAppointment(t *testing.T, patientID, professionalID, date, timeStr string) string {
	t.Helper()

	appointment, err := e.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:      patientID,
		Specialty:      "Psiquiatra",
		Date:           date,
		Time:           timeStr,
		ProfessionalID: professionalID,
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	return appointment.ID
}
