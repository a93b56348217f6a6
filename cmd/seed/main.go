package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"clinic-front-desk/config"
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/infrastructure/cache"
	"clinic-front-desk/internal/infrastructure/database"
	"clinic-front-desk/internal/infrastructure/store"
	"clinic-front-desk/internal/repository"
	"clinic-front-desk/internal/service"
	"clinic-front-desk/internal/usecase"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
)

// Seeds the store with the demo roster, fake patients and bookings.
// Pointless with STORE_DRIVER=memory since the data dies with this process.
func main() {
	patientCount := flag.Int("patients", 25, "number of fake patients to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Store.Driver == "memory" {
		logrus.Warn("STORE_DRIVER=memory: seeded data will not outlive this process")
	}

	kv, err := openKV(cfg)
	if err != nil {
		logrus.Fatalf("Failed to open store backend: %v", err)
	}
	s := store.NewStore(kv)

	log := logrus.StandardLogger()
	ctx := context.Background()

	patientRepo := repository.NewPatientRepository()
	professionalRepo := repository.NewProfessionalRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	eventRepo := repository.NewEventRepository()

	sequenceService := service.NewSequenceService(s)
	eventService := service.NewEventService(s, log, eventRepo)

	patientUsecase := usecase.NewPatientUsecase(s, log, patientRepo, sequenceService, eventService)
	professionalUsecase := usecase.NewProfessionalUsecase(s, log, professionalRepo, sequenceService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(s, log, professionalRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(s, log, appointmentRepo, patientRepo, professionalRepo, sequenceService, eventService)

	if err := professionalUsecase.EnsureRoster(ctx); err != nil {
		logrus.Fatalf("Failed to seed roster: %v", err)
	}

	professionals, err := professionalUsecase.GetProfessionals(ctx, "")
	if err != nil {
		logrus.Fatalf("Failed to load roster: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	booked := 0
	for i := 0; i < *patientCount; i++ {
		patient, err := patientUsecase.UpsertPatient(ctx, &dto.UpsertPatientRequest{
			Name:  gofakeit.Name(),
			CPF:   fmt.Sprintf("%011d", gofakeit.Number(10000000000, 99999999999)),
			Email: gofakeit.Email(),
			Phone: gofakeit.Phone(),
		})
		if err != nil {
			logrus.Fatalf("Failed to seed patient: %v", err)
		}

		pro := professionals.Professionals[gofakeit.Number(0, len(professionals.Professionals)-1)]

		// Book the first open slot within the next two weeks.
		for offset := 0; offset < 14; offset++ {
			date := time.Now().AddDate(0, 0, offset).Format("2006-01-02")
			slots, err := availabilityUsecase.AvailableSlots(ctx, pro.ID, date)
			if err != nil {
				logrus.Fatalf("Failed to compute slots: %v", err)
			}
			if len(slots.Slots) == 0 {
				continue
			}

			_, err = appointmentUsecase.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
				PatientID:      patient.ID,
				Specialty:      pro.Specialty,
				Date:           date,
				Time:           slots.Slots[gofakeit.Number(0, len(slots.Slots)-1)],
				ProfessionalID: pro.ID,
			})
			if err != nil {
				logrus.Fatalf("Failed to seed appointment: %v", err)
			}
			booked++
			break
		}
	}

	logrus.Infof("Seed complete: %d patients, %d appointments", *patientCount, booked)
}

func openKV(cfg *config.Config) (store.KV, error) {
	switch cfg.Store.Driver {
	case "memory", "":
		return store.NewMemoryKV(), nil
	case "redis":
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisKV(client), nil
	case "postgres":
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresKV(db)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}
