package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
)

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")

	appointment, err := env.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:      patientID,
		Specialty:      "Psiquiatra",
		Date:           monday,
		Time:           "08:00",
		ProfessionalID: "pro_1",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	if appointment.ID != "apt_1" {
		t.Errorf("ID = %s, want apt_1", appointment.ID)
	}
	if appointment.Status != string(entity.AppointmentStatusScheduled) {
		t.Errorf("Status = %s, want %s", appointment.Status, entity.AppointmentStatusScheduled)
	}
	if appointment.Type != entity.AppointmentTypeDefault {
		t.Errorf("Type = %s, want %s", appointment.Type, entity.AppointmentTypeDefault)
	}
	if appointment.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")
	otherID := env.addPatient(t, "Carlos", "55566677788", "carlos@example.com")

	env.bookAppointment(t, patientID, "pro_1", monday, "08:00")

	_, err := env.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:      otherID,
		Specialty:      "Psiquiatra",
		Date:           monday,
		Time:           "08:00",
		ProfessionalID: "pro_1",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestCreateAppointmentCancelledSlotIsRebookable(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")

	appointmentID := env.bookAppointment(t, patientID, "pro_1", monday, "08:00")
	if _, err := env.appointments.UpdateAppointmentStatus(context.Background(), appointmentID, "cancelada"); err != nil {
		t.Fatalf("UpdateAppointmentStatus: %v", err)
	}

	// The cancelled booking no longer claims the slot.
	env.bookAppointment(t, patientID, "pro_1", monday, "08:00")
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())

	_, err := env.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:      "pac_404",
		Specialty:      "Psiquiatra",
		Date:           monday,
		Time:           "08:00",
		ProfessionalID: "pro_1",
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestCreateAppointmentUnknownProfessional(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")

	_, err := env.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:      patientID,
		Specialty:      "Psiquiatra",
		Date:           monday,
		Time:           "08:00",
		ProfessionalID: "pro_404",
	})
	if !errors.Is(err, ErrProfessionalNotFound) {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
}

func TestCreateAppointmentBadFormats(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")

	_, err := env.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:      patientID,
		Specialty:      "Psiquiatra",
		Date:           "05/01/2026",
		Time:           "08:00",
		ProfessionalID: "pro_1",
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	_, err = env.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:      patientID,
		Specialty:      "Psiquiatra",
		Date:           monday,
		Time:           "8h00",
		ProfessionalID: "pro_1",
	})
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")
	appointmentID := env.bookAppointment(t, patientID, "pro_1", monday, "08:00")

	updated, err := env.appointments.UpdateAppointmentStatus(context.Background(), appointmentID, "finalizada")
	if err != nil {
		t.Fatalf("UpdateAppointmentStatus: %v", err)
	}
	if updated.Status != "finalizada" {
		t.Fatalf("Status = %s, want finalizada", updated.Status)
	}

	fetched, err := env.appointments.GetAppointment(context.Background(), appointmentID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if fetched.Status != "finalizada" {
		t.Fatalf("persisted Status = %s, want finalizada", fetched.Status)
	}
}

func TestUpdateAppointmentStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")
	appointmentID := env.bookAppointment(t, patientID, "pro_1", monday, "08:00")

	_, err := env.appointments.UpdateAppointmentStatus(context.Background(), appointmentID, "pendente")
	if !errors.Is(err, ErrInvalidAppointmentStatus) {
		t.Fatalf("expected ErrInvalidAppointmentStatus, got %v", err)
	}
}

func TestUpdateAppointmentStatusNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.appointments.UpdateAppointmentStatus(context.Background(), "apt_404", "cancelada")
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestGetAppointmentsFilters(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	env.addProfessional(t, entity.Professional{
		ID:          "pro_2",
		Name:        "Dr. Bruno Souza",
		Specialty:   "Psicólogo",
		WorkDays:    []int{1, 2},
		Start:       "13:30",
		End:         "18:00",
		SlotMinutes: 30,
	})
	joanaID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")
	carlosID := env.addPatient(t, "Carlos", "55566677788", "carlos@example.com")

	env.bookAppointment(t, joanaID, "pro_1", monday, "08:00")
	env.bookAppointment(t, carlosID, "pro_1", monday, "08:30")
	env.bookAppointment(t, joanaID, "pro_2", tuesday, "13:30")

	ctx := context.Background()

	all, err := env.appointments.GetAppointments(ctx, "", "")
	if err != nil {
		t.Fatalf("GetAppointments: %v", err)
	}
	if all.Total != 3 {
		t.Fatalf("Total = %d, want 3", all.Total)
	}

	byDate, err := env.appointments.GetAppointments(ctx, monday, "")
	if err != nil {
		t.Fatalf("GetAppointments(date): %v", err)
	}
	if byDate.Total != 2 {
		t.Fatalf("Total for %s = %d, want 2", monday, byDate.Total)
	}

	byPatient, err := env.appointments.GetAppointments(ctx, "", joanaID)
	if err != nil {
		t.Fatalf("GetAppointments(patient): %v", err)
	}
	if byPatient.Total != 2 {
		t.Fatalf("Total for patient = %d, want 2", byPatient.Total)
	}
	for _, a := range byPatient.Appointments {
		if a.PatientID != joanaID {
			t.Fatalf("filter leaked appointment for %s", a.PatientID)
		}
	}
}
