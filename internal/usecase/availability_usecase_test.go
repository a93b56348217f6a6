package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"clinic-front-desk/internal/domain/entity"
)

// 2026-01-05 is a Monday, 2026-01-06 a Tuesday.
const (
	monday  = "2026-01-05"
	tuesday = "2026-01-06"
)

func mondayMorningPro() entity.Professional {
	return entity.Professional{
		ID:          "pro_1",
		Name:        "Dra. Ana Lima",
		Specialty:   "Psiquiatra",
		WorkDays:    []int{1},
		Start:       "08:00",
		End:         "09:00",
		SlotMinutes: 30,
	}
}

func TestAvailableSlotsOnWorkDay(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())

	slots, err := env.availability.AvailableSlots(context.Background(), "pro_1", monday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	want := []string{"08:00", "08:30"}
	if !reflect.DeepEqual(slots.Slots, want) {
		t.Fatalf("Slots = %v, want %v", slots.Slots, want)
	}
	if slots.Total != 2 {
		t.Fatalf("Total = %d, want 2", slots.Total)
	}
}

func TestAvailableSlotsOffDayIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())

	slots, err := env.availability.AvailableSlots(context.Background(), "pro_1", tuesday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots.Slots) != 0 {
		t.Fatalf("expected no slots on an off day, got %v", slots.Slots)
	}
}

func TestAvailableSlotsExcludesBookedTimes(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")

	env.bookAppointment(t, patientID, "pro_1", monday, "08:00")

	slots, err := env.availability.AvailableSlots(context.Background(), "pro_1", monday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	want := []string{"08:30"}
	if !reflect.DeepEqual(slots.Slots, want) {
		t.Fatalf("Slots after booking = %v, want %v", slots.Slots, want)
	}
}

func TestAvailableSlotsCancelledAppointmentFreesSlot(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())
	patientID := env.addPatient(t, "Joana", "11122233344", "joana@example.com")

	appointmentID := env.bookAppointment(t, patientID, "pro_1", monday, "08:00")
	if _, err := env.appointments.UpdateAppointmentStatus(context.Background(), appointmentID, "cancelada"); err != nil {
		t.Fatalf("UpdateAppointmentStatus: %v", err)
	}

	slots, err := env.availability.AvailableSlots(context.Background(), "pro_1", monday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	want := []string{"08:00", "08:30"}
	if !reflect.DeepEqual(slots.Slots, want) {
		t.Fatalf("Slots after cancel = %v, want %v", slots.Slots, want)
	}
}

func TestAvailableSlotsIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())

	first, err := env.availability.AvailableSlots(context.Background(), "pro_1", monday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	second, err := env.availability.AvailableSlots(context.Background(), "pro_1", monday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if !reflect.DeepEqual(first.Slots, second.Slots) {
		t.Fatalf("repeated calls differ: %v vs %v", first.Slots, second.Slots)
	}
}

func TestAvailableSlotsDropsPartialSlot(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, entity.Professional{
		ID:          "pro_1",
		Name:        "Dr. Diego Santos",
		Specialty:   "Psiquiatra",
		WorkDays:    []int{1},
		Start:       "08:00",
		End:         "08:50",
		SlotMinutes: 30,
	})

	slots, err := env.availability.AvailableSlots(context.Background(), "pro_1", monday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	// 08:30 + 30min would overrun 08:50, so only 08:00 fits.
	want := []string{"08:00"}
	if !reflect.DeepEqual(slots.Slots, want) {
		t.Fatalf("Slots = %v, want %v", slots.Slots, want)
	}
}

func TestAvailableSlotsUnknownProfessional(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.availability.AvailableSlots(context.Background(), "pro_404", monday)
	if !errors.Is(err, ErrProfessionalNotFound) {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
}

func TestAvailableSlotsInvalidDate(t *testing.T) {
	env := newTestEnv(t)
	env.addProfessional(t, mondayMorningPro())

	_, err := env.availability.AvailableSlots(context.Background(), "pro_1", "05/01/2026")
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
