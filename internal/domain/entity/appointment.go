package entity

import "time"

// AppointmentStatus represents the status of an appointment.
// The wire values are the clinic's Portuguese domain terms.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "agendada"
	AppointmentStatusCheckedIn AppointmentStatus = "checkin"
	AppointmentStatusFinished  AppointmentStatus = "finalizada"
	AppointmentStatusCancelled AppointmentStatus = "cancelada"
)

// AppointmentTypeDefault is assumed when no type is given.
const AppointmentTypeDefault = "consulta"

// IsValid reports whether s is a known appointment status.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCheckedIn,
		AppointmentStatusFinished, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is one booked slot in the ledger.
// Date is YYYY-MM-DD and Time is HH:MM; together with ProfessionalID they
// identify the slot. No two non-cancelled appointments may share a slot.
type Appointment struct {
	ID             string            `json:"id"`
	PatientID      string            `json:"patient_id"`
	Specialty      string            `json:"specialty"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	ProfessionalID string            `json:"professional_id"`
	Type           string            `json:"type"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

// IsCancelled reports whether the appointment no longer claims its slot.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// ClaimsSlot reports whether the appointment blocks the given slot.
func (a *Appointment) ClaimsSlot(professionalID, date, timeStr string) bool {
	return a.ProfessionalID == professionalID &&
		a.Date == date &&
		a.Time == timeStr &&
		!a.IsCancelled()
}
