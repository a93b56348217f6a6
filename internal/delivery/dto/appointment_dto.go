package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID      string `json:"patient_id" validate:"required"`
	Specialty      string `json:"specialty" validate:"required"`
	Date           string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time           string `json:"time" validate:"required"` // Format: HH:MM
	ProfessionalID string `json:"professional_id" validate:"required"`
	Type           string `json:"type" validate:"omitempty,max=50"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	Specialty      string    `json:"specialty"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	ProfessionalID string    `json:"professional_id"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
