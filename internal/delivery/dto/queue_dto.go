package dto

import "time"

// Request DTOs

type CheckInRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
}

type UpdateQueueStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type QueueEntryResponse struct {
	ID             string    `json:"id"`
	Ticket         string    `json:"ticket"`
	AppointmentID  string    `json:"appointment_id"`
	PatientID      string    `json:"patient_id"`
	ProfessionalID string    `json:"professional_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type QueueListResponse struct {
	Entries []QueueEntryResponse `json:"entries"`
	Total   int                  `json:"total"`
}
