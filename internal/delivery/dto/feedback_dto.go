package dto

import "time"

// Request DTOs

type CreateFeedbackRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
	PatientID     string `json:"patient_id" validate:"required"`
	Rating        int    `json:"rating" validate:"gte=0,lte=10"`
	Comment       string `json:"comment" validate:"omitempty,max=1000"`
}

// Response DTOs

type FeedbackResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	Label         string    `json:"label"`
	CreatedAt     time.Time `json:"created_at"`
}

type FeedbackListResponse struct {
	Feedbacks []FeedbackResponse `json:"feedbacks"`
	Total     int                `json:"total"`
}
