package entity

import "time"

// FeedbackLabel is the Net Promoter Score bucket of a satisfaction rating.
type FeedbackLabel string

const (
	FeedbackPromoter  FeedbackLabel = "Promotor"
	FeedbackDetractor FeedbackLabel = "Detrator"
	FeedbackNeutral   FeedbackLabel = "Neutro"
)

// ClassifyRating applies the standard NPS bucketing to a 0-10 rating:
// >= 9 promoter, <= 6 detractor, otherwise neutral.
func ClassifyRating(rating int) FeedbackLabel {
	switch {
	case rating >= 9:
		return FeedbackPromoter
	case rating <= 6:
		return FeedbackDetractor
	default:
		return FeedbackNeutral
	}
}

// Feedback is a post-visit satisfaction record. The label is derived from
// the rating at creation time and never recomputed.
type Feedback struct {
	ID            string        `json:"id"`
	AppointmentID string        `json:"appointment_id"`
	PatientID     string        `json:"patient_id"`
	Rating        int           `json:"rating"`
	Comment       string        `json:"comment,omitempty"`
	Label         FeedbackLabel `json:"label"`
	CreatedAt     time.Time     `json:"created_at"`
}
