package entity

import "time"

// Event is an entry in the front-desk activity trail.
type Event struct {
	ID        string                 `json:"id"`
	Action    string                 `json:"action"`
	Entity    string                 `json:"entity"`
	EntityID  string                 `json:"entity_id"`
	RequestID string                 `json:"request_id,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Common event actions
const (
	EventActionPatientUpsert     = "patient.upsert"
	EventActionAppointmentCreate = "appointment.create"
	EventActionAppointmentStatus = "appointment.status"
	EventActionQueueCheckIn      = "queue.checkin"
	EventActionQueueStatus       = "queue.status"
	EventActionQueueRemove       = "queue.remove"
	EventActionFeedbackCreate    = "feedback.create"
)
