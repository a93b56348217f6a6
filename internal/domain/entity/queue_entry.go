package entity

import "time"

// QueueStatus represents where a checked-in patient stands in the
// front-desk lifecycle.
type QueueStatus string

const (
	QueueStatusWaiting   QueueStatus = "aguardando"
	QueueStatusCalled    QueueStatus = "chamado"
	QueueStatusInService QueueStatus = "em_atendimento"
	QueueStatusFinished  QueueStatus = "finalizado"
	QueueStatusNoShow    QueueStatus = "no_show"
)

// queueTransitions is the forward-only lifecycle graph. no_show is a side
// exit reachable only from the waiting state.
var queueTransitions = map[QueueStatus][]QueueStatus{
	QueueStatusWaiting:   {QueueStatusCalled, QueueStatusNoShow},
	QueueStatusCalled:    {QueueStatusInService},
	QueueStatusInService: {QueueStatusFinished},
}

// IsValid reports whether s is a known queue status.
func (s QueueStatus) IsValid() bool {
	switch s {
	case QueueStatusWaiting, QueueStatusCalled, QueueStatusInService,
		QueueStatusFinished, QueueStatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s QueueStatus) CanTransitionTo(next QueueStatus) bool {
	for _, allowed := range queueTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// QueueEntry is one checked-in patient on the queue board.
type QueueEntry struct {
	ID             string      `json:"id"`
	Ticket         string      `json:"ticket"`
	AppointmentID  string      `json:"appointment_id"`
	PatientID      string      `json:"patient_id"`
	ProfessionalID string      `json:"professional_id"`
	Status         QueueStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

// IsActive reports whether the entry still occupies the queue board.
func (q *QueueEntry) IsActive() bool {
	switch q.Status {
	case QueueStatusWaiting, QueueStatusCalled, QueueStatusInService:
		return true
	}
	return false
}
