package converter

import (
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
)

// QueueEntryToResponse converts a QueueEntry entity to QueueEntryResponse DTO
func QueueEntryToResponse(entry *entity.QueueEntry) *dto.QueueEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.QueueEntryResponse{
		ID:             entry.ID,
		Ticket:         entry.Ticket,
		AppointmentID:  entry.AppointmentID,
		PatientID:      entry.PatientID,
		ProfessionalID: entry.ProfessionalID,
		Status:         string(entry.Status),
		CreatedAt:      entry.CreatedAt,
	}
}

// QueueEntriesToResponses converts a slice of QueueEntry entities to DTOs
func QueueEntriesToResponses(entries []entity.QueueEntry) []dto.QueueEntryResponse {
	responses := make([]dto.QueueEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *QueueEntryToResponse(&entries[i])
	}
	return responses
}
