package converter

import (
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
)

// EventToResponse converts an Event entity to EventResponse DTO
func EventToResponse(event *entity.Event) *dto.EventResponse {
	if event == nil {
		return nil
	}

	return &dto.EventResponse{
		ID:        event.ID,
		Action:    event.Action,
		Entity:    event.Entity,
		EntityID:  event.EntityID,
		RequestID: event.RequestID,
		Metadata:  event.Metadata,
		CreatedAt: event.CreatedAt,
	}
}

// EventsToResponses converts a slice of Event entities to DTOs
func EventsToResponses(events []entity.Event) []dto.EventResponse {
	responses := make([]dto.EventResponse, len(events))
	for i := range events {
		responses[i] = *EventToResponse(&events[i])
	}
	return responses
}
