package handler

import (
	"net/http"

	"clinic-front-desk/internal/usecase"
	"clinic-front-desk/pkg/response"
)

type EventHandler struct {
	eventLogUsecase usecase.EventLogUsecase
}

func NewEventHandler(eventLogUsecase usecase.EventLogUsecase) *EventHandler {
	return &EventHandler{
		eventLogUsecase: eventLogUsecase,
	}
}

func (h *EventHandler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventLogUsecase.GetAllEvents(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get events")
		return
	}

	response.Success(w, http.StatusOK, "Events retrieved successfully", events)
}
