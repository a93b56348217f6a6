package handler

import (
	"encoding/json"
	"net/http"

	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/usecase"
	"clinic-front-desk/pkg/response"
	"clinic-front-desk/pkg/validator"

	"github.com/gorilla/mux"
)

type QueueHandler struct {
	queueUsecase usecase.QueueUsecase
	validator    *validator.CustomValidator
}

func NewQueueHandler(queueUsecase usecase.QueueUsecase, validator *validator.CustomValidator) *QueueHandler {
	return &QueueHandler{
		queueUsecase: queueUsecase,
		validator:    validator,
	}
}

func (h *QueueHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.queueUsecase.CheckIn(r.Context(), req.AppointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAlreadyCheckedIn:
			response.Conflict(w, "Appointment already has an active queue entry")
		default:
			response.InternalServerError(w, "Failed to check in")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Checked in successfully", entry)
}

func (h *QueueHandler) SetQueueStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateQueueStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.queueUsecase.SetQueueStatus(r.Context(), vars["id"], req.Status)
	if err != nil {
		switch err {
		case usecase.ErrQueueEntryNotFound:
			response.NotFound(w, "Queue entry not found")
		case usecase.ErrInvalidQueueStatus:
			response.BadRequest(w, "Invalid queue status")
		case usecase.ErrInvalidTransition:
			response.Conflict(w, "Invalid queue status transition")
		default:
			response.InternalServerError(w, "Failed to update queue status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Queue status updated successfully", entry)
}

func (h *QueueHandler) RemoveFromQueue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.queueUsecase.RemoveFromQueue(r.Context(), vars["id"]); err != nil {
		response.InternalServerError(w, "Failed to remove queue entry")
		return
	}

	response.Success(w, http.StatusOK, "Queue entry removed successfully", nil)
}

func (h *QueueHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	entries, err := h.queueUsecase.GetQueue(r.Context(), date)
	if err != nil {
		response.InternalServerError(w, "Failed to get queue")
		return
	}

	response.Success(w, http.StatusOK, "Queue retrieved successfully", entries)
}
