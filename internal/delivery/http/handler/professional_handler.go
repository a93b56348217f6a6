package handler

import (
	"net/http"

	"clinic-front-desk/internal/usecase"
	"clinic-front-desk/pkg/response"

	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewProfessionalHandler(
	professionalUsecase usecase.ProfessionalUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		availabilityUsecase: availabilityUsecase,
	}
}

func (h *ProfessionalHandler) GetProfessionals(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	professionals, err := h.professionalUsecase.GetProfessionals(r.Context(), specialty)
	if err != nil {
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), vars["id"])
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter date is required")
		return
	}

	slots, err := h.availabilityUsecase.AvailableSlots(r.Context(), vars["id"], date)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrInvalidDate:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to compute available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}
