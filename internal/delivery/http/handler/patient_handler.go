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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) UpsertPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpsertPatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailInUse:
			response.Conflict(w, "Email already belongs to another patient")
		default:
			response.InternalServerError(w, "Failed to save patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient saved successfully", patient)
}

func (h *PatientHandler) GetPatientByDoc(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doc := vars["doc"]

	patient, err := h.patientUsecase.GetPatientByDoc(r.Context(), doc)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
