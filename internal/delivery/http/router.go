package http

import (
	"net/http"

	"clinic-front-desk/internal/delivery/http/handler"
	"clinic-front-desk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	patientHandler      *handler.PatientHandler
	professionalHandler *handler.ProfessionalHandler
	appointmentHandler  *handler.AppointmentHandler
	queueHandler        *handler.QueueHandler
	feedbackHandler     *handler.FeedbackHandler
	eventHandler        *handler.EventHandler
	operatorHandler     *handler.OperatorHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	professionalHandler *handler.ProfessionalHandler,
	appointmentHandler *handler.AppointmentHandler,
	queueHandler *handler.QueueHandler,
	feedbackHandler *handler.FeedbackHandler,
	eventHandler *handler.EventHandler,
	operatorHandler *handler.OperatorHandler,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		patientHandler:      patientHandler,
		professionalHandler: professionalHandler,
		appointmentHandler:  appointmentHandler,
		queueHandler:        queueHandler,
		feedbackHandler:     feedbackHandler,
		eventHandler:        eventHandler,
		operatorHandler:     operatorHandler,
		requestIDMiddleware: requestIDMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Shell identity
	api.HandleFunc("/me", r.operatorHandler.Me).Methods(http.MethodGet)

	// Patient registration and lookup
	api.HandleFunc("/patients", r.patientHandler.UpsertPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{doc}", r.patientHandler.GetPatientByDoc).Methods(http.MethodGet)

	// Professional roster and availability
	api.HandleFunc("/professionals", r.professionalHandler.GetProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}/slots", r.professionalHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Appointment ledger
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Queue board
	api.HandleFunc("/queue/checkin", r.queueHandler.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/queue", r.queueHandler.GetQueue).Methods(http.MethodGet)
	api.HandleFunc("/queue/{id}/status", r.queueHandler.SetQueueStatus).Methods(http.MethodPatch)
	api.HandleFunc("/queue/{id}", r.queueHandler.RemoveFromQueue).Methods(http.MethodDelete)

	// Satisfaction survey
	api.HandleFunc("/feedbacks", r.feedbackHandler.AddFeedback).Methods(http.MethodPost)
	api.HandleFunc("/feedbacks", r.feedbackHandler.GetAllFeedbacks).Methods(http.MethodGet)

	// Activity trail
	api.HandleFunc("/events", r.eventHandler.GetAllEvents).Methods(http.MethodGet)

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
