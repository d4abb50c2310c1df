package handler

import (
	"encoding/json"
	"net/http"

	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/response"
	"clinic-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) ListCancellable(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	appointments, err := h.appointmentUsecase.ListCancellable(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Cancellable appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, _ := middleware.SessionFromContext(r.Context())
	booking, err := h.appointmentUsecase.BookAppointment(r.Context(), session, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", booking)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := entity.ParseRecordID(mux.Vars(r)["id"])
	if err != nil || appointmentID <= 0 {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	session, _ := middleware.SessionFromContext(r.Context())
	if err := h.appointmentUsecase.CancelAppointment(r.Context(), session, appointmentID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}
