package handler

import (
	"context"
	"net/http"

	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// view adapts a session scoped read to an http handler
func view[T any](message string, fetch func(ctx context.Context, session *entity.Session) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		data, err := fetch(r.Context(), session)
		if err != nil {
			writeError(w, err)
			return
		}

		response.Success(w, http.StatusOK, message, data)
	}
}

func (h *DashboardHandler) GetMyPatients(w http.ResponseWriter, r *http.Request) {
	view("Patients retrieved successfully", h.dashboardUsecase.GetMyPatients)(w, r)
}

func (h *DashboardHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	view("Payments retrieved successfully", h.dashboardUsecase.GetPayments)(w, r)
}

func (h *DashboardHandler) GetAssignedDoctors(w http.ResponseWriter, r *http.Request) {
	view("Doctors retrieved successfully", h.dashboardUsecase.GetAssignedDoctors)(w, r)
}

func (h *DashboardHandler) GetPatientProfile(w http.ResponseWriter, r *http.Request) {
	view("Profile retrieved successfully", h.dashboardUsecase.GetPatientProfile)(w, r)
}

func (h *DashboardHandler) GetPrescriptions(w http.ResponseWriter, r *http.Request) {
	view("Prescriptions retrieved successfully", h.dashboardUsecase.GetPrescriptions)(w, r)
}

func (h *DashboardHandler) GetDoctorOptions(w http.ResponseWriter, r *http.Request) {
	view("Doctors retrieved successfully", h.dashboardUsecase.GetDoctorOptions)(w, r)
}

func (h *DashboardHandler) GetPatientOptions(w http.ResponseWriter, r *http.Request) {
	view("Patients retrieved successfully", h.dashboardUsecase.GetPatientOptions)(w, r)
}
