package http

import (
	"net/http"

	"clinic-portal/internal/delivery/http/handler"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/pkg/monitoring"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	metrics            *monitoring.MetricsCollector
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metrics *monitoring.MetricsCollector,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		metrics:            metrics,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentIdentity).Methods(http.MethodGet)

	// Appointment routes (any signed in role, scoped by role)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)

	// Appointment mutations (owners only)
	owned := api.PathPrefix("/appointments").Subrouter()
	owned.Use(r.authMiddleware.Authenticate)
	owned.Use(middleware.RequireAppointmentOwner)
	owned.HandleFunc("", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	owned.HandleFunc("/cancellable", r.appointmentHandler.ListCancellable).Methods(http.MethodGet)
	owned.HandleFunc("/{id:[0-9]+}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Doctor routes
	doctor := api.NewRoute().Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/booking/patients", r.dashboardHandler.GetPatientOptions).Methods(http.MethodGet)
	doctor.HandleFunc("/doctor/patients", r.dashboardHandler.GetMyPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/payments", r.dashboardHandler.GetPayments).Methods(http.MethodGet)

	// Nurse routes
	nurse := api.PathPrefix("/nurse").Subrouter()
	nurse.Use(r.authMiddleware.Authenticate)
	nurse.Use(middleware.RequireNurse)
	nurse.HandleFunc("/doctors", r.dashboardHandler.GetAssignedDoctors).Methods(http.MethodGet)

	// Patient routes
	patient := api.NewRoute().Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/booking/doctors", r.dashboardHandler.GetDoctorOptions).Methods(http.MethodGet)
	patient.HandleFunc("/patient/profile", r.dashboardHandler.GetPatientProfile).Methods(http.MethodGet)
	patient.HandleFunc("/patient/prescriptions", r.dashboardHandler.GetPrescriptions).Methods(http.MethodGet)

	// Preflight requests for any path
	r.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.Use(middleware.NewMetricsMiddleware(r.metrics))
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
