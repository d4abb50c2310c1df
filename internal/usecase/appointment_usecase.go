package usecase

import (
	"context"
	"strings"
	"time"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/pkg/apperror"
	"clinic-portal/pkg/monitoring"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAppointmentTime = apperror.New(apperror.KindValidation, "Appointment date and time must look like 2024-01-01 09:00.")
	ErrPatientRequired        = apperror.New(apperror.KindValidation, "Select a patient or provide new patient details.")
	ErrPatientChoiceAmbiguous = apperror.New(apperror.KindValidation, "Choose either an existing patient or a new patient, not both.")
	ErrDoctorRequired         = apperror.New(apperror.KindValidation, "Select a doctor.")
	ErrPatientCannotRegister  = apperror.New(apperror.KindForbidden, "Only doctors can register a patient while booking.")
)

// accepted appointment_datetime inputs
var appointmentLayouts = []string{
	entity.AppointmentDateTimeLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type AppointmentUsecase interface {
	// GetCancellableAppointments never fails; a failed fetch yields an empty list
	GetCancellableAppointments(ctx context.Context, idColumn string, userID entity.RecordID) []entity.Appointment
	ListCancellable(ctx context.Context, session *entity.Session) (*dto.CancellableListResponse, error)
	ListAppointments(ctx context.Context, session *entity.Session) (*dto.AppointmentListResponse, error)
	BookAppointment(ctx context.Context, session *entity.Session, req *dto.BookAppointmentRequest) (*dto.BookingResponse, error)
	CancelAppointment(ctx context.Context, session *entity.Session, appointmentID entity.RecordID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	registrar       *patientRegistrar
	metrics         *monitoring.MetricsCollector
	clinicID        entity.RecordID
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	metrics *monitoring.MetricsCollector,
	clinicID int64,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		registrar:       &patientRegistrar{log: log, patientRepo: patientRepo, metrics: metrics},
		metrics:         metrics,
		clinicID:        entity.RecordID(clinicID),
		now:             time.Now,
	}
}

func (u *appointmentUsecase) GetCancellableAppointments(ctx context.Context, idColumn string, userID entity.RecordID) []entity.Appointment {
	appointments, err := u.appointmentRepo.FindByColumn(ctx, idColumn, userID)
	if err != nil {
		u.log.Warnf("Failed to fetch appointments where %s = %d: %+v", idColumn, userID, err)
		return []entity.Appointment{}
	}

	booked := make([]entity.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.IsBooked() {
			booked = append(booked, appointment)
		}
	}
	return booked
}

func (u *appointmentUsecase) ListCancellable(ctx context.Context, session *entity.Session) (*dto.CancellableListResponse, error) {
	if err := requireRole(session, entity.RoleDoctor, entity.RolePatient); err != nil {
		return nil, err
	}
	column, _ := session.OwnerColumn()

	booked := u.GetCancellableAppointments(ctx, column, session.Identity.UserID)
	items := make([]dto.CancellableAppointmentResponse, len(booked))
	for i := range booked {
		items[i] = converter.AppointmentToCancellable(&booked[i])
	}

	return &dto.CancellableListResponse{
		Appointments: items,
		Total:        len(items),
	}, nil
}

// ListAppointments returns the caller's appointments; nurses see every appointment
func (u *appointmentUsecase) ListAppointments(ctx context.Context, session *entity.Session) (*dto.AppointmentListResponse, error) {
	if session == nil {
		return nil, ErrNoSession
	}

	var (
		appointments []entity.Appointment
		err          error
	)
	if column, ok := session.OwnerColumn(); ok {
		appointments, err = u.appointmentRepo.FindByColumn(ctx, column, session.Identity.UserID)
	} else {
		appointments, err = u.appointmentRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s %d: %+v", session.Identity.Role, session.Identity.UserID, err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// BookAppointment inserts a Booked appointment with Medium priority.
//
// Flow for a doctor booking a new patient:
// 1. Validate the date, the patient choice and the new patient's name
// 2. Insert the patient and take its generated id
// 3. Insert the appointment for that id
// A failed step 2 stops the booking.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, session *entity.Session, req *dto.BookAppointmentRequest) (*dto.BookingResponse, error) {
	resp, err := u.book(ctx, session, req)
	u.metrics.RecordTransition("book", outcome(err))
	return resp, err
}

func (u *appointmentUsecase) book(ctx context.Context, session *entity.Session, req *dto.BookAppointmentRequest) (*dto.BookingResponse, error) {
	if err := requireRole(session, entity.RoleDoctor, entity.RolePatient); err != nil {
		return nil, err
	}

	scheduledAt, err := u.parseAppointmentTime(req.AppointmentDateTime)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ClinicID:            u.clinicID,
		AppointmentDateTime: scheduledAt.Format(entity.AppointmentDateTimeLayout),
		Status:              entity.AppointmentStatusBooked,
		Priority:            entity.AppointmentPriorityMedium,
		Reason:              strings.TrimSpace(req.Reason),
	}

	var created *entity.Patient
	switch session.Identity.Role {
	case entity.RoleDoctor:
		appointment.DoctorID = session.Identity.UserID
		switch {
		case req.NewPatient != nil && req.PatientID > 0:
			return nil, ErrPatientChoiceAmbiguous
		case req.NewPatient != nil:
			created, err = u.registrar.register(ctx, req.NewPatient)
			if err != nil {
				return nil, err
			}
			appointment.PatientID = created.PatientID
		case req.PatientID > 0:
			appointment.PatientID = req.PatientID
		default:
			return nil, ErrPatientRequired
		}
	case entity.RolePatient:
		if req.NewPatient != nil {
			return nil, ErrPatientCannotRegister
		}
		if req.DoctorID <= 0 {
			return nil, ErrDoctorRequired
		}
		appointment.PatientID = session.Identity.UserID
		appointment.DoctorID = req.DoctorID
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if created != nil {
			u.log.Warnf("Patient %d was registered but the appointment failed", created.PatientID)
		}
		u.log.Warnf("Failed to book appointment: %+v", err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	u.log.Infof("Booked appointment %d for patient %d with doctor %d at %s",
		appointment.AppointmentID, appointment.PatientID, appointment.DoctorID, appointment.AppointmentDateTime)

	return &dto.BookingResponse{
		Appointment:    *converter.AppointmentToResponse(appointment),
		CreatedPatient: converter.PatientToResponse(created),
	}, nil
}

// CancelAppointment moves an appointment owned by the caller to Cancelled.
// The prior status is not checked, so cancelling twice succeeds twice.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, session *entity.Session, appointmentID entity.RecordID) error {
	err := u.cancel(ctx, session, appointmentID)
	u.metrics.RecordTransition("cancel", outcome(err))
	return err
}

func (u *appointmentUsecase) cancel(ctx context.Context, session *entity.Session, appointmentID entity.RecordID) error {
	if err := requireRole(session, entity.RoleDoctor, entity.RolePatient); err != nil {
		return err
	}
	column, _ := session.OwnerColumn()

	affected, err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, entity.AppointmentStatusCancelled, column, session.Identity.UserID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointmentID, err)
		return remoteFailure(u.metrics, "", err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.log.Infof("Appointment %d cancelled by %s %d", appointmentID, session.Identity.Role, session.Identity.UserID)
	return nil
}

func (u *appointmentUsecase) parseAppointmentTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	loc := u.now().Location()
	var (
		scheduledAt time.Time
		err         error
	)
	for _, layout := range appointmentLayouts {
		scheduledAt, err = time.ParseInLocation(layout, value, loc)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, ErrInvalidAppointmentTime
	}
	return scheduledAt, nil
}
