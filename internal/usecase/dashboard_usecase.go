package usecase

import (
	"context"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/pkg/monitoring"

	"github.com/sirupsen/logrus"
)

// DashboardUsecase serves the read-only views of each role
type DashboardUsecase interface {
	GetMyPatients(ctx context.Context, session *entity.Session) (*dto.PatientListResponse, error)
	GetPayments(ctx context.Context, session *entity.Session) (*dto.PaymentListResponse, error)
	GetAssignedDoctors(ctx context.Context, session *entity.Session) (*dto.RecordListResponse, error)
	GetPatientProfile(ctx context.Context, session *entity.Session) (*dto.PatientResponse, error)
	GetPrescriptions(ctx context.Context, session *entity.Session) (*dto.PrescriptionListResponse, error)
	GetDoctorOptions(ctx context.Context, session *entity.Session) (*dto.StaffListResponse, error)
	GetPatientOptions(ctx context.Context, session *entity.Session) (*dto.PatientListResponse, error)
}

type dashboardUsecase struct {
	log              *logrus.Logger
	directoryRepo    repository.DirectoryRepository
	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	staffRepo        repository.StaffRepository
	prescriptionRepo repository.PrescriptionRepository
	paymentRepo      repository.PaymentRepository
	metrics          *monitoring.MetricsCollector
}

func NewDashboardUsecase(
	log *logrus.Logger,
	directoryRepo repository.DirectoryRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	staffRepo repository.StaffRepository,
	prescriptionRepo repository.PrescriptionRepository,
	paymentRepo repository.PaymentRepository,
	metrics *monitoring.MetricsCollector,
) DashboardUsecase {
	return &dashboardUsecase{
		log:              log,
		directoryRepo:    directoryRepo,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		staffRepo:        staffRepo,
		prescriptionRepo: prescriptionRepo,
		paymentRepo:      paymentRepo,
		metrics:          metrics,
	}
}

// GetMyPatients returns the distinct patients of the doctor's appointments
func (u *dashboardUsecase) GetMyPatients(ctx context.Context, session *entity.Session) (*dto.PatientListResponse, error) {
	if err := requireRole(session, entity.RoleDoctor); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByColumn(ctx, entity.ColumnDoctorID, session.Identity.UserID)
	if err != nil {
		u.log.Warnf("Failed to fetch appointments of doctor %d: %+v", session.Identity.UserID, err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	seen := make(map[entity.RecordID]struct{}, len(appointments))
	ids := make([]entity.RecordID, 0, len(appointments))
	for _, appointment := range appointments {
		if _, ok := seen[appointment.PatientID]; ok {
			continue
		}
		seen[appointment.PatientID] = struct{}{}
		ids = append(ids, appointment.PatientID)
	}

	patients, err := u.patientRepo.FindByIDs(ctx, ids)
	if err != nil {
		u.log.Warnf("Failed to fetch patients of doctor %d: %+v", session.Identity.UserID, err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *dashboardUsecase) GetPayments(ctx context.Context, session *entity.Session) (*dto.PaymentListResponse, error) {
	if err := requireRole(session, entity.RoleDoctor); err != nil {
		return nil, err
	}

	payments, err := u.paymentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch payments: %+v", err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	return converter.PaymentsToListResponse(payments), nil
}

func (u *dashboardUsecase) GetAssignedDoctors(ctx context.Context, session *entity.Session) (*dto.RecordListResponse, error) {
	if err := requireRole(session, entity.RoleNurse); err != nil {
		return nil, err
	}

	schema, _ := entity.RoleDoctor.Schema()
	rows, err := u.directoryRepo.FindAll(ctx, schema)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	return &dto.RecordListResponse{
		Records: rows,
		Total:   len(rows),
	}, nil
}

func (u *dashboardUsecase) GetPatientProfile(ctx context.Context, session *entity.Session) (*dto.PatientResponse, error) {
	if err := requireRole(session, entity.RolePatient); err != nil {
		return nil, err
	}
	column, _ := session.OwnerColumn()

	patient, err := u.patientRepo.FindByID(ctx, column, session.Identity.UserID)
	if err != nil {
		u.log.Warnf("Failed to fetch patient %d: %+v", session.Identity.UserID, err)
		return nil, remoteFailure(u.metrics, "", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// GetPrescriptions returns the prescriptions written on the patient's appointments
func (u *dashboardUsecase) GetPrescriptions(ctx context.Context, session *entity.Session) (*dto.PrescriptionListResponse, error) {
	if err := requireRole(session, entity.RolePatient); err != nil {
		return nil, err
	}
	column, _ := session.OwnerColumn()

	appointments, err := u.appointmentRepo.FindByColumn(ctx, column, session.Identity.UserID)
	if err != nil {
		u.log.Warnf("Failed to fetch appointments of patient %d: %+v", session.Identity.UserID, err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	ids := make([]entity.RecordID, len(appointments))
	for i, appointment := range appointments {
		ids[i] = appointment.AppointmentID
	}

	prescriptions, err := u.prescriptionRepo.FindByAppointmentIDs(ctx, ids)
	if err != nil {
		u.log.Warnf("Failed to fetch prescriptions of patient %d: %+v", session.Identity.UserID, err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *dashboardUsecase) GetDoctorOptions(ctx context.Context, session *entity.Session) (*dto.StaffListResponse, error) {
	if err := requireRole(session, entity.RolePatient); err != nil {
		return nil, err
	}

	doctors, err := u.staffRepo.FindByType(ctx, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	return &dto.StaffListResponse{
		Staff: converter.StaffToResponses(doctors),
		Total: len(doctors),
	}, nil
}

func (u *dashboardUsecase) GetPatientOptions(ctx context.Context, session *entity.Session) (*dto.PatientListResponse, error) {
	if err := requireRole(session, entity.RoleDoctor); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch patients: %+v", err)
		return nil, remoteFailure(u.metrics, "", err)
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
