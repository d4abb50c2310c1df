package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-portal/config"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/pkg/jwt"
	"clinic-portal/pkg/monitoring"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// MockDirectoryRepository is a mock implementation of DirectoryRepository
type MockDirectoryRepository struct {
	mock.Mock
}

func (m *MockDirectoryRepository) Exists(ctx context.Context, schema entity.RoleSchema, id entity.RecordID) (bool, error) {
	args := m.Called(ctx, schema, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDirectoryRepository) FindDisplayName(ctx context.Context, schema entity.RoleSchema, id entity.RecordID) (string, error) {
	args := m.Called(ctx, schema, id)
	return args.String(0), args.Error(1)
}

func (m *MockDirectoryRepository) FindAll(ctx context.Context, schema entity.RoleSchema) ([]entity.Row, error) {
	args := m.Called(ctx, schema)
	rows, _ := args.Get(0).([]entity.Row)
	return rows, args.Error(1)
}

// MockPatientRepository is a mock implementation of PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, column string, id entity.RecordID) (*entity.Patient, error) {
	args := m.Called(ctx, column, id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindByIDs(ctx context.Context, ids []entity.RecordID) ([]entity.Patient, error) {
	args := m.Called(ctx, ids)
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Error(1)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByColumn(ctx context.Context, column string, id entity.RecordID) ([]entity.Appointment, error) {
	args := m.Called(ctx, column, id)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id entity.RecordID, status entity.AppointmentStatus, ownerColumn string, ownerID entity.RecordID) (int64, error) {
	args := m.Called(ctx, id, status, ownerColumn, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindByType(ctx context.Context, staffType entity.Role) ([]entity.Staff, error) {
	args := m.Called(ctx, staffType)
	staff, _ := args.Get(0).([]entity.Staff)
	return staff, args.Error(1)
}

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []entity.RecordID) ([]entity.Prescription, error) {
	args := m.Called(ctx, appointmentIDs)
	prescriptions, _ := args.Get(0).([]entity.Prescription)
	return prescriptions, args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]entity.Payment, error) {
	args := m.Called(ctx)
	payments, _ := args.Get(0).([]entity.Payment)
	return payments, args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, tokenID string) (*entity.Session, error) {
	args := m.Called(ctx, tokenID)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", SessionExpiry: time.Hour})
}

func testMetrics(t *testing.T) *monitoring.MetricsCollector {
	t.Helper()
	return monitoring.NewMetricsCollector("clinic-portal-test")
}

func testSession(role entity.Role, id entity.RecordID) *entity.Session {
	schema, _ := role.Schema()
	identity := entity.Identity{
		UserID:      id,
		Role:        role,
		DisplayName: "Test " + role.String(),
		IDColumn:    schema.IDColumn,
	}
	return entity.NewSession("token-"+id.String(), identity, time.Now(), time.Hour)
}
