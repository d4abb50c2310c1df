package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTableStore struct {
	mock.Mock
}

func (m *mockTableStore) Select(ctx context.Context, q domainRepo.Query, dest interface{}) error {
	args := m.Called(ctx, q, dest)
	return args.Error(0)
}

func (m *mockTableStore) Insert(ctx context.Context, table string, row interface{}) error {
	args := m.Called(ctx, table, row)
	return args.Error(0)
}

func (m *mockTableStore) Update(ctx context.Context, table string, patch map[string]interface{}, filters ...domainRepo.Filter) (int64, error) {
	args := m.Called(ctx, table, patch, filters)
	return args.Get(0).(int64), args.Error(1)
}

// rows decodes body into the destination handed to Select
func rows(t *testing.T, body string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		require.NoError(t, json.Unmarshal([]byte(body), args.Get(2)))
	}
}

func TestDirectoryRepository_Exists(t *testing.T) {
	ctx := context.Background()
	schema, _ := entity.RoleDoctor.Schema()
	store := new(mockTableStore)
	repo := NewDirectoryRepository(store)

	store.On("Select", ctx, domainRepo.Query{
		Table:   entity.TableDoctor,
		Columns: []string{entity.ColumnDoctorID},
		Filters: []domainRepo.Filter{domainRepo.Eq(entity.ColumnDoctorID, entity.RecordID(12))},
		Limit:   1,
	}, mock.Anything).Run(rows(t, `[{"doctor_id":12}]`)).Return(nil)

	exists, err := repo.Exists(ctx, schema, 12)

	require.NoError(t, err)
	assert.True(t, exists)
	store.AssertExpectations(t)
}

func TestDirectoryRepository_Exists_NoRows(t *testing.T) {
	ctx := context.Background()
	schema, _ := entity.RolePatient.Schema()
	store := new(mockTableStore)
	repo := NewDirectoryRepository(store)

	store.On("Select", ctx, mock.Anything, mock.Anything).Run(rows(t, `[]`)).Return(nil)

	exists, err := repo.Exists(ctx, schema, 404)

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDirectoryRepository_FindDisplayName(t *testing.T) {
	ctx := context.Background()
	schema, _ := entity.RoleNurse.Schema()

	t.Run("reads the name table", func(t *testing.T) {
		store := new(mockTableStore)
		repo := NewDirectoryRepository(store)
		store.On("Select", ctx, domainRepo.Query{
			Table:   entity.TableStaff,
			Columns: []string{entity.ColumnName},
			Filters: []domainRepo.Filter{domainRepo.Eq(entity.ColumnStaffID, entity.RecordID(4))},
			Limit:   1,
		}, mock.Anything).Run(rows(t, `[{"name":"Ana"}]`)).Return(nil)

		name, err := repo.FindDisplayName(ctx, schema, 4)

		require.NoError(t, err)
		assert.Equal(t, "Ana", name)
	})

	t.Run("missing row yields empty name", func(t *testing.T) {
		store := new(mockTableStore)
		repo := NewDirectoryRepository(store)
		store.On("Select", ctx, mock.Anything, mock.Anything).Run(rows(t, `[]`)).Return(nil)

		name, err := repo.FindDisplayName(ctx, schema, 4)

		require.NoError(t, err)
		assert.Empty(t, name)
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(mockTableStore)
		repo := NewDirectoryRepository(store)
		storeErr := domainRepo.NewRemoteError(entity.TableStaff, "42P17", "infinite recursion detected", nil)
		store.On("Select", ctx, mock.Anything, mock.Anything).Return(storeErr)

		_, err := repo.FindDisplayName(ctx, schema, 4)

		assert.True(t, errors.Is(err, storeErr))
	})
}

func TestPatientRepository_FindByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("empty ids skip the store", func(t *testing.T) {
		store := new(mockTableStore)
		repo := NewPatientRepository(store)

		patients, err := repo.FindByIDs(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, patients)
		store.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("filters with in", func(t *testing.T) {
		store := new(mockTableStore)
		repo := NewPatientRepository(store)
		store.On("Select", ctx, domainRepo.Query{
			Table:   entity.TablePatient,
			Filters: []domainRepo.Filter{domainRepo.In(entity.ColumnPatientID, entity.RecordID(3), entity.RecordID(5))},
			Order:   entity.ColumnPatientID,
		}, mock.Anything).Run(rows(t, `[{"patient_id":3,"name":"A"},{"patient_id":5,"name":"B"}]`)).Return(nil)

		patients, err := repo.FindByIDs(ctx, []entity.RecordID{3, 5})

		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, entity.RecordID(5), patients[1].PatientID)
	})
}

func TestPatientRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	store := new(mockTableStore)
	repo := NewPatientRepository(store)

	store.On("Select", ctx, domainRepo.Query{
		Table:   entity.TablePatient,
		Filters: []domainRepo.Filter{domainRepo.Eq(entity.ColumnPatientID, entity.RecordID(9))},
		Limit:   1,
	}, mock.Anything).Run(rows(t, `[]`)).Return(nil)

	patient, err := repo.FindByID(ctx, entity.ColumnPatientID, 9)

	require.NoError(t, err)
	assert.Nil(t, patient)
}

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := new(mockTableStore)
	repo := NewAppointmentRepository(store)

	store.On("Update", ctx, entity.TableAppointment,
		map[string]interface{}{entity.ColumnStatus: entity.AppointmentStatusCancelled},
		[]domainRepo.Filter{
			domainRepo.Eq(entity.ColumnAppointmentID, entity.RecordID(7)),
			domainRepo.Eq(entity.ColumnPatientID, entity.RecordID(3)),
		},
	).Return(int64(1), nil)

	affected, err := repo.UpdateStatus(ctx, 7, entity.AppointmentStatusCancelled, entity.ColumnPatientID, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	store.AssertExpectations(t)
}

func TestAppointmentRepository_FindByColumn(t *testing.T) {
	ctx := context.Background()
	store := new(mockTableStore)
	repo := NewAppointmentRepository(store)

	store.On("Select", ctx, domainRepo.Query{
		Table:   entity.TableAppointment,
		Filters: []domainRepo.Filter{domainRepo.Eq(entity.ColumnDoctorID, entity.RecordID(12))},
		Order:   "appointment_datetime",
	}, mock.Anything).Run(rows(t, `[{"appointment_id":7,"doctor_id":12,"status":"Booked"}]`)).Return(nil)

	appointments, err := repo.FindByColumn(ctx, entity.ColumnDoctorID, 12)

	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.True(t, appointments[0].IsBooked())
}

func TestPrescriptionRepository_FindByAppointmentIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("no appointments", func(t *testing.T) {
		store := new(mockTableStore)
		repo := NewPrescriptionRepository(store)

		prescriptions, err := repo.FindByAppointmentIDs(ctx, []entity.RecordID{})

		require.NoError(t, err)
		assert.Empty(t, prescriptions)
		store.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("scoped to appointments", func(t *testing.T) {
		store := new(mockTableStore)
		repo := NewPrescriptionRepository(store)
		store.On("Select", ctx, domainRepo.Query{
			Table:   entity.TablePrescription,
			Filters: []domainRepo.Filter{domainRepo.In(entity.ColumnAppointmentID, entity.RecordID(7))},
			Order:   entity.ColumnAppointmentID,
		}, mock.Anything).Run(rows(t, `[{"prescription_id":1,"appointment_id":7}]`)).Return(nil)

		prescriptions, err := repo.FindByAppointmentIDs(ctx, []entity.RecordID{7})

		require.NoError(t, err)
		assert.Len(t, prescriptions, 1)
	})
}

func TestStaffRepository_FindByType(t *testing.T) {
	ctx := context.Background()
	store := new(mockTableStore)
	repo := NewStaffRepository(store)

	store.On("Select", ctx, domainRepo.Query{
		Table:   entity.TableStaff,
		Columns: []string{entity.ColumnStaffID, entity.ColumnName},
		Filters: []domainRepo.Filter{domainRepo.Eq(entity.ColumnStaffType, "Doctor")},
		Order:   entity.ColumnName,
	}, mock.Anything).Run(rows(t, `[{"staff_id":12,"name":"Smith"}]`)).Return(nil)

	staff, err := repo.FindByType(ctx, entity.RoleDoctor)

	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Smith", staff[0].Name)
}

func TestPaymentRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	store := new(mockTableStore)
	repo := NewPaymentRepository(store)

	store.On("Select", ctx, domainRepo.Query{
		Table: entity.TablePayment,
		Order: "payment_id desc",
	}, mock.Anything).Run(rows(t, `[{"payment_id":2,"appointment_id":7,"amount":"99.90"}]`)).Return(nil)

	payments, err := repo.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "99.9", payments[0].Amount.String())
}
