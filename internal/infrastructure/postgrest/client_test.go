package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinic-portal/config"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.StoreConfig{URL: server.URL, Key: "anon-key", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StoreConfig
		wantErr bool
	}{
		{name: "valid", cfg: config.StoreConfig{URL: "https://example.supabase.co", Key: "k"}},
		{name: "missing url", cfg: config.StoreConfig{Key: "k"}, wantErr: true},
		{name: "missing key", cfg: config.StoreConfig{URL: "https://example.supabase.co"}, wantErr: true},
		{name: "relative url", cfg: config.StoreConfig{URL: "example", Key: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://example.supabase.co/rest/v1", client.baseURL)
		})
	}
}

func TestClient_Select(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/appointment", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		query := r.URL.Query()
		assert.Equal(t, "*", query.Get("select"))
		assert.Equal(t, "eq.12", query.Get("doctor_id"))
		assert.Equal(t, "in.(Booked,Checked In)", query.Get("status"))
		assert.True(t, strings.HasPrefix(query.Get("order"), "appointment_datetime.desc"), query.Get("order"))
		assert.Equal(t, "5", query.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"appointment_id":7,"patient_id":3,"doctor_id":12,"clinic_id":1,"appointment_datetime":"2024-01-01T09:00:00","status":"Booked","reason":"checkup","priority":"Medium"}]`))
	})

	var appointments []entity.Appointment
	err := client.Select(context.Background(), repository.Query{
		Table: entity.TableAppointment,
		Filters: []repository.Filter{
			repository.Eq(entity.ColumnDoctorID, entity.RecordID(12)),
			repository.In(entity.ColumnStatus, "Booked", "Checked In"),
		},
		Order: "appointment_datetime desc",
		Limit: 5,
	}, &appointments)

	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, entity.RecordID(7), appointments[0].AppointmentID)
	assert.Equal(t, entity.AppointmentStatusBooked, appointments[0].Status)
}

func TestClient_Select_Columns(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "name", r.URL.Query().Get("select"))
		w.Write([]byte(`[]`))
	})

	var rows []entity.Row
	err := client.Select(context.Background(), repository.Query{
		Table:   entity.TableStaff,
		Columns: []string{entity.ColumnName},
	}, &rows)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClient_Insert(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/patient", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jane Roe", body["name"])
		assert.NotContains(t, body, "patient_id")
		assert.NotContains(t, body, "email")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"patient_id":41,"name":"Jane Roe"}]`))
	})

	patient := &entity.Patient{Name: "Jane Roe"}
	err := client.Insert(context.Background(), entity.TablePatient, patient)

	require.NoError(t, err)
	assert.Equal(t, entity.RecordID(41), patient.PatientID)
}

func TestClient_Insert_EmptyRepresentation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[]`))
	})

	err := client.Insert(context.Background(), entity.TablePatient, &entity.Patient{Name: "Jane Roe"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert returned no rows")
}

func TestClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.7", r.URL.Query().Get("appointment_id"))
		assert.Equal(t, "eq.12", r.URL.Query().Get("doctor_id"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cancelled", body["status"])

		w.Write([]byte(`[{"appointment_id":7,"status":"Cancelled"}]`))
	})

	affected, err := client.Update(context.Background(), entity.TableAppointment,
		map[string]interface{}{entity.ColumnStatus: entity.AppointmentStatusCancelled},
		repository.Eq(entity.ColumnAppointmentID, entity.RecordID(7)),
		repository.Eq(entity.ColumnDoctorID, entity.RecordID(12)),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestClient_Update_RequiresFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be sent")
	})

	_, err := client.Update(context.Background(), entity.TableAppointment, map[string]interface{}{"status": "Cancelled"})

	assert.Error(t, err)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantKind   repository.RemoteErrorKind
		wantMsg    string
	}{
		{
			name:       "recursive policy",
			statusCode: http.StatusInternalServerError,
			body:       `{"code":"42P17","message":"infinite recursion detected in policy for relation \"staff\"","details":null,"hint":null}`,
			wantKind:   repository.RemoteKindPolicyRecursion,
			wantMsg:    "Row Level Security policy issue in staff",
		},
		{
			name:       "missing column",
			statusCode: http.StatusBadRequest,
			body:       `{"code":"42703","message":"column staff.nickname does not exist"}`,
			wantKind:   repository.RemoteKindSchema,
			wantMsg:    "Column or table error in staff: column staff.nickname does not exist",
		},
		{
			name:       "unique violation",
			statusCode: http.StatusConflict,
			body:       `{"code":"23505","message":"duplicate key value violates unique constraint"}`,
			wantKind:   repository.RemoteKindConflict,
			wantMsg:    "Error accessing staff",
		},
		{
			name:       "plain text body",
			statusCode: http.StatusBadGateway,
			body:       `upstream down`,
			wantKind:   repository.RemoteKindGeneric,
			wantMsg:    "Error accessing staff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})

			var rows []entity.Row
			err := client.Select(context.Background(), repository.Query{Table: entity.TableStaff}, &rows)

			require.Error(t, err)
			assert.True(t, repository.IsRemoteKind(err, tt.wantKind), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_Update_NoMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		w.Write([]byte(`[]`))
	})

	affected, err := client.Update(context.Background(), entity.TableAppointment,
		map[string]interface{}{entity.ColumnStatus: entity.AppointmentStatusCancelled},
		repository.Eq(entity.ColumnAppointmentID, entity.RecordID(8)),
	)

	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestClassifyError(t *testing.T) {
	err := classifyError(entity.TableAppointment, errors.New("(23505) duplicate key value violates unique constraint"))

	var remoteErr *repository.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "23505", remoteErr.Code)
	assert.Equal(t, repository.RemoteKindConflict, remoteErr.Kind)
	assert.Equal(t, "duplicate key value violates unique constraint", remoteErr.Message)

	assert.True(t, repository.IsRemoteKind(classifyError(entity.TableStaff, context.DeadlineExceeded), repository.RemoteKindUnavailable))
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := NewClient(config.StoreConfig{URL: server.URL, Key: "k", Timeout: time.Second})
	require.NoError(t, err)

	var rows []entity.Row
	err = client.Select(context.Background(), repository.Query{Table: entity.TableDoctor}, &rows)

	assert.True(t, repository.IsRemoteKind(err, repository.RemoteKindUnavailable))
}
