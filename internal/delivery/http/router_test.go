package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medrep-visits/internal/delivery/http/handler"
	"medrep-visits/internal/delivery/http/middleware"
	"medrep-visits/internal/infrastructure/storage"
	"medrep-visits/internal/repository"
	"medrep-visits/internal/usecase"
	"medrep-visits/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newTestRouter(t *testing.T, store storage.RecordStore) *mux.Router {
	t.Helper()
	log, _ := test.NewNullLogger()
	clock := func() time.Time { return time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC) }

	doctorRepo := repository.NewDoctorRepository(store, log)
	appointmentRepo := repository.NewAppointmentRepository(store, log)

	router := NewRouter(
		handler.NewDoctorHandler(usecase.NewDoctorUsecase(log, doctorRepo)),
		handler.NewAppointmentHandler(usecase.NewAppointmentUsecase(log, appointmentRepo, doctorRepo, clock), validator.NewValidator()),
		middleware.NewCORSMiddleware(""),
		middleware.NewLoggingMiddleware(log),
		nil,
	)
	return router.Setup()
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

const bookingBody = `{
	"repName": "Alex Morgan",
	"repCompany": "Acme Pharma",
	"repPhone": "+1 555 0100",
	"repEmail": "alex@acme.example",
	"doctorId": "1",
	"date": "2026-11-02",
	"time": "09:00",
	"purpose": "Product introduction"
}`

func TestRouter_HealthCheck(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStore(0))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_Preflight(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStore(0))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/appointments/abc/status", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Doctors(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStore(0))

	code, env := do(t, h, http.MethodGet, "/api/v1/doctors?search=children", "")
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Doctors []struct {
			ID string `json:"id"`
		} `json:"doctors"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "3", list.Doctors[0].ID)

	code, _ = do(t, h, http.MethodGet, "/api/v1/doctors/2", "")
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, h, http.MethodGet, "/api/v1/doctors/42", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Doctor not found", env.Message)

	code, env = do(t, h, http.MethodGet, "/api/v1/specialties", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"specialties":["Cardiology","Dermatology","Neurology","Orthopedics","Pediatrics"]}`, string(env.Data))
}

func TestRouter_BookingLifecycle(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStore(0))

	code, env := do(t, h, http.MethodPost, "/api/v1/appointments", bookingBody)
	require.Equal(t, http.StatusCreated, code, env.Message)
	var booked struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		DoctorName string `json:"doctorName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booked))
	assert.Equal(t, "scheduled", booked.Status)
	assert.Equal(t, "Dr. Sarah Johnson", booked.DoctorName)

	code, env = do(t, h, http.MethodGet, "/api/v1/appointments/upcoming", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), booked.ID)

	code, _ = do(t, h, http.MethodPatch, "/api/v1/appointments/"+booked.ID+"/status", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, h, http.MethodGet, "/api/v1/appointments/upcoming", "")
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(env.Data), booked.ID)

	code, env = do(t, h, http.MethodGet, "/api/v1/appointments/history?status=completed", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), booked.ID)

	code, env = do(t, h, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"doctorsVisited":1`)

	code, env = do(t, h, http.MethodDelete, "/api/v1/appointments/"+booked.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"removed":1}`, string(env.Data))

	code, env = do(t, h, http.MethodDelete, "/api/v1/appointments/"+booked.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"removed":0}`, string(env.Data))
}

func TestRouter_BookingValidation(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStore(0))

	code, env := do(t, h, http.MethodPost, "/api/v1/appointments", `{"repName":"Alex","notes":"hi"}`)
	require.Equal(t, http.StatusBadRequest, code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	assert.Equal(t, "doctorId is required", fields["doctorId"])
	assert.Contains(t, fields, "purpose")
	assert.NotContains(t, fields, "repName")
	assert.NotContains(t, fields, "notes")

	code, _ = do(t, h, http.MethodPost, "/api/v1/appointments", `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_UpdateErrors(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStore(0))

	code, _ := do(t, h, http.MethodPatch, "/api/v1/appointments/missing", `{"purpose":"Follow-up"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, h, http.MethodPatch, "/api/v1/appointments/missing/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, env := do(t, h, http.MethodPatch, "/api/v1/appointments/missing/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(env.Error), "status must be one of")

	code, _ = do(t, h, http.MethodPatch, "/api/v1/appointments/missing", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodGet, "/api/v1/appointments/history?status=pending", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_MalformedStore(t *testing.T) {
	store := storage.NewMemoryStore(0)
	require.NoError(t, store.Write(context.Background(), storage.AppointmentsKey, `{"id":"not-an-array"}`))
	h := newTestRouter(t, store)

	code, env := do(t, h, http.MethodGet, "/api/v1/appointments", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Stored data is malformed", env.Message)
}

func TestRouter_QuotaExceeded(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStore(2048))

	var code int
	var env envelope
	for i := 0; i < 20; i++ {
		code, env = do(t, h, http.MethodPost, "/api/v1/appointments", bookingBody)
		if code != http.StatusCreated {
			break
		}
	}
	assert.Equal(t, http.StatusInsufficientStorage, code)
	assert.Contains(t, env.Message, "quota")
}
