package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields) {}
func (nopLogger) Info(event string, fields out.LogFields)  {}
func (nopLogger) Warn(event string, fields out.LogFields)  {}
func (nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

// Заглушка бэкенда регистраций, отдает фиксированную запись
type stubRegistry struct{}

func (stubRegistry) SubmitRegistration(ctx context.Context, payload domain.RegistrationPayload) (*domain.RegistrationRecord, error) {
	return &domain.RegistrationRecord{ID: "reg-001", FullName: payload.FullName}, nil
}

func (stubRegistry) SubmitBooking(ctx context.Context, payload domain.BookingPayload) (*domain.BookingRecord, error) {
	return &domain.BookingRecord{RegistrationRecord: domain.RegistrationRecord{ID: "book-001"}}, nil
}

func (stubRegistry) RequestOTP(ctx context.Context, phoneNumber string) error { return nil }

func (stubRegistry) VerifyOTP(ctx context.Context, phoneNumber, code string) (bool, error) {
	return true, nil
}

func (stubRegistry) GetCurrentUser(ctx context.Context, phoneNumber string) (*domain.UserProfile, error) {
	return nil, nil
}

type stubPlaces struct{}

func (stubPlaces) Ready() bool { return false }

func (stubPlaces) Autocomplete(ctx context.Context, input string) ([]domain.PlacePrediction, error) {
	return nil, nil
}

func (stubPlaces) ResolvePlace(ctx context.Context, placeID string) (*domain.ResolvedPlace, error) {
	return nil, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Event.Dates = []string{"2026-02-15", "2026-02-16"}
	cfg.Event.UnitPrice = 999

	svc := services.NewFormSessionService(stubRegistry{}, stubPlaces{}, nil, cfg, nopLogger{})

	router := gin.New()
	NewFormController(svc, cfg).RegisterRoutes(router)
	NewCatalogController(nil, cfg).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeState(t *testing.T, recorder *httptest.ResponseRecorder) domain.SessionState {
	t.Helper()
	var state domain.SessionState
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &state))
	return state
}

func TestRegistrationOverHTTP(t *testing.T) {
	router := testRouter()

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/forms/registration", nil)
	require.Equal(t, http.StatusCreated, recorder.Code)
	opened := decodeState(t, recorder)
	assert.Equal(t, domain.FlowRegistration, opened.Flow)

	base := "/api/v1/forms/" + opened.ID.String()

	recorder = doJSON(t, router, http.MethodPatch, base+"/fields", map[string]string{
		"fullName":    "Asha Rao",
		"phoneNumber": "9876543210",
		"gender":      "female",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodPut, base+"/dates", map[string][]string{
		"dates": {"2026-02-15"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	state := decodeState(t, recorder)
	assert.Equal(t, "2026-02-15", state.ViewDate)

	recorder = doJSON(t, router, http.MethodPut, base+"/dates/2026-02-15/slots/06:00:00-08:00:00", map[string]bool{
		"checked": true,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	state = decodeState(t, recorder)
	assert.True(t, state.CanSubmit)

	recorder = doJSON(t, router, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	state = decodeState(t, recorder)
	assert.Equal(t, domain.SessionStatusSubmittedSuccess, state.Status)
	require.NotNil(t, state.Result)
	assert.Equal(t, "reg-001", state.Result.Registration.ID)

	recorder = doJSON(t, router, http.MethodPost, base+"/dismiss", nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestViewDateOverHTTP(t *testing.T) {
	router := testRouter()

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/forms/registration", nil)
	require.Equal(t, http.StatusCreated, recorder.Code)
	opened := decodeState(t, recorder)
	base := "/api/v1/forms/" + opened.ID.String()

	recorder = doJSON(t, router, http.MethodPut, base+"/dates", map[string][]string{
		"dates": {"2026-02-15", "2026-02-16"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	state := decodeState(t, recorder)
	assert.Equal(t, "2026-02-16", state.ViewDate)

	// Каждая мутация возвращает свежую проекцию состояния
	recorder = doJSON(t, router, http.MethodPut, base+"/view-date", map[string]string{
		"date": "2026-02-15",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	state = decodeState(t, recorder)
	assert.Equal(t, "2026-02-15", state.ViewDate)
}

func TestSubmitInvalidFormOverHTTP(t *testing.T) {
	router := testRouter()

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/forms/registration", nil)
	opened := decodeState(t, recorder)

	recorder = doJSON(t, router, http.MethodPost, "/api/v1/forms/"+opened.ID.String()+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestErrorStatusMapping(t *testing.T) {
	router := testRouter()

	t.Run("malformed session id", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/forms/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/forms/b4b6f4a0-6f65-4b6e-9a9e-000000000000", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("booking-only operation on registration flow", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/forms/registration", nil)
		opened := decodeState(t, recorder)

		recorder = doJSON(t, router, http.MethodPut, "/api/v1/forms/"+opened.ID.String()+"/quantity", map[string]string{
			"quantity": "2",
		})
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("out of range party size", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/forms/registration", nil)
		opened := decodeState(t, recorder)

		recorder = doJSON(t, router, http.MethodPut, "/api/v1/forms/"+opened.ID.String()+"/party-size", map[string]int{
			"size": 11,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("date outside the allowed set", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/v1/forms/registration", nil)
		opened := decodeState(t, recorder)

		recorder = doJSON(t, router, http.MethodPut, "/api/v1/forms/"+opened.ID.String()+"/dates", map[string][]string{
			"dates": {"2026-02-17"},
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	router := testRouter()

	t.Run("time slots expose ids", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/catalog/time-slots", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			TimeSlots []struct {
				ID        string `json:"id"`
				Label     string `json:"label"`
				FullWidth bool   `json:"fullWidth"`
			} `json:"timeSlots"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.TimeSlots, 9)
		assert.Equal(t, "06:00:00-08:00:00", body.TimeSlots[0].ID)

		last := body.TimeSlots[len(body.TimeSlots)-1]
		assert.Equal(t, "22:00:00-06:00:00", last.ID)
		assert.True(t, last.FullWidth)
	})

	t.Run("event dates carry display form", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/catalog/event-dates", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Dates []struct {
				Key     string `json:"key"`
				Display string `json:"display"`
			} `json:"dates"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Dates, 2)
		assert.Equal(t, "2026-02-15", body.Dates[0].Key)
		assert.Equal(t, "15-02-2026", body.Dates[0].Display)
	})

	t.Run("temples catalog is non-empty", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/catalog/temples", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Temples []domain.Temple `json:"temples"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Temples)
	})

	t.Run("availability without cache is unknown", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/catalog/availability/2026-02-15", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Known bool `json:"known"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.False(t, body.Known)
	})
}
