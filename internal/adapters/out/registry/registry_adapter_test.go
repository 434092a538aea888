package registry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
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

func newTestAdapter(serverURL string) *RegistryAdapter {
	cfg := &config.Config{}
	cfg.Registry.URL = serverURL
	cfg.Registry.APIKey = "test-key"
	return NewRegistryAdapter(cfg, nopLogger{})
}

func TestSubmitRegistration(t *testing.T) {
	t.Run("unwraps the double data envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/launch-event/free-registration", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

			var payload domain.RegistrationPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Asha Rao", payload.FullName)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"data": map[string]interface{}{
						"registration": map[string]interface{}{
							"id":       "reg-001",
							"fullName": "Asha Rao",
						},
					},
				},
			})
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		record, err := adapter.SubmitRegistration(context.Background(), domain.RegistrationPayload{
			FullName:    "Asha Rao",
			PhoneNumber: "9876543210",
		})

		require.NoError(t, err)
		assert.Equal(t, "reg-001", record.ID)
		assert.Equal(t, "Asha Rao", record.FullName)
	})

	t.Run("error body message lands in RegistryError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"message": "Phone already registered"})
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		_, err := adapter.SubmitRegistration(context.Background(), domain.RegistrationPayload{})

		var registryErr *out.RegistryError
		require.ErrorAs(t, err, &registryErr)
		assert.Equal(t, http.StatusUnprocessableEntity, registryErr.StatusCode)
		assert.Equal(t, "Phone already registered", registryErr.Message)
	})

	t.Run("unparseable error body keeps only the status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		_, err := adapter.SubmitRegistration(context.Background(), domain.RegistrationPayload{})

		var registryErr *out.RegistryError
		require.ErrorAs(t, err, &registryErr)
		assert.Equal(t, http.StatusInternalServerError, registryErr.StatusCode)
		assert.Empty(t, registryErr.Message)
	})
}

func TestSubmitBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/launch-event/rudraksha-booking", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"data": map[string]interface{}{
					"booking": map[string]interface{}{
						"id":                "book-001",
						"rudrakshaQuantity": 2,
						"amountDue":         1998,
					},
				},
			},
		})
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	record, err := adapter.SubmitBooking(context.Background(), domain.BookingPayload{
		RudrakshaQuantity: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "book-001", record.ID)
	assert.Equal(t, 2, record.RudrakshaQuantity)
	assert.Equal(t, 1998, record.AmountDue)
}

func TestVerifyOTP(t *testing.T) {
	t.Run("verified flag comes from the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/otp/verify", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]bool{"verified": true})
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		verified, err := adapter.VerifyOTP(context.Background(), "9876543210", "123456")
		require.NoError(t, err)
		assert.True(t, verified)
	})

	t.Run("unauthorized means wrong code not transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		verified, err := adapter.VerifyOTP(context.Background(), "9876543210", "000000")
		require.NoError(t, err)
		assert.False(t, verified)
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("passes phone as query parameter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/me", r.URL.Path)
			assert.Equal(t, "9876543210", r.URL.Query().Get("phoneNumber"))
			json.NewEncoder(w).Encode(domain.UserProfile{
				FullName:    "Asha Rao",
				PhoneNumber: "9876543210",
			})
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		profile, err := adapter.GetCurrentUser(context.Background(), "9876543210")
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "Asha Rao", profile.FullName)
	})

	t.Run("unknown phone is nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		profile, err := adapter.GetCurrentUser(context.Background(), "9999999999")
		require.NoError(t, err)
		assert.Nil(t, profile)
	})
}

func TestTransportErrorIsNotRegistryError(t *testing.T) {
	adapter := newTestAdapter("http://127.0.0.1:1")
	_, err := adapter.SubmitRegistration(context.Background(), domain.RegistrationPayload{})

	require.Error(t, err)
	var registryErr *out.RegistryError
	assert.False(t, errors.As(err, &registryErr))
}
