package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
)

const (
	registrationPath = "/launch-event/free-registration"
	bookingPath      = "/launch-event/rudraksha-booking"
	otpRequestPath   = "/auth/otp/request"
	otpVerifyPath    = "/auth/otp/verify"
	currentUserPath  = "/users/me"
)

type RegistryAdapter struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  out.LoggerPort
}

func NewRegistryAdapter(cfg *config.Config, logger out.LoggerPort) *RegistryAdapter {
	return &RegistryAdapter{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.Registry.URL,
		apiKey:  cfg.Registry.APIKey,
		logger:  logger,
	}
}

// Бэкенд заворачивает успешный ответ в двойной конверт data.data
type registrationEnvelope struct {
	Data struct {
		Data struct {
			Registration *domain.RegistrationRecord `json:"registration"`
		} `json:"data"`
	} `json:"data"`
}

type bookingEnvelope struct {
	Data struct {
		Data struct {
			Booking *domain.BookingRecord `json:"booking"`
		} `json:"data"`
	} `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (a *RegistryAdapter) SubmitRegistration(ctx context.Context, payload domain.RegistrationPayload) (*domain.RegistrationRecord, error) {
	a.logger.Info("registry.registration.submit", out.LogFields{
		"phoneNumber": payload.PhoneNumber,
	})

	body, err := a.post(ctx, registrationPath, payload)
	if err != nil {
		a.logger.Error("registry.registration.submit_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	var envelope registrationEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		a.logger.Error("registry.registration.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	if envelope.Data.Data.Registration == nil {
		return nil, fmt.Errorf("registry: empty registration in response")
	}

	a.logger.Debug("registry.registration.submit_success", out.LogFields{
		"id": envelope.Data.Data.Registration.ID,
	})

	return envelope.Data.Data.Registration, nil
}

func (a *RegistryAdapter) SubmitBooking(ctx context.Context, payload domain.BookingPayload) (*domain.BookingRecord, error) {
	a.logger.Info("registry.booking.submit", out.LogFields{
		"phoneNumber": payload.PhoneNumber,
		"quantity":    payload.RudrakshaQuantity,
	})

	body, err := a.post(ctx, bookingPath, payload)
	if err != nil {
		a.logger.Error("registry.booking.submit_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	var envelope bookingEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		a.logger.Error("registry.booking.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	if envelope.Data.Data.Booking == nil {
		return nil, fmt.Errorf("registry: empty booking in response")
	}

	a.logger.Debug("registry.booking.submit_success", out.LogFields{
		"id": envelope.Data.Data.Booking.ID,
	})

	return envelope.Data.Data.Booking, nil
}

func (a *RegistryAdapter) RequestOTP(ctx context.Context, phoneNumber string) error {
	a.logger.Info("registry.otp.request", out.LogFields{
		"phoneNumber": phoneNumber,
	})

	_, err := a.post(ctx, otpRequestPath, map[string]string{
		"phoneNumber": phoneNumber,
	})
	return err
}

func (a *RegistryAdapter) VerifyOTP(ctx context.Context, phoneNumber, code string) (bool, error) {
	a.logger.Info("registry.otp.verify", out.LogFields{
		"phoneNumber": phoneNumber,
	})

	body, err := a.post(ctx, otpVerifyPath, map[string]string{
		"phoneNumber": phoneNumber,
		"code":        code,
	})
	if err != nil {
		var registryErr *out.RegistryError
		// Неверный код это не сбой транспорта
		if errors.As(err, &registryErr) && registryErr.StatusCode == http.StatusUnauthorized {
			return false, nil
		}
		return false, err
	}

	var result struct {
		Verified bool `json:"verified"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return false, err
	}
	return result.Verified, nil
}

func (a *RegistryAdapter) GetCurrentUser(ctx context.Context, phoneNumber string) (*domain.UserProfile, error) {
	query := nurl.Values{}
	query.Add("phoneNumber", phoneNumber)

	url := fmt.Sprintf("%s%s?%s", a.baseURL, currentUserPath, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Незнакомый телефон - это пустой префилл, не ошибка
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &out.RegistryError{StatusCode: resp.StatusCode}
	}

	var profile domain.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *RegistryAdapter) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		registryErr := &out.RegistryError{StatusCode: resp.StatusCode}
		var parsed errorBody
		if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil {
			registryErr.Message = parsed.Message
		}
		return nil, registryErr
	}

	return body, nil
}
