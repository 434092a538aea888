package out

import (
	"context"
	"fmt"

	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
)

// RegistryError - структурированная ошибка бэкенда регистраций.
// Message заполняется из тела ответа, когда бэкенд его прислал.
type RegistryError struct {
	StatusCode int
	Message    string
}

func (e *RegistryError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("registry: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("registry: unexpected status %d", e.StatusCode)
}

type RegistryPort interface {
	// Отправка заполненных форм
	SubmitRegistration(ctx context.Context, payload domain.RegistrationPayload) (*domain.RegistrationRecord, error)
	SubmitBooking(ctx context.Context, payload domain.BookingPayload) (*domain.BookingRecord, error)

	// Подтверждение телефона для потока брони
	RequestOTP(ctx context.Context, phoneNumber string) error
	VerifyOTP(ctx context.Context, phoneNumber, code string) (bool, error)

	// Профиль для префилла второго шага, nil без ошибки если пользователя нет
	GetCurrentUser(ctx context.Context, phoneNumber string) (*domain.UserProfile, error)
}
