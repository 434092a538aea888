package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
)

// FormSessionUseCase - операции над открытой сессией формы.
// Каждая мутация синхронна, атомарна и возвращает свежую проекцию состояния.
type FormSessionUseCase interface {
	OpenRegistration(ctx context.Context) (*domain.SessionState, error)
	OpenBooking(ctx context.Context) (*domain.SessionState, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.SessionState, error)
	CloseSession(ctx context.Context, sessionID uuid.UUID) error

	// Простые поля
	UpdateFields(ctx context.Context, sessionID uuid.UUID, changes domain.FieldChanges) (*domain.SessionState, error)

	// Даты и слоты
	SelectDates(ctx context.Context, sessionID uuid.UUID, dateKeys []string) (*domain.SessionState, error)
	RemoveDate(ctx context.Context, sessionID uuid.UUID, dateKey string) (*domain.SessionState, error)
	ToggleSlot(ctx context.Context, sessionID uuid.UUID, dateKey, slotID string, checked bool) (*domain.SessionState, error)
	SetViewDate(ctx context.Context, sessionID uuid.UUID, dateKey string) (*domain.SessionState, error)

	// Ростер
	SetPartySize(ctx context.Context, sessionID uuid.UUID, size int) (*domain.SessionState, error)
	UpdateMember(ctx context.Context, sessionID uuid.UUID, index int, changes domain.MemberChanges) (*domain.SessionState, error)

	// Адрес
	EditAddressLine1(ctx context.Context, sessionID uuid.UUID, value string) (*domain.SessionState, error)
	SuggestAddresses(ctx context.Context, sessionID uuid.UUID, input string) ([]domain.PlacePrediction, error)
	ResolveAddress(ctx context.Context, sessionID uuid.UUID, placeID string) (*domain.SessionState, error)

	// Только поток брони
	SetParticipation(ctx context.Context, sessionID uuid.UUID, participating bool) (*domain.SessionState, error)
	SetQuantity(ctx context.Context, sessionID uuid.UUID, rawQuantity string) (*domain.SessionState, error)
	SetTermsAccepted(ctx context.Context, sessionID uuid.UUID, accepted bool) (*domain.SessionState, error)
	RequestOTP(ctx context.Context, sessionID uuid.UUID, phoneNumber string) error
	VerifyOTP(ctx context.Context, sessionID uuid.UUID, phoneNumber, code string) (*domain.SessionState, error)
	BackToPhoneStep(ctx context.Context, sessionID uuid.UUID) (*domain.SessionState, error)

	// Отправка
	Submit(ctx context.Context, sessionID uuid.UUID) (*domain.SessionState, error)
	DismissSuccess(ctx context.Context, sessionID uuid.UUID) error
}
