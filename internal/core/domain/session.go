package domain

import "github.com/google/uuid"

type SessionStatus string

const (
	SessionStatusEditing          SessionStatus = "editing"
	SessionStatusSubmitting       SessionStatus = "submitting"
	SessionStatusSubmittedSuccess SessionStatus = "submitted_success"
	SessionStatusSubmittedError   SessionStatus = "submitted_error"
)

type BookingStep string

const (
	BookingStepPhone   BookingStep = "phone"
	BookingStepDetails BookingStep = "details"
)

// SessionState - проекция состояния формы наружу. Копия, а не ссылка:
// мутировать состояние можно только через оркестратор.
type SessionState struct {
	ID     uuid.UUID     `json:"id"`
	Flow   Flow          `json:"flow"`
	Status SessionStatus `json:"status"`
	Step   BookingStep   `json:"step,omitempty"`

	Fields        FieldSet    `json:"fields"`
	ViewDate      string      `json:"viewDate,omitempty"`
	TermsAccepted bool        `json:"termsAccepted,omitempty"`
	PhoneVerified bool        `json:"phoneVerified,omitempty"`
	Errors        FieldErrors `json:"errors"`
	Valid         bool        `json:"valid"`
	CanSubmit     bool        `json:"canSubmit"`

	// Сумма к оплате для потока брони
	UnitPrice   int `json:"unitPrice,omitempty"`
	TotalAmount int `json:"totalAmount,omitempty"`

	Result       *SubmissionResult `json:"result,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
}

// FieldChanges - частичное обновление простых полей формы,
// nil означает "поле не трогали"
type FieldChanges struct {
	FullName     *string `json:"fullName,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	AgeRaw       *string `json:"age,omitempty"`
	Gender       *Gender `json:"gender,omitempty"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         *string `json:"city,omitempty"`
	District     *string `json:"district,omitempty"`
	State        *string `json:"state,omitempty"`
	PinCodeRaw   *string `json:"pinCode,omitempty"`
}

type MemberChanges struct {
	Name   *string `json:"idName,omitempty"`
	AgeRaw *string `json:"idAge,omitempty"`
	Gender *Gender `json:"idGender,omitempty"`
}
