package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
	fss "github.com/kvrsharma/shivaratri-event-forms/internal/core/services/form_session_service"
)

const (
	msgSubmitValidation = "Invalid form data. Please check your inputs."
	msgSubmitFailed     = "Registration failed. Please try again."
	msgSubmitNetwork    = "An error occurred. Please try again later."
)

// Submit - одна исходящая отправка на одно действие пользователя.
// Пока сессия в состоянии submitting, повторная отправка невозможна,
// поэтому дедупликация запросов не нужна.
func (s *FormSessionService) Submit(ctx context.Context, sessionID uuid.UUID) (*domain.SessionState, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	st := &sess.state

	if st.Status == domain.SessionStatusSubmitting {
		sess.mu.Unlock()
		return nil, ErrSessionBusy
	}
	if st.Status == domain.SessionStatusSubmittedSuccess {
		sess.mu.Unlock()
		return nil, ErrSessionBusy
	}
	if st.Flow == domain.FlowBooking && st.Step != domain.BookingStepDetails {
		sess.mu.Unlock()
		return nil, ErrWrongStep
	}

	st.Status = domain.SessionStatusEditing
	st.ErrorMessage = ""
	st.Result = nil
	s.refresh(sess)

	if !st.Valid {
		sess.mu.Unlock()
		return nil, ErrFormInvalid
	}
	if st.Flow == domain.FlowBooking && !st.TermsAccepted {
		sess.mu.Unlock()
		return nil, ErrTermsNotAccepted
	}

	st.Status = domain.SessionStatusSubmitting
	st.CanSubmit = false
	flow := st.Flow
	fields := copyFieldSet(st.Fields)
	sess.mu.Unlock()

	s.logger.Info("form.submit.started", out.LogFields{
		"sessionId": sessionID,
		"flow":      flow,
	})

	// Сетевая часть выполняется вне блокировки: состояние submitting
	// уже защищает от второй отправки
	result := s.performSubmit(ctx, flow, fields)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	st.Result = &result
	if result.Outcome == domain.SubmitOutcomeSuccess {
		st.Status = domain.SessionStatusSubmittedSuccess
		st.ErrorMessage = ""
		s.logger.Info("form.submit.success", out.LogFields{
			"sessionId": sessionID,
			"flow":      flow,
		})
	} else {
		// Форма остается редактируемой, введенные данные не теряются
		st.Status = domain.SessionStatusSubmittedError
		st.ErrorMessage = result.Message
		s.logger.Warn("form.submit.failed", out.LogFields{
			"sessionId": sessionID,
			"flow":      flow,
			"outcome":   result.Outcome,
		})
	}

	s.refresh(sess)
	return s.project(sess), nil
}

func (s *FormSessionService) performSubmit(ctx context.Context, flow domain.Flow, fields domain.FieldSet) domain.SubmissionResult {
	if flow == domain.FlowBooking {
		record, err := s.registryPort.SubmitBooking(ctx, fss.BuildBookingPayload(fields))
		if err != nil {
			return failureResult(err)
		}
		return domain.SubmissionResult{
			Outcome: domain.SubmitOutcomeSuccess,
			Booking: record,
		}
	}

	record, err := s.registryPort.SubmitRegistration(ctx, fss.BuildRegistrationPayload(fields))
	if err != nil {
		return failureResult(err)
	}
	return domain.SubmissionResult{
		Outcome:      domain.SubmitOutcomeSuccess,
		Registration: record,
	}
}

// failureResult выбирает сообщение для пользователя: структурированное
// сообщение бэкенда, если оно есть, иначе общее. Класс статуса влияет
// только на текст, политика повтора одна для всех.
func failureResult(err error) domain.SubmissionResult {
	var registryErr *out.RegistryError
	if errors.As(err, &registryErr) {
		outcome := domain.SubmitOutcomeServerFailure
		message := registryErr.Message
		if registryErr.StatusCode >= 400 && registryErr.StatusCode < 500 {
			outcome = domain.SubmitOutcomeValidationFailure
			if message == "" {
				message = msgSubmitValidation
			}
		}
		if message == "" {
			message = msgSubmitFailed
		}
		return domain.SubmissionResult{Outcome: outcome, Message: message}
	}

	return domain.SubmissionResult{
		Outcome: domain.SubmitOutcomeNetworkFailure,
		Message: msgSubmitNetwork,
	}
}

func (s *FormSessionService) RequestOTP(ctx context.Context, sessionID uuid.UUID, phoneNumber string) error {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	flow := sess.state.Flow
	step := sess.state.Step
	sess.mu.Unlock()

	if flow != domain.FlowBooking {
		return ErrWrongFlow
	}
	if step != domain.BookingStepPhone {
		return ErrWrongStep
	}

	phone, err := normalizePhone(phoneNumber)
	if err != nil {
		return err
	}

	if err := s.registryPort.RequestOTP(ctx, phone); err != nil {
		s.logger.Error("otp.request.failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return err
	}
	return nil
}

// VerifyOTP завершает первый шаг брони: подтвержденный телефон
// фиксируется, форма переходит к деталям и префиллится профилем,
// если бэкенд знает этого пользователя
func (s *FormSessionService) VerifyOTP(ctx context.Context, sessionID uuid.UUID, phoneNumber, code string) (*domain.SessionState, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	flow := sess.state.Flow
	step := sess.state.Step
	sess.mu.Unlock()

	if flow != domain.FlowBooking {
		return nil, ErrWrongFlow
	}
	if step != domain.BookingStepPhone {
		return nil, ErrWrongStep
	}

	// Маска применяется до фиксации: после подтверждения телефон
	// больше не редактируется, неотфильтрованное значение застряло бы
	// в сессии навсегда
	phone, err := normalizePhone(phoneNumber)
	if err != nil {
		return nil, err
	}

	verified, err := s.registryPort.VerifyOTP(ctx, phone, code)
	if err != nil {
		s.logger.Error("otp.verify.failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return nil, err
	}
	if !verified {
		return nil, errors.New("invalid verification code")
	}

	// Префилл не обязателен, его отсутствие не ошибка
	var profile *domain.UserProfile
	if profile, err = s.registryPort.GetCurrentUser(ctx, phone); err != nil {
		s.logger.Warn("profile.prefill.failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		profile = nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := &sess.state
	st.Fields.PhoneNumber = phone
	st.PhoneVerified = true
	st.Step = domain.BookingStepDetails

	if profile != nil {
		if st.Fields.FullName == "" {
			st.Fields.FullName = profile.FullName
		}
		if st.Fields.AddressLine1 == "" {
			st.Fields.AddressLine1 = profile.AddressText
		}
	}

	s.refresh(sess)
	return s.project(sess), nil
}

// normalizePhone прогоняет телефон через маску ввода и требует все
// 10 цифр: в OTP уходит тот же вид номера, что пройдет валидацию формы
func normalizePhone(raw string) (string, error) {
	phone := fss.SanitizePhone(raw, "")
	if len(phone) != 10 {
		return "", ErrPhoneInvalid
	}
	return phone, nil
}

// BackToPhoneStep возвращает бронь на шаг телефона. Состояние первого шага
// сохраняется, правки второго шага не переживают возврат.
func (s *FormSessionService) BackToPhoneStep(ctx context.Context, sessionID uuid.UUID) (*domain.SessionState, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := &sess.state
	if st.Flow != domain.FlowBooking {
		return nil, ErrWrongFlow
	}
	if st.Status == domain.SessionStatusSubmitting {
		return nil, ErrSessionBusy
	}

	phone := st.Fields.PhoneNumber
	st.Fields = domain.NewFieldSet(domain.FlowBooking)
	st.Fields.PhoneNumber = phone
	st.Step = domain.BookingStepPhone
	st.Status = domain.SessionStatusEditing
	st.ViewDate = ""
	st.TermsAccepted = false
	st.ErrorMessage = ""
	st.Result = nil
	sess.lastResolvedLine1 = ""

	s.refresh(sess)
	return s.project(sess), nil
}
