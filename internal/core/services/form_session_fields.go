package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
	fss "github.com/kvrsharma/shivaratri-event-forms/internal/core/services/form_session_service"
)

func (s *FormSessionService) UpdateFields(ctx context.Context, sessionID uuid.UUID, changes domain.FieldChanges) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		fields := &sess.state.Fields

		if changes.FullName != nil {
			fields.FullName = *changes.FullName
		}
		if changes.PhoneNumber != nil {
			// В потоке брони телефон приходит с шага подтверждения
			// и дальше не редактируется
			if sess.state.Flow == domain.FlowBooking {
				return ErrPhoneLocked
			}
			fields.PhoneNumber = fss.SanitizePhone(*changes.PhoneNumber, fields.PhoneNumber)
		}
		if changes.AgeRaw != nil {
			fields.Age = fss.SanitizeAge(*changes.AgeRaw)
		}
		if changes.Gender != nil {
			fields.Gender = *changes.Gender
		}
		if changes.AddressLine2 != nil {
			fields.AddressLine2 = *changes.AddressLine2
		}
		if changes.City != nil {
			fields.City = *changes.City
		}
		if changes.District != nil {
			fields.District = *changes.District
		}
		if changes.State != nil {
			fields.State = *changes.State
		}
		if changes.PinCodeRaw != nil {
			fields.PinCode = fss.SanitizePinCode(*changes.PinCodeRaw)
		}

		return nil
	})
}

func (s *FormSessionService) SelectDates(ctx context.Context, sessionID uuid.UUID, dateKeys []string) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		viewDate, err := fss.SelectDates(&sess.state.Fields, sess.state.ViewDate, dateKeys, s.cfg.Event.Dates)
		if err != nil {
			return err
		}
		sess.state.ViewDate = viewDate
		return nil
	})
}

func (s *FormSessionService) RemoveDate(ctx context.Context, sessionID uuid.UUID, dateKey string) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		sess.state.ViewDate = fss.RemoveDate(&sess.state.Fields, sess.state.ViewDate, dateKey)
		return nil
	})
}

func (s *FormSessionService) ToggleSlot(ctx context.Context, sessionID uuid.UUID, dateKey, slotID string, checked bool) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		return fss.ToggleSlot(&sess.state.Fields, dateKey, slotID, checked)
	})
}

func (s *FormSessionService) SetViewDate(ctx context.Context, sessionID uuid.UUID, dateKey string) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		if err := fss.SetViewDate(&sess.state.Fields, dateKey); err != nil {
			return err
		}
		sess.state.ViewDate = dateKey
		return nil
	})
}

func (s *FormSessionService) SetPartySize(ctx context.Context, sessionID uuid.UUID, size int) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		if size < domain.MinPartySize || size > domain.MaxPartySize {
			return ErrPartySizeRange
		}
		sess.state.Fields.PartySize = size
		return nil
	})
}

func (s *FormSessionService) UpdateMember(ctx context.Context, sessionID uuid.UUID, index int, changes domain.MemberChanges) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		members := sess.state.Fields.Members
		if index < 0 || index >= len(members) {
			return ErrMemberIndex
		}

		member := &members[index]
		if changes.Name != nil {
			member.Name = *changes.Name
		}
		if changes.AgeRaw != nil {
			member.Age = fss.SanitizeAge(*changes.AgeRaw)
		}
		if changes.Gender != nil {
			member.Gender = *changes.Gender
		}
		return nil
	})
}

func (s *FormSessionService) SetParticipation(ctx context.Context, sessionID uuid.UUID, participating bool) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		if sess.state.Flow != domain.FlowBooking {
			return ErrWrongFlow
		}
		sess.state.Fields.ParticipatingInEvent = participating
		return nil
	})
}

func (s *FormSessionService) SetQuantity(ctx context.Context, sessionID uuid.UUID, rawQuantity string) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		if sess.state.Flow != domain.FlowBooking {
			return ErrWrongFlow
		}
		sess.state.Fields.RudrakshaQuantity = fss.SanitizeQuantity(rawQuantity)
		return nil
	})
}

func (s *FormSessionService) SetTermsAccepted(ctx context.Context, sessionID uuid.UUID, accepted bool) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		if sess.state.Flow != domain.FlowBooking {
			return ErrWrongFlow
		}
		sess.state.TermsAccepted = accepted
		return nil
	})
}

func (s *FormSessionService) EditAddressLine1(ctx context.Context, sessionID uuid.UUID, value string) (*domain.SessionState, error) {
	return s.mutate(sessionID, func(sess *formSession) error {
		fss.EditAddressLine1(&sess.state.Fields, sess.lastResolvedLine1, value)
		return nil
	})
}

// SuggestAddresses - подсказки автодополнения. Если геосервис недоступен,
// возвращается пустой список: форма продолжает работать как свободный ввод.
func (s *FormSessionService) SuggestAddresses(ctx context.Context, sessionID uuid.UUID, input string) ([]domain.PlacePrediction, error) {
	if _, err := s.getSession(sessionID); err != nil {
		return nil, err
	}

	if s.placesPort == nil || !s.placesPort.Ready() {
		s.logger.Debug("address.suggest.unavailable", out.LogFields{
			"sessionId": sessionID,
		})
		return []domain.PlacePrediction{}, nil
	}

	predictions, err := s.placesPort.Autocomplete(ctx, input)
	if err != nil {
		// Деградация не фатальна и наружу не показывается
		s.logger.Warn("address.suggest.failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return []domain.PlacePrediction{}, nil
	}
	return predictions, nil
}

func (s *FormSessionService) ResolveAddress(ctx context.Context, sessionID uuid.UUID, placeID string) (*domain.SessionState, error) {
	if s.placesPort == nil || !s.placesPort.Ready() {
		return nil, ErrPlacesUnavailable
	}

	place, err := s.lookupPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	return s.mutate(sessionID, func(sess *formSession) error {
		sess.lastResolvedLine1 = fss.ApplyPlace(&sess.state.Fields, *place)
		return nil
	})
}

func (s *FormSessionService) lookupPlace(ctx context.Context, placeID string) (*domain.ResolvedPlace, error) {
	if s.cachePort != nil {
		if place, exists := s.cachePort.GetPlace(ctx, placeID); exists {
			s.logger.Debug("address.resolve.cache_hit", out.LogFields{
				"placeId": placeID,
			})
			return place, nil
		}
	}

	place, err := s.placesPort.ResolvePlace(ctx, placeID)
	if err != nil {
		s.logger.Error("address.resolve.failed", out.LogFields{
			"placeId": placeID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if s.cachePort != nil {
		s.cachePort.StorePlace(ctx, *place)
	}
	return place, nil
}
