package form_session_service

import "github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"

// BuildRegistrationPayload собирает исходящее тело запроса.
// Необязательные поля либо присутствуют со значением, либо отсутствуют
// целиком: сервер никогда не получает пустую строку, null или NaN.
func BuildRegistrationPayload(fs domain.FieldSet) domain.RegistrationPayload {
	payload := domain.RegistrationPayload{
		FullName:          fs.FullName,
		PhoneNumber:       fs.PhoneNumber,
		Gender:            fs.Gender,
		PreferredDate:     append([]string{}, fs.PreferredDates...),
		PreferredTimeSlot: copySlotMap(fs.PreferredTimeSlots),
		NumberOfPeople:    fs.PartySize,
	}

	if fs.Age != nil {
		age := *fs.Age
		payload.Age = &age
	}

	if addressText := fs.AddressText(); addressText != "" {
		payload.AddressText = addressText
	}

	if len(fs.Members) > 0 {
		payload.Members = make([]domain.MemberPayload, 0, len(fs.Members))
		for _, member := range fs.Members {
			item := domain.MemberPayload{
				IDName:   member.Name,
				IDGender: member.Gender,
			}
			if member.Age != nil {
				age := *member.Age
				item.IDAge = &age
			}
			payload.Members = append(payload.Members, item)
		}
	}

	return payload
}

func BuildBookingPayload(fs domain.FieldSet) domain.BookingPayload {
	payload := domain.BookingPayload{
		RegistrationPayload:  BuildRegistrationPayload(fs),
		RudrakshaQuantity:    fs.RudrakshaQuantity,
		ParticipatingInEvent: fs.ParticipatingInEvent,
	}

	// Без участия в событии даты, слоты и ростер не применимы
	if !fs.ParticipatingInEvent {
		payload.PreferredDate = []string{}
		payload.PreferredTimeSlot = map[string][]string{}
		payload.NumberOfPeople = domain.MinPartySize
		payload.Members = nil
	}

	if fs.AddressPlaceID != "" {
		payload.AddressPlaceID = fs.AddressPlaceID
		payload.AddressLat = fs.AddressLat
		payload.AddressLng = fs.AddressLng
	}

	return payload
}

func copySlotMap(slots map[string][]string) map[string][]string {
	copied := make(map[string][]string, len(slots))
	for dateKey, slotIDs := range slots {
		copied[dateKey] = append([]string{}, slotIDs...)
	}
	return copied
}
