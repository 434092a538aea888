package domain

// MemberPayload - минимальная форма записи ростера для бэкенда.
// Возраст отправляется только когда заполнен, null не отправляется никогда.
type MemberPayload struct {
	IDName   string `json:"idName"`
	IDAge    *int   `json:"idAge,omitempty"`
	IDGender Gender `json:"idGender"`
}

type RegistrationPayload struct {
	FullName          string              `json:"fullName"`
	PhoneNumber       string              `json:"phoneNumber"`
	Age               *int                `json:"age,omitempty"`
	Gender            Gender              `json:"gender"`
	PreferredDate     []string            `json:"preferredDate"`
	PreferredTimeSlot map[string][]string `json:"preferredTimeSlot"`
	NumberOfPeople    int                 `json:"numberOfPeople"`
	AddressText       string              `json:"addressText,omitempty"`
	Members           []MemberPayload     `json:"members,omitempty"`
}

type BookingPayload struct {
	RegistrationPayload

	RudrakshaQuantity    int      `json:"rudrakshaQuantity"`
	ParticipatingInEvent bool     `json:"participatingInEvent"`
	AddressPlaceID       string   `json:"addressPlaceId,omitempty"`
	AddressLat           *float64 `json:"addressLat,omitempty"`
	AddressLng           *float64 `json:"addressLng,omitempty"`
}
