package domain

import "strings"

type Flow string

const (
	FlowRegistration Flow = "registration"
	FlowBooking      Flow = "booking"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOthers Gender = "others"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOthers
}

const (
	MinPartySize = 1
	MaxPartySize = 10

	MinRudrakshaQuantity = 1
	MaxRudrakshaQuantity = 10
)

// Member создается и удаляется только синхронизацией с numberOfPeople,
// напрямую из ростера записи не добавляются и не удаляются
type Member struct {
	Name   string `json:"idName"`
	Age    *int   `json:"idAge,omitempty"`
	Gender Gender `json:"idGender"`
}

// FieldSet - состояние одной открытой формы. Владелец - оркестратор сессии,
// все мутации проходят через него.
type FieldSet struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Age         *int   `json:"age,omitempty"`
	Gender      Gender `json:"gender"`

	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	District     string `json:"district"`
	State        string `json:"state"`
	PinCode      string `json:"pinCode"`

	AddressPlaceID string   `json:"addressPlaceId,omitempty"`
	AddressLat     *float64 `json:"addressLat,omitempty"`
	AddressLng     *float64 `json:"addressLng,omitempty"`

	PartySize int      `json:"numberOfPeople"`
	Members   []Member `json:"members"`

	// Ключи дат всегда в формате YYYY-MM-DD, ключи PreferredTimeSlots
	// всегда подмножество PreferredDates
	PreferredDates     []string            `json:"preferredDate"`
	PreferredTimeSlots map[string][]string `json:"preferredTimeSlot"`

	// Только для потока брони
	ParticipatingInEvent bool `json:"participatingInEvent"`
	RudrakshaQuantity    int  `json:"rudrakshaQuantity"`
}

func NewFieldSet(flow Flow) FieldSet {
	fs := FieldSet{
		PartySize:          MinPartySize,
		Members:            []Member{},
		PreferredDates:     []string{},
		PreferredTimeSlots: map[string][]string{},
	}
	if flow == FlowBooking {
		fs.RudrakshaQuantity = MinRudrakshaQuantity
	}
	return fs
}

// AddressText собирает непустые части адреса через ", ".
// Пустая строка означает, что адрес не заполнен и наружу не отправляется.
func (fs *FieldSet) AddressText() string {
	parts := []string{
		fs.AddressLine1,
		fs.AddressLine2,
		fs.City,
		fs.District,
		fs.State,
		fs.PinCode,
	}

	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, ", ")
}

func (fs *FieldSet) HasDate(dateKey string) bool {
	for _, d := range fs.PreferredDates {
		if d == dateKey {
			return true
		}
	}
	return false
}
