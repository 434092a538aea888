package domain

// MemberErrors - ошибки валидации одной записи ростера
type MemberErrors struct {
	Name   string `json:"idName,omitempty"`
	Age    string `json:"idAge,omitempty"`
	Gender string `json:"idGender,omitempty"`
}

func (m MemberErrors) Empty() bool {
	return m.Name == "" && m.Age == "" && m.Gender == ""
}

// FieldErrors - типизированное дерево ошибок валидации формы.
// Ноль или одно сообщение на поле, ошибки ростера разложены по индексам.
type FieldErrors struct {
	FullName          string         `json:"fullName,omitempty"`
	PhoneNumber       string         `json:"phoneNumber,omitempty"`
	Age               string         `json:"age,omitempty"`
	Gender            string         `json:"gender,omitempty"`
	PinCode           string         `json:"pinCode,omitempty"`
	PreferredDate     string         `json:"preferredDate,omitempty"`
	PreferredTimeSlot string         `json:"preferredTimeSlot,omitempty"`
	Members           string         `json:"members,omitempty"`
	MemberItems       []MemberErrors `json:"memberItems,omitempty"`
	RudrakshaQuantity string         `json:"rudrakshaQuantity,omitempty"`
}

func (e FieldErrors) Empty() bool {
	if e.FullName != "" || e.PhoneNumber != "" || e.Age != "" || e.Gender != "" ||
		e.PinCode != "" || e.PreferredDate != "" || e.PreferredTimeSlot != "" ||
		e.Members != "" || e.RudrakshaQuantity != "" {
		return false
	}
	for _, m := range e.MemberItems {
		if !m.Empty() {
			return false
		}
	}
	return true
}
