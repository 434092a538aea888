package domain

// RegistrationRecord - подтвержденная бэкендом запись регистрации,
// эхо того, что сервер реально сохранил
type RegistrationRecord struct {
	ID                string              `json:"id"`
	FullName          string              `json:"fullName"`
	PhoneNumber       string              `json:"phoneNumber"`
	Age               *int                `json:"age,omitempty"`
	Gender            Gender              `json:"gender"`
	PreferredDate     []string            `json:"preferredDate"`
	PreferredTimeSlot map[string][]string `json:"preferredTimeSlot"`
	NumberOfPeople    int                 `json:"numberOfPeople"`
	AddressText       string              `json:"addressText,omitempty"`
	CreatedAt         string              `json:"createdAt,omitempty"`
}

type BookingRecord struct {
	RegistrationRecord

	RudrakshaQuantity    int  `json:"rudrakshaQuantity"`
	ParticipatingInEvent bool `json:"participatingInEvent"`
	AmountDue            int  `json:"amountDue,omitempty"`
}

type SubmitOutcome string

const (
	SubmitOutcomeSuccess           SubmitOutcome = "success"
	SubmitOutcomeValidationFailure SubmitOutcome = "validation_failure"
	SubmitOutcomeServerFailure     SubmitOutcome = "server_failure"
	SubmitOutcomeNetworkFailure    SubmitOutcome = "network_failure"
)

type SubmissionResult struct {
	Outcome      SubmitOutcome       `json:"outcome"`
	Registration *RegistrationRecord `json:"registration,omitempty"`
	Booking      *BookingRecord      `json:"booking,omitempty"`
	Message      string              `json:"message,omitempty"`
}

// UserProfile - данные текущего пользователя для префилла второго шага брони
type UserProfile struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	AddressText string `json:"addressText,omitempty"`
}
