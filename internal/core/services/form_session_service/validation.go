package form_session_service

import (
	"regexp"
	"strings"

	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
)

const maxFullNameLength = 100

var (
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	pinPattern   = regexp.MustCompile(`^[0-9]{6}$`)
)

const (
	msgFullNameRequired = "Full name is required"
	msgFullNameTooLong  = "Full name must be at most 100 characters"
	msgPhoneInvalid     = "Enter a valid 10-digit mobile number"
	msgAgeRange         = "Age must be between 1 and 150"
	msgGenderRequired   = "Please select a gender"
	msgPinInvalid       = "PIN code must be 6 digits"
	msgDateRequired     = "Please select at least one date"
	msgDateNotAllowed   = "Selected date is not available for the event"
	msgSlotRequired     = "Please select a time slot for every chosen date"
	msgMembersMismatch  = "Please fill in details for every attendee"
	msgMemberName       = "Member name is required"
	msgQuantityRange    = "Quantity must be between 1 and 10"
)

// Validate прогоняет весь снимок формы и возвращает дерево ошибок.
// Пустое дерево означает, что форму можно отправлять.
func Validate(fs domain.FieldSet, flow domain.Flow, allowedDates []string) domain.FieldErrors {
	var errs domain.FieldErrors

	name := strings.TrimSpace(fs.FullName)
	if name == "" {
		errs.FullName = msgFullNameRequired
	} else if len([]rune(fs.FullName)) > maxFullNameLength {
		errs.FullName = msgFullNameTooLong
	}

	if !phonePattern.MatchString(fs.PhoneNumber) {
		errs.PhoneNumber = msgPhoneInvalid
	}

	if fs.Age != nil && (*fs.Age < 1 || *fs.Age > 150) {
		errs.Age = msgAgeRange
	}

	if !fs.Gender.IsValid() {
		errs.Gender = msgGenderRequired
	}

	if fs.PinCode != "" && !pinPattern.MatchString(fs.PinCode) {
		errs.PinCode = msgPinInvalid
	}

	if flow == domain.FlowBooking {
		if fs.RudrakshaQuantity < domain.MinRudrakshaQuantity || fs.RudrakshaQuantity > domain.MaxRudrakshaQuantity {
			errs.RudrakshaQuantity = msgQuantityRange
		}
		// Без участия в событии даты, слоты и ростер не применимы
		// и не проверяются вовсе
		if !fs.ParticipatingInEvent {
			return errs
		}
	}

	validateDates(fs, allowedDates, &errs)
	validateMembers(fs, &errs)

	return errs
}

func validateDates(fs domain.FieldSet, allowedDates []string, errs *domain.FieldErrors) {
	if len(fs.PreferredDates) == 0 {
		errs.PreferredDate = msgDateRequired
		return
	}

	for _, dateKey := range fs.PreferredDates {
		if !containsString(allowedDates, dateKey) {
			errs.PreferredDate = msgDateNotAllowed
			break
		}
	}

	// Записи слотов без своей даты - рассогласование, оно не должно
	// пережить чистку при мутации дат
	for dateKey := range fs.PreferredTimeSlots {
		if !fs.HasDate(dateKey) {
			errs.PreferredTimeSlot = msgSlotRequired
			return
		}
	}

	// Пустой набор слотов эквивалентен отсутствию выбора
	for _, dateKey := range fs.PreferredDates {
		if len(fs.PreferredTimeSlots[dateKey]) == 0 {
			errs.PreferredTimeSlot = msgSlotRequired
			return
		}
	}
}

func validateMembers(fs domain.FieldSet, errs *domain.FieldErrors) {
	target := fs.PartySize - 1
	if target < 0 {
		target = 0
	}
	if len(fs.Members) != target {
		errs.Members = msgMembersMismatch
	}

	items := make([]domain.MemberErrors, len(fs.Members))
	hasItemErrors := false
	for i, member := range fs.Members {
		if strings.TrimSpace(member.Name) == "" {
			items[i].Name = msgMemberName
		}
		if member.Age != nil && (*member.Age < 1 || *member.Age > 150) {
			items[i].Age = msgAgeRange
		}
		if !member.Gender.IsValid() {
			items[i].Gender = msgGenderRequired
		}
		if !items[i].Empty() {
			hasItemErrors = true
		}
	}
	if hasItemErrors {
		errs.MemberItems = items
	}
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
