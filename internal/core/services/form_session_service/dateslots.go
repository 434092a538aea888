package form_session_service

import (
	"errors"

	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/json_types"
)

var (
	ErrDateNotAllowed  = errors.New("date is not available for the event")
	ErrDateNotSelected = errors.New("date is not selected")
	ErrUnknownSlot     = errors.New("unknown time slot")
)

// SelectDates заменяет набор выбранных дат целиком. Дата вне разрешенного
// набора отклоняется прямо здесь и в состояние не попадает. Возвращает
// обновленный viewDate: последняя добавленная дата становится видимой,
// viewDate удаленной даты сбрасывается.
func SelectDates(fs *domain.FieldSet, viewDate string, newDateKeys, allowedDates []string) (string, error) {
	cleaned := make([]string, 0, len(newDateKeys))
	seen := make(map[string]bool, len(newDateKeys))
	for _, dateKey := range newDateKeys {
		if _, err := json_types.ParseDateKey(dateKey); err != nil {
			return viewDate, err
		}
		if !containsString(allowedDates, dateKey) {
			return viewDate, ErrDateNotAllowed
		}
		if !seen[dateKey] {
			seen[dateKey] = true
			cleaned = append(cleaned, dateKey)
		}
	}

	lastAdded := ""
	for _, dateKey := range cleaned {
		if !fs.HasDate(dateKey) {
			lastAdded = dateKey
		}
	}

	fs.PreferredDates = cleaned
	pruneSlots(fs)

	if lastAdded != "" {
		return lastAdded, nil
	}
	if viewDate != "" && !fs.HasDate(viewDate) {
		return "", nil
	}
	return viewDate, nil
}

// RemoveDate убирает одну дату вместе с ее слотами
func RemoveDate(fs *domain.FieldSet, viewDate, dateKey string) string {
	filtered := make([]string, 0, len(fs.PreferredDates))
	for _, d := range fs.PreferredDates {
		if d != dateKey {
			filtered = append(filtered, d)
		}
	}
	fs.PreferredDates = filtered
	pruneSlots(fs)

	if viewDate == dateKey {
		return ""
	}
	return viewDate
}

// ToggleSlot переключает один слот одной даты. Порядок слотов внутри даты -
// порядок добавления, семантики он не несет.
func ToggleSlot(fs *domain.FieldSet, dateKey, slotID string, checked bool) error {
	if _, ok := domain.FindTimeSlot(slotID); !ok {
		return ErrUnknownSlot
	}
	if !fs.HasDate(dateKey) {
		return ErrDateNotSelected
	}

	current := fs.PreferredTimeSlots[dateKey]
	if checked {
		if !containsString(current, slotID) {
			fs.PreferredTimeSlots[dateKey] = append(current, slotID)
		}
		return nil
	}

	filtered := make([]string, 0, len(current))
	for _, id := range current {
		if id != slotID {
			filtered = append(filtered, id)
		}
	}
	fs.PreferredTimeSlots[dateKey] = filtered
	return nil
}

func SetViewDate(fs *domain.FieldSet, dateKey string) error {
	if !fs.HasDate(dateKey) {
		return ErrDateNotSelected
	}
	return nil
}

// pruneSlots безусловно удаляет записи слотов, чья дата больше не выбрана.
// Осиротевших записей после любой мутации дат быть не должно.
func pruneSlots(fs *domain.FieldSet) {
	for dateKey := range fs.PreferredTimeSlots {
		if !fs.HasDate(dateKey) {
			delete(fs.PreferredTimeSlots, dateKey)
		}
	}
}
