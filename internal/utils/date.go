package utils

import (
	"sort"
	"time"
)

const (
	dateKeyLayout = "2006-01-02"
	displayLayout = "02-01-2006"
)

// ParseDateKey парсит дату вида YYYY-MM-DD, формат строгий
func ParseDateKey(str string) (time.Time, error) {
	return time.Parse(dateKeyLayout, str)
}

func IsValidDateKey(str string) bool {
	_, err := ParseDateKey(str)
	return err == nil
}

// FormatDisplayDate переводит ключ даты в отображаемый вид DD-MM-YYYY.
// Невалидный ключ возвращается как есть.
func FormatDisplayDate(dateKey string) string {
	parsed, err := ParseDateKey(dateKey)
	if err != nil {
		return dateKey
	}
	return parsed.Format(displayLayout)
}

// SortDateKeys возвращает отсортированную копию, исходный срез не меняется.
// Лексикографический порядок YYYY-MM-DD совпадает с хронологическим.
func SortDateKeys(dateKeys []string) []string {
	sorted := make([]string, len(dateKeys))
	copy(sorted, dateKeys)
	sort.Strings(sorted)
	return sorted
}
