package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateKey - календарная дата в строгом формате YYYY-MM-DD.
// Даты сравниваются только по нормализованной строке, не по time.Time,
// чтобы исключить сдвиги таймзон.
type DateKey struct {
	Date time.Time
}

func ParseDateKey(str string) (DateKey, error) {
	parsedDate, err := time.Parse("2006-01-02", str)
	if err != nil {
		return DateKey{}, fmt.Errorf("failed to parse date key %q: %v", str, err)
	}
	return DateKey{Date: parsedDate}, nil
}

func (d DateKey) String() string {
	return d.Date.Format("2006-01-02")
}

func (d *DateKey) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsed, err := ParseDateKey(str)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d DateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
