package json_types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SlotRange - окно посещения вида "HH:MM:SS-HH:MM:SS".
// Для ночного слота конец меньше начала, это допустимо.
type SlotRange struct {
	Start time.Time
	End   time.Time
}

func ParseSlotRange(str string) (SlotRange, error) {
	parts := strings.SplitN(str, "-", 2)
	if len(parts) != 2 {
		return SlotRange{}, fmt.Errorf("failed to parse slot range %q", str)
	}

	start, err := time.Parse("15:04:05", parts[0])
	if err != nil {
		return SlotRange{}, fmt.Errorf("failed to parse slot start: %v", err)
	}
	end, err := time.Parse("15:04:05", parts[1])
	if err != nil {
		return SlotRange{}, fmt.Errorf("failed to parse slot end: %v", err)
	}

	return SlotRange{Start: start, End: end}, nil
}

func (s SlotRange) String() string {
	return s.Start.Format("15:04:05") + "-" + s.End.Format("15:04:05")
}

func (s *SlotRange) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsed, err := ParseSlotRange(str)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

func (s SlotRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
