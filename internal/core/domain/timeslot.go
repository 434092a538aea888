package domain

type SlotPeriod string

const (
	SlotPeriodMorning   SlotPeriod = "Morning"
	SlotPeriodAfternoon SlotPeriod = "Afternoon"
	SlotPeriodEvening   SlotPeriod = "Evening"
	SlotPeriodNight     SlotPeriod = "Night"
	SlotPeriodMidnight  SlotPeriod = "Midnight"
)

// TimeSlot - запись статического каталога окон посещения.
// Каталог неизменяемый, пользователем не редактируется.
type TimeSlot struct {
	Start     string     `json:"start"`
	End       string     `json:"end"`
	Label     string     `json:"label"`
	Period    SlotPeriod `json:"period"`
	FullWidth bool       `json:"fullWidth,omitempty"`
}

// ID - детерминированный идентификатор слота вида "HH:MM:SS-HH:MM:SS",
// по нему проверяется членство в выборе
func (s TimeSlot) ID() string {
	return s.Start + "-" + s.End
}

var TimeSlots = []TimeSlot{
	{Start: "06:00:00", End: "08:00:00", Label: "Early Morning", Period: SlotPeriodMorning},
	{Start: "08:00:00", End: "10:00:00", Label: "Morning", Period: SlotPeriodMorning},
	{Start: "10:00:00", End: "12:00:00", Label: "Late Morning", Period: SlotPeriodMorning},
	{Start: "12:00:00", End: "14:00:00", Label: "Afternoon", Period: SlotPeriodAfternoon},
	{Start: "14:00:00", End: "16:00:00", Label: "Afternoon", Period: SlotPeriodAfternoon},
	{Start: "16:00:00", End: "18:00:00", Label: "Evening", Period: SlotPeriodEvening},
	{Start: "18:00:00", End: "20:00:00", Label: "Evening", Period: SlotPeriodEvening},
	{Start: "20:00:00", End: "22:00:00", Label: "Night", Period: SlotPeriodNight},
	// Ночной слот через полночь
	{Start: "22:00:00", End: "06:00:00", Label: "Midnight", Period: SlotPeriodMidnight, FullWidth: true},
}

func FindTimeSlot(id string) (TimeSlot, bool) {
	for _, slot := range TimeSlots {
		if slot.ID() == id {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// SlotAvailability - сколько мест осталось по слотам на конкретную дату.
// Заполняется слушателем событий бэкенда, отсутствие данных значит "неизвестно".
type SlotAvailability struct {
	Date      string         `json:"date"`
	Remaining map[string]int `json:"remaining"`
}
