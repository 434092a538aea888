package form_session_service

import (
	"strconv"
	"strings"
)

// Маски ввода. Применяются к сырому значению до записи в состояние формы,
// чтобы валидация никогда не видела неотфильтрованный ввод.

const (
	maxPhoneDigits = 10
	maxAgeDigits   = 3
	maxPinDigits   = 6
)

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizePhone убирает все нецифровые символы и обрезает до 10 цифр.
// Значение с первой цифрой вне 6-9 не принимается, остается previous.
func SanitizePhone(raw, previous string) string {
	digits := digitsOnly(raw)
	if digits == "" {
		return ""
	}
	if digits[0] < '6' {
		return previous
	}
	if len(digits) > maxPhoneDigits {
		digits = digits[:maxPhoneDigits]
	}
	return digits
}

// SanitizeAge обрезает ввод до 3 цифр, четвертая цифра просто не принимается.
// Пустой ввод означает, что возраст не указан.
func SanitizeAge(raw string) *int {
	digits := digitsOnly(raw)
	if digits == "" {
		return nil
	}
	if len(digits) > maxAgeDigits {
		digits = digits[:maxAgeDigits]
	}
	age, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &age
}

func SanitizePinCode(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > maxPinDigits {
		digits = digits[:maxPinDigits]
	}
	return digits
}

// SanitizeQuantity принимает и дробный ввод, дробная часть отбрасывается
// в сторону нуля, а не отклоняется
func SanitizeQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(value)
}
