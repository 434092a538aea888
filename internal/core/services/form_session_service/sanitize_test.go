package form_session_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePhone(t *testing.T) {
	t.Run("strips non-digits and caps at ten", func(t *testing.T) {
		assert.Equal(t, "9123456789", SanitizePhone("abc91234567890", ""))
	})

	t.Run("keeps previous value when leading digit below six", func(t *testing.T) {
		assert.Equal(t, "98765", SanitizePhone("512345678", "98765"))
	})

	t.Run("empty input clears the field", func(t *testing.T) {
		assert.Equal(t, "", SanitizePhone("", "9876543210"))
		assert.Equal(t, "", SanitizePhone("+-()", "9876543210"))
	})

	t.Run("formatting characters are ignored", func(t *testing.T) {
		// Код страны не распознается: остаются первые 10 цифр
		assert.Equal(t, "9198765432", SanitizePhone("+91 98765-43210", ""))
	})
}

func TestSanitizeAge(t *testing.T) {
	t.Run("caps at three digits", func(t *testing.T) {
		age := SanitizeAge("1234")
		require.NotNil(t, age)
		assert.Equal(t, 123, *age)
	})

	t.Run("empty input means not provided", func(t *testing.T) {
		assert.Nil(t, SanitizeAge(""))
		assert.Nil(t, SanitizeAge("abc"))
	})

	t.Run("plain value passes through", func(t *testing.T) {
		age := SanitizeAge("42")
		require.NotNil(t, age)
		assert.Equal(t, 42, *age)
	})
}

func TestSanitizePinCode(t *testing.T) {
	assert.Equal(t, "560001", SanitizePinCode("5600012"))
	assert.Equal(t, "560", SanitizePinCode("5 6 0"))
	assert.Equal(t, "", SanitizePinCode("abc"))
}

func TestSanitizeQuantity(t *testing.T) {
	t.Run("fraction truncates toward zero", func(t *testing.T) {
		assert.Equal(t, 2, SanitizeQuantity("2.9"))
		assert.Equal(t, 3, SanitizeQuantity("3.1"))
	})

	t.Run("unparseable input becomes zero", func(t *testing.T) {
		assert.Equal(t, 0, SanitizeQuantity(""))
		assert.Equal(t, 0, SanitizeQuantity("two"))
	})

	t.Run("integer passes through", func(t *testing.T) {
		assert.Equal(t, 5, SanitizeQuantity("5"))
	})
}
