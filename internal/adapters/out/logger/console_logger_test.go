package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleLogger(t *testing.T) {
	t.Run("unknown timezone is an error", func(t *testing.T) {
		_, err := NewConsoleLogger("Not/AZone", false)
		assert.Error(t, err)
	})

	t.Run("valid timezone", func(t *testing.T) {
		l, err := NewConsoleLogger("Asia/Kolkata", true)
		require.NoError(t, err)
		assert.NotNil(t, l)
	})
}
