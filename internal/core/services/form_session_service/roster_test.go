package form_session_service

import (
	"testing"

	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMembers(t *testing.T) {
	t.Run("roster length follows party size minus one", func(t *testing.T) {
		fs := domain.NewFieldSet(domain.FlowRegistration)
		fs.PartySize = 4

		SyncMembers(&fs, domain.FlowRegistration)
		assert.Len(t, fs.Members, 3)
	})

	t.Run("growing keeps filled entries and appends blanks", func(t *testing.T) {
		fs := domain.NewFieldSet(domain.FlowRegistration)
		fs.PartySize = 2
		SyncMembers(&fs, domain.FlowRegistration)
		fs.Members[0] = domain.Member{Name: "Ravi", Gender: domain.GenderMale}

		fs.PartySize = 4
		SyncMembers(&fs, domain.FlowRegistration)

		require.Len(t, fs.Members, 3)
		assert.Equal(t, "Ravi", fs.Members[0].Name)
		assert.Equal(t, domain.Member{}, fs.Members[1])
		assert.Equal(t, domain.Member{}, fs.Members[2])
	})

	t.Run("shrinking drops entries from the tail only", func(t *testing.T) {
		fs := domain.NewFieldSet(domain.FlowRegistration)
		fs.PartySize = 4
		SyncMembers(&fs, domain.FlowRegistration)
		fs.Members[0].Name = "Ravi"
		fs.Members[1].Name = "Meera"
		fs.Members[2].Name = "Kiran"

		fs.PartySize = 2
		SyncMembers(&fs, domain.FlowRegistration)

		require.Len(t, fs.Members, 1)
		assert.Equal(t, "Ravi", fs.Members[0].Name)
	})

	t.Run("repeated sync is a no-op", func(t *testing.T) {
		fs := domain.NewFieldSet(domain.FlowRegistration)
		fs.PartySize = 3
		SyncMembers(&fs, domain.FlowRegistration)
		fs.Members[0].Name = "Ravi"

		SyncMembers(&fs, domain.FlowRegistration)
		SyncMembers(&fs, domain.FlowRegistration)

		require.Len(t, fs.Members, 2)
		assert.Equal(t, "Ravi", fs.Members[0].Name)
	})

	t.Run("booking without participation empties the roster", func(t *testing.T) {
		fs := domain.NewFieldSet(domain.FlowBooking)
		fs.ParticipatingInEvent = true
		fs.PartySize = 5
		SyncMembers(&fs, domain.FlowBooking)
		require.Len(t, fs.Members, 4)

		fs.ParticipatingInEvent = false
		SyncMembers(&fs, domain.FlowBooking)

		assert.Empty(t, fs.Members)
		assert.Equal(t, domain.MinPartySize, fs.PartySize)
	})

	t.Run("registration flow ignores participation flag", func(t *testing.T) {
		fs := domain.NewFieldSet(domain.FlowRegistration)
		fs.PartySize = 3

		SyncMembers(&fs, domain.FlowRegistration)
		assert.Len(t, fs.Members, 2)
	})
}
