package form_session_service

import (
	"testing"

	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func resolvedPlace() domain.ResolvedPlace {
	lat, lng := 12.9716, 77.5946
	return domain.ResolvedPlace{
		FormattedAddress: "12, MG Road, Bengaluru, Karnataka 560001, India",
		PlaceID:          "place-123",
		Lat:              &lat,
		Lng:              &lng,
		AddressComponents: []domain.AddressComponent{
			{LongName: "12", Types: []string{"street_number"}},
			{LongName: "MG Road", Types: []string{"route"}},
			{LongName: "Flat 4B", Types: []string{"subpremise"}},
			{LongName: "Bengaluru", Types: []string{"locality"}},
			{LongName: "Bengaluru Urban", Types: []string{"administrative_area_level_2"}},
			{LongName: "Karnataka", Types: []string{"administrative_area_level_1"}},
			{LongName: "560001", Types: []string{"postal_code"}},
		},
	}
}

func TestApplyPlace(t *testing.T) {
	fs := domain.NewFieldSet(domain.FlowBooking)

	line1 := ApplyPlace(&fs, resolvedPlace())

	assert.Equal(t, "12 MG Road", line1)
	assert.Equal(t, "12 MG Road", fs.AddressLine1)
	assert.Equal(t, "Flat 4B", fs.AddressLine2)
	assert.Equal(t, "Bengaluru", fs.City)
	assert.Equal(t, "Bengaluru Urban", fs.District)
	assert.Equal(t, "Karnataka", fs.State)
	assert.Equal(t, "560001", fs.PinCode)
	assert.Equal(t, "place-123", fs.AddressPlaceID)
	assert.NotNil(t, fs.AddressLat)
	assert.NotNil(t, fs.AddressLng)
}

func TestApplyPlacePartialComponents(t *testing.T) {
	fs := domain.NewFieldSet(domain.FlowBooking)
	place := domain.ResolvedPlace{
		PlaceID: "place-456",
		AddressComponents: []domain.AddressComponent{
			{LongName: "MG Road", Types: []string{"route"}},
			{LongName: "Bengaluru", Types: []string{"locality"}},
		},
	}

	line1 := ApplyPlace(&fs, place)

	assert.Equal(t, "MG Road", line1)
	assert.Equal(t, "", fs.PinCode)
	assert.Equal(t, "Bengaluru", fs.City)
}

func TestEditAddressLine1(t *testing.T) {
	t.Run("manual change clears place data in the same update", func(t *testing.T) {
		fs := domain.NewFieldSet(domain.FlowBooking)
		last := ApplyPlace(&fs, resolvedPlace())

		EditAddressLine1(&fs, last, "12 MG Roa")

		assert.Equal(t, "12 MG Roa", fs.AddressLine1)
		assert.Equal(t, "", fs.AddressPlaceID)
		assert.Nil(t, fs.AddressLat)
		assert.Nil(t, fs.AddressLng)
	})

	t.Run("re-typing the resolved value keeps place data", func(t *testing.T) {
		fs := domain.NewFieldSet(domain.FlowBooking)
		last := ApplyPlace(&fs, resolvedPlace())

		EditAddressLine1(&fs, last, "12 MG Road")

		assert.Equal(t, "place-123", fs.AddressPlaceID)
		assert.NotNil(t, fs.AddressLat)
	})
}
