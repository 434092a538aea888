package form_session_service

import (
	"strings"

	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
)

// ApplyPlace раскладывает структурированный адрес из геосервиса по
// отдельным полям формы и запоминает идентификатор места с координатами.
// Возвращает значение addressLine1, установленное автодополнением, -
// по нему потом различается ручная правка.
func ApplyPlace(fs *domain.FieldSet, place domain.ResolvedPlace) string {
	streetNumber := place.Component(domain.ComponentStreetNumber)
	route := place.Component(domain.ComponentRoute)
	line1 := strings.TrimSpace(streetNumber + " " + route)

	fs.AddressLine1 = line1
	fs.AddressLine2 = place.Component(domain.ComponentSubpremise)
	fs.City = place.Component(domain.ComponentLocality)
	fs.State = place.Component(domain.ComponentAdminLevel1)
	fs.District = place.Component(domain.ComponentAdminLevel2)
	fs.PinCode = place.Component(domain.ComponentPostalCode)

	fs.AddressPlaceID = place.PlaceID
	fs.AddressLat = place.Lat
	fs.AddressLng = place.Lng

	return line1
}

// EditAddressLine1 - ручной ввод в первую строку адреса. Любое значение,
// отличное от последнего установленного автодополнением, сбрасывает
// place_id и координаты в том же обновлении: для свободно набранного
// адреса они не действительны.
func EditAddressLine1(fs *domain.FieldSet, lastResolvedLine1, value string) {
	fs.AddressLine1 = value

	if value != lastResolvedLine1 {
		fs.AddressPlaceID = ""
		fs.AddressLat = nil
		fs.AddressLng = nil
	}
}
