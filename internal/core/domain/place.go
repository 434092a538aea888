package domain

const (
	ComponentStreetNumber = "street_number"
	ComponentRoute        = "route"
	ComponentSubpremise   = "subpremise"
	ComponentLocality     = "locality"
	ComponentAdminLevel1  = "administrative_area_level_1"
	ComponentAdminLevel2  = "administrative_area_level_2"
	ComponentPostalCode   = "postal_code"
)

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// ResolvedPlace - структурированный адрес из внешнего геосервиса
type ResolvedPlace struct {
	FormattedAddress  string             `json:"formatted_address"`
	PlaceID           string             `json:"place_id,omitempty"`
	AddressComponents []AddressComponent `json:"address_components"`
	Lat               *float64           `json:"lat,omitempty"`
	Lng               *float64           `json:"lng,omitempty"`
}

func (p ResolvedPlace) Component(typ string) string {
	for _, comp := range p.AddressComponents {
		for _, t := range comp.Types {
			if t == typ {
				return comp.LongName
			}
		}
	}
	return ""
}

type PlacePrediction struct {
	PlaceID     string `json:"placeId"`
	Description string `json:"description"`
}
