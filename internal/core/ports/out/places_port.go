package out

import (
	"context"

	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
)

// PlaceLookupPort - внешний геосервис для автодополнения адреса.
// Ready() становится true после инициализации, если сервис так и не поднялся,
// форма молча работает как обычный свободный ввод.
type PlaceLookupPort interface {
	Ready() bool
	Autocomplete(ctx context.Context, input string) ([]domain.PlacePrediction, error)
	ResolvePlace(ctx context.Context, placeID string) (*domain.ResolvedPlace, error)
}
