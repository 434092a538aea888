package out

import (
	"context"

	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
)

type CachePort interface {
	// Кэширование разрешенных адресов
	GetPlace(ctx context.Context, placeID string) (*domain.ResolvedPlace, bool)
	StorePlace(ctx context.Context, place domain.ResolvedPlace)

	// Кэширование остатков мест по слотам
	GetAvailability(ctx context.Context, dateKey string) (*domain.SlotAvailability, bool)
	StoreAvailability(ctx context.Context, availability domain.SlotAvailability)
	InvalidateAvailability(ctx context.Context, dateKey string)
}
