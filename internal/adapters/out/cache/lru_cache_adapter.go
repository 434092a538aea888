package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
)

// LRUCacheAdapter держит два независимых LRU: разрешенные адреса
// (ключ - place_id) и остатки мест по датам (ключ - дата YYYY-MM-DD).
// Остатки приходят асинхронно из очереди, поэтому чтение и запись
// защищены общим мьютексом.
type LRUCacheAdapter struct {
	places       *lru.Cache[string, *domain.ResolvedPlace]
	availability *lru.Cache[string, *domain.SlotAvailability]
	mu           sync.RWMutex
	logger       out.LoggerPort
}

func NewLRUCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*LRUCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	places, err := lru.New[string, *domain.ResolvedPlace](cfg.Cache.PlacesSize)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.PlacesSize,
		})
		return nil, err
	}

	availability, err := lru.New[string, *domain.SlotAvailability](cfg.Cache.AvailabilitySize)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.AvailabilitySize,
		})
		return nil, err
	}

	return &LRUCacheAdapter{
		places:       places,
		availability: availability,
		logger:       logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *LRUCacheAdapter) GetPlace(ctx context.Context, placeID string) (*domain.ResolvedPlace, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	place, exists := c.places.Get(placeID)
	if !exists {
		c.logger.Debug("cache.place.miss", out.LogFields{
			"placeId": placeID,
		})
		return nil, false
	}

	c.logger.Debug("cache.place.hit", out.LogFields{
		"placeId": placeID,
	})
	return place, true
}

func (c *LRUCacheAdapter) StorePlace(ctx context.Context, place domain.ResolvedPlace) {
	if place.PlaceID == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.place.store", out.LogFields{
		"placeId": place.PlaceID,
	})

	c.places.Add(place.PlaceID, &place)
}

func (c *LRUCacheAdapter) GetAvailability(ctx context.Context, dateKey string) (*domain.SlotAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	availability, exists := c.availability.Get(dateKey)
	if !exists {
		return nil, false
	}

	c.logger.Debug("cache.availability.hit", out.LogFields{
		"date": dateKey,
	})
	return availability, true
}

func (c *LRUCacheAdapter) StoreAvailability(ctx context.Context, availability domain.SlotAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.availability.store", out.LogFields{
		"date":  availability.Date,
		"slots": len(availability.Remaining),
	})

	c.availability.Add(availability.Date, &availability)
}

func (c *LRUCacheAdapter) InvalidateAvailability(ctx context.Context, dateKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.availability.Remove(dateKey)
}
