package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
	"github.com/kvrsharma/shivaratri-event-forms/internal/utils"
)

// CatalogController раздает статические справочники: храмы, окна
// посещения, даты события и подсказки остатков мест. Кэш остатков
// может отсутствовать, тогда подсказки просто не отдаются.
type CatalogController struct {
	cache out.CachePort
	cfg   *config.Config
}

func NewCatalogController(cache out.CachePort, cfg *config.Config) *CatalogController {
	return &CatalogController{
		cache: cache,
		cfg:   cfg,
	}
}

func (c *CatalogController) RegisterRoutes(router *gin.Engine) {
	catalog := router.Group("/api/v1/catalog")
	{
		catalog.GET("/temples", c.listTemples)
		catalog.GET("/time-slots", c.listTimeSlots)
		catalog.GET("/event-dates", c.listEventDates)
		catalog.GET("/availability/:dateKey", c.getAvailability)
	}
}

func (c *CatalogController) listTemples(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"temples": domain.Temples})
}

func (c *CatalogController) listTimeSlots(ctx *gin.Context) {
	type slotView struct {
		domain.TimeSlot
		ID string `json:"id"`
	}

	slots := make([]slotView, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		slots = append(slots, slotView{TimeSlot: slot, ID: slot.ID()})
	}

	ctx.JSON(http.StatusOK, gin.H{"timeSlots": slots})
}

func (c *CatalogController) listEventDates(ctx *gin.Context) {
	type dateView struct {
		Key     string `json:"key"`
		Display string `json:"display"`
	}

	dates := make([]dateView, 0, len(c.cfg.Event.Dates))
	for _, dateKey := range c.cfg.Event.Dates {
		dates = append(dates, dateView{
			Key:     dateKey,
			Display: utils.FormatDisplayDate(dateKey),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"dates": dates})
}

// Отсутствие данных об остатках это "неизвестно", а не ошибка
func (c *CatalogController) getAvailability(ctx *gin.Context) {
	if c.cache == nil {
		ctx.JSON(http.StatusOK, gin.H{"known": false})
		return
	}

	availability, exists := c.cache.GetAvailability(ctx.Request.Context(), ctx.Param("dateKey"))
	if !exists {
		ctx.JSON(http.StatusOK, gin.H{"known": false})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"known":        true,
		"availability": availability,
	})
}
