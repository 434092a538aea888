package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/in"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/services"
	fss "github.com/kvrsharma/shivaratri-event-forms/internal/core/services/form_session_service"
)

// FormController - HTTP-поверхность сессий формы. Каждая мутация
// возвращает свежую проекцию состояния сессии целиком.
type FormController struct {
	useCase in.FormSessionUseCase
	cfg     *config.Config
}

func NewFormController(useCase in.FormSessionUseCase, cfg *config.Config) *FormController {
	return &FormController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *FormController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/forms/registration", c.openRegistration)
		api.POST("/forms/booking", c.openBooking)

		session := api.Group("/forms/:sessionId")
		{
			session.GET("", c.getSession)
			session.DELETE("", c.closeSession)
			session.PATCH("/fields", c.updateFields)
			session.PUT("/dates", c.selectDates)
			session.DELETE("/dates/:dateKey", c.removeDate)
			session.PUT("/dates/:dateKey/slots/:slotId", c.toggleSlot)
			session.PUT("/view-date", c.setViewDate)
			session.PUT("/party-size", c.setPartySize)
			session.PATCH("/members/:index", c.updateMember)
			session.PUT("/address/line1", c.editAddressLine1)
			session.GET("/address/suggestions", c.suggestAddresses)
			session.POST("/address/resolve", c.resolveAddress)
			session.PUT("/participation", c.setParticipation)
			session.PUT("/quantity", c.setQuantity)
			session.PUT("/terms", c.setTermsAccepted)
			session.POST("/otp/request", c.requestOTP)
			session.POST("/otp/verify", c.verifyOTP)
			session.POST("/back", c.backToPhoneStep)
			session.POST("/submit", c.submit)
			session.POST("/dismiss", c.dismissSuccess)
		}
	}
}

func (c *FormController) openRegistration(ctx *gin.Context) {
	state, err := c.useCase.OpenRegistration(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

func (c *FormController) openBooking(ctx *gin.Context) {
	state, err := c.useCase.OpenBooking(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

func (c *FormController) getSession(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	state, err := c.useCase.GetSession(ctx.Request.Context(), sessionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

func (c *FormController) closeSession(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	if err := c.useCase.CloseSession(ctx.Request.Context(), sessionID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *FormController) updateFields(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var changes domain.FieldChanges
	if err := ctx.ShouldBindJSON(&changes); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.UpdateFields(ctx.Request.Context(), sessionID, changes)
	c.respondState(ctx, state, err)
}

type SelectDatesRequest struct {
	Dates []string `json:"dates" binding:"required"`
}

func (c *FormController) selectDates(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req SelectDatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.SelectDates(ctx.Request.Context(), sessionID, req.Dates)
	c.respondState(ctx, state, err)
}

func (c *FormController) removeDate(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	state, err := c.useCase.RemoveDate(ctx.Request.Context(), sessionID, ctx.Param("dateKey"))
	c.respondState(ctx, state, err)
}

type ToggleSlotRequest struct {
	Checked bool `json:"checked"`
}

func (c *FormController) toggleSlot(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req ToggleSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.ToggleSlot(
		ctx.Request.Context(), sessionID, ctx.Param("dateKey"), ctx.Param("slotId"), req.Checked)
	c.respondState(ctx, state, err)
}

type SetViewDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (c *FormController) setViewDate(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req SetViewDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.SetViewDate(ctx.Request.Context(), sessionID, req.Date)
	c.respondState(ctx, state, err)
}

type SetPartySizeRequest struct {
	Size int `json:"size" binding:"required"`
}

func (c *FormController) setPartySize(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req SetPartySizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.SetPartySize(ctx.Request.Context(), sessionID, req.Size)
	c.respondState(ctx, state, err)
}

func (c *FormController) updateMember(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	index, err := memberIndexParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member index"})
		return
	}

	var changes domain.MemberChanges
	if err := ctx.ShouldBindJSON(&changes); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.UpdateMember(ctx.Request.Context(), sessionID, index, changes)
	c.respondState(ctx, state, err)
}

type AddressLine1Request struct {
	Value string `json:"value"`
}

func (c *FormController) editAddressLine1(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req AddressLine1Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.EditAddressLine1(ctx.Request.Context(), sessionID, req.Value)
	c.respondState(ctx, state, err)
}

func (c *FormController) suggestAddresses(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	predictions, err := c.useCase.SuggestAddresses(ctx.Request.Context(), sessionID, ctx.Query("input"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"predictions": predictions})
}

type ResolveAddressRequest struct {
	PlaceID string `json:"placeId" binding:"required"`
}

func (c *FormController) resolveAddress(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req ResolveAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.ResolveAddress(ctx.Request.Context(), sessionID, req.PlaceID)
	c.respondState(ctx, state, err)
}

type SetParticipationRequest struct {
	Participating *bool `json:"participating" binding:"required"`
}

func (c *FormController) setParticipation(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req SetParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.SetParticipation(ctx.Request.Context(), sessionID, *req.Participating)
	c.respondState(ctx, state, err)
}

type SetQuantityRequest struct {
	Quantity string `json:"quantity"`
}

func (c *FormController) setQuantity(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.SetQuantity(ctx.Request.Context(), sessionID, req.Quantity)
	c.respondState(ctx, state, err)
}

type SetTermsRequest struct {
	Accepted *bool `json:"accepted" binding:"required"`
}

func (c *FormController) setTermsAccepted(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req SetTermsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.SetTermsAccepted(ctx.Request.Context(), sessionID, *req.Accepted)
	c.respondState(ctx, state, err)
}

type RequestOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

func (c *FormController) requestOTP(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req RequestOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.useCase.RequestOTP(ctx.Request.Context(), sessionID, req.PhoneNumber); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusAccepted)
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

func (c *FormController) verifyOTP(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	var req VerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := c.useCase.VerifyOTP(ctx.Request.Context(), sessionID, req.PhoneNumber, req.Code)
	c.respondState(ctx, state, err)
}

func (c *FormController) backToPhoneStep(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	state, err := c.useCase.BackToPhoneStep(ctx.Request.Context(), sessionID)
	c.respondState(ctx, state, err)
}

func (c *FormController) submit(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	state, err := c.useCase.Submit(ctx.Request.Context(), sessionID)
	c.respondState(ctx, state, err)
}

func (c *FormController) dismissSuccess(ctx *gin.Context) {
	sessionID, ok := sessionIDParam(ctx)
	if !ok {
		return
	}

	if err := c.useCase.DismissSuccess(ctx.Request.Context(), sessionID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *FormController) respondState(ctx *gin.Context, state *domain.SessionState, err error) {
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

func sessionIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("sessionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID format"})
		return uuid.Nil, false
	}
	return sessionID, true
}

func memberIndexParam(ctx *gin.Context) (int, error) {
	return strconv.Atoi(ctx.Param("index"))
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSessionBusy):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrFormInvalid),
		errors.Is(err, services.ErrTermsNotAccepted):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrWrongFlow),
		errors.Is(err, services.ErrWrongStep),
		errors.Is(err, services.ErrPhoneLocked):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMemberIndex),
		errors.Is(err, services.ErrPartySizeRange),
		errors.Is(err, services.ErrPhoneInvalid),
		errors.Is(err, fss.ErrDateNotAllowed),
		errors.Is(err, fss.ErrDateNotSelected),
		errors.Is(err, fss.ErrUnknownSlot):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPlacesUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
