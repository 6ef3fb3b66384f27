package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// cadenceHandler handles HTTP requests related to allocation cadence.
type cadenceHandler struct {
	cadenceService portssvc.CadenceSvcFacade
	now            func() time.Time
}

func newCadenceHandler(cs portssvc.CadenceSvcFacade, now func() time.Time) *cadenceHandler {
	if now == nil {
		now = time.Now
	}
	return &cadenceHandler{cadenceService: cs, now: now}
}

// RegisterCadenceRoutes registers the cadence routes on a company scoped group.
// now may be nil to use the wall clock.
func RegisterCadenceRoutes(rg *gin.RouterGroup, cadenceService portssvc.CadenceSvcFacade, now func() time.Time) {
	h := newCadenceHandler(cadenceService, now)

	cadence := rg.Group("/cadence")
	{
		cadence.GET("", h.getCadence)
		cadence.PUT("", h.updateCadence)
		cadence.POST("/advance", h.advanceCadence)
	}
}

// getCadence handles GET /cadence.
// Returns the stored or default settings with a description and upcoming runs.
func (h *cadenceHandler) getCadence(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}

	settings, err := h.cadenceService.GetCadence(c.Request.Context(), scope.companyID, scope.userID)
	if err != nil {
		handleServiceError(c, scope.logger, err, "Failed to get cadence")
		return
	}
	c.JSON(http.StatusOK, dto.ToCadenceResponse(*settings))
}

// updateCadence handles PUT /cadence.
func (h *cadenceHandler) updateCadence(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}

	var req dto.UpdateCadenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, scope.logger, err)
		return
	}
	scope.logger.Info("Received request to update cadence", slog.String("cadence", string(req.Cadence)))

	settings, err := h.cadenceService.UpdateCadence(c.Request.Context(), scope.companyID, req.ToDomain(), scope.userID)
	if err != nil {
		handleServiceError(c, scope.logger, err, "Failed to update cadence")
		return
	}
	c.JSON(http.StatusOK, dto.ToCadenceResponse(*settings))
}

// advanceCadence handles POST /cadence/advance.
// Moves the next allocation date past the current cycle.
func (h *cadenceHandler) advanceCadence(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}

	settings, err := h.cadenceService.AdvanceNextAllocationDate(c.Request.Context(), scope.companyID, h.now(), scope.userID)
	if err != nil {
		handleServiceError(c, scope.logger, err, "Failed to advance cadence")
		return
	}
	scope.logger.Info("Next allocation date advanced", slog.String("next_allocation_date", settings.NextAllocationDate))
	c.JSON(http.StatusOK, dto.ToCadenceResponse(*settings))
}
