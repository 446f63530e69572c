package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/dto"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/middleware"
)

// boostsHandler handles HTTP requests for promotional boosts.
type boostsHandler struct {
	boostService portssvc.BoostSvcFacade
}

// newBoostsHandler creates a new boostsHandler.
func newBoostsHandler(bs portssvc.BoostSvcFacade) *boostsHandler {
	return &boostsHandler{
		boostService: bs,
	}
}

// registerBoostRoutes registers the identity-guarded boost routes.
func registerBoostRoutes(rg *gin.RouterGroup, boostService portssvc.BoostSvcFacade) {
	h := newBoostsHandler(boostService)

	boosts := rg.Group("/boosts")
	{
		boosts.POST("", h.createBoost)
		boosts.POST("/activate", h.activateBoost)
		boosts.POST("/:boostID/pause", h.pauseBoost)
		boosts.DELETE("/:boostID", h.deleteBoost)
	}
}

// registerPublicBoostRoutes registers the boost routes that need no identity.
func registerPublicBoostRoutes(rg *gin.RouterGroup, boostService portssvc.BoostSvcFacade) {
	h := newBoostsHandler(boostService)
	rg.GET("/boosts/active", h.listActiveBoosts)
}

// createBoost godoc
// @Summary Create a boost from purchased days
// @Description Starts a boost for the caller's beat, deriving the tier from the day count
// @Tags boosts
// @Accept  json
// @Produce  json
// @Param   boost body dto.CreateBoostRequest true "Boost details"
// @Success 201 {object} dto.BoostResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Write contention"
// @Failure 500 {object} map[string]string "Failed to create boost"
// @Router /boosts [post]
func (h *boostsHandler) createBoost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateBoostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBoost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create boost", slog.String("item_id", req.ItemID), slog.Int("days", req.Days))

	boost, err := h.boostService.CreateBoost(c.Request.Context(), req.ItemID, accountID, req.Days)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create boost")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoostResponse(boost, time.Now().UTC()))
}

// activateBoost godoc
// @Summary Activate or extend a tier-based boost
// @Description Activates a boost at a tier, extending the existing expiry when one is active
// @Tags boosts
// @Accept  json
// @Produce  json
// @Param   boost body dto.ActivateBoostRequest true "Activation details"
// @Success 200 {object} dto.BoostResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Write contention"
// @Failure 500 {object} map[string]string "Failed to activate boost"
// @Router /boosts/activate [post]
func (h *boostsHandler) activateBoost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ActivateBoostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ActivateBoost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to activate boost", slog.String("item_id", req.ItemID), slog.Int("tier", req.Tier))

	boost, err := h.boostService.ActivateOrExtendBoost(c.Request.Context(), req.ItemID, accountID, req.Tier)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to activate boost")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoostResponse(boost, time.Now().UTC()))
}

// pauseBoost godoc
// @Summary Pause a boost
// @Description Expires the caller's boost immediately while keeping its history
// @Tags boosts
// @Produce  json
// @Param   boostID path string true "Boost ID"
// @Success 200 {object} dto.BoostResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boost not found"
// @Failure 500 {object} map[string]string "Failed to pause boost"
// @Router /boosts/{boostID}/pause [post]
func (h *boostsHandler) pauseBoost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boostID := c.Param("boostID")

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	boost, err := h.boostService.PauseBoost(c.Request.Context(), boostID, accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pause boost")
		return
	}

	logger.Info("Boost paused", slog.String("boost_id", boostID))
	c.JSON(http.StatusOK, dto.ToBoostResponse(boost, time.Now().UTC()))
}

// deleteBoost godoc
// @Summary Delete a boost
// @Description Hard-removes a boost record
// @Tags boosts
// @Produce  json
// @Param   boostID path string true "Boost ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Boost not found"
// @Failure 500 {object} map[string]string "Failed to delete boost"
// @Router /boosts/{boostID} [delete]
func (h *boostsHandler) deleteBoost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boostID := c.Param("boostID")

	if err := h.boostService.DeleteBoost(c.Request.Context(), boostID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete boost")
		return
	}

	logger.Info("Boost deleted", slog.String("boost_id", boostID))
	c.Status(http.StatusNoContent)
}

// listActiveBoosts godoc
// @Summary List active boosts
// @Description Returns the active boost set ordered by priority score then most recent start
// @Tags boosts
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.BoostResponse
// @Failure 500 {object} map[string]string "Failed to list active boosts"
// @Router /boosts/active [get]
func (h *boostsHandler) listActiveBoosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBoostsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListActiveBoosts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	boosts, err := h.boostService.ListActiveBoosts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		// Ranking display degrades to an empty list rather than erroring
		// the whole page.
		logger.Error("Failed to list active boosts, serving empty set", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []dto.BoostResponse{})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBoostResponse(boosts, time.Now().UTC()))
}
