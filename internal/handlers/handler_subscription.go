package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/dto"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/middleware"
)

// subscriptionHandler handles HTTP requests for subscriptions and plans.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

// newSubscriptionHandler creates a new subscriptionHandler.
func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: ss,
	}
}

// registerSubscriptionRoutes registers the identity-guarded subscription routes.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(subscriptionService)

	sub := rg.Group("/subscription")
	{
		sub.GET("", h.getSubscription)
		sub.POST("/renew", h.renewSubscription)
		sub.POST("/cancel", h.cancelSubscription)
	}
}

// registerPlanRoutes registers the public plan catalog route.
func registerPlanRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(subscriptionService)
	rg.GET("/plans", h.listPlans)
}

// getSubscription godoc
// @Summary Get the caller's subscription
// @Description Returns the caller's current subscription row
// @Tags subscription
// @Produce  json
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No subscription"
// @Failure 500 {object} map[string]string "Failed to load subscription"
// @Router /subscription [get]
func (h *subscriptionHandler) getSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sub, err := h.subscriptionService.GetSubscription(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load subscription")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(sub))
}

// renewSubscription godoc
// @Summary Apply a verified subscription renewal
// @Description Resets the caller's balance to the plan allowance and moves the period forward
// @Tags subscription
// @Accept  json
// @Produce  json
// @Param   renewal body dto.RenewSubscriptionRequest true "Renewal details"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown plan"
// @Failure 409 {object} map[string]string "Write contention"
// @Failure 500 {object} map[string]string "Failed to apply renewal"
// @Router /subscription/renew [post]
func (h *subscriptionHandler) renewSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenewSubscription", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to renew subscription", slog.String("plan_id", req.PlanID))

	sub, err := h.subscriptionService.SyncRenewal(c.Request.Context(), accountID, req.PlanID, req.ProviderSubscriptionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to apply renewal")
		return
	}

	logger.Info("Subscription renewed", slog.String("plan_id", sub.PlanID))
	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(sub))
}

// cancelSubscription godoc
// @Summary Cancel the caller's subscription at period end
// @Description Flags the subscription to lapse at the current period boundary
// @Tags subscription
// @Produce  json
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No subscription"
// @Failure 500 {object} map[string]string "Failed to cancel subscription"
// @Router /subscription/cancel [post]
func (h *subscriptionHandler) cancelSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sub, err := h.subscriptionService.CancelAtPeriodEnd(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel subscription")
		return
	}

	logger.Info("Subscription flagged for cancellation")
	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(sub))
}

// listPlans godoc
// @Summary List subscription plans
// @Description Returns the active plan catalog
// @Tags subscription
// @Produce  json
// @Success 200 {array} dto.PlanResponse
// @Failure 500 {object} map[string]string "Failed to list plans"
// @Router /plans [get]
func (h *subscriptionHandler) listPlans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	plans, err := h.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list plans")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPlanResponse(plans))
}
