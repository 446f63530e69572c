package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/dto"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/middleware"
)

// creditsHandler handles HTTP requests for the credit ledger.
type creditsHandler struct {
	creditService portssvc.CreditSvcFacade
}

// newCreditsHandler creates a new creditsHandler.
func newCreditsHandler(cs portssvc.CreditSvcFacade) *creditsHandler {
	return &creditsHandler{
		creditService: cs,
	}
}

// registerCreditRoutes registers routes related to the credit ledger.
func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade) {
	h := newCreditsHandler(creditService)

	credits := rg.Group("/credits")
	{
		credits.GET("/balance", h.getBalance)
		credits.GET("/ledger", h.listLedger)
		credits.POST("/spend", h.spendCredits)
		credits.POST("/purchase", h.purchaseCredits)
	}
}

// getBalance godoc
// @Summary Get the caller's credit balance
// @Description Returns the caller's balance, creating the account with the signup bonus on first access
// @Tags credits
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load balance"
// @Router /credits/balance [get]
func (h *creditsHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.creditService.EnsureAccount(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(account))
}

// listLedger godoc
// @Summary List the caller's ledger entries
// @Description Returns a page of the caller's balance history, newest first
// @Tags credits
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list ledger entries"
// @Router /credits/ledger [get]
func (h *creditsHandler) listLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.creditService.ListEntries(c.Request.Context(), accountID, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list ledger entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgerEntryResponse(entries))
}

// spendCredits godoc
// @Summary Spend credits
// @Description Debits the caller's balance for a session or other usage
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   spend body dto.SpendCreditsRequest true "Spend details"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 402 {object} map[string]string "Insufficient funds"
// @Failure 409 {object} map[string]string "Write contention"
// @Failure 500 {object} map[string]string "Failed to spend credits"
// @Router /credits/spend [post]
func (h *creditsHandler) spendCredits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SpendCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SpendCredits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to spend credits", slog.Int64("amount", req.Amount), slog.String("reason", req.Reason))

	account, err := h.creditService.Debit(c.Request.Context(), accountID, req.Amount, req.Reason, domain.SourceSession)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to spend credits")
		return
	}

	logger.Info("Credits spent", slog.Int64("balance", account.Balance))
	c.JSON(http.StatusOK, dto.ToBalanceResponse(account))
}

// purchaseCredits godoc
// @Summary Apply a purchased credit pack
// @Description Credits the caller's balance from a pre-verified one-shot order
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   purchase body dto.PurchaseCreditsRequest true "Order details"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Write contention"
// @Failure 500 {object} map[string]string "Failed to apply purchase"
// @Router /credits/purchase [post]
func (h *creditsHandler) purchaseCredits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.PurchaseCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PurchaseCredits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to apply credit purchase", slog.String("order_id", req.OrderID), slog.Int64("credits", req.Credits))

	meta := map[string]any{"order_id": req.OrderID}
	account, err := h.creditService.Credit(c.Request.Context(), accountID, req.Credits, "credit pack purchase", domain.SourcePurchase, meta)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to apply purchase")
		return
	}

	logger.Info("Purchase applied", slog.Int64("balance", account.Balance))
	c.JSON(http.StatusOK, dto.ToBalanceResponse(account))
}
