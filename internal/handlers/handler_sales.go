package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/dto"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// salesHandler handles HTTP requests for sale distribution.
type salesHandler struct {
	splitService   portssvc.SplitSvcFacade
	defaultFeeRate decimal.Decimal
}

// newSalesHandler creates a new salesHandler.
func newSalesHandler(ss portssvc.SplitSvcFacade, defaultFeeRate decimal.Decimal) *salesHandler {
	return &salesHandler{
		splitService:   ss,
		defaultFeeRate: defaultFeeRate,
	}
}

// registerSalesRoutes registers routes related to sales and their splits.
func registerSalesRoutes(rg *gin.RouterGroup, splitService portssvc.SplitSvcFacade, defaultFeeRate decimal.Decimal) {
	h := newSalesHandler(splitService, defaultFeeRate)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("/:saleID/splits", h.getSaleSplits)
	}
}

// recordSale godoc
// @Summary Record a sale and distribute its revenue
// @Description Computes and persists per-collaborator splits for a completed sale, then credits linked accounts
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.RecordSaleRequest true "Sale details"
// @Success 200 {object} dto.DistributeSaleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Sale already distributed"
// @Failure 500 {object} map[string]string "Failed to distribute sale"
// @Router /sales [post]
func (h *salesHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	feeRate := h.defaultFeeRate
	if req.PlatformFeeRate != nil {
		feeRate = *req.PlatformFeeRate
	}

	sale := domain.Sale{
		SaleID:          req.SaleID,
		BeatID:          req.BeatID,
		Amount:          req.Amount,
		PlatformFeeRate: feeRate,
		Currency:        req.Currency,
	}

	logger.Info("Received request to distribute sale",
		slog.String("sale_id", sale.SaleID), slog.String("beat_id", sale.BeatID), slog.String("amount", sale.Amount.String()))

	outcome, err := h.splitService.DistributeSale(c.Request.Context(), sale)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to distribute sale")
		return
	}

	logger.Info("Sale distributed",
		slog.String("sale_id", outcome.SaleID),
		slog.Int("splits", len(outcome.Splits)),
		slog.Int("credited", len(outcome.CreditedAccounts)),
		slog.Int("failures", len(outcome.Failures)))
	c.JSON(http.StatusOK, dto.ToDistributeSaleResponse(outcome))
}

// getSaleSplits godoc
// @Summary Get the recorded splits for a sale
// @Description Returns the durable split rows recorded for one sale
// @Tags sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 200 {array} dto.SaleSplitResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load sale splits"
// @Router /sales/{saleID}/splits [get]
func (h *salesHandler) getSaleSplits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	splits, err := h.splitService.GetSaleSplits(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load sale splits")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSaleSplitResponse(splits))
}
