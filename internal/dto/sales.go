package dto

import (
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordSaleRequest defines an already-completed sale to distribute.
// PlatformFeeRate is optional; when absent the configured default applies.
type RecordSaleRequest struct {
	SaleID          string           `json:"saleID" binding:"required"`
	BeatID          string           `json:"beatID" binding:"required"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	Currency        string           `json:"currency" binding:"required,iso4217"`
	PlatformFeeRate *decimal.Decimal `json:"platformFeeRate"`
}

// SaleSplitResponse defines the data returned for one recorded split.
type SaleSplitResponse struct {
	SplitID         string          `json:"splitID"`
	SaleID          string          `json:"saleID"`
	BeatID          string          `json:"beatID"`
	CollaboratorID  string          `json:"collaboratorID"`
	LinkedAccountID string          `json:"linkedAccountID,omitempty"`
	AmountEarned    decimal.Decimal `json:"amountEarned"`
	Currency        string          `json:"currency"`
	Credited        bool            `json:"credited"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SplitCreditFailureResponse reports one recorded split whose credit failed.
type SplitCreditFailureResponse struct {
	CollaboratorID string `json:"collaboratorID"`
	AccountID      string `json:"accountID"`
	Error          string `json:"error"`
}

// DistributeSaleResponse defines the outcome of one distribution.
type DistributeSaleResponse struct {
	SaleID           string                       `json:"saleID"`
	CreatorRevenue   decimal.Decimal              `json:"creatorRevenue"`
	Splits           []SaleSplitResponse          `json:"splits"`
	CreditedAccounts []string                     `json:"creditedAccounts"`
	Failures         []SplitCreditFailureResponse `json:"failures,omitempty"`
}

// ToSaleSplitResponse converts a domain.SaleSplit to SaleSplitResponse DTO
func ToSaleSplitResponse(split domain.SaleSplit) SaleSplitResponse {
	return SaleSplitResponse{
		SplitID:         split.SplitID,
		SaleID:          split.SaleID,
		BeatID:          split.BeatID,
		CollaboratorID:  split.CollaboratorID,
		LinkedAccountID: split.LinkedAccountID,
		AmountEarned:    split.AmountEarned,
		Currency:        split.Currency,
		Credited:        split.Credited,
		CreatedAt:       split.CreatedAt,
	}
}

// ToListSaleSplitResponse converts a slice of domain.SaleSplit to DTOs
func ToListSaleSplitResponse(splits []domain.SaleSplit) []SaleSplitResponse {
	res := make([]SaleSplitResponse, len(splits))
	for i, split := range splits {
		res[i] = ToSaleSplitResponse(split)
	}
	return res
}

// ToDistributeSaleResponse converts a domain.SplitOutcome to its DTO
func ToDistributeSaleResponse(outcome *domain.SplitOutcome) DistributeSaleResponse {
	failures := make([]SplitCreditFailureResponse, len(outcome.Failures))
	for i, f := range outcome.Failures {
		failures[i] = SplitCreditFailureResponse{
			CollaboratorID: f.CollaboratorID,
			AccountID:      f.AccountID,
			Error:          f.Error,
		}
	}
	if len(failures) == 0 {
		failures = nil
	}
	return DistributeSaleResponse{
		SaleID:           outcome.SaleID,
		CreatorRevenue:   outcome.CreatorRevenue,
		Splits:           ToListSaleSplitResponse(outcome.Splits),
		CreditedAccounts: outcome.CreditedAccounts,
		Failures:         failures,
	}
}
