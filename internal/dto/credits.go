package dto

import (
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// SpendCreditsRequest defines the data needed to debit the caller's balance.
type SpendCreditsRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Reason string `json:"reason" binding:"required"`
}

// PurchaseCreditsRequest defines a pre-verified one-shot credit pack order.
type PurchaseCreditsRequest struct {
	OrderID string `json:"orderID" binding:"required"`
	Credits int64  `json:"credits" binding:"required,gt=0"`
}

// BalanceResponse defines the data returned for the caller's balance.
type BalanceResponse struct {
	AccountID          string    `json:"accountID"`
	Balance            int64     `json:"balance"`
	CurrentPlanID      string    `json:"currentPlanID,omitempty"`
	PriorityProcessing bool      `json:"priorityProcessing"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// LedgerEntryResponse defines the data returned for one ledger entry.
type LedgerEntryResponse struct {
	EntryID      string         `json:"entryID"`
	Delta        int64          `json:"delta"`
	BalanceAfter int64          `json:"balanceAfter"`
	Reason       string         `json:"reason"`
	Source       string         `json:"source"`
	Meta         map[string]any `json:"meta,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// ListLedgerParams defines query parameters for listing ledger entries.
type ListLedgerParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToBalanceResponse converts a domain.CreditAccount to BalanceResponse DTO
func ToBalanceResponse(acc *domain.CreditAccount) BalanceResponse {
	return BalanceResponse{
		AccountID:          acc.AccountID,
		Balance:            acc.Balance,
		CurrentPlanID:      acc.CurrentPlanID,
		PriorityProcessing: acc.PriorityProcessing,
		UpdatedAt:          acc.UpdatedAt,
	}
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO
func ToLedgerEntryResponse(entry domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:      entry.EntryID,
		Delta:        entry.Delta,
		BalanceAfter: entry.BalanceAfter,
		Reason:       entry.Reason,
		Source:       string(entry.Source),
		Meta:         entry.Meta,
		CreatedAt:    entry.CreatedAt,
	}
}

// ToListLedgerEntryResponse converts a slice of domain.LedgerEntry to DTOs
func ToListLedgerEntryResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToLedgerEntryResponse(entry)
	}
	return res
}
