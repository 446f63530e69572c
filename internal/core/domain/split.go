package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the input to a revenue distribution: one already-completed beat
// sale with its gross amount. PlatformFeeRate is a fraction (0.10 = 10%).
type Sale struct {
	SaleID          string          `json:"saleID"`
	BeatID          string          `json:"beatID"`
	Amount          decimal.Decimal `json:"amount"`
	PlatformFeeRate decimal.Decimal `json:"platformFeeRate"`
	Currency        string          `json:"currency"`
}

// BeatCollaborator is one configured beneficiary of a beat's sales.
// LinkedAccountID is empty when the collaborator has no credit account yet;
// their split is still recorded, just not credited.
type BeatCollaborator struct {
	BeatID          string          `json:"beatID"`
	CollaboratorID  string          `json:"collaboratorID"`
	LinkedAccountID string          `json:"linkedAccountID,omitempty"`
	SplitPercentage decimal.Decimal `json:"splitPercentage"` // 0..100
}

// SaleSplit is the durable proof of one collaborator's entitlement from one
// sale. Created once per (sale, collaborator); AmountEarned is never mutated.
// Credited flips to true after the corresponding balance credit lands.
type SaleSplit struct {
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

// SplitCreditFailure reports one collaborator whose split row was written but
// whose balance credit failed. The row remains the source of truth for later
// reconciliation.
type SplitCreditFailure struct {
	CollaboratorID string `json:"collaboratorID"`
	AccountID      string `json:"accountID"`
	Error          string `json:"error"`
}

// SplitOutcome is the result of distributing one sale. It distinguishes
// "durable record written" (Splits) from "balance credited" (CreditedAccounts)
// because the two are deliberately not transactional across accounts.
type SplitOutcome struct {
	SaleID           string               `json:"saleID"`
	CreatorRevenue   decimal.Decimal      `json:"creatorRevenue"`
	Splits           []SaleSplit          `json:"splits"`
	CreditedAccounts []string             `json:"creditedAccounts"`
	Failures         []SplitCreditFailure `json:"failures,omitempty"`
}
