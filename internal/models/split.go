package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleSplit mirrors the sale_splits table.
type SaleSplit struct {
	SplitID         string          `db:"split_id"`
	SaleID          string          `db:"sale_id"`
	BeatID          string          `db:"beat_id"`
	CollaboratorID  string          `db:"collaborator_id"`
	LinkedAccountID string          `db:"linked_account_id"` // nullable
	AmountEarned    decimal.Decimal `db:"amount_earned"`
	Currency        string          `db:"currency"`
	Credited        bool            `db:"credited"`
	CreatedAt       time.Time       `db:"created_at"`
}

// BeatCollaborator mirrors the beat_collaborators table.
type BeatCollaborator struct {
	BeatID          string          `db:"beat_id"`
	CollaboratorID  string          `db:"collaborator_id"`
	LinkedAccountID string          `db:"linked_account_id"` // nullable
	SplitPercentage decimal.Decimal `db:"split_percentage"`
}
