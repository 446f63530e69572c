package models

import "time"

// CreditAccount mirrors the credit_accounts table.
type CreditAccount struct {
	AccountID          string    `db:"account_id"`
	Balance            int64     `db:"balance"`
	CurrentPlanID      string    `db:"current_plan_id"` // nullable in DB
	PriorityProcessing bool      `db:"priority_processing"`
	Version            int64     `db:"version"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
