package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription mirrors the subscriptions table.
type Subscription struct {
	SubscriptionID         string    `db:"subscription_id"`
	AccountID              string    `db:"account_id"`
	PlanID                 string    `db:"plan_id"`
	Status                 string    `db:"status"`
	CurrentPeriodEnd       time.Time `db:"current_period_end"`
	AutoRenew              bool      `db:"auto_renew"`
	CancelAtPeriodEnd      bool      `db:"cancel_at_period_end"`
	ProviderSubscriptionID string    `db:"provider_subscription_id"` // nullable
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}

// Plan mirrors the plans table (catalog, seeded by migration).
type Plan struct {
	PlanID             string          `db:"plan_id"`
	Name               string          `db:"name"`
	MonthlyCredits     int64           `db:"monthly_credits"`
	PriorityProcessing bool            `db:"priority_processing"`
	MonthlyPriceUSD    decimal.Decimal `db:"monthly_price_usd"`
	PeriodDays         int             `db:"period_days"`
	IsActive           bool            `db:"is_active"`
}
