package domain

import "time"

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription is the one logical row per (account, plan). Transitions are
// append-or-update, never delete.
type Subscription struct {
	SubscriptionID         string             `json:"subscriptionID"`
	AccountID              string             `json:"accountID"`
	PlanID                 string             `json:"planID"`
	Status                 SubscriptionStatus `json:"status"`
	CurrentPeriodEnd       time.Time          `json:"currentPeriodEnd"`
	AutoRenew              bool               `json:"autoRenew"`
	CancelAtPeriodEnd      bool               `json:"cancelAtPeriodEnd"`
	ProviderSubscriptionID string             `json:"providerSubscriptionID,omitempty"`
	AuditFields
}
