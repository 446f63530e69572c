package dto

import (
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RenewSubscriptionRequest defines a verified renewal event to apply.
type RenewSubscriptionRequest struct {
	PlanID                 string `json:"planID" binding:"required"`
	ProviderSubscriptionID string `json:"providerSubscriptionID"`
}

// SubscriptionResponse defines the data returned for a subscription.
type SubscriptionResponse struct {
	SubscriptionID    string    `json:"subscriptionID"`
	AccountID         string    `json:"accountID"`
	PlanID            string    `json:"planID"`
	Status            string    `json:"status"`
	CurrentPeriodEnd  time.Time `json:"currentPeriodEnd"`
	AutoRenew         bool      `json:"autoRenew"`
	CancelAtPeriodEnd bool      `json:"cancelAtPeriodEnd"`
}

// PlanResponse defines one entry of the plan catalog.
type PlanResponse struct {
	PlanID             string          `json:"planID"`
	Name               string          `json:"name"`
	MonthlyCredits     int64           `json:"monthlyCredits"`
	PriorityProcessing bool            `json:"priorityProcessing"`
	MonthlyPriceUSD    decimal.Decimal `json:"monthlyPriceUSD"`
	PeriodDays         int             `json:"periodDays"`
}

// ToSubscriptionResponse converts a domain.Subscription to its DTO
func ToSubscriptionResponse(sub *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID:    sub.SubscriptionID,
		AccountID:         sub.AccountID,
		PlanID:            sub.PlanID,
		Status:            string(sub.Status),
		CurrentPeriodEnd:  sub.CurrentPeriodEnd,
		AutoRenew:         sub.AutoRenew,
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
}

// ToPlanResponse converts a domain.Plan to PlanResponse DTO
func ToPlanResponse(plan domain.Plan) PlanResponse {
	return PlanResponse{
		PlanID:             plan.PlanID,
		Name:               plan.Name,
		MonthlyCredits:     plan.MonthlyCredits,
		PriorityProcessing: plan.PriorityProcessing,
		MonthlyPriceUSD:    plan.MonthlyPriceUSD,
		PeriodDays:         plan.PeriodDays,
	}
}

// ToListPlanResponse converts a slice of domain.Plan to DTOs
func ToListPlanResponse(plans []domain.Plan) []PlanResponse {
	res := make([]PlanResponse, len(plans))
	for i, plan := range plans {
		res[i] = ToPlanResponse(plan)
	}
	return res
}
