package domain

import "github.com/shopspring/decimal"

// Plan is one entry of the plan catalog: a static mapping from plan ID to the
// monthly credit allotment, priority flag and price. PeriodDays is currently
// 30 for every known plan but stays per-plan so plans can diverge later.
type Plan struct {
	PlanID             string          `json:"planID"`
	Name               string          `json:"name"`
	MonthlyCredits     int64           `json:"monthlyCredits"`
	PriorityProcessing bool            `json:"priorityProcessing"`
	MonthlyPriceUSD    decimal.Decimal `json:"monthlyPriceUSD"`
	PeriodDays         int             `json:"periodDays"`
	IsActive           bool            `json:"isActive"`
}
