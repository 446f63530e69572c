package domain

// CreditAccount is the single balance row for one producer account.
// Balance is an integer number of credits, never a float. Version is the
// optimistic lock used by the compare-and-set write path; any mutation must
// carry the version it read, and a stale version loses the write.
type CreditAccount struct {
	AccountID          string `json:"accountID"`
	Balance            int64  `json:"balance"`
	CurrentPlanID      string `json:"currentPlanID"` // empty when the account has no subscription
	PriorityProcessing bool   `json:"priorityProcessing"`
	Version            int64  `json:"-"`
	AuditFields
}
