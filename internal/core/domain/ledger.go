package domain

import "time"

// LedgerSource tags the business cause of a balance change.
type LedgerSource string

const (
	SourceSignup       LedgerSource = "signup"
	SourceSession      LedgerSource = "session"
	SourcePurchase     LedgerSource = "purchase"
	SourceSubscription LedgerSource = "subscription"
	SourceSaleSplit    LedgerSource = "sale_split"
	SourceAdjustment   LedgerSource = "adjustment"
)

// LedgerEntry is an immutable, append-only record of one balance change.
// For a given account, prefix-summing Delta in creation order starting from
// zero reconstructs the balance, and the latest entry's BalanceAfter equals
// the current CreditAccount.Balance.
type LedgerEntry struct {
	EntryID      string         `json:"entryID"`
	AccountID    string         `json:"accountID"`
	Delta        int64          `json:"delta"`
	BalanceAfter int64          `json:"balanceAfter"`
	Reason       string         `json:"reason"`
	Source       LedgerSource   `json:"source"`
	Meta         map[string]any `json:"meta,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
