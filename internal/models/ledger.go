package models

import "time"

// LedgerEntry mirrors the ledger_entries table. Rows are append-only.
type LedgerEntry struct {
	EntryID      string         `db:"entry_id"`
	AccountID    string         `db:"account_id"`
	Delta        int64          `db:"delta"`
	BalanceAfter int64          `db:"balance_after"`
	Reason       string         `db:"reason"`
	Source       string         `db:"source"`
	Meta         map[string]any `db:"meta"` // stored as JSONB, nullable
	CreatedAt    time.Time      `db:"created_at"`
}
