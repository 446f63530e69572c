package models

import "time"

// Boost mirrors the boosts table. item_id carries a unique constraint so the
// upsert path keeps at most one row per promoted beat.
type Boost struct {
	BoostID       string    `db:"boost_id"`
	ItemID        string    `db:"item_id"`
	OwnerID       string    `db:"owner_id"`
	Tier          int       `db:"tier"`
	PriorityScore int       `db:"priority_score"`
	StartsAt      time.Time `db:"starts_at"`
	ExpiresAt     time.Time `db:"expires_at"`
	Version       int64     `db:"version"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
