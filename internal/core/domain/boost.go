package domain

import (
	"fmt"
	"time"
)

// Boost tier durations for tier-based activation.
const (
	Tier1Duration = 3 * 24 * time.Hour
	Tier2Duration = 7 * 24 * time.Hour
	Tier3Duration = 30 * 24 * time.Hour
)

// Boost is a time-bounded promotional ranking slot for one beat.
// At most one row exists per ItemID; renewals extend the same row rather than
// overwriting it. Version is the optimistic lock for the upsert loop.
type Boost struct {
	BoostID       string    `json:"boostID"`
	ItemID        string    `json:"itemID"`
	OwnerID       string    `json:"ownerID"`
	Tier          int       `json:"tier"` // 1..3
	PriorityScore int       `json:"priorityScore"`
	StartsAt      time.Time `json:"startsAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	Version       int64     `json:"-"`
	AuditFields
}

// ActiveAt reports whether the boost is in the active set at time t.
func (b Boost) ActiveAt(t time.Time) bool {
	return b.ExpiresAt.After(t)
}

// TierForDays maps a purchased duration in days to a boost tier using fixed
// breakpoints: [1,7) days -> 1, [7,14) -> 2, 14 and up -> 3.
func TierForDays(days int) int {
	switch {
	case days >= 14:
		return 3
	case days >= 7:
		return 2
	default:
		return 1
	}
}

// DurationForTier returns the fixed activation duration for a tier.
func DurationForTier(tier int) (time.Duration, error) {
	switch tier {
	case 1:
		return Tier1Duration, nil
	case 2:
		return Tier2Duration, nil
	case 3:
		return Tier3Duration, nil
	default:
		return 0, fmt.Errorf("invalid boost tier %d", tier)
	}
}

// BoostPriorityScore derives the ranking value from a tier.
func BoostPriorityScore(tier int) int {
	return tier * 100
}
