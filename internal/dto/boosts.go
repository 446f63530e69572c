package dto

import (
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// CreateBoostRequest defines a days-based boost purchase.
type CreateBoostRequest struct {
	ItemID string `json:"itemID" binding:"required"`
	Days   int    `json:"days" binding:"required,min=1"`
}

// ActivateBoostRequest defines a tier-based boost activation or extension.
type ActivateBoostRequest struct {
	ItemID string `json:"itemID" binding:"required"`
	Tier   int    `json:"tier" binding:"required,oneof=1 2 3"`
}

// BoostResponse defines the data returned for a boost.
type BoostResponse struct {
	BoostID       string    `json:"boostID"`
	ItemID        string    `json:"itemID"`
	OwnerID       string    `json:"ownerID"`
	Tier          int       `json:"tier"`
	PriorityScore int       `json:"priorityScore"`
	StartsAt      time.Time `json:"startsAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	Active        bool      `json:"active"`
}

// ListBoostsParams defines query parameters for listing active boosts.
type ListBoostsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToBoostResponse converts a domain.Boost to BoostResponse DTO
func ToBoostResponse(boost *domain.Boost, now time.Time) BoostResponse {
	return BoostResponse{
		BoostID:       boost.BoostID,
		ItemID:        boost.ItemID,
		OwnerID:       boost.OwnerID,
		Tier:          boost.Tier,
		PriorityScore: boost.PriorityScore,
		StartsAt:      boost.StartsAt,
		ExpiresAt:     boost.ExpiresAt,
		Active:        boost.ActiveAt(now),
	}
}

// ToListBoostResponse converts a slice of domain.Boost to DTOs
func ToListBoostResponse(boosts []domain.Boost, now time.Time) []BoostResponse {
	res := make([]BoostResponse, len(boosts))
	for i, boost := range boosts {
		res[i] = ToBoostResponse(&boost, now)
	}
	return res
}
