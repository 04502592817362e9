package models

import "time"

// Guest IDs come from the store's guest sequence and are never reused.
// TotalStays and TotalSpent only ever grow; both are bumped at check-out.
type Guest struct {
	ID      int64  `json:"guest_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`

	IDProof  string `json:"id_proof"`
	IDNumber string `json:"id_number"`

	RegisteredAt time.Time `json:"registered_at"`

	TotalStays int     `json:"total_stays"`
	TotalSpent float64 `json:"total_spent"`
	VIP        bool    `json:"vip_status"`
}
