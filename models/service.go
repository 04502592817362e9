package models

// Service is a catalog entry (restaurant, spa, transport and so on) whose
// price can be charged onto a guest's active booking.
type Service struct {
	ID          int64   `json:"service_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}
