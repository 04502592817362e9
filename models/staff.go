package models

import "time"

type StaffStatus string

const (
	StaffActive   StaffStatus = "ACTIVE"
	StaffInactive StaffStatus = "INACTIVE"
)

// Staff is pass-through roster data; it carries no state machine.
type Staff struct {
	ID         int64       `json:"staff_id"`
	Name       string      `json:"name"`
	Position   string      `json:"position"`
	Department string      `json:"department"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	Salary     float64     `json:"salary"`
	JoinedAt   time.Time   `json:"joined_at"`
	Status     StaffStatus `json:"status"`
}
