package models

type RoomType string

const (
	RoomStandard     RoomType = "Standard"
	RoomDeluxe       RoomType = "Deluxe"
	RoomSuite        RoomType = "Suite"
	RoomPresidential RoomType = "Presidential"
)

func (t RoomType) IsValid() bool {
	switch t {
	case RoomStandard, RoomDeluxe, RoomSuite, RoomPresidential:
		return true
	default:
		return false
	}
}

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomBooked      RoomStatus = "BOOKED"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

var roomNext = map[RoomStatus]map[RoomStatus]bool{
	RoomAvailable:   {RoomBooked: true, RoomMaintenance: true},
	RoomBooked:      {RoomOccupied: true, RoomAvailable: true},
	RoomOccupied:    {RoomAvailable: true},
	RoomMaintenance: {RoomAvailable: true},
}

func (s RoomStatus) CanTransition(to RoomStatus) bool {
	return roomNext[s][to]
}

// Room is keyed by its number; rooms are never deleted. While the room is
// BOOKED or OCCUPIED, ActiveBookingID references the single non-terminal
// booking holding it. Occupant name and stay dates are derived from that
// booking rather than copied onto the room.
type Room struct {
	RoomNumber string     `json:"room_number"`
	Type       RoomType   `json:"room_type"`
	Price      float64    `json:"price"`
	Capacity   int        `json:"capacity"`
	Amenities  []string   `json:"amenities"`
	Status     RoomStatus `json:"status"`

	ActiveBookingID *int64 `json:"active_booking_id,omitempty"`
}
