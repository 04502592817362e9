package store

import (
	"time"

	"hotel-desk/models"
)

// First-run inventory, loaded only when no snapshot document exists. Kept as
// declarative tables so the seed data and the engine stay independently
// testable.

type roomSeed struct {
	number    string
	roomType  models.RoomType
	price     float64
	capacity  int
	amenities []string
}

var roomSeeds = []roomSeed{
	{"101", models.RoomStandard, 2500, 2, []string{"TV", "AC", "WiFi", "Attached Bathroom"}},
	{"102", models.RoomStandard, 2500, 2, []string{"TV", "AC", "WiFi", "Attached Bathroom"}},
	{"103", models.RoomStandard, 2800, 3, []string{"TV", "AC", "WiFi", "Attached Bathroom", "Mini Fridge"}},
	{"104", models.RoomStandard, 2800, 3, []string{"TV", "AC", "WiFi", "Attached Bathroom", "Mini Fridge"}},
	{"201", models.RoomDeluxe, 4500, 2, []string{"TV", "AC", "WiFi", "Mini Bar", "Coffee Maker", "Bathtub"}},
	{"202", models.RoomDeluxe, 4500, 2, []string{"TV", "AC", "WiFi", "Mini Bar", "Coffee Maker", "Bathtub"}},
	{"203", models.RoomDeluxe, 5000, 4, []string{"TV", "AC", "WiFi", "Mini Bar", "Coffee Maker", "Bathtub", "Sofa"}},
	{"301", models.RoomSuite, 8000, 2, []string{"TV", "AC", "WiFi", "Mini Bar", "Coffee Maker", "Bathtub", "Living Area", "Kitchen"}},
	{"302", models.RoomSuite, 8500, 4, []string{"TV", "AC", "WiFi", "Mini Bar", "Coffee Maker", "Bathtub", "Living Area", "Kitchen", "Dining Area"}},
	{"401", models.RoomPresidential, 15000, 4, []string{"TV", "AC", "WiFi", "Mini Bar", "Coffee Maker", "Jacuzzi", "Living Area", "Dining Area", "Kitchen", "Study Room", "Balcony"}},
}

type serviceSeed struct {
	name        string
	category    string
	price       float64
	description string
}

var serviceSeeds = []serviceSeed{
	{"Breakfast Buffet", "Restaurant", 500, "Complimentary breakfast buffet"},
	{"Lunch Buffet", "Restaurant", 800, "Multi-cuisine lunch buffet"},
	{"Dinner Buffet", "Restaurant", 1200, "Premium dinner buffet"},
	{"Spa Massage", "Spa", 2000, "Traditional massage therapy"},
	{"Laundry Service", "Housekeeping", 300, "Wash and fold per item"},
	{"Airport Pickup", "Transport", 1500, "Luxury car airport transfer"},
	{"Gym Access", "Fitness", 500, "Fully equipped gymnasium"},
	{"Swimming Pool", "Recreation", 400, "Indoor heated pool"},
}

type staffSeed struct {
	name       string
	position   string
	department string
	phone      string
	email      string
	salary     float64
}

var staffSeeds = []staffSeed{
	{"Rajesh Kumar", "Manager", "Administration", "9876543210", "rajesh@hotel.com", 60000},
	{"Priya Singh", "Receptionist", "Front Office", "9876543211", "priya@hotel.com", 25000},
	{"Amit Shah", "Chef", "Kitchen", "9876543212", "amit@hotel.com", 40000},
	{"Neha Gupta", "Housekeeping", "Housekeeping", "9876543213", "neha@hotel.com", 20000},
	{"Vikram Mehta", "Security", "Security", "9876543214", "vikram@hotel.com", 18000},
}

// NewSeeded builds a store holding the starter inventory, service catalog
// and staff roster. Staff and service IDs are drawn from their sequences so
// later additions continue where the seed left off.
func NewSeeded() *Store {
	s := New()
	nowUTC := time.Now().UTC()

	for _, rs := range roomSeeds {
		s.AddRoom(&models.Room{
			RoomNumber: rs.number,
			Type:       rs.roomType,
			Price:      rs.price,
			Capacity:   rs.capacity,
			Amenities:  rs.amenities,
			Status:     models.RoomAvailable,
		})
	}

	for _, ss := range serviceSeeds {
		s.AddService(&models.Service{
			ID:          s.NextServiceID(),
			Name:        ss.name,
			Category:    ss.category,
			Price:       ss.price,
			Description: ss.description,
			Available:   true,
		})
	}

	for _, st := range staffSeeds {
		s.AddStaff(&models.Staff{
			ID:         s.NextStaffID(),
			Name:       st.name,
			Position:   st.position,
			Department: st.department,
			Phone:      st.phone,
			Email:      st.email,
			Salary:     st.salary,
			JoinedAt:   nowUTC,
			Status:     models.StaffActive,
		})
	}

	return s
}
