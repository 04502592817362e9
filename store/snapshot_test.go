package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotel-desk/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// buildPopulatedStore returns a store exercising every status an entity can
// be in, so the round trip covers the full document layout.
func buildPopulatedStore() *Store {
	s := New()

	activeID := int64(5002)
	s.AddRoom(&models.Room{
		RoomNumber:      "101",
		Type:            models.RoomStandard,
		Price:           2500,
		Capacity:        2,
		Amenities:       []string{"TV", "AC", "WiFi"},
		Status:          models.RoomOccupied,
		ActiveBookingID: &activeID,
	})
	s.AddRoom(&models.Room{
		RoomNumber: "201",
		Type:       models.RoomDeluxe,
		Price:      4500,
		Capacity:   2,
		Amenities:  []string{"TV", "Mini Bar"},
		Status:     models.RoomMaintenance,
	})

	s.AddGuest(&models.Guest{
		ID:           s.NextGuestID(),
		Name:         "Asha Rao",
		Phone:        "9812345678",
		Email:        "asha@example.com",
		Address:      "12 MG Road",
		IDProof:      "Passport",
		IDNumber:     "P1234567",
		RegisteredAt: date(2026, time.March, 1),
		TotalStays:   4,
		TotalSpent:   48000,
		VIP:          false,
	})

	s.AddBooking(&models.Booking{
		ID:            s.NextBookingID(),
		ReferenceCode: "AB12-CD34",
		GuestID:       1001,
		RoomNumber:    "101",
		CheckIn:       date(2026, time.April, 1),
		CheckOut:      date(2026, time.April, 4),
		Adults:        2,
		Children:      1,
		TotalAmount:   7500,
		BookedAt:      date(2026, time.March, 20),
		Status:        models.BookingCancelled,
		PaymentStatus: models.PaymentRefunded,
		PaymentMethod: models.PayUPI,
	})
	s.AddBooking(&models.Booking{
		ID:            s.NextBookingID(),
		ReferenceCode: "EF56-GH78",
		GuestID:       1001,
		RoomNumber:    "101",
		CheckIn:       date(2026, time.May, 10),
		CheckOut:      date(2026, time.May, 12),
		Adults:        1,
		Children:      0,
		TotalAmount:   5000,
		BookedAt:      date(2026, time.May, 1),
		Status:        models.BookingCheckedIn,
		PaymentStatus: models.PaymentPending,
	})

	s.AddStaff(&models.Staff{
		ID:         s.NextStaffID(),
		Name:       "Priya Singh",
		Position:   "Receptionist",
		Department: "Front Office",
		Phone:      "9876543211",
		Email:      "priya@hotel.com",
		Salary:     25000,
		JoinedAt:   date(2025, time.January, 15),
		Status:     models.StaffActive,
	})

	s.AddService(&models.Service{
		ID:          s.NextServiceID(),
		Name:        "Spa Massage",
		Category:    "Spa",
		Price:       2000,
		Description: "Traditional massage therapy",
		Available:   true,
	})

	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	sn := NewSnapshot(filepath.Join(t.TempDir(), "hotel_data.json"))
	orig := buildPopulatedStore()

	if err := sn.Save(orig); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := sn.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got, want := len(loaded.Rooms()), len(orig.Rooms()); got != want {
		t.Fatalf("rooms = %d, want %d", got, want)
	}
	if got, want := len(loaded.Bookings()), len(orig.Bookings()); got != want {
		t.Fatalf("bookings = %d, want %d", got, want)
	}

	room := loaded.RoomByNumber("101")
	if room == nil {
		t.Fatal("room 101 lost in round trip")
	}
	if room.Status != models.RoomOccupied {
		t.Errorf("room 101 status = %s, want OCCUPIED", room.Status)
	}
	if room.ActiveBookingID == nil || *room.ActiveBookingID != 5002 {
		t.Errorf("room 101 active booking = %v, want 5002", room.ActiveBookingID)
	}
	if m := loaded.RoomByNumber("201"); m == nil || m.Status != models.RoomMaintenance {
		t.Errorf("room 201 = %+v, want MAINTENANCE", m)
	}

	guest := loaded.GuestByID(1001)
	if guest == nil {
		t.Fatal("guest 1001 lost in round trip")
	}
	if guest.TotalSpent != 48000 || guest.TotalStays != 4 || guest.VIP {
		t.Errorf("guest counters = %+v, want spent 48000, stays 4, not VIP", guest)
	}
	if !guest.RegisteredAt.Equal(date(2026, time.March, 1)) {
		t.Errorf("guest registered_at = %v, want 2026-03-01", guest.RegisteredAt)
	}

	cancelled := loaded.BookingByID(5001)
	if cancelled == nil {
		t.Fatal("booking 5001 lost in round trip")
	}
	if cancelled.Status != models.BookingCancelled || cancelled.PaymentStatus != models.PaymentRefunded {
		t.Errorf("booking 5001 = %s/%s, want CANCELLED/REFUNDED", cancelled.Status, cancelled.PaymentStatus)
	}
	if cancelled.PaymentMethod != models.PayUPI {
		t.Errorf("booking 5001 method = %q, want UPI", cancelled.PaymentMethod)
	}
	if !cancelled.CheckIn.Equal(date(2026, time.April, 1)) || !cancelled.CheckOut.Equal(date(2026, time.April, 4)) {
		t.Errorf("booking 5001 dates = %v..%v", cancelled.CheckIn, cancelled.CheckOut)
	}

	active := loaded.BookingByID(5002)
	if active == nil || active.Status != models.BookingCheckedIn || active.PaymentStatus != models.PaymentPending {
		t.Errorf("booking 5002 = %+v, want CHECKED_IN/PENDING", active)
	}
	if loaded.ActiveBookingForGuest(1001) == nil {
		t.Error("active booking scan failed after round trip")
	}

	if st := loaded.StaffByID(2001); st == nil || st.Status != models.StaffActive {
		t.Errorf("staff 2001 = %+v, want ACTIVE", st)
	}
	if sv := loaded.ServiceByID(3001); sv == nil || sv.Price != 2000 {
		t.Errorf("service 3001 = %+v, want price 2000", sv)
	}

	// sequences resume where the saved store left off
	if got := loaded.NextGuestID(); got != 1002 {
		t.Errorf("guest sequence after load = %d, want 1002", got)
	}
	if got := loaded.NextBookingID(); got != 5003 {
		t.Errorf("booking sequence after load = %d, want 5003", got)
	}
	if got := loaded.NextStaffID(); got != 2002 {
		t.Errorf("staff sequence after load = %d, want 2002", got)
	}
	if got := loaded.NextServiceID(); got != 3002 {
		t.Errorf("service sequence after load = %d, want 3002", got)
	}
}

func TestLoadMissingFileSeeds(t *testing.T) {
	sn := NewSnapshot(filepath.Join(t.TempDir(), "hotel_data.json"))

	s, err := sn.Load()
	if err != nil {
		t.Fatalf("Load() on missing file returned error: %v", err)
	}
	if got := len(s.Rooms()); got != 10 {
		t.Errorf("seeded rooms = %d, want 10", got)
	}
	if got := len(s.Bookings()); got != 0 {
		t.Errorf("seeded bookings = %d, want 0", got)
	}
}

func TestLoadCorruptFileSeedsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewSnapshot(path).Load()
	if !errors.Is(err, ErrSnapshotCorrupt) {
		t.Fatalf("Load() error = %v, want ErrSnapshotCorrupt", err)
	}
	if s == nil || len(s.Rooms()) != 10 {
		t.Error("corrupt snapshot did not fall back to the seed dataset")
	}
}

func TestLoadClampsSequenceCounters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel_data.json")

	// valid JSON, but every counter is missing
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewSnapshot(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := s.NextGuestID(); got != 1001 {
		t.Errorf("guest sequence from empty document = %d, want 1001", got)
	}
	if got := s.NextBookingID(); got != 5001 {
		t.Errorf("booking sequence from empty document = %d, want 5001", got)
	}
	if got := s.NextStaffID(); got != 2001 {
		t.Errorf("staff sequence from empty document = %d, want 2001", got)
	}
	if got := s.NextServiceID(); got != 3001 {
		t.Errorf("service sequence from empty document = %d, want 3001", got)
	}

	// counters above their seeds load verbatim
	doc := `{"next_guest_id": 1200, "next_booking_id": 5050, "next_staff_id": 2010, "next_service_id": 3020}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = NewSnapshot(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := s.NextGuestID(); got != 1200 {
		t.Errorf("guest sequence = %d, want 1200", got)
	}
	if got := s.NextBookingID(); got != 5050 {
		t.Errorf("booking sequence = %d, want 5050", got)
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	sn := NewSnapshot(filepath.Join(dir, "hotel_data.json"))

	if err := sn.Save(buildPopulatedStore()); err != nil {
		t.Fatalf("first Save() error: %v", err)
	}
	if err := sn.Save(New()); err != nil {
		t.Fatalf("second Save() error: %v", err)
	}

	s, err := sn.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := len(s.Rooms()); got != 0 {
		t.Errorf("rooms after overwrite = %d, want 0", got)
	}

	// no stray temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("snapshot dir holds %d entries, want only the document", len(entries))
	}
}
