package services

import (
	"time"

	"github.com/jinzhu/now"

	"hotel-desk/models"
	"hotel-desk/store"
)

// ReportService derives operational summaries from the core entities. Pure
// projection: nothing here mutates state or triggers a snapshot.
type ReportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

type TypeOccupancy struct {
	Type     models.RoomType `json:"room_type"`
	Occupied int             `json:"occupied"`
	Total    int             `json:"total"`
}

type OccupancyReport struct {
	Date        time.Time       `json:"date"`
	TotalRooms  int             `json:"total_rooms"`
	Available   int             `json:"available"`
	Booked      int             `json:"booked"`
	Occupied    int             `json:"occupied"`
	Maintenance int             `json:"maintenance"`
	Rate        float64         `json:"occupancy_rate"`
	ByType      []TypeOccupancy `json:"by_type"`
}

func (s *ReportService) Occupancy() OccupancyReport {
	s.store.Lock()
	defer s.store.Unlock()

	rep := OccupancyReport{Date: time.Now().UTC()}
	byType := map[models.RoomType]*TypeOccupancy{}
	order := []models.RoomType{models.RoomStandard, models.RoomDeluxe, models.RoomSuite, models.RoomPresidential}
	for _, t := range order {
		byType[t] = &TypeOccupancy{Type: t}
	}

	for _, r := range s.store.Rooms() {
		rep.TotalRooms++
		switch r.Status {
		case models.RoomAvailable:
			rep.Available++
		case models.RoomBooked:
			rep.Booked++
		case models.RoomOccupied:
			rep.Occupied++
		case models.RoomMaintenance:
			rep.Maintenance++
		}
		if t, ok := byType[r.Type]; ok {
			t.Total++
			if r.Status == models.RoomBooked || r.Status == models.RoomOccupied {
				t.Occupied++
			}
		}
	}

	if rep.TotalRooms > 0 {
		rep.Rate = float64(rep.Booked+rep.Occupied) / float64(rep.TotalRooms) * 100
	}
	for _, t := range order {
		rep.ByType = append(rep.ByType, *byType[t])
	}
	return rep
}

type RevenueReport struct {
	Today             float64 `json:"today"`
	ThisMonth         float64 `json:"this_month"`
	Total             float64 `json:"total"`
	AveragePerBooking float64 `json:"average_per_booking"`
}

// Revenue totals completed stays by their check-out date; the lifetime total
// comes from the guest counters, which the check-out operation keeps in sync
// with completed bookings. A stay closed out early keeps its scheduled
// check-out date, so daily and monthly figures match on the date itself
// rather than "date or earlier".
func (s *ReportService) Revenue() RevenueReport {
	s.store.Lock()
	defer s.store.Unlock()

	nowUTC := time.Now().UTC()
	today := now.With(nowUTC).BeginningOfDay()
	monthStart := now.With(nowUTC).BeginningOfMonth()
	monthEnd := now.With(nowUTC).EndOfMonth()

	var rep RevenueReport
	completed := 0
	for _, b := range s.store.Bookings() {
		if b.Status != models.BookingCheckedOut {
			continue
		}
		completed++
		if b.CheckOut.Equal(today) {
			rep.Today += b.TotalAmount
		}
		if !b.CheckOut.Before(monthStart) && !b.CheckOut.After(monthEnd) {
			rep.ThisMonth += b.TotalAmount
		}
	}
	for _, g := range s.store.Guests() {
		rep.Total += g.TotalSpent
	}
	if completed > 0 {
		rep.AveragePerBooking = rep.Total / float64(completed)
	}
	return rep
}

type DailySummary struct {
	Date              time.Time `json:"date"`
	ExpectedCheckIns  int       `json:"expected_check_ins"`
	ExpectedCheckOuts int       `json:"expected_check_outs"`
	Revenue           float64   `json:"revenue"`
	Occupied          int       `json:"occupied"`
	Available         int       `json:"available"`
}

// TodaySummary lists the day's expected movements: CONFIRMED bookings whose
// stay starts today, and CHECKED_IN bookings whose stay ends today.
func (s *ReportService) TodaySummary() DailySummary {
	s.store.Lock()
	defer s.store.Unlock()

	today := now.With(time.Now().UTC()).BeginningOfDay()
	rep := DailySummary{Date: today}

	for _, b := range s.store.Bookings() {
		switch {
		case b.Status == models.BookingConfirmed && b.CheckIn.Equal(today):
			rep.ExpectedCheckIns++
		case b.Status == models.BookingCheckedIn && b.CheckOut.Equal(today):
			rep.ExpectedCheckOuts++
		}
		if b.Status == models.BookingCheckedOut && b.CheckOut.Equal(today) {
			rep.Revenue += b.TotalAmount
		}
	}
	for _, r := range s.store.Rooms() {
		switch r.Status {
		case models.RoomOccupied:
			rep.Occupied++
		case models.RoomAvailable:
			rep.Available++
		}
	}
	return rep
}
