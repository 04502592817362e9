package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hotel-desk/models"
)

// ErrSnapshotCorrupt marks a snapshot document that exists but could not be
// decoded. Load still returns a usable seeded store alongside it, so startup
// degrades instead of aborting.
var ErrSnapshotCorrupt = errors.New("snapshot_corrupt")

// document is the durable layout: all five collections plus the sequence
// counters. Date fields marshal as RFC 3339 through encoding/json, which is
// sortable and re-parses losslessly.
type document struct {
	Rooms    []*models.Room    `json:"rooms"`
	Guests   []*models.Guest   `json:"guests"`
	Bookings []*models.Booking `json:"bookings"`
	Staff    []*models.Staff   `json:"staff"`
	Services []*models.Service `json:"services"`

	NextGuestID   int64 `json:"next_guest_id"`
	NextBookingID int64 `json:"next_booking_id"`
	NextStaffID   int64 `json:"next_staff_id"`
	NextServiceID int64 `json:"next_service_id"`
}

func exportDocument(s *Store) *document {
	return &document{
		Rooms:         s.rooms,
		Guests:        s.guests,
		Bookings:      s.bookings,
		Staff:         s.staff,
		Services:      s.services,
		NextGuestID:   s.nextGuestID,
		NextBookingID: s.nextBookingID,
		NextStaffID:   s.nextStaffID,
		NextServiceID: s.nextServiceID,
	}
}

func importDocument(doc *document) *Store {
	return &Store{
		rooms:         doc.Rooms,
		guests:        doc.Guests,
		bookings:      doc.Bookings,
		staff:         doc.Staff,
		services:      doc.Services,
		nextGuestID:   seqFloor(doc.NextGuestID, guestIDSeed),
		nextBookingID: seqFloor(doc.NextBookingID, bookingIDSeed),
		nextStaffID:   seqFloor(doc.NextStaffID, staffIDSeed),
		nextServiceID: seqFloor(doc.NextServiceID, serviceIDSeed),
	}
}

// seqFloor guards the counters against a hand-edited document that omits or
// rolls them back; a sequence never runs below its seed value.
func seqFloor(v, seed int64) int64 {
	if v < seed {
		return seed
	}
	return v
}

// Snapshot persists the complete store state to a single JSON document and
// restores it verbatim at startup.
type Snapshot struct {
	Path string
}

func NewSnapshot(path string) *Snapshot {
	return &Snapshot{Path: path}
}

// Save writes the whole document. The write goes to a temp file first and is
// renamed into place, so a failed write never leaves a truncated document
// behind. Callers must hold the store lock.
func (sn *Snapshot) Save(s *Store) error {
	doc := exportDocument(s)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(sn.Path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create snapshot temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot temp file: %w", err)
	}
	if err := os.Rename(tmpName, sn.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reconstructs the store from the document. A missing document means
// first run and yields the seed dataset with no error. An unreadable or
// unparseable document also yields the seed dataset, but the error is
// returned for reporting.
func (sn *Snapshot) Load() (*Store, error) {
	data, err := os.ReadFile(sn.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSeeded(), nil
		}
		return NewSeeded(), fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return NewSeeded(), fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}

	return importDocument(&doc), nil
}
