package services

import (
	"log"
	"strings"
	"time"

	"hotel-desk/models"
	"hotel-desk/store"
)

// StaffService is plain roster upkeep over pass-through data.
type StaffService struct {
	store    *store.Store
	snapshot *store.Snapshot
}

func NewStaffService(st *store.Store, sn *store.Snapshot) *StaffService {
	return &StaffService{store: st, snapshot: sn}
}

func (s *StaffService) persist() {
	if err := s.snapshot.Save(s.store); err != nil {
		log.Printf("warning: snapshot save failed after staff mutation: %v", err)
	}
}

func (s *StaffService) Add(name, position, department, phone, email string, salary float64) *models.Staff {
	s.store.Lock()
	defer s.store.Unlock()

	member := &models.Staff{
		ID:         s.store.NextStaffID(),
		Name:       strings.TrimSpace(name),
		Position:   position,
		Department: department,
		Phone:      phone,
		Email:      email,
		Salary:     salary,
		JoinedAt:   time.Now().UTC(),
		Status:     models.StaffActive,
	}
	s.store.AddStaff(member)

	s.persist()
	cp := *member
	return &cp
}

// StaffUpdate carries optional fields; nil means keep current.
type StaffUpdate struct {
	Position   *string             `json:"position"`
	Department *string             `json:"department"`
	Phone      *string             `json:"phone"`
	Email      *string             `json:"email"`
	Salary     *float64            `json:"salary"`
	Status     *models.StaffStatus `json:"status"`
}

func (s *StaffService) Update(staffID int64, upd StaffUpdate) (*models.Staff, error) {
	s.store.Lock()
	defer s.store.Unlock()

	member := s.store.StaffByID(staffID)
	if member == nil {
		return nil, ErrStaffNotFound
	}

	if upd.Position != nil {
		member.Position = *upd.Position
	}
	if upd.Department != nil {
		member.Department = *upd.Department
	}
	if upd.Phone != nil {
		member.Phone = *upd.Phone
	}
	if upd.Email != nil {
		member.Email = *upd.Email
	}
	if upd.Salary != nil {
		member.Salary = *upd.Salary
	}
	if upd.Status != nil {
		if *upd.Status != models.StaffActive && *upd.Status != models.StaffInactive {
			return nil, ErrInvalidStateTransition
		}
		member.Status = *upd.Status
	}

	s.persist()
	cp := *member
	return &cp, nil
}

func (s *StaffService) List() []*models.Staff {
	s.store.Lock()
	defer s.store.Unlock()

	out := make([]*models.Staff, 0, len(s.store.StaffList()))
	for _, member := range s.store.StaffList() {
		cp := *member
		out = append(out, &cp)
	}
	return out
}
