package services

import (
	"strings"

	"hotel-desk/models"
	"hotel-desk/store"
)

// CatalogService reads the hotel service catalog. Charging a catalog entry
// onto a stay goes through the reservation engine, not here.
type CatalogService struct {
	store *store.Store
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

func (s *CatalogService) List(category string) []*models.Service {
	s.store.Lock()
	defer s.store.Unlock()

	var out []*models.Service
	for _, sv := range s.store.Services() {
		if category != "" && !strings.EqualFold(sv.Category, category) {
			continue
		}
		cp := *sv
		out = append(out, &cp)
	}
	return out
}

func (s *CatalogService) Get(serviceID int64) (*models.Service, error) {
	s.store.Lock()
	defer s.store.Unlock()

	sv := s.store.ServiceByID(serviceID)
	if sv == nil {
		return nil, ErrServiceNotFound
	}
	cp := *sv
	return &cp, nil
}
