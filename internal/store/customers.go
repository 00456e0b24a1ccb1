package store

import (
	"strings"
	"sync"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

type CustomerStore struct {
	mu        sync.RWMutex
	customers []models.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{}
}

func (s *CustomerStore) Replace(customers []models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = make([]models.Customer, len(customers))
	copy(s.customers, customers)
}

func (s *CustomerStore) All() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)

	return out
}

func (s *CustomerStore) ByID(id int64) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}

	return models.Customer{}, false
}

// Filter matches the substring against name, phone, email, address and the
// display code (c007 matches customer 7).
func (s *CustomerStore) Filter(term string) []models.Customer {

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.All()
	}

	all := s.All()
	filtered := all[:0]

	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Phone), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(strings.ToLower(c.Address), term) ||
			strings.Contains(strings.ToLower(c.DisplayCode()), term) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
