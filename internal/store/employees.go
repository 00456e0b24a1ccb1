package store

import (
	"strings"
	"sync"

	"github.com/poscatcafe/pos-terminal/internal/models"
)

type EmployeeStore struct {
	mu        sync.RWMutex
	employees []models.Employee
}

func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{}
}

func (s *EmployeeStore) Replace(employees []models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = make([]models.Employee, len(employees))
	copy(s.employees, employees)
}

func (s *EmployeeStore) All() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)

	return out
}

func (s *EmployeeStore) ByID(id int64) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}

	return models.Employee{}, false
}

func (s *EmployeeStore) Filter(term string) []models.Employee {

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.All()
	}

	all := s.All()
	filtered := all[:0]

	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Username), term) ||
			strings.Contains(strings.ToLower(e.Name), term) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}
