package services

import (
	"context"
	"sync"

	"github.com/orderman/orderman-api/domain"
)

// MockCustomerService is an in-memory CustomerService for testing
type MockCustomerService struct {
	customers map[uint]domain.Customer
	err       error
	calls     int
	mu        sync.RWMutex
}

// NewMockCustomerService creates a mock holding the given customers
func NewMockCustomerService(customers ...domain.Customer) *MockCustomerService {
	m := &MockCustomerService{customers: make(map[uint]domain.Customer)}
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	return m
}

// FailWith makes every lookup return err
func (m *MockCustomerService) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// GetCustomerByID simulates a lookup
func (m *MockCustomerService) GetCustomerByID(ctx context.Context, id uint) (*domain.Customer, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return nil, false, m.err
	}
	c, ok := m.customers[id]
	if !ok {
		return nil, false, nil
	}
	return &c, true, nil
}

// Calls returns how many lookups were made (for testing assertions)
func (m *MockCustomerService) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}
