package services

import (
	"context"

	"github.com/orderman/orderman-api/domain"
	"github.com/orderman/orderman-api/models"
)

// CustomerService defines the customer lookup operations used by controllers
type CustomerService interface {
	GetCustomerByID(ctx context.Context, id uint) (*domain.Customer, bool, error)
}

// CustomerStore is the part of the persistence layer the lookup service needs
type CustomerStore interface {
	GetCustomer(ctx context.Context, id uint) (*models.Customer, bool, error)
}

// customerService delegates straight to the store
type customerService struct {
	store CustomerStore
}

// NewCustomerService creates a lookup service backed by the given store
func NewCustomerService(store CustomerStore) CustomerService {
	return &customerService{store: store}
}

// GetCustomerByID returns the customer with the given id.
// A missing customer is reported as found == false, not as an error.
func (s *customerService) GetCustomerByID(ctx context.Context, id uint) (*domain.Customer, bool, error) {
	rec, found, err := s.store.GetCustomer(ctx, id)
	if err != nil || !found {
		return nil, false, err
	}

	customer := rec.ToDomain()
	return &customer, true, nil
}
