package store

import (
	"context"
	"fmt"

	"github.com/orderman/orderman-api/models"
)

// Record is any persisted entity.
type Record interface {
	models.Customer | models.Order | models.Invoice | models.Payment | models.Product
}

// Get looks up a record by primary key. A missing row is reported as found == false
// with a nil error.
func Get[T Record](ctx context.Context, s *Store, id uint) (*T, bool, error) {
	var rec T
	res := s.db.WithContext(ctx).Limit(1).Find(&rec, id)
	if res.Error != nil {
		return nil, false, fmt.Errorf("failed to get %T %d: %w", rec, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &rec, true, nil
}

func (s *Store) GetCustomer(ctx context.Context, id uint) (*models.Customer, bool, error) {
	return Get[models.Customer](ctx, s, id)
}

func (s *Store) GetOrder(ctx context.Context, id uint) (*models.Order, bool, error) {
	return Get[models.Order](ctx, s, id)
}

func (s *Store) GetInvoice(ctx context.Context, id uint) (*models.Invoice, bool, error) {
	return Get[models.Invoice](ctx, s, id)
}

func (s *Store) GetPayment(ctx context.Context, id uint) (*models.Payment, bool, error) {
	return Get[models.Payment](ctx, s, id)
}

func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, bool, error) {
	return Get[models.Product](ctx, s, id)
}

// OrdersForCustomer returns the customer's orders in id order.
func (s *Store) OrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for customer %d: %w", customerID, err)
	}
	return orders, nil
}

// PaymentsForInvoice returns the invoice's payments in id order.
func (s *Store) PaymentsForInvoice(ctx context.Context, invoiceID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Order("id").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments for invoice %d: %w", invoiceID, err)
	}
	return payments, nil
}
