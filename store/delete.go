package store

import (
	"context"
	"fmt"

	"github.com/orderman/orderman-api/models"
	"gorm.io/gorm"
)

type dependent struct {
	table string
	field string
}

// remove deletes the row with the given id unless a dependent row still references it.
func remove(ctx context.Context, s *Store, table string, id uint, model any, deps ...dependent) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range deps {
			var n int64
			if err := tx.Table(d.table).Where(d.field+" = ?", id).Count(&n).Error; err != nil {
				return fmt.Errorf("failed to count %s referencing %s %d: %w", d.table, table, id, err)
			}
			if n > 0 {
				return &ConstraintViolation{
					Entity: table,
					Field:  "id",
					Ref:    id,
					Detail: fmt.Sprintf("still referenced by %d row(s) in %s.%s", n, d.table, d.field),
				}
			}
		}

		res := tx.Delete(model, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, res.Error)
		}
		found = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// DeleteCustomer refuses while orders belong to the customer.
func (s *Store) DeleteCustomer(ctx context.Context, id uint) (bool, error) {
	return remove(ctx, s, models.Customer{}.TableName(), id, &models.Customer{},
		dependent{table: models.Order{}.TableName(), field: "customer_id"})
}

// DeleteInvoice refuses while payments or orders reference the invoice.
func (s *Store) DeleteInvoice(ctx context.Context, id uint) (bool, error) {
	return remove(ctx, s, models.Invoice{}.TableName(), id, &models.Invoice{},
		dependent{table: models.Payment{}.TableName(), field: "invoice_id"},
		dependent{table: models.Order{}.TableName(), field: "invoice_reference"})
}

func (s *Store) DeleteOrder(ctx context.Context, id uint) (bool, error) {
	return remove(ctx, s, models.Order{}.TableName(), id, &models.Order{})
}

func (s *Store) DeletePayment(ctx context.Context, id uint) (bool, error) {
	return remove(ctx, s, models.Payment{}.TableName(), id, &models.Payment{})
}

func (s *Store) DeleteProduct(ctx context.Context, id uint) (bool, error) {
	return remove(ctx, s, models.Product{}.TableName(), id, &models.Product{})
}
