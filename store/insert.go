package store

import (
	"context"
	"fmt"

	"github.com/orderman/orderman-api/models"
	"gorm.io/gorm"
)

type reference struct {
	field string
	table string
	id    uint
}

// insert writes rec inside one transaction after checking that a caller-chosen
// id is free and that every reference points at an existing row.
func insert(ctx context.Context, s *Store, table string, id uint, rec any, refs ...reference) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if id != 0 {
			taken, err := exists(tx, table, id)
			if err != nil {
				return err
			}
			if taken {
				return &ConstraintViolation{Entity: table, Field: "id", Ref: id, Detail: "duplicate primary key"}
			}
		}

		for _, r := range refs {
			ok, err := exists(tx, r.table, r.id)
			if err != nil {
				return err
			}
			if !ok {
				return &ConstraintViolation{Entity: table, Field: r.field, Ref: r.id, Detail: "references missing " + r.table}
			}
		}

		if err := tx.Create(rec).Error; err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		return nil
	})
}

// InsertCustomer stores c and sets c.ID when it was zero.
func (s *Store) InsertCustomer(ctx context.Context, c *models.Customer) error {
	return insert(ctx, s, c.TableName(), c.ID, c)
}

// InsertOrder stores o. The customer, and the invoice when referenced, must exist.
func (s *Store) InsertOrder(ctx context.Context, o *models.Order) error {
	refs := []reference{{field: "customer_id", table: models.Customer{}.TableName(), id: o.CustomerID}}
	if o.InvoiceReference != nil {
		refs = append(refs, reference{field: "invoice_reference", table: models.Invoice{}.TableName(), id: *o.InvoiceReference})
	}
	return insert(ctx, s, o.TableName(), o.ID, o, refs...)
}

// InsertInvoice stores i. Its customer and order ids are not checked.
func (s *Store) InsertInvoice(ctx context.Context, i *models.Invoice) error {
	return insert(ctx, s, i.TableName(), i.ID, i)
}

// InsertPayment stores p. The invoice must exist.
func (s *Store) InsertPayment(ctx context.Context, p *models.Payment) error {
	return insert(ctx, s, p.TableName(), p.ID, p,
		reference{field: "invoice_id", table: models.Invoice{}.TableName(), id: p.InvoiceID})
}

func (s *Store) InsertProduct(ctx context.Context, p *models.Product) error {
	return insert(ctx, s, p.TableName(), p.ID, p)
}

// Insert dispatches on the record type.
func (s *Store) Insert(ctx context.Context, entity any) error {
	switch e := entity.(type) {
	case *models.Customer:
		return s.InsertCustomer(ctx, e)
	case *models.Order:
		return s.InsertOrder(ctx, e)
	case *models.Invoice:
		return s.InsertInvoice(ctx, e)
	case *models.Payment:
		return s.InsertPayment(ctx, e)
	case *models.Product:
		return s.InsertProduct(ctx, e)
	default:
		return fmt.Errorf("store: cannot insert %T", entity)
	}
}
