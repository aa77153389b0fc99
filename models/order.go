package models

import (
	"fmt"
	"time"

	"github.com/orderman/orderman-api/domain"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order is the stored form of a customer order
type Order struct {
	ID               uint                        `gorm:"primaryKey" json:"order_id"`
	CustomerID       uint                        `gorm:"not null;index" json:"customer_id"` // references customers
	Items            datatypes.JSONSlice[string] `gorm:"not null" json:"items"`
	TotalAmount      decimal.Decimal             `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status           domain.OrderStatus          `gorm:"size:20;not null" json:"status"`
	OrderDate        time.Time                   `gorm:"not null" json:"order_date"`
	InvoiceReference *uint                       `gorm:"index" json:"invoice_reference"` // nullable, references invoices
	CreatedAt        time.Time                   `json:"-"`
	UpdatedAt        time.Time                   `json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeSave validates the status and fills in defaults
func (o *Order) BeforeSave(tx *gorm.DB) error {
	if !o.Status.Valid() {
		return fmt.Errorf("order status %q: %w", o.Status, domain.ErrInvalidValue)
	}
	if o.Items == nil {
		o.Items = datatypes.JSONSlice[string]{}
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return nil
}

func (o Order) ToDomain() domain.Order {
	items := make([]string, len(o.Items))
	copy(items, o.Items)

	return domain.Order{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		Items:            items,
		TotalAmount:      o.TotalAmount,
		Status:           o.Status,
		OrderDate:        o.OrderDate,
		InvoiceReference: o.InvoiceReference,
	}
}

func OrderFromDomain(o domain.Order) Order {
	return Order{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		Items:            datatypes.JSONSlice[string](append([]string{}, o.Items...)),
		TotalAmount:      o.TotalAmount,
		Status:           o.Status,
		OrderDate:        o.OrderDate,
		InvoiceReference: o.InvoiceReference,
	}
}
