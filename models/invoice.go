package models

import (
	"fmt"
	"time"

	"github.com/orderman/orderman-api/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is the stored form of an invoice.
// CustomerID and OrderID are plain columns, not checked foreign keys.
type Invoice struct {
	ID          uint                 `gorm:"primaryKey" json:"invoice_id"`
	CustomerID  uint                 `gorm:"not null" json:"customer_id"`
	OrderID     uint                 `gorm:"not null" json:"order_id"`
	Amount      decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status      domain.InvoiceStatus `gorm:"size:20;not null" json:"status"` // pending, paid, overdue
	InvoiceDate time.Time            `gorm:"not null" json:"invoice_date"`
	CreatedAt   time.Time            `json:"-"`
	UpdatedAt   time.Time            `json:"-"`
}

// TableName specifies the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) BeforeSave(tx *gorm.DB) error {
	if !i.Status.Valid() {
		return fmt.Errorf("invoice status %q: %w", i.Status, domain.ErrInvalidValue)
	}
	if i.InvoiceDate.IsZero() {
		i.InvoiceDate = time.Now()
	}
	return nil
}

func (i Invoice) ToDomain() domain.Invoice {
	return domain.Invoice{
		ID:          i.ID,
		CustomerID:  i.CustomerID,
		OrderID:     i.OrderID,
		Amount:      i.Amount,
		Status:      i.Status,
		InvoiceDate: i.InvoiceDate,
	}
}

func InvoiceFromDomain(i domain.Invoice) Invoice {
	return Invoice{
		ID:          i.ID,
		CustomerID:  i.CustomerID,
		OrderID:     i.OrderID,
		Amount:      i.Amount,
		Status:      i.Status,
		InvoiceDate: i.InvoiceDate,
	}
}
