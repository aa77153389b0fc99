package models

import (
	"fmt"
	"time"

	"github.com/orderman/orderman-api/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is the stored form of a payment against an invoice
type Payment struct {
	ID          uint                 `gorm:"primaryKey" json:"payment_id"`
	InvoiceID   uint                 `gorm:"not null;index" json:"invoice_id"` // references invoices
	Amount      decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status      domain.PaymentStatus `gorm:"size:20;not null" json:"status"`
	Method      string               `gorm:"column:payment_method;size:50;not null" json:"payment_method"`
	PaymentDate time.Time            `gorm:"not null" json:"payment_date"`
	CreatedAt   time.Time            `json:"-"`
	UpdatedAt   time.Time            `json:"-"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeSave(tx *gorm.DB) error {
	if !p.Status.Valid() {
		return fmt.Errorf("payment status %q: %w", p.Status, domain.ErrInvalidValue)
	}
	if p.Method == "" {
		return fmt.Errorf("payment method is empty: %w", domain.ErrInvalidValue)
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	return nil
}

func (p Payment) ToDomain() domain.Payment {
	return domain.Payment{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		Status:      p.Status,
		Method:      p.Method,
		PaymentDate: p.PaymentDate,
	}
}

func PaymentFromDomain(p domain.Payment) Payment {
	return Payment{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		Status:      p.Status,
		Method:      p.Method,
		PaymentDate: p.PaymentDate,
	}
}
