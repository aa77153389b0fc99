package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment settles all or part of an invoice.
type Payment struct {
	ID          uint
	InvoiceID   uint
	Amount      decimal.Decimal
	Status      PaymentStatus
	Method      string
	PaymentDate time.Time
}

func NewPayment(id, invoiceID uint, amount decimal.Decimal, status PaymentStatus, method string) Payment {
	return Payment{
		ID:          id,
		InvoiceID:   invoiceID,
		Amount:      amount,
		Status:      status,
		Method:      method,
		PaymentDate: time.Now(),
	}
}
