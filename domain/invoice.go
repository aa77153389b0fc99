package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice bills a customer for an order. Amount is expected to match the
// order's total but nothing checks it.
type Invoice struct {
	ID          uint
	CustomerID  uint
	OrderID     uint
	Amount      decimal.Decimal
	Status      InvoiceStatus
	InvoiceDate time.Time
}

func NewInvoice(id, customerID, orderID uint, amount decimal.Decimal, status InvoiceStatus) Invoice {
	return Invoice{
		ID:          id,
		CustomerID:  customerID,
		OrderID:     orderID,
		Amount:      amount,
		Status:      status,
		InvoiceDate: time.Now(),
	}
}
