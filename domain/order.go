package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer's request for a list of items.
type Order struct {
	ID               uint
	CustomerID       uint
	Items            []string
	TotalAmount      decimal.Decimal
	Status           OrderStatus
	OrderDate        time.Time
	InvoiceReference *uint // nil until invoiced
}

// NewOrder returns an Order dated now with no invoice reference.
func NewOrder(id, customerID uint, items []string, total decimal.Decimal, status OrderStatus) Order {
	return Order{
		ID:          id,
		CustomerID:  customerID,
		Items:       items,
		TotalAmount: total,
		Status:      status,
		OrderDate:   time.Now(),
	}
}
