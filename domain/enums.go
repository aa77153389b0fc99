package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a role or status falls outside its declared set.
var ErrInvalidValue = errors.New("invalid value")

// Role identifies what a customer account is used for. It is stored but never checked.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleOrderStaff Role = "order_staff"
	RoleAccountant Role = "accountant"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOrderStaff, RoleAccountant:
		return true
	}
	return false
}

// ParseRole converts s into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("role %q: %w", s, ErrInvalidValue)
	}
	return r, nil
}

// OrderStatus is the documented lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderInvoiced  OrderStatus = "invoiced"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderInvoiced, OrderPaid, OrderShipped, OrderCompleted:
		return true
	}
	return false
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("order status %q: %w", s, ErrInvalidValue)
	}
	return st, nil
}

// InvoiceStatus is the documented lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	st := InvoiceStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("invoice status %q: %w", s, ErrInvalidValue)
	}
	return st, nil
}

// PaymentStatus is the documented lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	st := PaymentStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("payment status %q: %w", s, ErrInvalidValue)
	}
	return st, nil
}

// Common payment methods. Payment.Method is free-form; these are not enforced.
const (
	MethodBank = "bank"
	MethodCard = "card"
	MethodCash = "cash"
)
