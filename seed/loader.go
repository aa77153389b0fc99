// Package seed loads YAML fixtures and writes them through the store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/orderman/orderman-api/domain"
	"github.com/orderman/orderman-api/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Fixture is a parsed set of records ready for insertion.
type Fixture struct {
	Path      string
	Customers []models.Customer
	Products  []models.Product
	Invoices  []models.Invoice
	Orders    []models.Order
	Payments  []models.Payment
}

// Inserter is the write side of the persistence layer.
type Inserter interface {
	Insert(ctx context.Context, entity any) error
}

// Summary counts the records written by Apply.
type Summary struct {
	Customers int
	Products  int
	Invoices  int
	Orders    int
	Payments  int
}

// Total returns the number of records written.
func (s Summary) Total() int {
	return s.Customers + s.Products + s.Invoices + s.Orders + s.Payments
}

// LoadFile reads and parses the fixture at path.
func LoadFile(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	f, err := Parse(b)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	f.Path = path
	return f, nil
}

// Parse decodes a YAML fixture and validates every enumeration and amount.
func Parse(data []byte) (*Fixture, error) {
	var yf yamlFixture
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, &LoadError{Err: err}
	}

	f := &Fixture{}

	for i, c := range yf.Customers {
		role, err := domain.ParseRole(c.Role)
		if err != nil {
			return nil, &LoadError{Entry: fmt.Sprintf("customers[%d]", i), Err: err}
		}
		f.Customers = append(f.Customers, models.CustomerFromDomain(
			domain.NewCustomer(c.ID, c.Name, c.Address, c.Phone, c.BankingDetails, role)))
	}

	for i, p := range yf.Products {
		price, err := parseAmount(p.Price)
		if err != nil {
			return nil, &LoadError{Entry: fmt.Sprintf("products[%d]", i), Err: err}
		}
		f.Products = append(f.Products, models.ProductFromDomain(domain.NewProduct(p.ID, p.Description, price)))
	}

	for i, inv := range yf.Invoices {
		entry := fmt.Sprintf("invoices[%d]", i)
		amount, err := parseAmount(inv.Amount)
		if err != nil {
			return nil, &LoadError{Entry: entry, Err: err}
		}
		status, err := domain.ParseInvoiceStatus(inv.Status)
		if err != nil {
			return nil, &LoadError{Entry: entry, Err: err}
		}
		d := domain.NewInvoice(inv.ID, inv.CustomerID, inv.OrderID, amount, status)
		if inv.InvoiceDate != nil {
			d.InvoiceDate = *inv.InvoiceDate
		}
		f.Invoices = append(f.Invoices, models.InvoiceFromDomain(d))
	}

	for i, o := range yf.Orders {
		entry := fmt.Sprintf("orders[%d]", i)
		total, err := parseAmount(o.TotalAmount)
		if err != nil {
			return nil, &LoadError{Entry: entry, Err: err}
		}
		status, err := domain.ParseOrderStatus(o.Status)
		if err != nil {
			return nil, &LoadError{Entry: entry, Err: err}
		}
		d := domain.NewOrder(o.ID, o.CustomerID, o.Items, total, status)
		if o.OrderDate != nil {
			d.OrderDate = *o.OrderDate
		}
		d.InvoiceReference = o.InvoiceReference
		f.Orders = append(f.Orders, models.OrderFromDomain(d))
	}

	for i, p := range yf.Payments {
		entry := fmt.Sprintf("payments[%d]", i)
		amount, err := parseAmount(p.Amount)
		if err != nil {
			return nil, &LoadError{Entry: entry, Err: err}
		}
		status, err := domain.ParsePaymentStatus(p.Status)
		if err != nil {
			return nil, &LoadError{Entry: entry, Err: err}
		}
		if p.Method == "" {
			return nil, &LoadError{Entry: entry, Err: fmt.Errorf("payment_method is required: %w", domain.ErrInvalidValue)}
		}
		d := domain.NewPayment(p.ID, p.InvoiceID, amount, status, p.Method)
		if p.PaymentDate != nil {
			d.PaymentDate = *p.PaymentDate
		}
		f.Payments = append(f.Payments, models.PaymentFromDomain(d))
	}

	return f, nil
}

// Apply inserts the fixture. Invoices go in before orders because an order may
// reference its invoice while the invoice's order id is not checked.
// It stops at the first failure; records already written stay written.
func (f *Fixture) Apply(ctx context.Context, db Inserter) (Summary, error) {
	var sum Summary

	fail := func(entry string, err error) (Summary, error) {
		return sum, &LoadError{Path: f.Path, Entry: entry, Err: err}
	}

	for i := range f.Customers {
		if err := db.Insert(ctx, &f.Customers[i]); err != nil {
			return fail(fmt.Sprintf("customers[%d]", i), err)
		}
		sum.Customers++
	}
	for i := range f.Products {
		if err := db.Insert(ctx, &f.Products[i]); err != nil {
			return fail(fmt.Sprintf("products[%d]", i), err)
		}
		sum.Products++
	}
	for i := range f.Invoices {
		if err := db.Insert(ctx, &f.Invoices[i]); err != nil {
			return fail(fmt.Sprintf("invoices[%d]", i), err)
		}
		sum.Invoices++
	}
	for i := range f.Orders {
		if err := db.Insert(ctx, &f.Orders[i]); err != nil {
			return fail(fmt.Sprintf("orders[%d]", i), err)
		}
		sum.Orders++
	}
	for i := range f.Payments {
		if err := db.Insert(ctx, &f.Payments[i]); err != nil {
			return fail(fmt.Sprintf("payments[%d]", i), err)
		}
		sum.Payments++
	}

	return sum, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount %q is negative: %w", s, domain.ErrInvalidValue)
	}
	return d, nil
}
