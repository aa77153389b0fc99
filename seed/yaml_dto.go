package seed

import "time"

// Amounts are strings so that values such as 4.50 keep their exact decimal form.

type yamlFixture struct {
	Customers []yamlCustomer `yaml:"customers"`
	Products  []yamlProduct  `yaml:"products"`
	Invoices  []yamlInvoice  `yaml:"invoices"`
	Orders    []yamlOrder    `yaml:"orders"`
	Payments  []yamlPayment  `yaml:"payments"`
}

type yamlCustomer struct {
	ID             uint   `yaml:"id"`
	Name           string `yaml:"name"`
	Address        string `yaml:"address"`
	Phone          string `yaml:"phone"`
	BankingDetails string `yaml:"banking_details"`
	Role           string `yaml:"role"`
}

type yamlProduct struct {
	ID          uint   `yaml:"id"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

type yamlInvoice struct {
	ID          uint       `yaml:"id"`
	CustomerID  uint       `yaml:"customer_id"`
	OrderID     uint       `yaml:"order_id"`
	Amount      string     `yaml:"amount"`
	Status      string     `yaml:"status"`
	InvoiceDate *time.Time `yaml:"invoice_date"`
}

type yamlOrder struct {
	ID               uint       `yaml:"id"`
	CustomerID       uint       `yaml:"customer_id"`
	Items            []string   `yaml:"items"`
	TotalAmount      string     `yaml:"total_amount"`
	Status           string     `yaml:"status"`
	OrderDate        *time.Time `yaml:"order_date"`
	InvoiceReference *uint      `yaml:"invoice_reference"`
}

type yamlPayment struct {
	ID          uint       `yaml:"id"`
	InvoiceID   uint       `yaml:"invoice_id"`
	Amount      string     `yaml:"amount"`
	Status      string     `yaml:"status"`
	Method      string     `yaml:"payment_method"`
	PaymentDate *time.Time `yaml:"payment_date"`
}
