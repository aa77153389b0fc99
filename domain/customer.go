package domain

// Customer is a person or staff account that can own orders.
type Customer struct {
	ID             uint
	Name           string
	Address        string
	Phone          string
	BankingDetails string
	Role           Role
	OrderHistory   []uint
}

// NewCustomer returns a Customer with an empty order history.
func NewCustomer(id uint, name, address, phone, bankingDetails string, role Role) Customer {
	return Customer{
		ID:             id,
		Name:           name,
		Address:        address,
		Phone:          phone,
		BankingDetails: bankingDetails,
		Role:           role,
		OrderHistory:   []uint{},
	}
}
