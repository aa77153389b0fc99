package models

import (
	"fmt"
	"time"

	"github.com/orderman/orderman-api/domain"
	"gorm.io/gorm"
)

// Customer is the stored form of a customer account
type Customer struct {
	ID             uint        `gorm:"primaryKey" json:"customer_id"`
	Name           string      `gorm:"size:80;not null" json:"name"`
	Address        string      `gorm:"size:120;not null" json:"address"`
	Phone          string      `gorm:"size:20;not null" json:"-"`
	BankingDetails string      `gorm:"size:255;not null" json:"-"`
	Role           domain.Role `gorm:"size:20;not null" json:"role"` // customer, order_staff, accountant
	CreatedAt      time.Time   `json:"-"`
	UpdatedAt      time.Time   `json:"-"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// BeforeSave rejects roles outside the declared set
func (c *Customer) BeforeSave(tx *gorm.DB) error {
	if !c.Role.Valid() {
		return fmt.Errorf("customer role %q: %w", c.Role, domain.ErrInvalidValue)
	}
	return nil
}

// ToDomain converts the record into a domain value with an empty order history
func (c Customer) ToDomain() domain.Customer {
	return domain.NewCustomer(c.ID, c.Name, c.Address, c.Phone, c.BankingDetails, c.Role)
}

// CustomerFromDomain builds a record from a domain value
func CustomerFromDomain(c domain.Customer) Customer {
	return Customer{
		ID:             c.ID,
		Name:           c.Name,
		Address:        c.Address,
		Phone:          c.Phone,
		BankingDetails: c.BankingDetails,
		Role:           c.Role,
	}
}
