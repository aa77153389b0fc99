package models

import (
	"time"

	"github.com/orderman/orderman-api/domain"
	"github.com/shopspring/decimal"
)

// Product is a catalogue entry
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"product_id"`
	Description string          `gorm:"not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

func (p Product) ToDomain() domain.Product {
	return domain.NewProduct(p.ID, p.Description, p.Price)
}

func ProductFromDomain(p domain.Product) Product {
	return Product{ID: p.ID, Description: p.Description, Price: p.Price}
}
