package domain

import "github.com/shopspring/decimal"

// Product is a catalogue entry. It has no relationships.
type Product struct {
	ID          uint
	Description string
	Price       decimal.Decimal
}

func NewProduct(id uint, description string, price decimal.Decimal) Product {
	return Product{ID: id, Description: description, Price: price}
}
