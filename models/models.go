package models

// All returns one zero value of every persisted model, in dependency order
func All() []any {
	return []any{
		&Customer{},
		&Product{},
		&Invoice{},
		&Order{},
		&Payment{},
	}
}
