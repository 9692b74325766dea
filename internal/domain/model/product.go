package model

import "time"

// Product is a sellable menu item. Its price is copied into order lines at
// order time; later catalog changes never touch existing orders.
type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       float64
	Available   bool
	CreatedAt   time.Time
}

// ProductCategories is the closed menu category set.
var ProductCategories = []string{
	"Entradas",
	"Plato Principal",
	"Acompañante",
	"Bebidas",
	"Bebidas Alcoholica",
	"Postres",
}

// ValidCategory reports whether the category is part of the menu taxonomy.
func ValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Price bounds for menu items.
const (
	MinProductPrice = 1.0
	MaxProductPrice = 9999.99
)
