package seed

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTemplate datos de un cliente del catálogo de ejemplo (sin ID).
type CustomerTemplate struct {
	Name         string
	Email        string
	Region       string
	RegisteredAt time.Time
}

// ProductTemplate datos de un producto del catálogo de ejemplo (sin ID).
type ProductTemplate struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultCustomers clientes de la boutique.
func DefaultCustomers() []CustomerTemplate {
	return []CustomerTemplate{
		{"Ahmed Benzema", "ahmed@email.com", "Alger", date("2024-01-15")},
		{"Fatima Zohra", "fatima@email.com", "Oran", date("2024-02-20")},
		{"Mohamed Bouchair", "mohamed@email.com", "Constantine", date("2024-01-10")},
		{"Yasmine Kaci", "yasmine@email.com", "Annaba", date("2024-03-05")},
		{"Karim Belkacem", "karim@email.com", "Blida", date("2024-02-28")},
		{"Nadia Cherif", "nadia@email.com", "Batna", date("2024-01-20")},
		{"Samir Boumediene", "samir@email.com", "Sétif", date("2024-03-10")},
		{"Leila Messaoudi", "leila@email.com", "Tlemcen", date("2024-02-15")},
	}
}

// DefaultProducts catálogo de productos con precios en DA.
func DefaultProducts() []ProductTemplate {
	return []ProductTemplate{
		{"Smartphone Samsung", "Électronique", decimal.NewFromInt(45000), 15},
		{"Laptop Dell", "Informatique", decimal.NewFromInt(85000), 10},
		{"Thé Céleste", "Épicerie", decimal.NewFromInt(800), 50},
		{"Café Moulu", "Épicerie", decimal.NewFromInt(1200), 30},
		{"Vêtement traditionnel", "Mode", decimal.NewFromInt(5500), 20},
		{"Parfum", "Beauté", decimal.NewFromInt(3500), 25},
		{"Dattes Deglet Nour", "Épicerie", decimal.NewFromInt(2500), 40},
		{"Huile d'Olive", "Épicerie", decimal.NewFromInt(1800), 35},
		{"Smart TV LG", "Électronique", decimal.NewFromInt(65000), 8},
		{"Couscoussier", "Cuisine", decimal.NewFromInt(4200), 15},
	}
}
