package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
)

// CustomerModel fila de customers.
type CustomerModel struct {
	ID           string    `gorm:"primaryKey;type:text"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"not null"`
	Region       string    `gorm:"not null"`
	RegisteredAt time.Time `gorm:"type:date;not null"`
}

func (CustomerModel) TableName() string { return "customers" }

// ProductModel fila de products.
type ProductModel struct {
	ID       string          `gorm:"primaryKey;type:text"`
	Name     string          `gorm:"not null"`
	Category string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Stock    int             `gorm:"not null"`
}

func (ProductModel) TableName() string { return "products" }

// TransactionModel fila de transactions.
type TransactionModel struct {
	ID              string          `gorm:"primaryKey;type:text"`
	CustomerID      string          `gorm:"type:text;not null;index"`
	Customer        CustomerModel   `gorm:"foreignKey:CustomerID"`
	ProductID       string          `gorm:"type:text;not null;index"`
	Product         ProductModel    `gorm:"foreignKey:ProductID"`
	Quantity        int             `gorm:"not null"`
	TransactionDate time.Time       `gorm:"type:date;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (TransactionModel) TableName() string { return "transactions" }

func customerModel(c entity.Customer) CustomerModel {
	return CustomerModel{ID: c.ID, Name: c.Name, Email: c.Email, Region: c.Region, RegisteredAt: c.RegisteredAt}
}

func productModel(p entity.Product) ProductModel {
	return ProductModel{ID: p.ID, Name: p.Name, Category: p.Category, Price: p.Price, Stock: p.Stock}
}

func transactionModel(t entity.Transaction) TransactionModel {
	return TransactionModel{
		ID:              t.ID,
		CustomerID:      t.CustomerID,
		ProductID:       t.ProductID,
		Quantity:        t.Quantity,
		TransactionDate: t.Date,
		TotalAmount:     t.TotalAmount,
	}
}
