package models

import (
	"github.com/shopspring/decimal"
)

// Category groups products. Referenced by Product via foreign key.
type Category struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

func (Category) TableName() string { return "categories" }

// Product is the stored inventory record. AvailableQuantity is only ever
// reduced through the purchase path.
type Product struct {
	ID                int             `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"not null" json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `gorm:"type:decimal(38,2);not null" json:"price"`
	AvailableQuantity float64         `gorm:"not null;default:0" json:"availableQuantity"`
	CategoryID        int             `gorm:"not null;index" json:"categoryId"`
	Category          Category        `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Product) TableName() string { return "products" }
