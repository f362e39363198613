package models

import "github.com/shopspring/decimal"

// ProductRequest creates or replaces a catalog entry.
type ProductRequest struct {
	Name              string          `json:"name" validate:"required"`
	Description       string          `json:"description" validate:"required"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity float64         `json:"availableQuantity" validate:"gt=0"`
	CategoryID        int             `json:"categoryId" validate:"required"`
}

// PurchaseLine is one product/quantity entry of a purchase batch.
type PurchaseLine struct {
	ProductID int     `json:"productId" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
}

// PurchaseRequest is the batch submitted to the purchase endpoint.
type PurchaseRequest struct {
	Lines []PurchaseLine `json:"lines" validate:"required,min=1,dive"`
}
