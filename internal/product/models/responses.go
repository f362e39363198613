package models

import "github.com/shopspring/decimal"

// ProductResponse is the outward catalog view, with the category flattened.
type ProductResponse struct {
	ID                  int             `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price"`
	AvailableQuantity   float64         `json:"availableQuantity"`
	CategoryID          int             `json:"categoryId"`
	CategoryName        string          `json:"categoryName"`
	CategoryDescription string          `json:"categoryDescription"`
}

// PurchaseConfirmation is returned once per successfully purchased line.
type PurchaseConfirmation struct {
	ProductID   int             `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    float64         `json:"quantity"`
}

// ToProduct builds a stored product from a catalog request.
func (r ProductRequest) ToProduct() Product {
	return Product{
		Name:              r.Name,
		Description:       r.Description,
		Price:             r.Price,
		AvailableQuantity: r.AvailableQuantity,
		CategoryID:        r.CategoryID,
	}
}

// ToResponse flattens a product and its category.
func (p Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		Price:               p.Price,
		AvailableQuantity:   p.AvailableQuantity,
		CategoryID:          p.CategoryID,
		CategoryName:        p.Category.Name,
		CategoryDescription: p.Category.Description,
	}
}

// ToPurchaseConfirmation pairs an updated product with the quantity that was
// requested for it.
func (p Product) ToPurchaseConfirmation(requestedQuantity float64) PurchaseConfirmation {
	return PurchaseConfirmation{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    requestedQuantity,
	}
}
