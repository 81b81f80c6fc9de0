package model

import "github.com/google/uuid"

// CartItem is a denormalized snapshot of a product in a user's cart.
// Product fields are copied on add so later catalog edits don't reprice
// what the customer already sees.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId" validate:"uuid_required"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`

	// Snapshot of the product at add time
	ProductName string   `gorm:"type:varchar(255);not null" json:"productName"`
	Price       float64  `gorm:"not null" json:"price"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
	Image       string   `gorm:"type:varchar(512)" json:"image"`
	Stock       int      `json:"stock"`

	Quantity       int      `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	TotalPrice     float64  `gorm:"not null" json:"totalPrice"`
	TotalSalePrice *float64 `json:"totalSalePrice,omitempty"`
}

// RecalculateTotals refreshes the computed line totals from price and quantity
func (ci *CartItem) RecalculateTotals() {
	ci.TotalPrice = ci.Price * float64(ci.Quantity)
	if ci.SalePrice != nil {
		total := *ci.SalePrice * float64(ci.Quantity)
		ci.TotalSalePrice = &total
	} else {
		ci.TotalSalePrice = nil
	}
}

// EffectiveTotal returns the sale total when a sale price was snapshotted
func (ci *CartItem) EffectiveTotal() float64 {
	if ci.TotalSalePrice != nil {
		return *ci.TotalSalePrice
	}
	return ci.TotalPrice
}
