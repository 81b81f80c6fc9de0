package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	BaseModel
	SKU         string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name        string   `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string   `gorm:"type:text" json:"description"`
	Price       float64  `gorm:"not null" json:"price" validate:"gte=0"`
	SalePrice   *float64 `json:"salePrice,omitempty"` // Must not exceed Price, checked in service
	Images      []string `gorm:"type:text;serializer:json" json:"images"`
	Stock       int      `gorm:"default:0" json:"stock"`
	IsActive    bool     `gorm:"default:true" json:"isActive"`
	IsFeatured  bool     `gorm:"default:false" json:"isFeatured"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// EffectivePrice returns the sale price when one is set, the regular price otherwise
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// ProductFilter narrows product listings on the storefront
type ProductFilter struct {
	CategoryID *uuid.UUID
	Featured   *bool
	Active     *bool
}

// Apply adds the filter conditions to a gorm query
func (f ProductFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.CategoryID != nil {
		db = db.Where("category_id = ?", *f.CategoryID)
	}
	if f.Featured != nil {
		db = db.Where("is_featured = ?", *f.Featured)
	}
	if f.Active != nil {
		db = db.Where("is_active = ?", *f.Active)
	}
	return db
}
