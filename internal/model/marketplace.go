package model

// Marketplace is a reference entity for external sales channel listings
type Marketplace struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	URL         string `gorm:"type:varchar(512)" json:"url" validate:"omitempty,url"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}
