package model

// Category is a simple reference entity for grouping products
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:varchar(512)" json:"image"`
}
