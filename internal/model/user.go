package model

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
)

// User represents a customer or back-office admin account
type User struct {
	BaseModel
	Email           string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password        string   `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName        string   `gorm:"type:varchar(255)" json:"fullName" validate:"required"`
	Address         string   `gorm:"type:text" json:"address"`
	PhoneNumber     string   `gorm:"type:varchar(20)" json:"phoneNumber"`
	IsAdmin         bool     `gorm:"default:false" json:"isAdmin"`
	IsApproved      bool     `gorm:"default:false" json:"isApproved"`
	IsActive        bool     `gorm:"default:true" json:"isActive"`
	DiscountPercent *float64 `gorm:"type:numeric(5,2)" json:"discountPercent,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	Address         string    `json:"address"`
	PhoneNumber     string    `json:"phoneNumber"`
	IsAdmin         bool      `json:"isAdmin"`
	IsApproved      bool      `json:"isApproved"`
	IsActive        bool      `json:"isActive"`
	DiscountPercent *float64  `json:"discountPercent,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		Address:         u.Address,
		PhoneNumber:     u.PhoneNumber,
		IsAdmin:         u.IsAdmin,
		IsApproved:      u.IsApproved,
		IsActive:        u.IsActive,
		DiscountPercent: u.DiscountPercent,
	}
}
