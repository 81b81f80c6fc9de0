package model

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}

// Order aggregates a checkout: the owning user, a human-readable order
// number, the charged total and the item snapshots taken from the cart.
type Order struct {
	BaseModel
	OrderNumber string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"orderNumber"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"userId"`
	TotalAmount float64     `gorm:"not null" json:"totalAmount"`
	Status      OrderStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	Notes       string      `gorm:"type:text" json:"notes"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem is a child row snapshotting one product line at checkout time
type OrderItem struct {
	BaseModel
	OrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`

	ProductID    uuid.UUID `gorm:"type:uuid;not null" json:"productId"`
	ProductName  string    `gorm:"type:varchar(255);not null" json:"productName"`
	SKU          string    `gorm:"type:varchar(50)" json:"sku"`
	CategoryName string    `gorm:"type:varchar(255)" json:"categoryName"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	UnitPrice    float64   `gorm:"not null" json:"unitPrice"`
	LineTotal    float64   `gorm:"not null" json:"lineTotal"`
}
