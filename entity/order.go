package entity

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderAccepted   OrderStatus = "accepted"
	OrderPreparing  OrderStatus = "preparing"
	OrderReady      OrderStatus = "ready"
	OrderPickedUp   OrderStatus = "picked_up"
	OrderDelivering OrderStatus = "delivering"
	OrderDelivered  OrderStatus = "delivered"
	OrderRejected   OrderStatus = "rejected"
	OrderCancelled  OrderStatus = "cancelled"
)

// Terminal reports whether no further transition may leave s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderRejected || s == OrderCancelled
}

const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type Order struct {
	gorm.Model
	BuyerID uint  `gorm:"index;not null" json:"buyerId"`
	StoreID uint  `gorm:"index;not null" json:"storeId"`
	RiderID *uint `gorm:"index" json:"riderId"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`

	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus"`
	OrderStatus   OrderStatus `gorm:"index;default:pending" json:"orderStatus"`

	DeliveryAddress string     `json:"deliveryAddress"`
	DeliveryOTP     *string    `json:"deliveryOTP,omitempty"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
}

type OrderItem struct {
	gorm.Model
	OrderID uint `gorm:"index;not null" json:"orderId"`
	FoodID  uint `gorm:"not null" json:"foodId"`

	// snapshot of the item at checkout time
	Name      string            `json:"name"`
	Quantity  int               `json:"quantity"`
	UnitPrice float64           `json:"unitPrice"`
	Total     float64           `json:"total"`
	Variants  map[string]string `gorm:"serializer:json" json:"variants,omitempty"`
}
