package entity

import (
	"gorm.io/gorm"
)

const (
	RiderOnline  = "online"
	RiderOffline = "offline"

	RiderAvailable = "available"
	RiderBusy      = "busy"
)

type Rider struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Status          string `gorm:"default:offline" json:"status"`
	Availability    string `gorm:"default:available" json:"availability"`
	CurrentOrderID  *uint  `json:"currentOrderId"`
	TotalDeliveries int    `gorm:"default:0" json:"totalDeliveries"`
}
