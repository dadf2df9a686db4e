package entity

import (
	"gorm.io/gorm"
)

type Store struct {
	gorm.Model
	// one store per seller
	SellerID    uint   `gorm:"uniqueIndex;not null" json:"sellerId"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	City        string `json:"city"`
	LogoURL     string `json:"logoUrl"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	FoodItems []FoodItem `gorm:"foreignKey:StoreID" json:"-"`
	Orders    []Order    `gorm:"foreignKey:StoreID" json:"-"`
}
