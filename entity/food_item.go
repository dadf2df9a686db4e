package entity

import (
	"gorm.io/gorm"
)

const (
	StockStatusIn  = "in_stock"
	StockStatusOut = "out_of_stock"
)

// Variant is a named price alternative of a food item ("Small" 250,
// "Large" 400). Order of the list is significant and preserved.
type Variant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Nutrition struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	IsAIGenerated bool    `json:"isAIGenerated"`
}

type FoodItem struct {
	gorm.Model
	StoreID     uint    `gorm:"index;not null" json:"storeId"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`

	// "individual", "2-3", "4-6", a custom positive integer, or empty
	// for items created before group tagging existed.
	GroupSize   string `json:"groupSize"`
	StockStatus string `gorm:"default:in_stock" json:"stockStatus"`
	ImageURL    string `json:"imageUrl"`

	Nutrition *Nutrition `gorm:"serializer:json" json:"nutrition,omitempty"`
	Variants  []Variant  `gorm:"serializer:json" json:"variants,omitempty"`
}
