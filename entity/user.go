package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string  `gorm:"uniqueIndex;not null" json:"email"`
	Password    string  `json:"-"`
	DisplayName string  `json:"displayName"`
	Roles       RoleSet `gorm:"not null;default:1" json:"roles"`

	// nil when the role was never requested, false while pending,
	// true once an admin approves.
	SellerApproved *bool `json:"sellerApproved"`
	RiderApproved  *bool `json:"riderApproved"`

	RiderProfileImage string `json:"riderProfileImage,omitempty"`
}
