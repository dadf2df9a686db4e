package repository

import (
	"github.com/Hamdan-B/FoodiesHub/entity"

	"gorm.io/gorm"
)

type RiderRepository struct{ DB *gorm.DB }

func NewRiderRepository(db *gorm.DB) *RiderRepository { return &RiderRepository{DB: db} }

func (r *RiderRepository) Create(tx *gorm.DB, rd *entity.Rider) error {
	return tx.Create(rd).Error
}

func (r *RiderRepository) GetByUserID(userID uint) (*entity.Rider, error) {
	var rd entity.Rider
	if err := r.DB.Where("user_id = ?", userID).First(&rd).Error; err != nil {
		return nil, err
	}
	return &rd, nil
}

func (r *RiderRepository) SetStatus(riderID uint, status string) error {
	return r.DB.Model(&entity.Rider{}).Where("id = ?", riderID).
		Update("status", status).Error
}

func (r *RiderRepository) SetAvailability(riderID uint, availability string) error {
	return r.DB.Model(&entity.Rider{}).Where("id = ?", riderID).
		Update("availability", availability).Error
}

// MarkBusy records the claimed order on the rider.
func (r *RiderRepository) MarkBusy(tx *gorm.DB, riderID, orderID uint) error {
	return tx.Model(&entity.Rider{}).Where("id = ?", riderID).
		Updates(map[string]any{
			"availability":     entity.RiderBusy,
			"current_order_id": orderID,
		}).Error
}

// MarkDelivered frees the rider and counts the delivery.
func (r *RiderRepository) MarkDelivered(tx *gorm.DB, riderID uint) error {
	return tx.Model(&entity.Rider{}).Where("id = ?", riderID).
		Updates(map[string]any{
			"availability":     entity.RiderAvailable,
			"current_order_id": nil,
			"total_deliveries": gorm.Expr("total_deliveries + 1"),
		}).Error
}
