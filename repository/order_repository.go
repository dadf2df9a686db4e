package repository

import (
	"time"

	"github.com/Hamdan-B/FoodiesHub/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForBuyer(buyerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").
		Where("id = ? AND buyer_id = ?", orderID, buyerID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForBuyer(buyerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("buyer_id = ?", buyerID).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForStore(storeID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("store_id = ?", storeID).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForRider(riderID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("rider_id = ?", riderID).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("id DESC").Find(&orders).Error
	return orders, err
}

// ListAvailable returns the rider-visible set: ready and unclaimed.
func (r *OrderRepository) ListAvailable() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("order_status = ? AND rider_id IS NULL", entity.OrderReady).
		Order("id").Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves an order from one status to another only if
// it is still in the expected status at write time. Returns whether
// the row changed.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status = ?", orderID, from).
		Update("order_status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// CancelGuard moves any non-terminal order to cancelled.
func (r *OrderRepository) CancelGuard(tx *gorm.DB, orderID uint) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status NOT IN ?", orderID,
			[]entity.OrderStatus{entity.OrderDelivered, entity.OrderRejected, entity.OrderCancelled}).
		Update("order_status", entity.OrderCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ClaimForRider is the rider-claim compare-and-set: it succeeds only
// if the order is still ready and unclaimed at write time, so two
// riders can never both set rider_id.
func (r *OrderRepository) ClaimForRider(tx *gorm.DB, orderID, riderID uint) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status = ? AND rider_id IS NULL", orderID, entity.OrderReady).
		Updates(map[string]any{
			"rider_id":     riderID,
			"order_status": entity.OrderPickedUp,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// StartDeliveryGuard moves picked_up to delivering for the claiming
// rider and stores the generated OTP.
func (r *OrderRepository) StartDeliveryGuard(tx *gorm.DB, orderID, riderID uint, otp string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND rider_id = ? AND order_status = ?", orderID, riderID, entity.OrderPickedUp).
		Updates(map[string]any{
			"order_status": entity.OrderDelivering,
			"delivery_otp": otp,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeliverGuard moves delivering to delivered for the claiming rider
// and stamps the delivery time.
func (r *OrderRepository) DeliverGuard(tx *gorm.DB, orderID, riderID uint, at time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND rider_id = ? AND order_status = ?", orderID, riderID, entity.OrderDelivering).
		Updates(map[string]any{
			"order_status": entity.OrderDelivered,
			"delivered_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
