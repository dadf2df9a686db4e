package repository

import (
	"github.com/Hamdan-B/FoodiesHub/entity"

	"gorm.io/gorm"
)

type FoodRepository struct{ DB *gorm.DB }

func NewFoodRepository(db *gorm.DB) *FoodRepository { return &FoodRepository{DB: db} }

func (r *FoodRepository) Create(f *entity.FoodItem) error {
	return r.DB.Create(f).Error
}

func (r *FoodRepository) GetByID(id uint) (*entity.FoodItem, error) {
	var f entity.FoodItem
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// ListForStore returns every item of a store, for the seller's own view.
func (r *FoodRepository) ListForStore(storeID uint) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Where("store_id = ?", storeID).Order("id").Find(&items).Error
	return items, err
}

// ListInStockForStore returns only purchasable items, for buyers.
func (r *FoodRepository) ListInStockForStore(storeID uint) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Where("store_id = ? AND stock_status = ?", storeID, entity.StockStatusIn).
		Order("id").Find(&items).Error
	return items, err
}

// ListInStockForStores loads purchasable items across many stores in
// one query, preserving store then item order.
func (r *FoodRepository) ListInStockForStores(storeIDs []uint) ([]entity.FoodItem, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}
	var items []entity.FoodItem
	err := r.DB.Where("store_id IN ? AND stock_status = ?", storeIDs, entity.StockStatusIn).
		Order("store_id, id").Find(&items).Error
	return items, err
}

func (r *FoodRepository) Update(f *entity.FoodItem) error {
	return r.DB.Save(f).Error
}

func (r *FoodRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.FoodItem{}, id).Error
}
