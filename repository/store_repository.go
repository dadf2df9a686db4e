package repository

import (
	"github.com/Hamdan-B/FoodiesHub/entity"

	"gorm.io/gorm"
)

type StoreRepository struct{ DB *gorm.DB }

func NewStoreRepository(db *gorm.DB) *StoreRepository { return &StoreRepository{DB: db} }

func (r *StoreRepository) Create(s *entity.Store) error {
	return r.DB.Create(s).Error
}

func (r *StoreRepository) GetByID(id uint) (*entity.Store, error) {
	var s entity.Store
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) GetBySellerID(sellerID uint) (*entity.Store, error) {
	var s entity.Store
	if err := r.DB.Where("seller_id = ?", sellerID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) SellerHasStore(sellerID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Store{}).Where("seller_id = ?", sellerID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ListActive returns active stores, optionally narrowed to a city.
func (r *StoreRepository) ListActive(city string) ([]entity.Store, error) {
	q := r.DB.Where("is_active = ?", true)
	if city != "" {
		q = q.Where("city = ?", city)
	}
	var stores []entity.Store
	err := q.Order("id").Find(&stores).Error
	return stores, err
}

func (r *StoreRepository) ListAll() ([]entity.Store, error) {
	var stores []entity.Store
	err := r.DB.Order("id").Find(&stores).Error
	return stores, err
}

func (r *StoreRepository) Update(s *entity.Store) error {
	return r.DB.Save(s).Error
}

// Cities returns the distinct cities of active stores, sorted.
func (r *StoreRepository) Cities() ([]string, error) {
	var cities []string
	err := r.DB.Model(&entity.Store{}).
		Where("is_active = ? AND city <> ''", true).
		Distinct("city").Order("city").
		Pluck("city", &cities).Error
	return cities, err
}

// IsOwnedBy reports whether the store belongs to the seller.
func (r *StoreRepository) IsOwnedBy(storeID, sellerID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Store{}).
		Where("id = ? AND seller_id = ?", storeID, sellerID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
