package repository

import (
	"github.com/Hamdan-B/FoodiesHub/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) SetSellerApproved(id uint, approved bool) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).
		Update("seller_approved", approved).Error
}

func (r *UserRepository) SetRiderApproved(id uint, approved bool) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).
		Update("rider_approved", approved).Error
}

func (r *UserRepository) SetRiderProfileImage(id uint, url string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).
		Update("rider_profile_image", url).Error
}
