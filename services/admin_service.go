package services

import (
	"errors"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"
	"github.com/Hamdan-B/FoodiesHub/repository"

	"gorm.io/gorm"
)

type AdminService struct {
	Users  *repository.UserRepository
	Stores *repository.StoreRepository
	Orders *repository.OrderRepository
}

func NewAdminService(users *repository.UserRepository, stores *repository.StoreRepository, orders *repository.OrderRepository) *AdminService {
	return &AdminService{Users: users, Stores: stores, Orders: orders}
}

func (s *AdminService) ListUsers() ([]entity.User, error)   { return s.Users.List() }
func (s *AdminService) ListStores() ([]entity.Store, error) { return s.Stores.ListAll() }
func (s *AdminService) ListOrders() ([]entity.Order, error) { return s.Orders.ListAll() }

func (s *AdminService) SetSellerApproval(userID uint, approved bool) error {
	user, err := s.getUser(userID)
	if err != nil {
		return err
	}
	if !user.Roles.Has(entity.RoleSeller) {
		return apperr.Validation("user did not request the seller role")
	}
	return s.Users.SetSellerApproved(userID, approved)
}

func (s *AdminService) SetRiderApproval(userID uint, approved bool) error {
	user, err := s.getUser(userID)
	if err != nil {
		return err
	}
	if !user.Roles.Has(entity.RoleRider) {
		return apperr.Validation("user did not request the rider role")
	}
	return s.Users.SetRiderApproved(userID, approved)
}

func (s *AdminService) getUser(userID uint) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}
