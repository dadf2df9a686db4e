package services

import (
	"errors"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"
	"github.com/Hamdan-B/FoodiesHub/repository"

	"gorm.io/gorm"
)

// RiderService manages the rider's own record; order transitions live
// on OrderService.
type RiderService struct {
	Riders *repository.RiderRepository
	Users  *repository.UserRepository
}

func NewRiderService(riders *repository.RiderRepository, users *repository.UserRepository) *RiderService {
	return &RiderService{Riders: riders, Users: users}
}

func (s *RiderService) Me(userID uint) (*entity.Rider, error) {
	return s.get(userID)
}

func (s *RiderService) SetStatus(userID uint, status string) error {
	if status != entity.RiderOnline && status != entity.RiderOffline {
		return apperr.Validation("status must be online or offline")
	}
	rider, err := s.get(userID)
	if err != nil {
		return err
	}
	// a rider carrying an order cannot disappear from the system
	if status == entity.RiderOffline && rider.Availability == entity.RiderBusy {
		return apperr.Conflict("cannot go offline while delivering an order")
	}
	return s.Riders.SetStatus(rider.ID, status)
}

func (s *RiderService) SetAvailability(userID uint, availability string) error {
	if availability != entity.RiderAvailable && availability != entity.RiderBusy {
		return apperr.Validation("availability must be available or busy")
	}
	rider, err := s.get(userID)
	if err != nil {
		return err
	}
	if availability == entity.RiderAvailable && rider.CurrentOrderID != nil {
		return apperr.Conflict("finish the current delivery first")
	}
	return s.Riders.SetAvailability(rider.ID, availability)
}

func (s *RiderService) SetProfileImage(userID uint, url string) error {
	if _, err := s.get(userID); err != nil {
		return err
	}
	return s.Users.SetRiderProfileImage(userID, url)
}

func (s *RiderService) get(userID uint) (*entity.Rider, error) {
	rider, err := s.Riders.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("rider profile not found")
		}
		return nil, err
	}
	return rider, nil
}
