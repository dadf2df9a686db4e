package services

import (
	"errors"
	"strconv"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"
	"github.com/Hamdan-B/FoodiesHub/repository"
	"github.com/Hamdan-B/FoodiesHub/utils"

	"gorm.io/gorm"
)

// StoreService covers the seller side: the one store per seller and
// its food catalog.
type StoreService struct {
	Stores *repository.StoreRepository
	Foods  *repository.FoodRepository
}

func NewStoreService(stores *repository.StoreRepository, foods *repository.FoodRepository) *StoreService {
	return &StoreService{Stores: stores, Foods: foods}
}

type CreateStoreReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	City        string `json:"city" binding:"required"`
	LogoURL     string `json:"logoUrl"`
}

func (s *StoreService) CreateStore(sellerID uint, req *CreateStoreReq) (*entity.Store, error) {
	has, err := s.Stores.SellerHasStore(sellerID)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, apperr.Conflict("you can only create one store")
	}

	store := entity.Store{
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		LogoURL:     req.LogoURL,
		IsActive:    true,
	}
	if err := s.Stores.Create(&store); err != nil {
		return nil, err
	}
	return &store, nil
}

// MyStore returns nil without error when the seller has not created a
// store yet.
func (s *StoreService) MyStore(sellerID uint) (*entity.Store, error) {
	store, err := s.Stores.GetBySellerID(sellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return store, nil
}

type UpdateStoreReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	City        *string `json:"city"`
	LogoURL     *string `json:"logoUrl"`
	IsActive    *bool   `json:"isActive"`
}

func (s *StoreService) UpdateStore(sellerID uint, req *UpdateStoreReq) (*entity.Store, error) {
	store, err := s.requireStore(sellerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Description != nil {
		store.Description = *req.Description
	}
	if req.City != nil {
		store.City = *req.City
	}
	if req.LogoURL != nil {
		store.LogoURL = *req.LogoURL
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}
	if err := s.Stores.Update(store); err != nil {
		return nil, err
	}
	return store, nil
}

// ---- food items ----

type FoodItemReq struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Price       float64           `json:"price" binding:"required,gt=0"`
	Category    string            `json:"category"`
	GroupSize   string            `json:"groupSize"`
	StockStatus string            `json:"stockStatus" binding:"omitempty,oneof=in_stock out_of_stock"`
	ImageURL    string            `json:"imageUrl"`
	Nutrition   *entity.Nutrition `json:"nutrition"`
	Variants    []entity.Variant  `json:"variants"`
}

func validGroupSize(tag string) bool {
	switch tag {
	case "", "individual", "2-3", "4-6":
		return true
	}
	n, err := strconv.Atoi(tag)
	return err == nil && n > 0
}

func (s *StoreService) CreateFood(sellerID uint, req *FoodItemReq) (*entity.FoodItem, error) {
	store, err := s.requireStore(sellerID)
	if err != nil {
		return nil, err
	}
	if !validGroupSize(req.GroupSize) {
		return nil, apperr.Validation("groupSize must be individual, 2-3, 4-6 or a positive number")
	}
	for _, v := range req.Variants {
		if v.Name == "" || v.Price <= 0 {
			return nil, apperr.Validation("every variant needs a name and a positive price")
		}
	}

	stock := req.StockStatus
	if stock == "" {
		stock = entity.StockStatusIn
	}

	food := entity.FoodItem{
		StoreID:     store.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    utils.CategoryDisplayName(req.Category),
		GroupSize:   req.GroupSize,
		StockStatus: stock,
		ImageURL:    req.ImageURL,
		Nutrition:   req.Nutrition,
		Variants:    req.Variants,
	}
	if food.Category == "Not specified" {
		food.Category = ""
	}
	if err := s.Foods.Create(&food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *StoreService) UpdateFood(sellerID, foodID uint, req *FoodItemReq) (*entity.FoodItem, error) {
	food, err := s.requireOwnFood(sellerID, foodID)
	if err != nil {
		return nil, err
	}
	if !validGroupSize(req.GroupSize) {
		return nil, apperr.Validation("groupSize must be individual, 2-3, 4-6 or a positive number")
	}

	food.Name = req.Name
	food.Description = req.Description
	food.Price = req.Price
	food.Category = utils.CategoryDisplayName(req.Category)
	if food.Category == "Not specified" {
		food.Category = ""
	}
	food.GroupSize = req.GroupSize
	if req.StockStatus != "" {
		food.StockStatus = req.StockStatus
	}
	if req.ImageURL != "" {
		food.ImageURL = req.ImageURL
	}
	food.Nutrition = req.Nutrition
	food.Variants = req.Variants

	if err := s.Foods.Update(food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *StoreService) DeleteFood(sellerID, foodID uint) error {
	food, err := s.requireOwnFood(sellerID, foodID)
	if err != nil {
		return err
	}
	return s.Foods.Delete(food.ID)
}

func (s *StoreService) ListMyFoods(sellerID uint) ([]entity.FoodItem, error) {
	store, err := s.requireStore(sellerID)
	if err != nil {
		return nil, err
	}
	return s.Foods.ListForStore(store.ID)
}

func (s *StoreService) requireStore(sellerID uint) (*entity.Store, error) {
	store, err := s.Stores.GetBySellerID(sellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("create a store first")
		}
		return nil, err
	}
	return store, nil
}

func (s *StoreService) requireOwnFood(sellerID, foodID uint) (*entity.FoodItem, error) {
	store, err := s.requireStore(sellerID)
	if err != nil {
		return nil, err
	}
	food, err := s.Foods.GetByID(foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("food item not found")
		}
		return nil, err
	}
	if food.StoreID != store.ID {
		return nil, apperr.Permission("food item belongs to another store")
	}
	return food, nil
}
