package services

import (
	"errors"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"
	"github.com/Hamdan-B/FoodiesHub/repository"
	"github.com/Hamdan-B/FoodiesHub/utils"
	"github.com/Hamdan-B/FoodiesHub/ws"

	"gorm.io/gorm"
)

// flat per-order delivery fee
const DeliveryFee = 5.0

type OrderService struct {
	DB     *gorm.DB
	Orders *repository.OrderRepository
	Foods  *repository.FoodRepository
	Stores *repository.StoreRepository
	Riders *repository.RiderRepository
	Hub    *ws.OrderHub
}

func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	foods *repository.FoodRepository,
	stores *repository.StoreRepository,
	riders *repository.RiderRepository,
	hub *ws.OrderHub,
) *OrderService {
	return &OrderService{DB: db, Orders: orders, Foods: foods, Stores: stores, Riders: riders, Hub: hub}
}

// CartLineIn is one client-held cart line. The server recomputes every
// price from the catalog; only ids, quantities and variant choices are
// trusted.
type CartLineIn struct {
	FoodID   uint              `json:"foodId" binding:"required"`
	Quantity int               `json:"quantity" binding:"required,min=1"`
	Variants map[string]string `json:"variants"`
}

type CheckoutReq struct {
	Lines           []CartLineIn `json:"lines" binding:"required,min=1"`
	DeliveryAddress string       `json:"deliveryAddress" binding:"required"`
	PaymentMethod   string       `json:"paymentMethod" binding:"omitempty,oneof=cod online"`
}

type CheckoutRes struct {
	OrderID      uint    `json:"orderId"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"totalDisplay"`
}

// Checkout turns the buyer's cart into a pending order. A cart may
// only span one store; mixed-store carts are rejected outright.
func (s *OrderService) Checkout(buyerID uint, req *CheckoutReq) (*CheckoutRes, error) {
	method := req.PaymentMethod
	if method == "" {
		method = entity.PaymentMethodCOD
	}

	var (
		storeID  uint
		subtotal float64
		items    []entity.OrderItem
	)
	for _, line := range req.Lines {
		food, err := s.Foods.GetByID(line.FoodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation("food item not found")
			}
			return nil, err
		}
		if storeID == 0 {
			storeID = food.StoreID
		} else if food.StoreID != storeID {
			return nil, apperr.Validation("cart contains items from more than one store")
		}
		if food.StockStatus != entity.StockStatusIn {
			return nil, apperr.Validation(food.Name + " is out of stock")
		}

		unit := food.Price
		for _, choice := range line.Variants {
			for _, v := range food.Variants {
				if v.Name == choice {
					unit = v.Price
				}
			}
		}

		lineTotal := unit * float64(line.Quantity)
		subtotal += lineTotal
		items = append(items, entity.OrderItem{
			FoodID:    food.ID,
			Name:      food.Name,
			Quantity:  line.Quantity,
			UnitPrice: unit,
			Total:     lineTotal,
			Variants:  line.Variants,
		})
	}

	paymentStatus := entity.PaymentPending
	if method == entity.PaymentMethodOnline {
		paymentStatus = entity.PaymentPaid
	}

	order := entity.Order{
		BuyerID:         buyerID,
		StoreID:         storeID,
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     DeliveryFee,
		Total:           subtotal + DeliveryFee,
		PaymentMethod:   method,
		PaymentStatus:   paymentStatus,
		OrderStatus:     entity.OrderPending,
		DeliveryAddress: req.DeliveryAddress,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Orders.Create(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutRes{
		OrderID:      order.ID,
		Total:        order.Total,
		TotalDisplay: utils.FormatPrice(order.Total),
	}, nil
}

func (s *OrderService) ListForBuyer(buyerID uint) ([]entity.Order, error) {
	return s.Orders.ListForBuyer(buyerID)
}

func (s *OrderService) DetailForBuyer(buyerID, orderID uint) (*entity.Order, error) {
	o, err := s.Orders.GetForBuyer(buyerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}

// ListForSeller returns the orders of the seller's store.
func (s *OrderService) ListForSeller(sellerID uint) ([]entity.Order, error) {
	store, err := s.Stores.GetBySellerID(sellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("store not found")
		}
		return nil, err
	}
	return s.Orders.ListForStore(store.ID)
}

func (s *OrderService) ListAvailable() ([]entity.Order, error) {
	return s.Orders.ListAvailable()
}

// ListForRider returns the orders claimed by the rider owned by userID.
func (s *OrderService) ListForRider(userID uint) ([]entity.Order, error) {
	rider, err := s.Riders.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("rider profile not found")
		}
		return nil, err
	}
	return s.Orders.ListForRider(rider.ID)
}
