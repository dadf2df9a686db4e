package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"
	"github.com/Hamdan-B/FoodiesHub/ws"

	"gorm.io/gorm"
)

// Lifecycle:
//
//	pending → accepted → preparing → ready → picked_up → delivering → delivered
//	pending → rejected
//	any non-terminal → cancelled
//
// Sellers drive the order up to ready, riders from the claim onward.
// Every transition is a conditional UPDATE guarded on the expected
// current state; zero rows affected means the order moved underneath
// the caller.
var (
	ErrInvalidTransition = apperr.Conflict("invalid order status transition")
	ErrAlreadyClaimed    = apperr.Conflict("order already claimed by another rider")
)

// sellerTransitions maps a seller-requested target status to the
// status the order must still be in.
var sellerTransitions = map[entity.OrderStatus]entity.OrderStatus{
	entity.OrderAccepted:  entity.OrderPending,
	entity.OrderRejected:  entity.OrderPending,
	entity.OrderPreparing: entity.OrderAccepted,
	entity.OrderReady:     entity.OrderPreparing,
}

// SellerTransition advances an order of the seller's own store.
// Marking it ready makes it visible on the rider feed.
func (s *OrderService) SellerTransition(sellerID, orderID uint, target entity.OrderStatus) error {
	from, ok := sellerTransitions[target]
	if !ok {
		return ErrInvalidTransition
	}

	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	owned, err := s.Stores.IsOwnedBy(o.StoreID, sellerID)
	if err != nil {
		return err
	}
	if !owned {
		return apperr.Permission("order belongs to another store")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Orders.UpdateStatusGuard(tx, orderID, from, target)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(orderID, target == entity.OrderReady)
	return nil
}

// BuyerCancel lets a buyer withdraw an order the seller has not acted
// on yet.
func (s *OrderService) BuyerCancel(buyerID, orderID uint) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if o.BuyerID != buyerID {
		return apperr.Permission("not your order")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Orders.UpdateStatusGuard(tx, orderID, entity.OrderPending, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(orderID, false)
	return nil
}

// AdminCancel force-cancels any order that has not reached a terminal
// state.
func (s *OrderService) AdminCancel(orderID uint) error {
	if _, err := s.getOrder(orderID); err != nil {
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Orders.CancelGuard(tx, orderID)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	// a cancelled ready order also leaves the rider feed
	s.publish(orderID, true)
	return nil
}

// RiderClaim is the contested transition: many riders may race for the
// same ready order, and the conditional UPDATE in ClaimForRider decides
// the winner. The loser gets ErrAlreadyClaimed, never a partial write.
func (s *OrderService) RiderClaim(userID, orderID uint) error {
	rider, err := s.getRider(userID)
	if err != nil {
		return err
	}
	if rider.Status != entity.RiderOnline || rider.Availability != entity.RiderAvailable {
		return ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		claimed, err := s.Orders.ClaimForRider(tx, orderID, rider.ID)
		if err != nil {
			return err
		}
		if !claimed {
			var o entity.Order
			if err := tx.First(&o, orderID).Error; err != nil {
				return ErrInvalidTransition
			}
			if o.RiderID != nil {
				return ErrAlreadyClaimed
			}
			return ErrInvalidTransition
		}
		return s.Riders.MarkBusy(tx, rider.ID, orderID)
	})
	if err != nil {
		return err
	}

	s.publish(orderID, true)
	return nil
}

// RiderStartDelivery moves a picked-up order to delivering and stamps
// a fresh 4-digit OTP on it for handoff confirmation.
func (s *OrderService) RiderStartDelivery(userID, orderID uint) (string, error) {
	rider, err := s.getRider(userID)
	if err != nil {
		return "", err
	}

	otp := fmt.Sprintf("%d", 1000+rand.Intn(9000))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Orders.StartDeliveryGuard(tx, orderID, rider.ID, otp)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.publish(orderID, false)
	return otp, nil
}

// RiderDeliver completes the delivery. The guard makes it idempotence-
// safe: a second call finds the order already delivered and fails with
// ErrInvalidTransition before the rider counters are touched, so
// totalDeliveries can never double-count one delivery.
func (s *OrderService) RiderDeliver(userID, orderID uint) error {
	rider, err := s.getRider(userID)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Orders.DeliverGuard(tx, orderID, rider.ID, time.Now())
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		return s.Riders.MarkDelivered(tx, rider.ID)
	})
	if err != nil {
		return err
	}

	s.publish(orderID, false)
	return nil
}

func (s *OrderService) getOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) getRider(userID uint) (*entity.Rider, error) {
	r, err := s.Riders.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("rider profile not found")
		}
		return nil, err
	}
	return r, nil
}

// publish pushes the committed state to the order's own topic and,
// when the rider-visible set changed, to the available feed.
func (s *OrderService) publish(orderID uint, availableChanged bool) {
	if s.Hub == nil {
		return
	}
	o, err := s.Orders.GetByID(orderID)
	if err != nil {
		return
	}
	ev := ws.OrderEvent{
		OrderID:     o.ID,
		StoreID:     o.StoreID,
		OrderStatus: string(o.OrderStatus),
		RiderID:     o.RiderID,
		DeliveryOTP: o.DeliveryOTP,
		At:          time.Now(),
	}
	s.Hub.Publish(ws.OrderTopic(o.ID), ev)
	if availableChanged {
		s.Hub.Publish(ws.TopicAvailable, ev)
	}
}
