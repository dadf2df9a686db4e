package services

import (
	"sync"
	"testing"

	"github.com/Hamdan-B/FoodiesHub/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerTransition(t *testing.T) {
	svc, db := newTestOrderService(t)
	seller := seedUser(t, db, "seller@test.com", entity.RoleSeller)
	buyer := seedUser(t, db, "buyer@test.com", entity.RoleBuyer)
	store := seedStore(t, db, seller.ID)

	t.Run("happy path up to ready", func(t *testing.T) {
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderPending)

		require.NoError(t, svc.SellerTransition(seller.ID, o.ID, entity.OrderAccepted))
		require.NoError(t, svc.SellerTransition(seller.ID, o.ID, entity.OrderPreparing))
		require.NoError(t, svc.SellerTransition(seller.ID, o.ID, entity.OrderReady))
		assert.Equal(t, entity.OrderReady, orderStatus(t, db, o.ID))
	})

	t.Run("cannot skip a step", func(t *testing.T) {
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderPending)

		err := svc.SellerTransition(seller.ID, o.ID, entity.OrderReady)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, entity.OrderPending, orderStatus(t, db, o.ID))
	})

	t.Run("cannot reject after accepting", func(t *testing.T) {
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderAccepted)

		err := svc.SellerTransition(seller.ID, o.ID, entity.OrderRejected)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("another seller is refused", func(t *testing.T) {
		other := seedUser(t, db, "other-seller@test.com", entity.RoleSeller)
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderPending)

		err := svc.SellerTransition(other.ID, o.ID, entity.OrderAccepted)
		assert.Error(t, err)
		assert.Equal(t, entity.OrderPending, orderStatus(t, db, o.ID))
	})

	t.Run("rider-side targets are not seller moves", func(t *testing.T) {
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderReady)

		err := svc.SellerTransition(seller.ID, o.ID, entity.OrderPickedUp)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestBuyerCancel(t *testing.T) {
	svc, db := newTestOrderService(t)
	seller := seedUser(t, db, "seller@test.com", entity.RoleSeller)
	buyer := seedUser(t, db, "buyer@test.com", entity.RoleBuyer)
	store := seedStore(t, db, seller.ID)

	t.Run("pending order cancels", func(t *testing.T) {
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderPending)
		require.NoError(t, svc.BuyerCancel(buyer.ID, o.ID))
		assert.Equal(t, entity.OrderCancelled, orderStatus(t, db, o.ID))
	})

	t.Run("accepted order is too late", func(t *testing.T) {
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderAccepted)
		assert.ErrorIs(t, svc.BuyerCancel(buyer.ID, o.ID), ErrInvalidTransition)
	})

	t.Run("someone else's order is refused", func(t *testing.T) {
		stranger := seedUser(t, db, "stranger@test.com", entity.RoleBuyer)
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderPending)
		assert.Error(t, svc.BuyerCancel(stranger.ID, o.ID))
	})
}

func TestAdminCancel(t *testing.T) {
	svc, db := newTestOrderService(t)
	seller := seedUser(t, db, "seller@test.com", entity.RoleSeller)
	buyer := seedUser(t, db, "buyer@test.com", entity.RoleBuyer)
	store := seedStore(t, db, seller.ID)

	t.Run("non-terminal orders cancel", func(t *testing.T) {
		for _, st := range []entity.OrderStatus{
			entity.OrderPending, entity.OrderAccepted, entity.OrderPreparing,
			entity.OrderReady, entity.OrderPickedUp, entity.OrderDelivering,
		} {
			o := seedOrder(t, db, buyer.ID, store.ID, st)
			require.NoError(t, svc.AdminCancel(o.ID), "from %s", st)
			assert.Equal(t, entity.OrderCancelled, orderStatus(t, db, o.ID))
		}
	})

	t.Run("terminal orders stay put", func(t *testing.T) {
		for _, st := range []entity.OrderStatus{
			entity.OrderDelivered, entity.OrderRejected, entity.OrderCancelled,
		} {
			o := seedOrder(t, db, buyer.ID, store.ID, st)
			assert.ErrorIs(t, svc.AdminCancel(o.ID), ErrInvalidTransition, "from %s", st)
			assert.Equal(t, st, orderStatus(t, db, o.ID))
		}
	})
}

func TestRiderClaim(t *testing.T) {
	svc, db := newTestOrderService(t)
	seller := seedUser(t, db, "seller@test.com", entity.RoleSeller)
	buyer := seedUser(t, db, "buyer@test.com", entity.RoleBuyer)
	store := seedStore(t, db, seller.ID)

	t.Run("claims a ready order and goes busy", func(t *testing.T) {
		riderUser := seedUser(t, db, "rider1@test.com", entity.RoleRider)
		rider := seedRider(t, db, riderUser.ID)
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderReady)

		require.NoError(t, svc.RiderClaim(riderUser.ID, o.ID))
		assert.Equal(t, entity.OrderPickedUp, orderStatus(t, db, o.ID))

		var fresh entity.Rider
		require.NoError(t, db.First(&fresh, rider.ID).Error)
		assert.Equal(t, entity.RiderBusy, fresh.Availability)
		require.NotNil(t, fresh.CurrentOrderID)
		assert.Equal(t, o.ID, *fresh.CurrentOrderID)
	})

	t.Run("offline rider cannot claim", func(t *testing.T) {
		riderUser := seedUser(t, db, "rider2@test.com", entity.RoleRider)
		rider := seedRider(t, db, riderUser.ID)
		require.NoError(t, db.Model(rider).Update("status", entity.RiderOffline).Error)
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderReady)

		assert.ErrorIs(t, svc.RiderClaim(riderUser.ID, o.ID), ErrInvalidTransition)
		assert.Equal(t, entity.OrderReady, orderStatus(t, db, o.ID))
	})

	t.Run("order not ready yet", func(t *testing.T) {
		riderUser := seedUser(t, db, "rider3@test.com", entity.RoleRider)
		seedRider(t, db, riderUser.ID)
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderPreparing)

		assert.ErrorIs(t, svc.RiderClaim(riderUser.ID, o.ID), ErrInvalidTransition)
	})

	t.Run("second rider loses the claim", func(t *testing.T) {
		firstUser := seedUser(t, db, "rider4@test.com", entity.RoleRider)
		seedRider(t, db, firstUser.ID)
		secondUser := seedUser(t, db, "rider5@test.com", entity.RoleRider)
		seedRider(t, db, secondUser.ID)
		o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderReady)

		require.NoError(t, svc.RiderClaim(firstUser.ID, o.ID))
		assert.ErrorIs(t, svc.RiderClaim(secondUser.ID, o.ID), ErrAlreadyClaimed)
	})
}

// Many riders racing for one ready order: exactly one wins, every loser
// gets ErrAlreadyClaimed, and the order records the winner alone.
func TestRiderClaimConcurrent(t *testing.T) {
	svc, db := newTestOrderService(t)
	seller := seedUser(t, db, "seller@test.com", entity.RoleSeller)
	buyer := seedUser(t, db, "buyer@test.com", entity.RoleBuyer)
	store := seedStore(t, db, seller.ID)
	o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderReady)

	const riders = 4
	userIDs := make([]uint, riders)
	for i := range userIDs {
		u := seedUser(t, db, string(rune('a'+i))+"-racer@test.com", entity.RoleRider)
		seedRider(t, db, u.ID)
		userIDs[i] = u.ID
	}

	errs := make([]error, riders)
	var wg sync.WaitGroup
	for i, uid := range userIDs {
		wg.Add(1)
		go func(i int, uid uint) {
			defer wg.Done()
			errs[i] = svc.RiderClaim(uid, o.ID)
		}(i, uid)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyClaimed)
		}
	}
	assert.Equal(t, 1, winners)

	var fresh entity.Order
	require.NoError(t, db.First(&fresh, o.ID).Error)
	assert.Equal(t, entity.OrderPickedUp, fresh.OrderStatus)
	assert.NotNil(t, fresh.RiderID)
}

func TestRiderDelivery(t *testing.T) {
	svc, db := newTestOrderService(t)
	seller := seedUser(t, db, "seller@test.com", entity.RoleSeller)
	buyer := seedUser(t, db, "buyer@test.com", entity.RoleBuyer)
	store := seedStore(t, db, seller.ID)
	riderUser := seedUser(t, db, "rider@test.com", entity.RoleRider)
	rider := seedRider(t, db, riderUser.ID)

	o := seedOrder(t, db, buyer.ID, store.ID, entity.OrderReady)
	require.NoError(t, svc.RiderClaim(riderUser.ID, o.ID))

	otp, err := svc.RiderStartDelivery(riderUser.ID, o.ID)
	require.NoError(t, err)
	assert.Len(t, otp, 4)
	assert.Equal(t, entity.OrderDelivering, orderStatus(t, db, o.ID))

	require.NoError(t, svc.RiderDeliver(riderUser.ID, o.ID))
	assert.Equal(t, entity.OrderDelivered, orderStatus(t, db, o.ID))

	var fresh entity.Rider
	require.NoError(t, db.First(&fresh, rider.ID).Error)
	assert.Equal(t, entity.RiderAvailable, fresh.Availability)
	assert.Nil(t, fresh.CurrentOrderID)
	assert.Equal(t, 1, fresh.TotalDeliveries)

	t.Run("delivering twice does not double-count", func(t *testing.T) {
		assert.ErrorIs(t, svc.RiderDeliver(riderUser.ID, o.ID), ErrInvalidTransition)

		require.NoError(t, db.First(&fresh, rider.ID).Error)
		assert.Equal(t, 1, fresh.TotalDeliveries)
	})

	t.Run("starting delivery again is refused", func(t *testing.T) {
		_, err := svc.RiderStartDelivery(riderUser.ID, o.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
