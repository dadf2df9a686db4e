package services

import (
	"testing"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout(t *testing.T) {
	svc, db := newTestOrderService(t)
	seller := seedUser(t, db, "seller@test.com", entity.RoleSeller)
	buyer := seedUser(t, db, "buyer@test.com", entity.RoleBuyer)
	store := seedStore(t, db, seller.ID)

	burger := &entity.FoodItem{StoreID: store.ID, Name: "Zinger Burger", Price: 450, StockStatus: entity.StockStatusIn}
	require.NoError(t, db.Create(burger).Error)
	pizza := &entity.FoodItem{
		StoreID:     store.ID,
		Name:        "Margherita",
		Price:       900,
		StockStatus: entity.StockStatusIn,
		Variants: []entity.Variant{
			{Name: "Small", Price: 700},
			{Name: "Large", Price: 1400},
		},
	}
	require.NoError(t, db.Create(pizza).Error)

	t.Run("prices come from the catalog, not the client", func(t *testing.T) {
		res, err := svc.Checkout(buyer.ID, &CheckoutReq{
			Lines: []CartLineIn{
				{FoodID: burger.ID, Quantity: 2},
			},
			DeliveryAddress: "House 1",
		})
		require.NoError(t, err)
		assert.Equal(t, 2*450+DeliveryFee, res.Total)
		assert.Equal(t, "Rs 905", res.TotalDisplay)

		o, err := svc.DetailForBuyer(buyer.ID, res.OrderID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderPending, o.OrderStatus)
		assert.Equal(t, entity.PaymentMethodCOD, o.PaymentMethod)
		assert.Equal(t, entity.PaymentPending, o.PaymentStatus)
		require.Len(t, o.Items, 1)
		assert.Equal(t, 450.0, o.Items[0].UnitPrice)
	})

	t.Run("variant choice overrides the base price", func(t *testing.T) {
		res, err := svc.Checkout(buyer.ID, &CheckoutReq{
			Lines: []CartLineIn{
				{FoodID: pizza.ID, Quantity: 1, Variants: map[string]string{"size": "Large"}},
			},
			DeliveryAddress: "House 1",
		})
		require.NoError(t, err)
		assert.Equal(t, 1400+DeliveryFee, res.Total)
	})

	t.Run("online payment is recorded as paid", func(t *testing.T) {
		res, err := svc.Checkout(buyer.ID, &CheckoutReq{
			Lines:           []CartLineIn{{FoodID: burger.ID, Quantity: 1}},
			DeliveryAddress: "House 1",
			PaymentMethod:   entity.PaymentMethodOnline,
		})
		require.NoError(t, err)

		o, err := svc.DetailForBuyer(buyer.ID, res.OrderID)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentPaid, o.PaymentStatus)
	})

	t.Run("mixed-store carts are rejected", func(t *testing.T) {
		otherSeller := seedUser(t, db, "seller2@test.com", entity.RoleSeller)
		otherStore := seedStore(t, db, otherSeller.ID)
		foreign := &entity.FoodItem{StoreID: otherStore.ID, Name: "Chai", Price: 100, StockStatus: entity.StockStatusIn}
		require.NoError(t, db.Create(foreign).Error)

		_, err := svc.Checkout(buyer.ID, &CheckoutReq{
			Lines: []CartLineIn{
				{FoodID: burger.ID, Quantity: 1},
				{FoodID: foreign.ID, Quantity: 1},
			},
			DeliveryAddress: "House 1",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("out-of-stock items are rejected", func(t *testing.T) {
		soldOut := &entity.FoodItem{StoreID: store.ID, Name: "Seekh Kebab", Price: 300, StockStatus: entity.StockStatusOut}
		require.NoError(t, db.Create(soldOut).Error)

		_, err := svc.Checkout(buyer.ID, &CheckoutReq{
			Lines:           []CartLineIn{{FoodID: soldOut.ID, Quantity: 1}},
			DeliveryAddress: "House 1",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("unknown food is rejected", func(t *testing.T) {
		_, err := svc.Checkout(buyer.ID, &CheckoutReq{
			Lines:           []CartLineIn{{FoodID: 99999, Quantity: 1}},
			DeliveryAddress: "House 1",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

// Variants survive the JSON column round trip in declaration order.
func TestFoodVariantsRoundTrip(t *testing.T) {
	_, db := newTestOrderService(t)
	seller := seedUser(t, db, "seller@test.com", entity.RoleSeller)
	store := seedStore(t, db, seller.ID)

	f := &entity.FoodItem{
		StoreID:     store.ID,
		Name:        "Karahi",
		Price:       1500,
		StockStatus: entity.StockStatusIn,
		Variants: []entity.Variant{
			{Name: "Half", Price: 900},
			{Name: "Full", Price: 1500},
		},
		Nutrition: &entity.Nutrition{Calories: 850, Protein: 60, Carbs: 12, Fat: 55},
	}
	require.NoError(t, db.Create(f).Error)

	var back entity.FoodItem
	require.NoError(t, db.First(&back, f.ID).Error)
	require.Len(t, back.Variants, 2)
	assert.Equal(t, "Half", back.Variants[0].Name)
	assert.Equal(t, 900.0, back.Variants[0].Price)
	assert.Equal(t, "Full", back.Variants[1].Name)
	require.NotNil(t, back.Nutrition)
	assert.Equal(t, 850.0, back.Nutrition.Calories)
}
