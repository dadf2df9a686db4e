package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/repository"
	"github.com/Hamdan-B/FoodiesHub/ws"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// openTestDB gives each test its own in-memory database. A single
// connection keeps concurrent test transactions serialized at the pool,
// so the row guards alone decide contested writes.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Store{},
		&entity.FoodItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Rider{},
	))
	return db
}

func newTestOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewFoodRepository(db),
		repository.NewStoreRepository(db),
		repository.NewRiderRepository(db),
		ws.NewOrderHub(),
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, email string, roles entity.RoleSet) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Roles: roles.Normalized()}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedStore(t *testing.T, db *gorm.DB, sellerID uint) *entity.Store {
	t.Helper()
	st := &entity.Store{SellerID: sellerID, Name: "Test Kitchen", City: "Lahore", IsActive: true}
	require.NoError(t, db.Create(st).Error)
	return st
}

func seedRider(t *testing.T, db *gorm.DB, userID uint) *entity.Rider {
	t.Helper()
	r := &entity.Rider{UserID: userID, Status: entity.RiderOnline, Availability: entity.RiderAvailable}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedOrder(t *testing.T, db *gorm.DB, buyerID, storeID uint, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o := &entity.Order{
		BuyerID:         buyerID,
		StoreID:         storeID,
		Subtotal:        100,
		DeliveryFee:     DeliveryFee,
		Total:           100 + DeliveryFee,
		PaymentMethod:   entity.PaymentMethodCOD,
		PaymentStatus:   entity.PaymentPending,
		OrderStatus:     status,
		DeliveryAddress: "House 1, Street 2",
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func orderStatus(t *testing.T, db *gorm.DB, orderID uint) entity.OrderStatus {
	t.Helper()
	var o entity.Order
	require.NoError(t, db.First(&o, orderID).Error)
	return o.OrderStatus
}
