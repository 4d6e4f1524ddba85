package services

import (
	"testing"

	"foodorder/configs"
	"foodorder/entity"
	"foodorder/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection, or every pooled conn would get its own :memory: db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedLookups(db))
	return db
}

// seedCatalog creates one restaurant with foods priced 8.50, 3.00 and 5.00,
// returning the food ids in that order.
func seedCatalog(t *testing.T, db *gorm.DB) []uint {
	t.Helper()

	rest := entity.Restaurant{Name: "Testaurant", Rating: 4.2, Address: "1 Test Way"}
	require.NoError(t, db.Create(&rest).Error)

	prices := []float64{8.50, 3.00, 5.00}
	ids := make([]uint, 0, len(prices))
	for i, p := range prices {
		f := entity.Food{
			Name:         "Dish",
			Description:  "test dish",
			Price:        p,
			RestaurantID: rest.ID,
		}
		require.NoError(t, db.Create(&f).Error, "food %d", i)
		ids = append(ids, f.ID)
	}
	return ids
}

func newTestOrderService(t *testing.T) (*OrderService, *gorm.DB, []uint) {
	t.Helper()
	db := setupTestDB(t)
	foodIDs := seedCatalog(t, db)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	return svc, db, foodIDs
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestPlaceOrder_Success(t *testing.T) {
	svc, db, foodIDs := newTestOrderService(t)

	res, err := svc.PlaceOrder(&PlaceOrderReq{
		Customer: &CustomerIn{Name: "A", Contact: "1", Email: "a@x.com"},
		Items:    []OrderItemIn{{FoodID: foodIDs[2], Quantity: 2}},
		Payment:  &PaymentIn{Method: "card"},
	})
	require.NoError(t, err)

	// food 3 costs 5.00, quantity 2
	assert.Equal(t, 10.00, res.Total)
	assert.NotZero(t, res.OrderID)

	assert.EqualValues(t, 1, count(t, db, &entity.Order{}))
	assert.EqualValues(t, 1, count(t, db, &entity.OrderLine{}))
	assert.EqualValues(t, 1, count(t, db, &entity.Payment{}))
	assert.EqualValues(t, 1, count(t, db, &entity.Customer{}))

	var p entity.Payment
	require.NoError(t, db.First(&p).Error)
	assert.Equal(t, res.OrderID, p.OrderID)
	assert.Equal(t, svc.Status.PaymentPending, p.PaymentStatusID)

	var o entity.Order
	require.NoError(t, db.First(&o).Error)
	assert.Equal(t, svc.Status.OrderPending, o.OrderStatusID)
}

func TestPlaceOrder_LinesPreserveInputOrderAndDuplicates(t *testing.T) {
	svc, _, foodIDs := newTestOrderService(t)

	items := []OrderItemIn{
		{FoodID: foodIDs[1], Quantity: 2},
		{FoodID: foodIDs[0], Quantity: 1},
		{FoodID: foodIDs[1], Quantity: 3}, // duplicate id stays its own row
	}
	res, err := svc.PlaceOrder(&PlaceOrderReq{
		Customer: &CustomerIn{Name: "B", Contact: "2", Email: "b@x.com"},
		Items:    items,
	})
	require.NoError(t, err)

	lines, err := svc.Repo.GetOrderLines(res.OrderID)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for i, l := range lines {
		assert.Equal(t, items[i].FoodID, l.FoodID, "line %d", i)
		assert.Equal(t, items[i].Quantity, l.Quantity, "line %d", i)
	}

	// 3.00*2 + 8.50*1 + 3.00*3
	assert.Equal(t, 23.50, res.Total)
}

func TestPlaceOrder_RepeatEmailUpdatesCustomer(t *testing.T) {
	svc, db, foodIDs := newTestOrderService(t)

	_, err := svc.PlaceOrder(&PlaceOrderReq{
		Customer: &CustomerIn{Name: "Old Name", Contact: "1", Email: "same@x.com"},
		Items:    []OrderItemIn{{FoodID: foodIDs[0], Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.PlaceOrder(&PlaceOrderReq{
		Customer: &CustomerIn{Name: "New Name", Contact: "2", Email: "same@x.com"},
		Items:    []OrderItemIn{{FoodID: foodIDs[1], Quantity: 1}},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, count(t, db, &entity.Customer{}))
	assert.EqualValues(t, 2, count(t, db, &entity.Order{}))

	var c entity.Customer
	require.NoError(t, db.Where("email = ?", "same@x.com").First(&c).Error)
	assert.Equal(t, "New Name", c.Name)
	assert.Equal(t, "2", c.Contact)
}

func TestPlaceOrder_UnknownFoodRollsBackEverything(t *testing.T) {
	svc, db, foodIDs := newTestOrderService(t)

	_, err := svc.PlaceOrder(&PlaceOrderReq{
		Customer: &CustomerIn{Name: "C", Contact: "3", Email: "c@x.com"},
		Items: []OrderItemIn{
			{FoodID: foodIDs[0], Quantity: 1}, // inserts fine
			{FoodID: 99999, Quantity: 1},      // fails mid-transaction
		},
		Payment: &PaymentIn{Method: "card"},
	})
	require.Error(t, err)

	assert.EqualValues(t, 0, count(t, db, &entity.Order{}))
	assert.EqualValues(t, 0, count(t, db, &entity.OrderLine{}))
	assert.EqualValues(t, 0, count(t, db, &entity.Payment{}))
	assert.EqualValues(t, 0, count(t, db, &entity.Customer{}))
}

func TestPlaceOrder_UnknownPaymentMethodSkippedSilently(t *testing.T) {
	svc, db, foodIDs := newTestOrderService(t)

	res, err := svc.PlaceOrder(&PlaceOrderReq{
		Customer: &CustomerIn{Name: "D", Contact: "4", Email: "d@x.com"},
		Items:    []OrderItemIn{{FoodID: foodIDs[0], Quantity: 1}},
		Payment:  &PaymentIn{Method: "barter"},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, count(t, db, &entity.Order{}))
	assert.EqualValues(t, 0, count(t, db, &entity.Payment{}))
	assert.Equal(t, 8.50, res.Total)
}

func TestPlaceOrder_NoPaymentSection(t *testing.T) {
	svc, db, foodIDs := newTestOrderService(t)

	_, err := svc.PlaceOrder(&PlaceOrderReq{
		Customer: &CustomerIn{Name: "E", Contact: "5", Email: "e@x.com"},
		Items:    []OrderItemIn{{FoodID: foodIDs[1], Quantity: 1}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, count(t, db, &entity.Payment{}))
}

func TestPlaceOrder_MissingData(t *testing.T) {
	svc, db, foodIDs := newTestOrderService(t)

	cases := []struct {
		name string
		req  *PlaceOrderReq
	}{
		{"nil request", nil},
		{"no customer", &PlaceOrderReq{Items: []OrderItemIn{{FoodID: foodIDs[0], Quantity: 1}}}},
		{"no items", &PlaceOrderReq{Customer: &CustomerIn{Name: "F", Email: "f@x.com"}}},
		{"empty items", &PlaceOrderReq{Customer: &CustomerIn{Name: "F", Email: "f@x.com"}, Items: []OrderItemIn{}}},
		{"zero quantity", &PlaceOrderReq{
			Customer: &CustomerIn{Name: "F", Email: "f@x.com"},
			Items:    []OrderItemIn{{FoodID: foodIDs[0], Quantity: 0}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(tc.req)
			assert.ErrorIs(t, err, ErrMissingData)
		})
	}

	// rejected before any side effect
	assert.EqualValues(t, 0, count(t, db, &entity.Order{}))
	assert.EqualValues(t, 0, count(t, db, &entity.Customer{}))
}
