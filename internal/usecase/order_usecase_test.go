package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

type OrderOrderRepoMock struct{ mock.Mock }

func (m *OrderOrderRepoMock) Create(ctx context.Context, order model.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *OrderOrderRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func lineItems() []model.CartLineItem {
	return []model.CartLineItem{
		{ProductID: "p1", Name: "Coffee", Price: 100000, Quantity: 2},
		{ProductID: "p2", Name: "Tea", Price: 700, Quantity: 1},
	}
}

func TestOrderUsecase_PlaceOrder_Unauthenticated(t *testing.T) {
	orders := new(OrderOrderRepoMock)
	uc := usecase.NewOrderUsecase(orders)

	_, err := uc.PlaceOrder(context.Background(), "", lineItems(), 200700)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	//注文は作られない
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	orders := new(OrderOrderRepoMock)
	uc := usecase.NewOrderUsecase(orders)

	_, err := uc.PlaceOrder(context.Background(), "U1", nil, 0)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_Success(t *testing.T) {
	orders := new(OrderOrderRepoMock)
	uc := usecase.NewOrderUsecase(orders)

	var created model.Order
	orders.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.Order)
		}).
		Return("order-1", nil)

	out, err := uc.PlaceOrder(context.Background(), "U1", lineItems(), 200700)
	assert.NoError(t, err)

	assert.Equal(t, "order-1", out.ID)
	assert.Equal(t, "U1", out.UserID)
	assert.Equal(t, string(model.OrderStatusPending), out.Status)
	assert.Equal(t, int64(200700), out.TotalAmount)
	assert.Len(t, out.Items, 2)

	//保存された注文も確定時点の値そのまま
	assert.Equal(t, model.OrderStatusPending, created.Status)
	assert.Equal(t, int64(200700), created.TotalAmount)
	assert.False(t, created.CreatedAt.IsZero())
}

// 確定後にカート側の明細を書き換えても、注文のスナップショットは変わらない。
func TestOrderUsecase_PlaceOrder_SnapshotIsStructuralCopy(t *testing.T) {
	orders := new(OrderOrderRepoMock)
	uc := usecase.NewOrderUsecase(orders)

	var created model.Order
	orders.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.Order)
		}).
		Return("order-1", nil)

	items := lineItems()
	_, err := uc.PlaceOrder(context.Background(), "U1", items, 200700)
	assert.NoError(t, err)

	items[0].Quantity = 99
	items[0].Price = 1

	assert.Equal(t, int64(2), created.Items[0].Quantity)
	assert.Equal(t, int64(100000), created.Items[0].Price)
}

// 冪等化キーは無い。同じカートで2回確定すると注文は2件になる（既知の制限）。
func TestOrderUsecase_PlaceOrder_NoDeduplication(t *testing.T) {
	orders := new(OrderOrderRepoMock)
	uc := usecase.NewOrderUsecase(orders)

	orders.On("Create", mock.Anything, mock.Anything).Return("order-1", nil).Once()
	orders.On("Create", mock.Anything, mock.Anything).Return("order-2", nil).Once()

	out1, err1 := uc.PlaceOrder(context.Background(), "U1", lineItems(), 200700)
	out2, err2 := uc.PlaceOrder(context.Background(), "U1", lineItems(), 200700)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NotEqual(t, out1.ID, out2.ID)
	orders.AssertNumberOfCalls(t, "Create", 2)
}

func TestOrderUsecase_ListMyOrders_Unauthenticated(t *testing.T) {
	uc := usecase.NewOrderUsecase(new(OrderOrderRepoMock))

	_, err := uc.ListMyOrders(context.Background(), "")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

func TestOrderUsecase_ListMyOrders_Success(t *testing.T) {
	orders := new(OrderOrderRepoMock)
	uc := usecase.NewOrderUsecase(orders)

	orders.On("ListByUserID", mock.Anything, "U1").Return([]model.Order{
		{ID: "o2", UserID: "U1", TotalAmount: 700, Status: model.OrderStatusPending},
		{ID: "o1", UserID: "U1", TotalAmount: 100000, Status: model.OrderStatusPending},
	}, nil)

	outs, err := uc.ListMyOrders(context.Background(), "U1")
	assert.NoError(t, err)
	assert.Len(t, outs, 2)
	assert.Equal(t, "o2", outs[0].ID)
}
