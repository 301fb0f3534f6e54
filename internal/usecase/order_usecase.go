package usecase

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 配送先の入力。注文docには保存しない（決済も配送も外部仕様のため模擬）。
type CheckoutInput struct {
	Name    string
	Address string
	Phone   string
}

// CheckoutValidatorは確定前の入力チェック。
type CheckoutValidator interface {
	ValidateCheckout(in CheckoutInput) error
}

type OrderItemOutput struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Status      string            `json:"status"`
	TotalAmount int64             `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []OrderItemOutput `json:"items"`
}

// OrderUsecaseは注文の確定と履歴の読み取り。
// カートのクリアは呼び出し側の責務（「記録する」と「空にする」を分離）。
type OrderUsecase struct {
	orders repo.OrderRepository
}

func NewOrderUsecase(orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders}
}

// PlaceOrderは確定時点のカートをスナップショットして注文を作成する。
// totalAmountは呼び出し側が確定時点のカートから一度だけ計算した値で、
// ここでは再計算も検証もしない。
//
// 冪等化キーは使わない。同じカートで2回確定すると注文は2件になる。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID string, lineItems []model.CartLineItem, totalAmount int64) (OrderOutput, error) {
	if userID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(lineItems) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	// 構造コピー。以後カートを触っても注文側は変わらない。
	items := make([]model.OrderItem, 0, len(lineItems))
	for _, it := range lineItems {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	order := model.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      model.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := u.orders.Create(ctx, order)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	order.ID = id
	return toOrderOutput(order), nil
}

// ListMyOrdersは本人の注文を新しい順で返す。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID string) ([]OrderOutput, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o))
	}
	return outs, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	items := make([]OrderItemOutput, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}
