package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

// /ordersのHTTP
type OrderHandler struct {
	orders    *usecase.OrderUsecase
	cart      *usecase.CartUsecase
	validator usecase.CheckoutValidator
}

// DI
func NewOrderHandler(orders *usecase.OrderUsecase, cart *usecase.CartUsecase, v usecase.CheckoutValidator) *OrderHandler {
	return &OrderHandler{
		orders:    orders,
		cart:      cart,
		validator: v,
	}
}

type CheckoutRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// /orders を登録
func (h *OrderHandler) RegisterRoutes(e *echo.Echo, verifier usecase.TokenVerifier) {
	g := e.Group("/orders")
	g.Use(middleware.FirebaseAuth(verifier))

	g.POST("", h.checkout)
	g.GET("", h.listMyOrders)
}

// 確定時点のカートをスナップショットして注文を作り、成功したらカートを空にする。
// クリアは注文作成の責務ではなく、この呼び出し側で行う。
func (h *OrderHandler) checkout(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//配送先の必須チェック（不備なら確定処理に入らない）
	if err := h.validator.ValidateCheckout(usecase.CheckoutInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required fields"})
	}

	//確定時点のカート。totalはこの瞬間の値を一度だけ計算する
	snapshot := h.cart.Get(identity.ID)

	out, err := h.orders.PlaceOrder(c.Request().Context(), identity.ID, snapshot.Items, snapshot.Total())
	if err != nil {
		return writeError(c, err)
	}

	h.cart.Clear(identity.ID)

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) listMyOrders(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	outs, err := h.orders.ListMyOrders(c.Request().Context(), identity.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, outs)
}
