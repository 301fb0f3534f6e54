package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID string `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// /cart 以下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo, verifier usecase.TokenVerifier) {
	g := e.Group("/cart")
	g.Use(middleware.FirebaseAuth(verifier))

	g.GET("", h.getCart)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:product_id", h.patchItem)
	g.DELETE("/items/:product_id", h.deleteItem)
	g.DELETE("", h.clearCart)
}

// カート本文に加えて、永続ミラーの直近の保存失敗を返す。
// ベストエフォート保存なので、乖離はここで可視化するだけ。
type cartStateResponse struct {
	usecase.CartResponse
	LastSyncError string `json:"last_sync_error,omitempty"`
}

func (h *CartHandler) stateResponse(userID string, body usecase.CartResponse) cartStateResponse {
	resp := cartStateResponse{CartResponse: body}
	if err := h.uc.LastSyncError(userID); err != nil {
		resp.LastSyncError = "cart sync failed"
	}
	return resp
}

func (h *CartHandler) getCart(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	cart := h.uc.Get(identity.ID)
	return c.JSON(http.StatusOK, h.stateResponse(identity.ID, usecase.ToCartResponse(cart)))
}

func (h *CartHandler) addItem(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddProduct(c.Request().Context(), identity.ID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.stateResponse(identity.ID, out))
}

func (h *CartHandler) patchItem(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//1未満は1に丸められる。対象が無ければ何も変わらない
	cart := h.uc.SetQuantity(identity.ID, c.Param("product_id"), req.Quantity)
	return c.JSON(http.StatusOK, h.stateResponse(identity.ID, usecase.ToCartResponse(cart)))
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	cart := h.uc.Remove(identity.ID, c.Param("product_id"))
	return c.JSON(http.StatusOK, h.stateResponse(identity.ID, usecase.ToCartResponse(cart)))
}

func (h *CartHandler) clearCart(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	cart := h.uc.Clear(identity.ID)
	return c.JSON(http.StatusOK, h.stateResponse(identity.ID, usecase.ToCartResponse(cart)))
}
