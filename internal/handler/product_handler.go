package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// /products, /products/{id} を登録（認証不要）
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.listProducts)
	e.GET("/products/:id", h.getProduct)
}

func (h *ProductHandler) listProducts(c echo.Context) error {
	//categoryは完全一致フィルタ。空なら全件
	category := c.QueryParam("category")

	products, err := h.uc.ListProducts(c.Request().Context(), category)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) getProduct(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}
