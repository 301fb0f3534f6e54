package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

// SuccessResponse は { message: string } の形。
type SuccessResponse struct {
	Message string `json:"message"`
}

// /admin/products をまとめる
type AdminProductHandler struct {
	uc *usecase.AdminProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.AdminProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// adminを登録。入口ガード＋usecase内の判定の二段構え。
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, verifier usecase.TokenVerifier, adminEmail string) {
	admin := e.Group("/admin")

	admin.Use(middleware.FirebaseAuth(verifier))
	admin.Use(middleware.AdminGuard(adminEmail))

	admin.POST("/products", h.createProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
}

// multipart/form-data: name, price, description, category, image（ファイル必須）
func (h *AdminProductHandler) createProduct(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	price, err := strconv.ParseInt(c.FormValue("price"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
	}

	in := usecase.AdminCreateProductInput{
		Name:        c.FormValue("name"),
		Price:       price,
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}

	//画像未選択はここでnilのままusecaseへ渡し、400で落とす
	var image *usecase.UploadImage

	fh, err := c.FormFile("image")
	if err == nil && fh != nil {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image"})
		}
		defer src.Close()

		image = &usecase.UploadImage{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        src,
		}
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), identity, in, image)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), identity, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
