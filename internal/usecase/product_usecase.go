package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ProductUsecaseは公開カタログの読み取り。
type ProductUsecase struct {
	products repo.ProductRepository
}

func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

// ListProductsは全件、またはカテゴリ完全一致（大文字小文字区別）で返す。
func (u *ProductUsecase) ListProducts(ctx context.Context, category string) ([]model.Product, error) {
	products, err := u.products.List(ctx, category)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return products, nil
}

// GetProductは商品1件。無ければ404（正常な空結果扱い）。
func (u *ProductUsecase) GetProduct(ctx context.Context, id string) (model.Product, error) {
	if id == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return p, nil
}
