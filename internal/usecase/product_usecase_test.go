package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"
)

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) List(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) Create(ctx context.Context, p model.Product) (string, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdProductRepoMock) Delete(ctx context.Context, id string) error {
	panic("not used in ProductUsecase tests")
}

func TestProductUsecase_ListProducts_All(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	items := []model.Product{{ID: "p1", Name: "Coffee"}}
	pRepo.On("List", mock.Anything, "").Return(items, nil)

	out, err := uc.ListProducts(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

// カテゴリは完全一致（大文字小文字区別）でそのままリポジトリへ渡す。
func TestProductUsecase_ListProducts_CategoryFilterPassedThrough(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("List", mock.Anything, "Drinks").Return([]model.Product{}, nil)

	out, err := uc.ListProducts(context.Background(), "Drinks")
	assert.NoError(t, err)
	assert.Empty(t, out)
	pRepo.AssertCalled(t, "List", mock.Anything, "Drinks")
}

// 該当なしはエラーではなく空結果。
func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, "nope").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), "nope")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestProductUsecase_GetProduct_Success(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", Name: "Coffee"}, nil)

	p, err := uc.GetProduct(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Coffee", p.Name)
}
