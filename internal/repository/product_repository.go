package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
// categoryは完全一致フィルタ。空文字なら全件。
type ProductRepository interface {
	List(ctx context.Context, category string) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	// ストアが採番したIDを返す
	Create(ctx context.Context, p model.Product) (string, error)
	Delete(ctx context.Context, id string) error
}
