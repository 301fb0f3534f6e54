package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderRepository interface {
	// ストアが採番したIDを返す
	Create(ctx context.Context, order model.Order) (string, error)

	// 本人の注文を新しい順で返す
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
}
