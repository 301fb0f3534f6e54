package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// カートの永続ミラー（docId = userID）。
// SaveはLast-Write-Winsのdoc全体上書き。マージも条件付き書き込みもしない。
type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) (model.Cart, error)
	Save(ctx context.Context, cart model.Cart) error
}
