package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// サインイン時にプロフィールを保存する（docId = userID、上書き）。
type UserRepository interface {
	SaveProfile(ctx context.Context, userID string, profile model.UserProfile) error
	FindByID(ctx context.Context, userID string) (model.UserProfile, error)
}
