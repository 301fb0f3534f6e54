package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// users/{userID} のプロフィール。サインインのたびに上書きする。
type UserRepositoryFS struct {
	client *firestore.Client
}

// DI
func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.client.Collection("users")
}

func (r *UserRepositoryFS) SaveProfile(ctx context.Context, userID string, profile model.UserProfile) error {
	if userID == "" {
		return errors.New("user_fs: userID is empty")
	}

	_, err := r.col().Doc(userID).Set(ctx, profile)
	return err
}

func (r *UserRepositoryFS) FindByID(ctx context.Context, userID string) (model.UserProfile, error) {
	if userID == "" {
		return model.UserProfile{}, repo.ErrNotFound
	}

	snap, err := r.col().Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.UserProfile{}, repo.ErrNotFound
		}
		return model.UserProfile{}, err
	}

	var p model.UserProfile
	if err := snap.DataTo(&p); err != nil {
		return model.UserProfile{}, err
	}
	return p, nil
}
