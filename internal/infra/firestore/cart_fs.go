package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/model"
)

// carts/{userID} にdoc全体を上書き保存するカートミラー。
// バージョントークンは持たない。同じdocへの競合書き込みはLast-Write-Wins。
type CartRepositoryFS struct {
	client *firestore.Client
}

// DI
func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.client.Collection("carts")
}

// docが無ければ空カートを返す（not-foundはエラー扱いしない）。
func (r *CartRepositoryFS) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, errors.New("cart_fs: userID is empty")
	}

	snap, err := r.col().Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Cart{UserID: userID}, nil
		}
		return model.Cart{}, err
	}

	var c model.Cart
	if err := snap.DataTo(&c); err != nil {
		return model.Cart{}, err
	}
	c.UserID = userID
	return c, nil
}

// doc全体を上書き（Setはマージしない）。
func (r *CartRepositoryFS) Save(ctx context.Context, cart model.Cart) error {
	if cart.UserID == "" {
		return errors.New("cart_fs: cart.UserID is empty")
	}

	_, err := r.col().Doc(cart.UserID).Set(ctx, cart)
	return err
}
