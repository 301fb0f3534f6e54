package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"storefront/internal/domain/model"
)

type OrderRepositoryFS struct {
	client *firestore.Client
}

// DI
func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.client.Collection("orders")
}

// 注文を作成してストア採番のdocIdを返す。作成後は不変。
func (r *OrderRepositoryFS) Create(ctx context.Context, order model.Order) (string, error) {
	if order.UserID == "" {
		return "", errors.New("order_fs: order.UserID is empty")
	}

	ref, _, err := r.col().Add(ctx, order)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// 本人の注文を新しい順で返す。
func (r *OrderRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, errors.New("order_fs: userID is empty")
	}

	it := r.col().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	orders := make([]model.Order, 0)
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var o model.Order
		if err := snap.DataTo(&o); err != nil {
			return nil, err
		}
		o.ID = snap.Ref.ID
		orders = append(orders, o)
	}

	return orders, nil
}
