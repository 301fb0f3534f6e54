package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ProductRepositoryFS struct {
	client *firestore.Client
}

// DI
func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.client.Collection("products")
}

// 商品一覧。categoryが空なら全件、指定があれば完全一致（大文字小文字区別）。
func (r *ProductRepositoryFS) List(ctx context.Context, category string) ([]model.Product, error) {
	var q firestore.Query
	if category != "" {
		q = r.col().Where("category", "==", category)
	} else {
		q = r.col().Query
	}

	it := q.Documents(ctx)
	defer it.Stop()

	products := make([]model.Product, 0)
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var p model.Product
		if err := snap.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = snap.Ref.ID
		products = append(products, p)
	}

	return products, nil
}

func (r *ProductRepositoryFS) FindByID(ctx context.Context, id string) (model.Product, error) {
	if id == "" {
		return model.Product{}, repo.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Product{}, repo.ErrNotFound
		}
		return model.Product{}, err
	}

	var p model.Product
	if err := snap.DataTo(&p); err != nil {
		return model.Product{}, err
	}
	p.ID = snap.Ref.ID
	return p, nil
}

// ストア採番のdocIdを返す
func (r *ProductRepositoryFS) Create(ctx context.Context, p model.Product) (string, error) {
	ref, _, err := r.col().Add(ctx, p)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// docのみ削除。画像は消さない。
func (r *ProductRepositoryFS) Delete(ctx context.Context, id string) error {
	if id == "" {
		return repo.ErrNotFound
	}
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
