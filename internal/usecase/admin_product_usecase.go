package usecase

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type AdminCreateProductInput struct {
	Name        string
	Price       int64
	Description string
	Category    string
}

// アップロードする画像。Bodyがnilなら「ファイル未選択」扱い。
type UploadImage struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// AdminProductUsecaseは商品の作成・削除と画像アップロード。
// 管理者判定はここで行う（設定されたメールアドレスとの完全一致）。
// UI側のガードだけに頼らず、コンポーネント自体が拒否を返す。
type AdminProductUsecase struct {
	products   repo.ProductRepository
	images     repo.ImageStorage
	adminEmail string
}

func NewAdminProductUsecase(products repo.ProductRepository, images repo.ImageStorage, adminEmail string) *AdminProductUsecase {
	return &AdminProductUsecase{
		products:   products,
		images:     images,
		adminEmail: adminEmail,
	}
}

func (u *AdminProductUsecase) authorize(identity model.Identity) error {
	if identity.ID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if u.adminEmail == "" || identity.Email != u.adminEmail {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}

// CreateProductは画像を先にアップロードし、成功したら商品docを作成する。
// 画像アップロード失敗時は商品を作らない。
// 逆に、doc作成に失敗してもアップロード済み画像は消さない（補償処理なし）。
func (u *AdminProductUsecase) CreateProduct(ctx context.Context, identity model.Identity, in AdminCreateProductInput, image *UploadImage) (model.Product, error) {
	if err := u.authorize(identity); err != nil {
		return model.Product{}, err
	}

	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if image == nil || image.Body == nil || strings.TrimSpace(image.Filename) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	imageURL, err := u.images.Upload(ctx, image.Filename, image.ContentType, image.Body)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "image upload failed")
	}

	p := model.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    imageURL,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	p.ID = id
	return p, nil
}

// DeleteProductは商品docのみ削除する。ストレージ上の画像は残る。
func (u *AdminProductUsecase) DeleteProduct(ctx context.Context, identity model.Identity, productID string) error {
	if err := u.authorize(identity); err != nil {
		return err
	}
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.products.Delete(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return nil
}
