package repository

import (
	"context"
	"io"
)

// 商品画像のオブジェクトストレージ。
// Uploadは公開URLを返す。アップロード成功が商品登録の前提条件。
type ImageStorage interface {
	Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}
