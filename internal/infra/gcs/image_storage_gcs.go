package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// 商品画像のGCSアダプタ。
// バケットは固定で、オブジェクト名は uuid-元ファイル名。
// バケット側に allUsers: Storage Object Viewer が付いている前提で、
// オブジェクト単位のACLは触らない。
type ImageStorageGCS struct {
	client *storage.Client
	bucket string

	// 空なら https://storage.googleapis.com
	publicBaseURL string
}

func NewImageStorageGCS(client *storage.Client, bucket string) *ImageStorageGCS {
	return &ImageStorageGCS{
		client:        client,
		bucket:        strings.TrimSpace(bucket),
		publicBaseURL: "https://storage.googleapis.com",
	}
}

// NewClientはGCSクライアントを生成する。credFileが空ならADC。
func NewClient(ctx context.Context, credFile string) (*storage.Client, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credFile) != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}
	return storage.NewClient(ctx, opts...)
}

// Uploadは画像を書き込んで公開URLを返す。
// 書き込み失敗時はURLを返さない（呼び出し側は商品登録を中止する）。
func (s *ImageStorageGCS) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	if s == nil || s.client == nil {
		return "", errors.New("image_storage_gcs: storage client is nil")
	}
	if s.bucket == "" {
		return "", errors.New("image_storage_gcs: bucket is empty")
	}
	if strings.TrimSpace(filename) == "" {
		return "", errors.New("image_storage_gcs: filename is empty")
	}

	key := objectKey(filename)

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return s.publicURL(key), nil
}

// 衝突回避のためuuidを前置する。元ファイル名は残す。
func objectKey(filename string) string {
	return uuid.NewString() + "-" + filename
}

func (s *ImageStorageGCS) publicURL(key string) string {
	base := strings.TrimRight(s.publicBaseURL, "/")
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	return fmt.Sprintf("%s/%s/%s", base, s.bucket, key)
}
