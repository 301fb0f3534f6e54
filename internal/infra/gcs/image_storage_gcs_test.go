package gcs

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// オブジェクト名は uuid-元ファイル名。元のファイル名は保持する。
func TestObjectKey_UUIDPrefixAndOriginalName(t *testing.T) {
	key := objectKey("coffee.png")

	assert.True(t, strings.HasSuffix(key, "-coffee.png"))

	prefix := strings.TrimSuffix(key, "-coffee.png")
	_, err := uuid.Parse(prefix)
	assert.NoError(t, err)
}

func TestObjectKey_UniquePerCall(t *testing.T) {
	a := objectKey("coffee.png")
	b := objectKey("coffee.png")

	assert.NotEqual(t, a, b)
}

func TestPublicURL_Format(t *testing.T) {
	s := &ImageStorageGCS{
		bucket:        "product-images",
		publicBaseURL: "https://storage.googleapis.com",
	}

	url := s.publicURL("abc-coffee.png")
	assert.Equal(t, "https://storage.googleapis.com/product-images/abc-coffee.png", url)
}
