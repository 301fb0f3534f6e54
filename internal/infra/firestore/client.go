package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// NewClientはFirestoreクライアントを生成する。
// credFileが空ならApplication Default Credentialsを使う。
func NewClient(ctx context.Context, projectID string, credFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credFile) != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}
	return firestore.NewClient(ctx, projectID, opts...)
}
