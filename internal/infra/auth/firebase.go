package auth

import (
	"context"
	"errors"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"storefront/internal/domain/model"
)

// FirebaseVerifierはIDトークンを検証してIdentityに変換する。
// ポップアップサインイン自体はクライアント側で行われ、
// この層は発行済みトークンの検証だけを担当する。
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewAuthClientはFirebase Authクライアントを生成する。credFileが空ならADC。
func NewAuthClient(ctx context.Context, projectID string, credFile string) (*fbauth.Client, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credFile) != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, err
	}
	return app.Auth(ctx)
}

func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// VerifyIDTokenはclaimsからIdentityを組み立てる。
// uid以外のclaimsは無くても許容する（emailはadmin判定に使うだけ）。
func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (model.Identity, error) {
	if v == nil || v.client == nil {
		return model.Identity{}, errors.New("auth: firebase client is nil")
	}

	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return model.Identity{}, errors.New("auth: id token is empty")
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return model.Identity{}, err
	}

	uid := strings.TrimSpace(token.UID)
	if uid == "" {
		return model.Identity{}, errors.New("auth: uid is empty")
	}

	return model.Identity{
		ID:        uid,
		Name:      claimString(token.Claims, "name"),
		Email:     claimString(token.Claims, "email"),
		AvatarURL: claimString(token.Claims, "picture"),
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	v, ok := claims[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
