package usecase

import (
	"context"
	"log"
	"net/http"
	"sync"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// TokenVerifierは認証プロバイダ発行のIDトークンを検証する。
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (model.Identity, error)
}

type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "SIGNED_IN"
	SessionSignedOut SessionEventKind = "SIGNED_OUT"
)

// サインイン・サインアウトの通知。
// グローバルなセッション状態は持たず、必要な側が購読する。
type SessionEvent struct {
	Kind     SessionEventKind
	Identity model.Identity
}

type SessionListener func(SessionEvent)

// SessionUsecaseはIDトークン検証とサインイン・アウトの通知を担当する。
type SessionUsecase struct {
	verifier TokenVerifier
	users    repo.UserRepository

	mu        sync.Mutex
	listeners []SessionListener
}

func NewSessionUsecase(verifier TokenVerifier, users repo.UserRepository) *SessionUsecase {
	return &SessionUsecase{
		verifier: verifier,
		users:    users,
	}
}

// Subscribeは購読者を登録する。通知は登録順・同期呼び出し。
func (u *SessionUsecase) Subscribe(l SessionListener) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.listeners = append(u.listeners, l)
}

// SignInはIDトークンを検証し、プロフィールを保存して通知を出す。
// プロフィール保存の失敗はログのみ（サインイン自体は成立させる）。
func (u *SessionUsecase) SignIn(ctx context.Context, idToken string) (model.Identity, error) {
	identity, err := u.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return model.Identity{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.users.SaveProfile(ctx, identity.ID, model.UserProfile{
		Name:   identity.Name,
		Email:  identity.Email,
		Avatar: identity.AvatarURL,
	}); err != nil {
		log.Printf("[session] save profile failed uid=%s: %v", identity.ID, err)
	}

	u.publish(SessionEvent{Kind: SessionSignedIn, Identity: identity})
	return identity, nil
}

// SignOutは通知のみ。永続側のカートや注文には触らない。
func (u *SessionUsecase) SignOut(identity model.Identity) {
	if identity.ID == "" {
		return
	}
	u.publish(SessionEvent{Kind: SessionSignedOut, Identity: identity})
}

// 通知中はロックを保持し、配信順序を登録順に固定する。
func (u *SessionUsecase) publish(ev SessionEvent) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, l := range u.listeners {
		l(ev)
	}
}
