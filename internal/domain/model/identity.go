package model

// 認証プロバイダが発行したサインイン中のユーザー。
// IDトークンのclaimsから組み立てる。
type Identity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// usersコレクションに保存するプロフィール（docId = Identity.ID）。
type UserProfile struct {
	Name   string `firestore:"name" json:"name"`
	Email  string `firestore:"email" json:"email"`
	Avatar string `firestore:"avatar" json:"avatar"`
}
