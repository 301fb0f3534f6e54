package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	FirebaseProjectID string // GCPプロジェクトID
	CredentialsFile   string // サービスアカウントJSON（空ならADC）
	StorageBucket     string // 商品画像バケット（固定）

	AdminEmail string // 管理者メールアドレス（完全一致で判定）

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
		CredentialsFile:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		StorageBucket:     os.Getenv("STORAGE_BUCKET"),

		AdminEmail: os.Getenv("ADMIN_EMAIL"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.FirebaseProjectID == "" {
		return Config{}, fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}
	if cfg.StorageBucket == "" {
		return Config{}, fmt.Errorf("STORAGE_BUCKET is required")
	}
	if cfg.AdminEmail == "" {
		return Config{}, fmt.Errorf("ADMIN_EMAIL is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}

	return cfg, nil
}
