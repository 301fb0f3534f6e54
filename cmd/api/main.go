package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"storefront/internal/config"
	"storefront/internal/handler"
	infraauth "storefront/internal/infra/auth"
	infrafs "storefront/internal/infra/firestore"
	infragcs "storefront/internal/infra/gcs"
	"storefront/internal/server"
	"storefront/internal/usecase"
	"storefront/internal/validator"
)

func main() {
	//.envはローカル用。無ければ環境変数だけで動く
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] .env not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	//外部クライアント（Firestore / Firebase Auth / GCS）
	fsClient, err := infrafs.NewClient(ctx, cfg.FirebaseProjectID, cfg.CredentialsFile)
	if err != nil {
		panic(err)
	}
	defer fsClient.Close()

	authClient, err := infraauth.NewAuthClient(ctx, cfg.FirebaseProjectID, cfg.CredentialsFile)
	if err != nil {
		panic(err)
	}

	gcsClient, err := infragcs.NewClient(ctx, cfg.CredentialsFile)
	if err != nil {
		panic(err)
	}
	defer gcsClient.Close()

	//Repository（Firestore/GCS実装）生成
	productRepo := infrafs.NewProductRepositoryFS(fsClient)
	cartRepo := infrafs.NewCartRepositoryFS(fsClient)
	orderRepo := infrafs.NewOrderRepositoryFS(fsClient)
	userRepo := infrafs.NewUserRepositoryFS(fsClient)
	imageStore := infragcs.NewImageStorageGCS(gcsClient, cfg.StorageBucket)

	//IDトークン検証
	verifier := infraauth.NewFirebaseVerifier(authClient)

	//Usecase生成
	sessionUC := usecase.NewSessionUsecase(verifier, userRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	defer cartUC.Close()

	orderUC := usecase.NewOrderUsecase(orderRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	adminUC := usecase.NewAdminProductUsecase(productRepo, imageStore, cfg.AdminEmail)

	//サインインでカートを読み直し、サインアウトで捨てる
	sessionUC.Subscribe(cartUC.OnSessionEvent)

	//Handler生成
	authH := handler.NewAuthHandler(sessionUC)
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC, cartUC, validator.NewCheckoutValidator())
	adminH := handler.NewAdminProductHandler(adminUC)

	//Server起動
	addr := ":8080"
	if cfg.Port != "" {
		if cfg.Port[0] != ':' {
			addr = ":" + cfg.Port
		} else {
			addr = cfg.Port
		}
	}

	if err := server.Start(addr, cfg, verifier, authH, productH, cartH, orderH, adminH); err != nil {
		panic(err)
	}
}
