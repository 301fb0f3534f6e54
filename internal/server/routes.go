package server

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/usecase"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	verifier usecase.TokenVerifier,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	adminH *handler.AdminProductHandler,
) {
	authH.RegisterRoutes(e, verifier)
	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e, verifier)
	orderH.RegisterRoutes(e, verifier)
	adminH.RegisterRoutes(e, verifier, cfg.AdminEmail)
}
