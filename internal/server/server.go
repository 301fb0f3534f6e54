package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/usecase"
)

func Start(
	addr string,
	cfg config.Config,
	verifier usecase.TokenVerifier,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	adminH *handler.AdminProductHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	RegisterRoutes(e, cfg, verifier, authH, productH, cartH, orderH, adminH)

	return e.Start(addr)
}
