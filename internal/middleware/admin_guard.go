package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminGuardは/adminの入口で管理者メール完全一致をチェックする。
// 本体の判定はusecase側にもあり、こちらは入口での早期拒否。
func AdminGuard(adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if adminEmail == "" || identity.Email != adminEmail {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}

			return next(c)
		}
	}
}
