package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

const (
	CtxIdentityKey = "identity" // model.Identity
)

// bearerAuth用のIDトークン検証ミドルウェア。
// 検証に通ったIdentityをcontextへ入れる。
func FirebaseAuth(verifier usecase.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//プロバイダのSDKで検証する
			identity, err := verifier.VerifyIDToken(c.Request().Context(), rawToken)
			if err != nil || identity.ID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxIdentityKey, identity)

			return next(c)
		}
	}
}

// IdentityFromContextはFirebaseAuthが c.Set した値を取り出す。
func IdentityFromContext(c echo.Context) (model.Identity, bool) {
	v := c.Get(CtxIdentityKey)
	if v == nil {
		return model.Identity{}, false
	}

	identity, ok := v.(model.Identity)
	if !ok || identity.ID == "" {
		return model.Identity{}, false
	}

	return identity, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
