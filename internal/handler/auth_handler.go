package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

// /auth/sessionのHTTP。
// サインイン本体（ポップアップOAuth）はフロント側で、
// ここは発行済みIDトークンを受け取ってセッションを確立するだけ。
type AuthHandler struct {
	uc *usecase.SessionUsecase
}

// DI
func NewAuthHandler(uc *usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type SignInRequest struct {
	IDToken string `json:"id_token"`
}

// /auth 以下を登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, verifier usecase.TokenVerifier) {
	e.POST("/auth/session", h.signIn)

	g := e.Group("/auth")
	g.Use(middleware.FirebaseAuth(verifier))
	g.DELETE("/session", h.signOut)
	g.GET("/me", h.me)
}

func (h *AuthHandler) signIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.IDToken == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id_token is required"})
	}

	identity, err := h.uc.SignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, identity)
}

func (h *AuthHandler) signOut(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	h.uc.SignOut(identity)
	return c.JSON(http.StatusOK, SuccessResponse{Message: "signed out"})
}

func (h *AuthHandler) me(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	return c.JSON(http.StatusOK, identity)
}
