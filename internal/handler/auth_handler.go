package handler

import (
	"net/http"

	"flashcards/internal/middleware"
	"flashcards/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authUC *usecase.AuthUsecase
}

// DIコンストラクタ
func NewAuthHandler(authUC *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// /auth/refresh と /auth/logout のリクエストボディ
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type logoutAllResponse struct {
	Revoked int64 `json:"revoked"`
}

// RegisterはPOST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	user, err := h.authUC.Register(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

// LoginはPOST /auth/login。OAuth2互換のformボディを受ける
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	pair, err := h.authUC.Login(c.Request().Context(), username, password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, pair)
}

// RefreshはPOST /auth/refresh。旧トークンは使い捨てで、毎回新しいペアを返す
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid refresh token"})
	}

	pair, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, pair)
}

// LogoutはPOST /auth/logout。壊れたボディでも204を返す
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	_ = c.Bind(&req)

	if err := h.authUC.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LogoutAllはPOST /auth/logout-all。bearer必須で全端末分を失効する
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	count, err := h.authUC.LogoutAll(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, logoutAllResponse{Revoked: count})
}
