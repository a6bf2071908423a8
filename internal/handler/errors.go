package handler

import (
	"errors"
	"net/http"

	"flashcards/internal/usecase"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// usecaseの番兵エラーをHTTPステータスに変換する。
// 内部の失敗理由はクライアントに出さない
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "email already registered"})
	case errors.Is(err, usecase.ErrUsernameTaken):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "username already registered"})
	case errors.Is(err, usecase.ErrAlreadyRegistered):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "already registered"})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "incorrect username or password"})
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		// 不在・期限切れ・revoked・再利用の内訳は出さない
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid refresh token"})
	case errors.Is(err, usecase.ErrInactiveAccount):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "inactive user"})
	case errors.Is(err, usecase.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "not enough permissions"})
	case errors.Is(err, usecase.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
