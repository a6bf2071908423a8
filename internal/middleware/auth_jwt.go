package middleware

import (
	"net/http"
	"strings"

	"flashcards/internal/domain/model"
	"flashcards/internal/repository"
	"flashcards/internal/usecase"

	"github.com/labstack/echo/v4"
)

const ctxUserKey = "current_user"

type errorJSON struct {
	Error string `json:"error"`
}

// bearer認証のミドルウェア。アクセストークンを検証して
// 所有ユーザーをコンテキストに積む。停止ユーザーは403
func AuthJWT(issuer *usecase.TokenIssuer, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON{Error: "unauthorized"})
			}

			// Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON{Error: "unauthorized"})
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON{Error: "unauthorized"})
			}

			userID, err := issuer.ParseAccessToken(rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON{Error: "unauthorized"})
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				// 署名が正しくてもユーザーが消えていれば401
				return c.JSON(http.StatusUnauthorized, errorJSON{Error: "unauthorized"})
			}

			if !user.IsActive {
				return c.JSON(http.StatusForbidden, errorJSON{Error: "inactive user"})
			}

			c.Set(ctxUserKey, user)
			return next(c)
		}
	}
}

// 管理者のみ通す。AuthJWTの後段に置く
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON{Error: "unauthorized"})
			}
			if !user.IsAdmin() {
				return c.JSON(http.StatusForbidden, errorJSON{Error: "not enough permissions"})
			}
			return next(c)
		}
	}
}

// CurrentUserはAuthJWTが積んだユーザーを取り出す
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ctxUserKey).(*model.User)
	return user, ok
}
