package handler

import (
	"net/http"
	"strconv"

	"flashcards/internal/middleware"
	"flashcards/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUC *usecase.UserUsecase
}

func NewUserHandler(userUC *usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GET /users/me
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, user)
}

// PUT /users/me。本人はis_activeを変更できない
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	var req usecase.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	updated, err := h.userUC.UpdateSelf(c.Request().Context(), user.ID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// GET /users（管理者のみ。AdminOnlyはルーティング側で適用）
func (h *UserHandler) List(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	users, err := h.userUC.List(c.Request().Context(), offset, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

// GET /users/:id。本人か管理者
func (h *UserHandler) Get(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	targetID := c.Param("id")
	if targetID != viewer.ID && !viewer.IsAdmin() {
		return c.JSON(http.StatusForbidden, errorResponse{Error: "not enough permissions"})
	}

	user, err := h.userUC.Get(c.Request().Context(), targetID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// PUT /users/:id（管理者のみ）。is_activeの切り替えはここから
func (h *UserHandler) Update(c echo.Context) error {
	var req usecase.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	user, err := h.userUC.UpdateByAdmin(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
