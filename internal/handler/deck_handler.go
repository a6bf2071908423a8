package handler

import (
	"net/http"
	"strconv"

	"flashcards/internal/middleware"
	"flashcards/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DeckHandler struct {
	deckUC *usecase.DeckUsecase
}

func NewDeckHandler(deckUC *usecase.DeckUsecase) *DeckHandler {
	return &DeckHandler{deckUC: deckUC}
}

// POST /decks
func (h *DeckHandler) Create(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	var req usecase.DeckCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	deck, err := h.deckUC.Create(c.Request().Context(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, deck)
}

// GET /decks（自分のデッキ一覧）
func (h *DeckHandler) List(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	offset, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	decks, err := h.deckUC.ListOwn(c.Request().Context(), viewer, offset, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, decks)
}

// GET /decks/public
func (h *DeckHandler) ListPublic(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	decks, err := h.deckUC.ListPublic(c.Request().Context(), offset, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, decks)
}

// GET /decks/:id（カード込み）
func (h *DeckHandler) Get(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	deck, err := h.deckUC.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, deck)
}

// PUT /decks/:id
func (h *DeckHandler) Update(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	var req usecase.DeckUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	deck, err := h.deckUC.Update(c.Request().Context(), viewer, c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, deck)
}

// DELETE /decks/:id
func (h *DeckHandler) Delete(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	if err := h.deckUC.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// POST /decks/:id/share/:user_id
func (h *DeckHandler) Share(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	deck, err := h.deckUC.Share(c.Request().Context(), viewer, c.Param("id"), c.Param("user_id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, deck)
}
