package handler

import (
	"net/http"

	"flashcards/internal/middleware"
	"flashcards/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FlashcardHandler struct {
	cardUC *usecase.FlashcardUsecase
}

func NewFlashcardHandler(cardUC *usecase.FlashcardUsecase) *FlashcardHandler {
	return &FlashcardHandler{cardUC: cardUC}
}

// POST /flashcards
func (h *FlashcardHandler) Create(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	var req usecase.FlashcardCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	card, err := h.cardUC.Create(c.Request().Context(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, card)
}

// GET /flashcards?deck_id=...
func (h *FlashcardHandler) List(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	deckID := c.QueryParam("deck_id")
	if deckID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "deck_id is required"})
	}

	cards, err := h.cardUC.ListByDeck(c.Request().Context(), viewer, deckID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, cards)
}

// GET /flashcards/:id
func (h *FlashcardHandler) Get(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	card, err := h.cardUC.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, card)
}

// PUT /flashcards/:id
func (h *FlashcardHandler) Update(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	var req usecase.FlashcardUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	card, err := h.cardUC.Update(c.Request().Context(), viewer, c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, card)
}

// DELETE /flashcards/:id
func (h *FlashcardHandler) Delete(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	if err := h.cardUC.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
