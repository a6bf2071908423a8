package repository

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
)

var ErrFlashcardNotFound = errors.New("flashcard not found")

type FlashcardRepository interface {
	Create(ctx context.Context, card *model.Flashcard) error
	FindByID(ctx context.Context, cardID string) (*model.Flashcard, error)
	ListByDeck(ctx context.Context, deckID string) ([]model.Flashcard, error)
	Update(ctx context.Context, card *model.Flashcard) error
	Delete(ctx context.Context, cardID string) error
}
