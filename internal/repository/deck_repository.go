package repository

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
)

var ErrDeckNotFound = errors.New("deck not found")

type DeckRepository interface {
	Create(ctx context.Context, deck *model.Deck) error
	// SharedWithも一緒に読み込む
	FindByID(ctx context.Context, deckID string) (*model.Deck, error)
	ListByOwner(ctx context.Context, ownerID string, offset int, limit int) ([]model.Deck, error)
	ListPublic(ctx context.Context, offset int, limit int) ([]model.Deck, error)
	Update(ctx context.Context, deck *model.Deck) error
	// デッキと配下のフラッシュカードを削除
	Delete(ctx context.Context, deckID string) error
	// 共有先ユーザーを追加する。すでに共有済みなら何もしない
	AddShare(ctx context.Context, deckID string, userID string) error
}
