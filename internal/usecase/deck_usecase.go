package usecase

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
	"flashcards/internal/repository"
)

type DeckCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type DeckUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

// デッキ詳細はカードも一緒に返す
type DeckWithFlashcards struct {
	model.Deck
	Flashcards []model.Flashcard `json:"flashcards"`
}

type DeckUsecase struct {
	decks repository.DeckRepository
	cards repository.FlashcardRepository
	users repository.UserRepository
	idGen IDGenerator
}

func NewDeckUsecase(
	decks repository.DeckRepository,
	cards repository.FlashcardRepository,
	users repository.UserRepository,
	idGen IDGenerator,
) *DeckUsecase {
	return &DeckUsecase{
		decks: decks,
		cards: cards,
		users: users,
		idGen: idGen,
	}
}

func (u *DeckUsecase) Create(ctx context.Context, owner *model.User, req DeckCreateRequest) (*model.Deck, error) {
	if req.Title == "" {
		return nil, ErrValidation
	}

	deck := &model.Deck{
		ID:          u.idGen.NewID(),
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		OwnerID:     owner.ID,
	}

	if err := u.decks.Create(ctx, deck); err != nil {
		return nil, err
	}

	return deck, nil
}

func (u *DeckUsecase) ListOwn(ctx context.Context, owner *model.User, offset int, limit int) ([]model.Deck, error) {
	return u.decks.ListByOwner(ctx, owner.ID, offset, clampLimit(limit))
}

func (u *DeckUsecase) ListPublic(ctx context.Context, offset int, limit int) ([]model.Deck, error) {
	return u.decks.ListPublic(ctx, offset, clampLimit(limit))
}

// Getは所有者・共有先・公開デッキのみ閲覧可
func (u *DeckUsecase) Get(ctx context.Context, viewer *model.User, deckID string) (*DeckWithFlashcards, error) {
	deck, err := u.findDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	if !canViewDeck(viewer, deck) {
		return nil, ErrPermissionDenied
	}

	cards, err := u.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	return &DeckWithFlashcards{Deck: *deck, Flashcards: cards}, nil
}

func (u *DeckUsecase) Update(ctx context.Context, viewer *model.User, deckID string, req DeckUpdateRequest) (*model.Deck, error) {
	deck, err := u.findDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	if deck.OwnerID != viewer.ID {
		return nil, ErrPermissionDenied
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrValidation
		}
		deck.Title = *req.Title
	}
	if req.Description != nil {
		deck.Description = *req.Description
	}
	if req.IsPublic != nil {
		deck.IsPublic = *req.IsPublic
	}

	if err := u.decks.Update(ctx, deck); err != nil {
		return nil, err
	}

	return deck, nil
}

func (u *DeckUsecase) Delete(ctx context.Context, viewer *model.User, deckID string) error {
	deck, err := u.findDeck(ctx, deckID)
	if err != nil {
		return err
	}

	if deck.OwnerID != viewer.ID {
		return ErrPermissionDenied
	}

	return u.decks.Delete(ctx, deckID)
}

// Shareは他ユーザーに閲覧権を渡す。所有者のみ
func (u *DeckUsecase) Share(ctx context.Context, viewer *model.User, deckID string, targetUserID string) (*model.Deck, error) {
	deck, err := u.findDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	if deck.OwnerID != viewer.ID {
		return nil, ErrPermissionDenied
	}

	if _, err := u.users.FindByID(ctx, targetUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := u.decks.AddShare(ctx, deckID, targetUserID); err != nil {
		return nil, err
	}

	return deck, nil
}

func (u *DeckUsecase) findDeck(ctx context.Context, deckID string) (*model.Deck, error) {
	deck, err := u.decks.FindByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, repository.ErrDeckNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return deck, nil
}

func canViewDeck(viewer *model.User, deck *model.Deck) bool {
	if deck.IsPublic || deck.OwnerID == viewer.ID {
		return true
	}
	for _, u := range deck.SharedWith {
		if u.ID == viewer.ID {
			return true
		}
	}
	return false
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}
