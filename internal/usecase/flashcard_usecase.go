package usecase

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
	"flashcards/internal/repository"
)

type FlashcardCreateRequest struct {
	DeckID   string `json:"deck_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FlashcardUpdateRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type FlashcardUsecase struct {
	cards repository.FlashcardRepository
	decks repository.DeckRepository
	idGen IDGenerator
}

func NewFlashcardUsecase(
	cards repository.FlashcardRepository,
	decks repository.DeckRepository,
	idGen IDGenerator,
) *FlashcardUsecase {
	return &FlashcardUsecase{
		cards: cards,
		decks: decks,
		idGen: idGen,
	}
}

// カード追加はデッキ所有者のみ
func (u *FlashcardUsecase) Create(ctx context.Context, viewer *model.User, req FlashcardCreateRequest) (*model.Flashcard, error) {
	if req.Question == "" || req.Answer == "" {
		return nil, ErrValidation
	}

	deck, err := u.ownedDeck(ctx, viewer, req.DeckID)
	if err != nil {
		return nil, err
	}

	card := &model.Flashcard{
		ID:       u.idGen.NewID(),
		Question: req.Question,
		Answer:   req.Answer,
		DeckID:   deck.ID,
	}

	if err := u.cards.Create(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// 一覧は閲覧可能なデッキに対してだけ返す
func (u *FlashcardUsecase) ListByDeck(ctx context.Context, viewer *model.User, deckID string) ([]model.Flashcard, error) {
	deck, err := u.decks.FindByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, repository.ErrDeckNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !canViewDeck(viewer, deck) {
		return nil, ErrPermissionDenied
	}

	return u.cards.ListByDeck(ctx, deckID)
}

func (u *FlashcardUsecase) Get(ctx context.Context, viewer *model.User, cardID string) (*model.Flashcard, error) {
	card, err := u.findCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	deck, err := u.decks.FindByID(ctx, card.DeckID)
	if err != nil {
		return nil, err
	}
	if !canViewDeck(viewer, deck) {
		return nil, ErrPermissionDenied
	}

	return card, nil
}

func (u *FlashcardUsecase) Update(ctx context.Context, viewer *model.User, cardID string, req FlashcardUpdateRequest) (*model.Flashcard, error) {
	card, err := u.findCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if _, err := u.ownedDeck(ctx, viewer, card.DeckID); err != nil {
		return nil, err
	}

	if req.Question != nil {
		if *req.Question == "" {
			return nil, ErrValidation
		}
		card.Question = *req.Question
	}
	if req.Answer != nil {
		if *req.Answer == "" {
			return nil, ErrValidation
		}
		card.Answer = *req.Answer
	}

	if err := u.cards.Update(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

func (u *FlashcardUsecase) Delete(ctx context.Context, viewer *model.User, cardID string) error {
	card, err := u.findCard(ctx, cardID)
	if err != nil {
		return err
	}

	if _, err := u.ownedDeck(ctx, viewer, card.DeckID); err != nil {
		return err
	}

	return u.cards.Delete(ctx, card.ID)
}

func (u *FlashcardUsecase) findCard(ctx context.Context, cardID string) (*model.Flashcard, error) {
	card, err := u.cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrFlashcardNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return card, nil
}

// デッキを引いて所有権を確認する
func (u *FlashcardUsecase) ownedDeck(ctx context.Context, viewer *model.User, deckID string) (*model.Deck, error) {
	deck, err := u.decks.FindByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, repository.ErrDeckNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if deck.OwnerID != viewer.ID {
		return nil, ErrPermissionDenied
	}

	return deck, nil
}
