package repository

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
	repo "flashcards/internal/repository"

	"gorm.io/gorm"
)

type flashcardGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewFlashcardRepository(db *gorm.DB) repo.FlashcardRepository {
	return &flashcardGormRepository{db: db}
}

func (r *flashcardGormRepository) Create(ctx context.Context, card *model.Flashcard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return err
	}
	return nil
}

func (r *flashcardGormRepository) FindByID(ctx context.Context, cardID string) (*model.Flashcard, error) {
	var c model.Flashcard

	err := r.db.WithContext(ctx).
		Where("id = ?", cardID).
		First(&c).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrFlashcardNotFound
		}
		return nil, err
	}

	return &c, nil
}

func (r *flashcardGormRepository) ListByDeck(ctx context.Context, deckID string) ([]model.Flashcard, error) {
	var cards []model.Flashcard

	err := r.db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("created_at ASC").
		Find(&cards).Error

	if err != nil {
		return nil, err
	}

	return cards, nil
}

func (r *flashcardGormRepository) Update(ctx context.Context, card *model.Flashcard) error {
	if err := r.db.WithContext(ctx).Save(card).Error; err != nil {
		return err
	}
	return nil
}

func (r *flashcardGormRepository) Delete(ctx context.Context, cardID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", cardID).
		Delete(&model.Flashcard{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrFlashcardNotFound
	}

	return nil
}
