package repository

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
	repo "flashcards/internal/repository"

	"gorm.io/gorm"
)

type deckGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewDeckRepository(db *gorm.DB) repo.DeckRepository {
	return &deckGormRepository{db: db}
}

func (r *deckGormRepository) Create(ctx context.Context, deck *model.Deck) error {
	if err := r.db.WithContext(ctx).Create(deck).Error; err != nil {
		return err
	}
	return nil
}

// 共有先ユーザーも一緒に読み込む
func (r *deckGormRepository) FindByID(ctx context.Context, deckID string) (*model.Deck, error) {
	var d model.Deck

	err := r.db.WithContext(ctx).
		Preload("SharedWith").
		Where("id = ?", deckID).
		First(&d).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrDeckNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (r *deckGormRepository) ListByOwner(ctx context.Context, ownerID string, offset int, limit int) ([]model.Deck, error) {
	var decks []model.Deck

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&decks).Error

	if err != nil {
		return nil, err
	}

	return decks, nil
}

func (r *deckGormRepository) ListPublic(ctx context.Context, offset int, limit int) ([]model.Deck, error) {
	var decks []model.Deck

	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&decks).Error

	if err != nil {
		return nil, err
	}

	return decks, nil
}

func (r *deckGormRepository) Update(ctx context.Context, deck *model.Deck) error {
	if err := r.db.WithContext(ctx).Save(deck).Error; err != nil {
		return err
	}
	return nil
}

// デッキ本体と配下のカードをまとめて削除
func (r *deckGormRepository) Delete(ctx context.Context, deckID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deck_id = ?", deckID).Delete(&model.Flashcard{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", deckID).Delete(&model.Deck{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repo.ErrDeckNotFound
		}
		return nil
	})
}

// deck_sharesに1行追加。重複はそのまま成功扱い
func (r *deckGormRepository) AddShare(ctx context.Context, deckID string, userID string) error {
	deck := model.Deck{ID: deckID}
	user := model.User{ID: userID}

	err := r.db.WithContext(ctx).
		Model(&deck).
		Association("SharedWith").
		Append(&user)

	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}
