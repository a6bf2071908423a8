package repository

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
	repo "flashcards/internal/repository"

	"gorm.io/gorm"
)

type studySessionGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewStudySessionRepository(db *gorm.DB) repo.StudySessionRepository {
	return &studySessionGormRepository{db: db}
}

func (r *studySessionGormRepository) Create(ctx context.Context, session *model.StudySession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return err
	}
	return nil
}

func (r *studySessionGormRepository) FindByID(ctx context.Context, sessionID string) (*model.StudySession, error) {
	var s model.StudySession

	err := r.db.WithContext(ctx).
		Where("id = ?", sessionID).
		First(&s).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrStudySessionNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *studySessionGormRepository) ListByUser(ctx context.Context, userID string, offset int, limit int) ([]model.StudySession, error) {
	var sessions []model.StudySession

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&sessions).Error

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *studySessionGormRepository) Update(ctx context.Context, session *model.StudySession) error {
	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return err
	}
	return nil
}
