package repository

import (
	"context"

	"flashcards/internal/domain/model"
	repo "flashcards/internal/repository"

	"gorm.io/gorm"
)

type studyRecordGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewStudyRecordRepository(db *gorm.DB) repo.StudyRecordRepository {
	return &studyRecordGormRepository{db: db}
}

func (r *studyRecordGormRepository) Create(ctx context.Context, record *model.StudyRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}
	return nil
}

func (r *studyRecordGormRepository) ListBySession(ctx context.Context, sessionID string, offset int, limit int) ([]model.StudyRecord, error) {
	var records []model.StudyRecord

	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}
