package repository

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
)

var ErrStudyRecordNotFound = errors.New("study record not found")

type StudyRecordRepository interface {
	Create(ctx context.Context, record *model.StudyRecord) error
	// 解答順（作成日時昇順）
	ListBySession(ctx context.Context, sessionID string, offset int, limit int) ([]model.StudyRecord, error)
}
