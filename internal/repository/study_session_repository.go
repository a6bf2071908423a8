package repository

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
)

var ErrStudySessionNotFound = errors.New("study session not found")

type StudySessionRepository interface {
	Create(ctx context.Context, session *model.StudySession) error
	FindByID(ctx context.Context, sessionID string) (*model.StudySession, error)
	// 開始日時の新しい順
	ListByUser(ctx context.Context, userID string, offset int, limit int) ([]model.StudySession, error)
	Update(ctx context.Context, session *model.StudySession) error
}
