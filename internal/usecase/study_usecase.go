package usecase

import (
	"context"
	"errors"
	"fmt"

	"flashcards/internal/domain/model"
	"flashcards/internal/repository"
)

type StudySessionCreateRequest struct {
	DeckID string `json:"deck_id"`
}

type StudyRecordCreateRequest struct {
	SessionID   string `json:"session_id"`
	FlashcardID string `json:"flashcard_id"`
	IsCorrect   bool   `json:"is_correct"`
}

// StudyUsecaseは学習セッションと解答記録を扱う。
// セッションは本人のものだけ参照できる
type StudyUsecase struct {
	sessions repository.StudySessionRepository
	records  repository.StudyRecordRepository
	decks    repository.DeckRepository
	cards    repository.FlashcardRepository
	idGen    IDGenerator
	clock    Clock
}

func NewStudyUsecase(
	sessions repository.StudySessionRepository,
	records repository.StudyRecordRepository,
	decks repository.DeckRepository,
	cards repository.FlashcardRepository,
	idGen IDGenerator,
	clock Clock,
) *StudyUsecase {
	return &StudyUsecase{
		sessions: sessions,
		records:  records,
		decks:    decks,
		cards:    cards,
		idGen:    idGen,
		clock:    clock,
	}
}

// StartSessionは閲覧できるデッキに対してだけセッションを開始できる
func (u *StudyUsecase) StartSession(ctx context.Context, viewer *model.User, req StudySessionCreateRequest) (*model.StudySession, error) {
	deck, err := u.decks.FindByID(ctx, req.DeckID)
	if err != nil {
		if errors.Is(err, repository.ErrDeckNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !canViewDeck(viewer, deck) {
		return nil, ErrPermissionDenied
	}

	session := &model.StudySession{
		ID:        u.idGen.NewID(),
		UserID:    viewer.ID,
		DeckID:    deck.ID,
		StartedAt: u.clock.Now(),
	}

	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (u *StudyUsecase) ListSessions(ctx context.Context, viewer *model.User, offset int, limit int) ([]model.StudySession, error) {
	if offset < 0 {
		offset = 0
	}
	return u.sessions.ListByUser(ctx, viewer.ID, offset, clampLimit(limit))
}

func (u *StudyUsecase) GetSession(ctx context.Context, viewer *model.User, sessionID string) (*model.StudySession, error) {
	return u.ownedSession(ctx, viewer, sessionID)
}

// EndSessionは進行中のセッションを終了する。終了済みならエラー
func (u *StudyUsecase) EndSession(ctx context.Context, viewer *model.User, sessionID string) (*model.StudySession, error) {
	session, err := u.ownedSession(ctx, viewer, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Ended() {
		return nil, fmt.Errorf("%w: study session already ended", ErrValidation)
	}

	now := u.clock.Now()
	session.EndedAt = &now

	if err := u.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// RecordAnswerは解答記録を追加する。
// カードがセッションのデッキに属していなければエラー
func (u *StudyUsecase) RecordAnswer(ctx context.Context, viewer *model.User, req StudyRecordCreateRequest) (*model.StudyRecord, error) {
	session, err := u.ownedSession(ctx, viewer, req.SessionID)
	if err != nil {
		return nil, err
	}

	card, err := u.cards.FindByID(ctx, req.FlashcardID)
	if err != nil {
		if errors.Is(err, repository.ErrFlashcardNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if card.DeckID != session.DeckID {
		return nil, fmt.Errorf("%w: flashcard does not belong to the session's deck", ErrValidation)
	}

	record := &model.StudyRecord{
		ID:          u.idGen.NewID(),
		SessionID:   session.ID,
		FlashcardID: card.ID,
		IsCorrect:   req.IsCorrect,
		EaseFactor:  2.5,
	}

	if err := u.records.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (u *StudyUsecase) ListRecords(ctx context.Context, viewer *model.User, sessionID string, offset int, limit int) ([]model.StudyRecord, error) {
	if _, err := u.ownedSession(ctx, viewer, sessionID); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	return u.records.ListBySession(ctx, sessionID, offset, clampLimit(limit))
}

// セッションを引いて本人のものか確認する
func (u *StudyUsecase) ownedSession(ctx context.Context, viewer *model.User, sessionID string) (*model.StudySession, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrStudySessionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if session.UserID != viewer.ID {
		return nil, ErrPermissionDenied
	}

	return session, nil
}
