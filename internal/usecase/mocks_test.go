package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flashcards/internal/domain/model"
	"flashcards/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset int, limit int) ([]model.User, error) {
	args := m.Called(ctx, offset, limit)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// =====================
// Mock: RefreshTokenRepository
// =====================

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	args := m.Called(ctx, token)
	rt, _ := args.Get(0).(*model.RefreshToken)
	return rt, args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeIfActive(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRefreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: DeckRepository
// =====================

type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) Create(ctx context.Context, deck *model.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckRepository) FindByID(ctx context.Context, deckID string) (*model.Deck, error) {
	args := m.Called(ctx, deckID)
	d, _ := args.Get(0).(*model.Deck)
	return d, args.Error(1)
}

func (m *MockDeckRepository) ListByOwner(ctx context.Context, ownerID string, offset int, limit int) ([]model.Deck, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	decks, _ := args.Get(0).([]model.Deck)
	return decks, args.Error(1)
}

func (m *MockDeckRepository) ListPublic(ctx context.Context, offset int, limit int) ([]model.Deck, error) {
	args := m.Called(ctx, offset, limit)
	decks, _ := args.Get(0).([]model.Deck)
	return decks, args.Error(1)
}

func (m *MockDeckRepository) Update(ctx context.Context, deck *model.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckRepository) Delete(ctx context.Context, deckID string) error {
	args := m.Called(ctx, deckID)
	return args.Error(0)
}

func (m *MockDeckRepository) AddShare(ctx context.Context, deckID string, userID string) error {
	args := m.Called(ctx, deckID, userID)
	return args.Error(0)
}

// =====================
// Mock: FlashcardRepository
// =====================

type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Create(ctx context.Context, card *model.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardRepository) FindByID(ctx context.Context, cardID string) (*model.Flashcard, error) {
	args := m.Called(ctx, cardID)
	c, _ := args.Get(0).(*model.Flashcard)
	return c, args.Error(1)
}

func (m *MockFlashcardRepository) ListByDeck(ctx context.Context, deckID string) ([]model.Flashcard, error) {
	args := m.Called(ctx, deckID)
	cards, _ := args.Get(0).([]model.Flashcard)
	return cards, args.Error(1)
}

func (m *MockFlashcardRepository) Update(ctx context.Context, card *model.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardRepository) Delete(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

// =====================
// Mock: StudySessionRepository / StudyRecordRepository
// =====================

type MockStudySessionRepository struct {
	mock.Mock
}

func (m *MockStudySessionRepository) Create(ctx context.Context, session *model.StudySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockStudySessionRepository) FindByID(ctx context.Context, sessionID string) (*model.StudySession, error) {
	args := m.Called(ctx, sessionID)
	s, _ := args.Get(0).(*model.StudySession)
	return s, args.Error(1)
}

func (m *MockStudySessionRepository) ListByUser(ctx context.Context, userID string, offset int, limit int) ([]model.StudySession, error) {
	args := m.Called(ctx, userID, offset, limit)
	sessions, _ := args.Get(0).([]model.StudySession)
	return sessions, args.Error(1)
}

func (m *MockStudySessionRepository) Update(ctx context.Context, session *model.StudySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

type MockStudyRecordRepository struct {
	mock.Mock
}

func (m *MockStudyRecordRepository) Create(ctx context.Context, record *model.StudyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStudyRecordRepository) ListBySession(ctx context.Context, sessionID string, offset int, limit int) ([]model.StudyRecord, error) {
	args := m.Called(ctx, sessionID, offset, limit)
	records, _ := args.Get(0).([]model.StudyRecord)
	return records, args.Error(1)
}

// =====================
// TxManager: モックのリポジトリをそのまま渡すだけ
// =====================

type passthroughTxRepos struct {
	users  repository.UserRepository
	tokens repository.RefreshTokenRepository
}

func (r *passthroughTxRepos) Users() repository.UserRepository                 { return r.users }
func (r *passthroughTxRepos) RefreshTokens() repository.RefreshTokenRepository { return r.tokens }

type passthroughTxManager struct {
	repos repository.TxRepos
}

func (m *passthroughTxManager) WithinTx(ctx context.Context, fn func(r repository.TxRepos) error) error {
	return fn(m.repos)
}

// =====================
// Clock / IDGenerator
// =====================

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testIssuer() *TokenIssuer {
	issuer, err := NewTokenIssuer("test-secret", "HS256", 15*time.Minute)
	if err != nil {
		panic(err)
	}
	return issuer
}
