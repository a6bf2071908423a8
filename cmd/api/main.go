package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"flashcards/internal/config"
	"flashcards/internal/domain/model"
	"flashcards/internal/handler"
	"flashcards/internal/infra/db"
	infraRepo "flashcards/internal/infra/repository"
	"flashcards/internal/server"
	"flashcards/internal/usecase"
	"flashcards/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// 期限切れトークンの掃除間隔。正しさには関係なくストレージの肥大防止のみ
const purgeInterval = 6 * time.Hour

func main() {
	// .envはあれば読む。本番は環境変数のみ
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	// シークレット未設定・未対応アルゴリズムはここで止まる
	issuer, err := usecase.NewTokenIssuer(cfg.JWTSecretKey, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		logger.Error("token issuer init failed", "error", err)
		os.Exit(1)
	}

	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Deck{},
		&model.Flashcard{},
		&model.StudySession{},
		&model.StudyRecord{},
	); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Repository（GORM実装）生成
	userRepo := infraRepo.NewUserRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)
	deckRepo := infraRepo.NewDeckRepository(gormDB)
	cardRepo := infraRepo.NewFlashcardRepository(gormDB)
	sessionRepo := infraRepo.NewStudySessionRepository(gormDB)
	recordRepo := infraRepo.NewStudyRecordRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()
	authValidator := validator.NewAuthValidator()

	lifecycle := usecase.NewTokenLifecycle(
		userRepo, rtRepo, txManager, issuer, idGen, clock, cfg.RefreshTokenTTL, logger,
	)
	authUC := usecase.NewAuthUsecase(
		userRepo, lifecycle, issuer, hasher, verifier, authValidator, idGen, logger,
	)
	userUC := usecase.NewUserUsecase(userRepo)
	deckUC := usecase.NewDeckUsecase(deckRepo, cardRepo, userRepo, idGen)
	cardUC := usecase.NewFlashcardUsecase(cardRepo, deckRepo, idGen)
	studyUC := usecase.NewStudyUsecase(sessionRepo, recordRepo, deckRepo, cardRepo, idGen, clock)

	// Handler生成
	authH := handler.NewAuthHandler(authUC)
	userH := handler.NewUserHandler(userUC)
	deckH := handler.NewDeckHandler(deckUC)
	cardH := handler.NewFlashcardHandler(cardUC)
	studyH := handler.NewStudyHandler(studyUC)

	// 期限切れトークンの定期掃除
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			count, err := lifecycle.PurgeExpired(context.Background())
			if err != nil {
				logger.Warn("expired token purge failed", "error", err)
				continue
			}
			if count > 0 {
				logger.Info("expired tokens purged", "count", count)
			}
		}
	}()

	e := server.New()
	server.RegisterRoutes(e, issuer, userRepo, authH, userH, deckH, cardH, studyH)

	logger.Info("server starting", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
