package usecase

import (
	"context"
	"errors"
	"log/slog"

	"flashcards/internal/domain/model"
	"flashcards/internal/repository"
)

// usecaseがvalidatorに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email string, username string, password string) error
	ValidateLogin(ctx context.Context, username string, password string) error
}

// /auth/register のリクエスト
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// login/refreshの返却。refresh_tokenは平文で1回だけ返す
type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
}

// AuthUsecaseはログイン・リフレッシュ・ログアウトの編成役。
// トークン状態の判断はすべてTokenLifecycleに任せる
type AuthUsecase struct {
	users     repository.UserRepository
	lifecycle *TokenLifecycle
	issuer    *TokenIssuer
	hasher    PasswordHasher
	verifier  PasswordVerifier
	validator AuthValidator
	idGen     IDGenerator
	logger    *slog.Logger
}

func NewAuthUsecase(
	users repository.UserRepository,
	lifecycle *TokenLifecycle,
	issuer *TokenIssuer,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	validator AuthValidator,
	idGen IDGenerator,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		lifecycle: lifecycle,
		issuer:    issuer,
		hasher:    hasher,
		verifier:  verifier,
		validator: validator,
		idGen:     idGen,
		logger:    logger,
	}
}

// Registerは会員登録
func (u *AuthUsecase) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if err := u.validator.ValidateRegister(ctx, req.Email, req.Username, req.Password); err != nil {
		return nil, err
	}

	// email重複チェック
	if _, err := u.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	// username重複チェック
	if _, err := u.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           u.idGen.NewID(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         model.RoleUser,
		IsActive:     true,
	}

	if err := u.users.Create(ctx, user); err != nil {
		// 事前チェックをすり抜けた同時登録。
		// どちらの一意制約に当たったかは分からないので中立なエラーを返す
		if errors.Is(err, repository.ErrUserDuplicate) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	u.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Loginは資格情報を検証してトークンペアを発行する。
// ユーザー不在と誤パスワードはどちらもErrInvalidCredentials
func (u *AuthUsecase) Login(ctx context.Context, username string, password string) (*TokenPairDTO, error) {
	if err := u.validator.ValidateLogin(ctx, username, password); err != nil {
		return nil, err
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.verifier.Verify(password, user.PasswordHash) {
		u.logger.Warn("login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		u.logger.Warn("login attempt for inactive user", "username", username)
		return nil, ErrInactiveAccount
	}

	rt, err := u.lifecycle.Create(ctx, user.ID, 0)
	if err != nil {
		return nil, err
	}

	access, _, err := u.issuer.IssueAccessToken(user.ID, 0)
	if err != nil {
		return nil, err
	}

	u.logger.Info("user logged in", "user_id", user.ID)
	return &TokenPairDTO{
		AccessToken:  access,
		TokenType:    "bearer",
		RefreshToken: rt.Token,
	}, nil
}

// Refreshは回転。古いトークンが何らかの理由で無効なら一律ErrInvalidRefreshToken。
// 理由の内訳は外に出さない
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenPairDTO, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	rt, err := u.lifecycle.Rotate(ctx, refreshToken, 0)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, ErrInvalidRefreshToken
	}

	access, _, err := u.issuer.IssueAccessToken(rt.UserID, 0)
	if err != nil {
		return nil, err
	}

	return &TokenPairDTO{
		AccessToken:  access,
		TokenType:    "bearer",
		RefreshToken: rt.Token,
	}, nil
}

// Logoutは失効させるだけ。見つからない・revoked済みでもエラーにしない。
// 壊れたトークンを持つクライアントでもログアウトは成功させる
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	found, err := u.lifecycle.Revoke(ctx, refreshToken)
	if err != nil {
		return err
	}
	if !found {
		u.logger.Debug("logout with unknown refresh token")
	}

	return nil
}

// LogoutAllは呼び出しユーザーの全トークンを失効する
func (u *AuthUsecase) LogoutAll(ctx context.Context, userID string) (int64, error) {
	count, err := u.lifecycle.RevokeAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	u.logger.Info("all sessions revoked", "user_id", userID, "count", count)
	return count, nil
}
