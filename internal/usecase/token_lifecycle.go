package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flashcards/internal/domain/model"
	"flashcards/internal/repository"
)

// 乱数衝突時に値を作り直す回数。2回続けて衝突したらストア側の異常
const tokenCreateAttempts = 3

// UUID等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在時刻を返す約束。テストで固定時刻を差し込む
type Clock interface {
	Now() time.Time
}

// TokenLifecycleはリフレッシュトークンの状態遷移の唯一の管理者。
// 状態はすべてストアに置き、プロセス内にはキャッシュしない
type TokenLifecycle struct {
	users      repository.UserRepository
	tokens     repository.RefreshTokenRepository
	tx         repository.TransactionManager
	issuer     *TokenIssuer
	idGen      IDGenerator
	clock      Clock
	defaultTTL time.Duration
	logger     *slog.Logger
}

func NewTokenLifecycle(
	users repository.UserRepository,
	tokens repository.RefreshTokenRepository,
	tx repository.TransactionManager,
	issuer *TokenIssuer,
	idGen IDGenerator,
	clock Clock,
	defaultTTL time.Duration,
	logger *slog.Logger,
) *TokenLifecycle {
	return &TokenLifecycle{
		users:      users,
		tokens:     tokens,
		tx:         tx,
		issuer:     issuer,
		idGen:      idGen,
		clock:      clock,
		defaultTTL: defaultTTL,
		logger:     logger,
	}
}

// Createは新しいリフレッシュトークンを発行して保存する。
// ttl<=0ならデフォルトTTL。同一ユーザーの複数トークンは許可（マルチデバイス）
func (l *TokenLifecycle) Create(ctx context.Context, userID string, ttl time.Duration) (*model.RefreshToken, error) {
	return l.createIn(ctx, l.tokens, userID, ttl)
}

// 保存先リポジトリを差し替えられるようにした内部実装。
// Rotateはトランザクション内のリポジトリを渡してくる
func (l *TokenLifecycle) createIn(ctx context.Context, tokens repository.RefreshTokenRepository, userID string, ttl time.Duration) (*model.RefreshToken, error) {
	if ttl <= 0 {
		ttl = l.defaultTTL
	}

	// 一意制約違反は値を作り直してリトライする
	for attempt := 0; attempt < tokenCreateAttempts; attempt++ {
		value, err := l.issuer.NewRefreshTokenValue()
		if err != nil {
			return nil, err
		}

		rt := &model.RefreshToken{
			ID:        l.idGen.NewID(),
			Token:     value,
			UserID:    userID,
			ExpiresAt: l.clock.Now().Add(ttl),
			Revoked:   false,
		}

		err = tokens.Create(ctx, rt)
		if err == nil {
			return rt, nil
		}
		if !errors.Is(err, repository.ErrRefreshTokenDuplicate) {
			return nil, err
		}

		l.logger.Warn("refresh token value collision, retrying", "attempt", attempt+1)
	}

	return nil, errors.New("could not generate unique refresh token")
}

// Validateはtoken値から所有ユーザーを引く。純粋な読み取りで副作用なし。
// 見つからない・revoked・期限切れ・所有者不在・所有者停止はすべて(nil, nil)
func (l *TokenLifecycle) Validate(ctx context.Context, token string) (*model.User, error) {
	rt, err := l.tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if rt.Revoked || rt.Expired(l.clock.Now()) {
		return nil, nil
	}

	user, err := l.users.FindByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, nil
	}

	return user, nil
}

// Revokeはtokenを失効させる。レコードが存在すればtrue（revoked済みでもtrue）。
// 存在しないときだけfalse
func (l *TokenLifecycle) Revoke(ctx context.Context, token string) (bool, error) {
	rt, err := l.tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := l.tokens.Revoke(ctx, rt.ID); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Rotateは旧トークンの失効と新トークンの発行を1トランザクションで行う。
// 旧トークンが無効（不在・revoked・期限切れ・所有者停止）なら(nil, nil)で、何も変更しない。
// 同じ旧トークンで並行に呼ばれた場合、revoked=falseの行への条件付き更新が
// 勝者を1つに決める。負けた側は(nil, nil)
func (l *TokenLifecycle) Rotate(ctx context.Context, oldToken string, ttl time.Duration) (*model.RefreshToken, error) {
	var newRT *model.RefreshToken

	err := l.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		rt, err := r.RefreshTokens().FindByToken(ctx, oldToken)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return nil
			}
			return err
		}

		// revoked済みトークンの再提示 = 盗難・リプレイの一次シグナル
		if rt.Revoked {
			l.logger.Warn("revoked refresh token presented", "user_id", rt.UserID, "token_id", rt.ID)
			return nil
		}
		if rt.Expired(l.clock.Now()) {
			return nil
		}

		user, err := r.Users().FindByID(ctx, rt.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}
			return err
		}
		if !user.IsActive {
			return nil
		}

		// 勝敗はここで決まる。更新0件なら並行回転に負けた
		won, err := r.RefreshTokens().RevokeIfActive(ctx, rt.ID)
		if err != nil {
			return err
		}
		if !won {
			l.logger.Warn("concurrent rotation lost", "user_id", rt.UserID, "token_id", rt.ID)
			return nil
		}

		newRT, err = l.createIn(ctx, r.RefreshTokens(), rt.UserID, ttl)
		return err
	})
	if err != nil {
		return nil, err
	}

	return newRT, nil
}

// RevokeAllForUserは指定ユーザーの未失効トークンを一括失効する。
// 全端末ログアウトやアカウント侵害対応で使う
func (l *TokenLifecycle) RevokeAllForUser(ctx context.Context, userID string) (int64, error) {
	return l.tokens.RevokeAllByUserID(ctx, userID)
}

// PurgeExpiredは期限切れレコードを削除する。正しさには不要で、掃除専用
func (l *TokenLifecycle) PurgeExpired(ctx context.Context) (int64, error) {
	return l.tokens.DeleteExpired(ctx, l.clock.Now())
}
