package repository

import (
	"context"
	"errors"
	"time"

	"flashcards/internal/domain/model"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// token文字列の一意制約違反。呼び出し側は値を作り直してリトライする
var ErrRefreshTokenDuplicate = errors.New("refresh token already exists")

// リフレッシュトークンの保存・取得・失効
type RefreshTokenRepository interface {
	// 新規レコード保存。token重複はErrRefreshTokenDuplicate
	Create(ctx context.Context, token *model.RefreshToken) error
	// token文字列で1件検索
	FindByToken(ctx context.Context, token string) (*model.RefreshToken, error)
	// revokedをtrueにする。対象がなければErrRefreshTokenNotFound。
	// すでにrevoked済みでもエラーにしない（冪等）
	Revoke(ctx context.Context, tokenID string) error
	// revoked=falseの場合に限りtrueへ切り替える。
	// 切り替えられたらtrue。すでにrevoked済み・存在しないならfalse
	RevokeIfActive(ctx context.Context, tokenID string) (bool, error)
	// 指定ユーザーの未失効トークンを一括失効して件数を返す
	RevokeAllByUserID(ctx context.Context, userID string) (int64, error)
	// 期限切れレコードを物理削除して件数を返す（ストレージ掃除用）
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
