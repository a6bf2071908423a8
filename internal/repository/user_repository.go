package repository

import (
	"context"
	"errors"

	"flashcards/internal/domain/model"
)

// ユーザーが見つからないを統一
var ErrUserNotFound = errors.New("user not found")

// email/usernameの一意制約違反
var ErrUserDuplicate = errors.New("user already exists")

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。重複はErrUserDuplicate
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する
	FindByID(ctx context.Context, userID string) (*model.User, error)
	// usernameからユーザーを1件取得する
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// emailからユーザーを1件取得する
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// 一覧取得（管理用）
	List(ctx context.Context, offset int, limit int) ([]model.User, error)
	// ユーザー情報の更新（プロフィール・is_activeの切り替えなど）
	Update(ctx context.Context, user *model.User) error
}
