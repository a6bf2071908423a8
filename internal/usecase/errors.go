package usecase

import "errors"

var (
	// 400 入力不正。validatorがラップして詳細を載せる
	ErrValidation = errors.New("validation error")
	// 401 ユーザー不在と誤パスワードは区別しない（列挙攻撃対策）
	ErrInvalidCredentials = errors.New("invalid credentials")
	// 403 停止済みユーザー
	ErrInactiveAccount = errors.New("inactive account")
	// 401 不在・期限切れ・revoked・再利用・回転レース負けをまとめる
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// 400 email重複
	ErrEmailTaken = errors.New("email already registered")
	// 400 username重複
	ErrUsernameTaken = errors.New("username already registered")
	// 400 事前チェック後の一意制約違反。emailかusernameかは特定できない
	ErrAlreadyRegistered = errors.New("already registered")
	// 404
	ErrNotFound = errors.New("not found")
	// 403 所有者でも管理者でもない
	ErrPermissionDenied = errors.New("permission denied")
)
