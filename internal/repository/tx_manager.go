package repository

import "context"

// トランザクション内で使うリポジトリの束
type TxRepos interface {
	Users() UserRepository
	RefreshTokens() RefreshTokenRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがエラーを返したらロールバック、nilならコミット
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
