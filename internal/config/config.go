package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（デフォルト8080）

	JWTSecretKey string // JWT署名シークレット（必須）
	JWTAlgorithm string // 署名アルゴリズム（HS256/HS384/HS512）

	AccessTokenTTL  time.Duration // アクセストークンの有効期限
	RefreshTokenTTL time.Duration // リフレッシュトークンの有効期限
}

// Loadは環境変数から設定を読む。
// シークレット未設定は起動時エラーにする（リクエスト時に倒さない）
func Load() (Config, error) {
	cfg := Config{
		Port:         getenv("PORT", "8080"),
		JWTSecretKey: os.Getenv("JWT_SECRET_KEY"),
		JWTAlgorithm: getenv("JWT_ALGORITHM", "HS256"),
	}

	if cfg.JWTSecretKey == "" {
		return Config{}, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	accessMinutes, err := envInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return Config{}, err
	}
	refreshDays, err := envInt("REFRESH_TOKEN_EXPIRE_DAYS", 30)
	if err != nil {
		return Config{}, err
	}

	if accessMinutes <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if refreshDays <= 0 {
		return Config{}, fmt.Errorf("REFRESH_TOKEN_EXPIRE_DAYS must be positive")
	}

	cfg.AccessTokenTTL = time.Duration(accessMinutes) * time.Minute
	cfg.RefreshTokenTTL = time.Duration(refreshDays) * 24 * time.Hour

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
