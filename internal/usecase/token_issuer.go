package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// アクセストークンの検証失敗を統一
var ErrInvalidAccessToken = errors.New("invalid access token")

// 対応する署名アルゴリズム。HMAC系のみ
var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// TokenIssuerはアクセストークンの発行・検証と
// リフレッシュトークン値の生成を担当する。状態は持たない
type TokenIssuer struct {
	secret    []byte
	method    jwt.SigningMethod
	accessTTL time.Duration
}

// 設定ミス（シークレット未設定・未対応アルゴリズム）は
// ここでエラーにして起動を止める
func NewTokenIssuer(secret string, algorithm string, accessTTL time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}

	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm: %s", algorithm)
	}

	if accessTTL <= 0 {
		return nil, fmt.Errorf("access token ttl must be positive")
	}

	return &TokenIssuer{
		secret:    []byte(secret),
		method:    method,
		accessTTL: accessTTL,
	}, nil
}

// アクセストークンを発行する。ttl<=0ならデフォルトを使う
func (i *TokenIssuer) IssueAccessToken(userID string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = i.accessTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(i.method, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// アクセストークンを検証してsub（ユーザーID）を返す。
// 署名不一致・期限切れ・アルゴリズム違いはすべてErrInvalidAccessToken
func (i *TokenIssuer) ParseAccessToken(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != i.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidAccessToken
	}

	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidAccessToken
	}

	return sub, nil
}

// リフレッシュトークン値を生成する。32バイト=256ビットの乱数
func (i *TokenIssuer) NewRefreshTokenValue() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
