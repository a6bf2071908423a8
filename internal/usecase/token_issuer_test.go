package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenIssuer_RejectsMisconfiguration(t *testing.T) {
	// シークレット未設定
	_, err := NewTokenIssuer("", "HS256", 15*time.Minute)
	assert.Error(t, err)

	// 未対応アルゴリズム
	_, err = NewTokenIssuer("secret", "RS256", 15*time.Minute)
	assert.Error(t, err)

	_, err = NewTokenIssuer("secret", "none", 15*time.Minute)
	assert.Error(t, err)

	// TTLゼロ
	_, err = NewTokenIssuer("secret", "HS256", 0)
	assert.Error(t, err)
}

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)

	signed, expiresAt, err := issuer.IssueAccessToken("user-1", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	sub, err := issuer.ParseAccessToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestTokenIssuer_ParseRejectsWrongSecret(t *testing.T) {
	issuerA, err := NewTokenIssuer("secret-a", "HS256", 15*time.Minute)
	require.NoError(t, err)
	issuerB, err := NewTokenIssuer("secret-b", "HS256", 15*time.Minute)
	require.NoError(t, err)

	signed, _, err := issuerA.IssueAccessToken("user-1", 0)
	require.NoError(t, err)

	_, err = issuerB.ParseAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestTokenIssuer_ParseRejectsExpired(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)

	// 期限切れのトークンを同じシークレットで直接作る
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "user-1",
		"iat": now.Add(-2 * time.Minute).Unix(),
		"exp": now.Add(-1 * time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.ParseAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestTokenIssuer_ParseRejectsGarbage(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)

	_, err = issuer.ParseAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidAccessToken)

	_, err = issuer.ParseAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestTokenIssuer_NewRefreshTokenValue(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)

	// 32バイト→base64url 43文字
	v1, err := issuer.NewRefreshTokenValue()
	require.NoError(t, err)
	assert.Len(t, v1, 43)

	// 重複しないこと（衝突確率は無視できる前提の確認）
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		v, err := issuer.NewRefreshTokenValue()
		require.NoError(t, err)
		_, dup := seen[v]
		require.False(t, dup)
		seen[v] = struct{}{}
	}
}
