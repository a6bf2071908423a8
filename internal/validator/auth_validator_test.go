package validator

import (
	"context"
	"testing"

	"flashcards/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAuthValidator_ValidateRegister(t *testing.T) {
	ctx := context.Background()
	v := NewAuthValidator()

	t.Run("正常系", func(t *testing.T) {
		err := v.ValidateRegister(ctx, "alice@example.com", "alice_01", "Password123")
		assert.NoError(t, err)
	})

	tests := []struct {
		name     string
		email    string
		username string
		password string
	}{
		{"email形式不正", "not-an-email", "alice", "Password123"},
		{"email空", "", "alice", "Password123"},
		{"username空", "alice@example.com", "", "Password123"},
		{"username記号入り", "alice@example.com", "alice!", "Password123"},
		{"username空白入り", "alice@example.com", "a b", "Password123"},
		{"password短すぎ", "alice@example.com", "alice", "Pw1"},
		{"password大文字なし", "alice@example.com", "alice", "password123"},
		{"password小文字なし", "alice@example.com", "alice", "PASSWORD123"},
		{"password数字なし", "alice@example.com", "alice", "PasswordOnly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegister(ctx, tt.email, tt.username, tt.password)
			assert.ErrorIs(t, err, usecase.ErrValidation)
		})
	}
}

func TestAuthValidator_ValidateLogin(t *testing.T) {
	ctx := context.Background()
	v := NewAuthValidator()

	assert.NoError(t, v.ValidateLogin(ctx, "alice", "Password123"))
	assert.ErrorIs(t, v.ValidateLogin(ctx, "", "Password123"), usecase.ErrValidation)
	assert.ErrorIs(t, v.ValidateLogin(ctx, "alice", ""), usecase.ErrValidation)
}
