package validator

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"unicode"

	"flashcards/internal/usecase"
)

// 英数字とアンダースコア・ハイフンのみ
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// 登録・ログイン入力の検証。エラーはusecase.ErrValidationをラップする
type AuthValidator struct{}

func NewAuthValidator() *AuthValidator {
	return &AuthValidator{}
}

func (v *AuthValidator) ValidateRegister(ctx context.Context, email string, username string, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email format", usecase.ErrValidation)
	}

	if username == "" || len(username) > 50 || !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username must be alphanumeric with optional underscores and hyphens", usecase.ErrValidation)
	}

	return validatePassword(password)
}

func (v *AuthValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", usecase.ErrValidation)
	}
	return nil
}

// 最低8文字・大文字・小文字・数字を各1つ以上
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", usecase.ErrValidation)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", usecase.ErrValidation)
	}
	if !hasLower {
		return fmt.Errorf("%w: password must contain at least one lowercase letter", usecase.ErrValidation)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one number", usecase.ErrValidation)
	}

	return nil
}
