package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"flashcards/internal/domain/model"
	"flashcards/internal/repository"
)

// プロフィール更新。nilのフィールドは変更しない
type UserUpdateRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
}

type UserUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// 一覧は管理者専用。権限判定は呼び出し側
func (u *UserUsecase) List(ctx context.Context, offset int, limit int) ([]model.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return u.users.List(ctx, offset, limit)
}

// UpdateSelfは本人によるプロフィール更新。is_activeは触らせない
func (u *UserUsecase) UpdateSelf(ctx context.Context, userID string, req UserUpdateRequest) (*model.User, error) {
	user, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	if err := u.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// UpdateByAdminは管理者による更新。is_activeの切り替えもここから。
// 停止されたユーザーのリフレッシュトークンは次のvalidate/rotateで無効になる。
// トークン側の状態を書き換える必要はない
func (u *UserUsecase) UpdateByAdmin(ctx context.Context, userID string, req UserUpdateRequest) (*model.User, error) {
	user, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := u.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return nil
}
