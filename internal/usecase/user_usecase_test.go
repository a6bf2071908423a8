package usecase

import (
	"context"
	"testing"

	"flashcards/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestUserUsecase_UpdateSelf(t *testing.T) {
	ctx := context.Background()

	t.Run("email更新", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := NewUserUsecase(users)

		users.On("FindByID", ctx, "user-1").
			Return(&model.User{ID: "user-1", Email: "old@example.com", IsActive: true}, nil)
		users.On("Update", ctx, mock.AnythingOfType("*model.User")).Return(nil)

		updated, err := uc.UpdateSelf(ctx, "user-1", UserUpdateRequest{Email: ptr("new@example.com")})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
	})

	t.Run("不正なemailは保存前に弾く", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := NewUserUsecase(users)

		users.On("FindByID", ctx, "user-1").
			Return(&model.User{ID: "user-1", Email: "old@example.com", IsActive: true}, nil)

		_, err := uc.UpdateSelf(ctx, "user-1", UserUpdateRequest{Email: ptr("not-an-email")})
		assert.ErrorIs(t, err, ErrValidation)

		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("本人はis_activeを変更できない", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := NewUserUsecase(users)

		users.On("FindByID", ctx, "user-1").
			Return(&model.User{ID: "user-1", IsActive: true}, nil)
		users.On("Update", ctx, mock.AnythingOfType("*model.User")).Return(nil)

		updated, err := uc.UpdateSelf(ctx, "user-1", UserUpdateRequest{IsActive: ptr(false)})
		require.NoError(t, err)
		assert.True(t, updated.IsActive)
	})
}

func TestUserUsecase_UpdateByAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("is_activeの切り替え", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := NewUserUsecase(users)

		users.On("FindByID", ctx, "user-1").
			Return(&model.User{ID: "user-1", IsActive: true}, nil)
		users.On("Update", ctx, mock.AnythingOfType("*model.User")).Return(nil)

		updated, err := uc.UpdateByAdmin(ctx, "user-1", UserUpdateRequest{IsActive: ptr(false)})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("不正なemailは保存前に弾く", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := NewUserUsecase(users)

		users.On("FindByID", ctx, "user-1").
			Return(&model.User{ID: "user-1", Email: "old@example.com", IsActive: true}, nil)

		_, err := uc.UpdateByAdmin(ctx, "user-1", UserUpdateRequest{Email: ptr("broken@")})
		assert.ErrorIs(t, err, ErrValidation)

		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
