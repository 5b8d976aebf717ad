package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskdeck/internal/cache"
	"taskdeck/internal/errors"
	"taskdeck/internal/model"
)

// A nil cache client behaves like a permanent cache miss, so the service can
// be exercised without redis.
var noCache *cache.Client

func strPtr(s string) *string { return &s }

func TestUserService_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Name:  "Alice",
			Email: "alice@example.com",
		}, nil)

		service := NewUserService(mockRepo, noCache)
		user, err := service.GetUser(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("missing user maps to domain error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, noCache)
		_, err := service.GetUser(context.Background(), userID)
		assert.Equal(t, errors.ErrUserNotFound, err)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("original-pass"), 10)

	newUser := func() *model.User {
		return &model.User{
			ID:           userID,
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: string(hashedPassword),
			Avatar:       model.DefaultAvatar,
		}
	}

	t.Run("updates only supplied fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(newUser(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo, noCache)
		updated, err := service.UpdateProfile(context.Background(), userID, ProfileUpdate{
			Name: strPtr("Alice B"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Alice B", updated.Name)
		assert.Equal(t, "alice@example.com", updated.Email)
		assert.Equal(t, string(hashedPassword), updated.PasswordHash)
	})

	t.Run("password omitted keeps existing hash", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(newUser(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo, noCache)
		updated, err := service.UpdateProfile(context.Background(), userID, ProfileUpdate{
			Email:  strPtr("alice@new.example.com"),
			Avatar: strPtr("https://example.com/alice.png"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice@new.example.com", updated.Email)
		assert.Equal(t, "https://example.com/alice.png", updated.Avatar)
		// Not re-hashed: the exact stored hash survives unrelated updates.
		assert.Equal(t, string(hashedPassword), updated.PasswordHash)
	})

	t.Run("new password is hashed before storage", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(newUser(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo, noCache)
		updated, err := service.UpdateProfile(context.Background(), userID, ProfileUpdate{
			Password: strPtr("new-password"),
		})
		assert.NoError(t, err)
		assert.NotEqual(t, "new-password", updated.PasswordHash)
		assert.NotEqual(t, string(hashedPassword), updated.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password")))
	})

	t.Run("rejects supplied-but-empty fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, noCache)

		_, err := service.UpdateProfile(context.Background(), userID, ProfileUpdate{Name: strPtr("")})
		assert.Equal(t, errors.ErrEmptyName, err)

		_, err = service.UpdateProfile(context.Background(), userID, ProfileUpdate{Email: strPtr("")})
		assert.Equal(t, errors.ErrEmptyEmail, err)

		_, err = service.UpdateProfile(context.Background(), userID, ProfileUpdate{Password: strPtr("")})
		assert.Equal(t, errors.ErrEmptyPassword, err)

		// Nothing reached the repository.
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing user maps to domain error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, noCache)
		_, err := service.UpdateProfile(context.Background(), userID, ProfileUpdate{Name: strPtr("x")})
		assert.Equal(t, errors.ErrUserNotFound, err)
	})
}
