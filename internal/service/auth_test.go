package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/saywin/airport-api-service/internal/domain"
	"github.com/saywin/airport-api-service/internal/repository"
	"github.com/saywin/airport-api-service/internal/service"
)

type fakeUserRepository struct {
	users map[string]domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]domain.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = uint(len(f.users) + 1)
	f.users[user.Email] = user

	return user, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and never grants staff", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := service.NewAuthService(repo)

		created, err := svc.Signup(ctx, domain.User{
			Email:    "user@example.com",
			Password: "password1",
			IsStaff:  true, // must be ignored
		})

		require.NoError(t, err)
		assert.False(t, created.IsStaff)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password1")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := service.NewAuthService(repo)

		_, err := svc.Signup(ctx, domain.User{Email: "user@example.com", Password: "password1"})
		require.NoError(t, err)

		_, err = svc.Signup(ctx, domain.User{Email: "user@example.com", Password: "password2"})
		assert.ErrorIs(t, err, service.ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUserRepository()
	svc := service.NewAuthService(repo)

	_, err := svc.Signup(ctx, domain.User{Email: "user@example.com", Password: "password1"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "user@example.com", "password1")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "user@example.com", "nope12345")

		assert.ErrorIs(t, err, service.ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "password1")

		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
