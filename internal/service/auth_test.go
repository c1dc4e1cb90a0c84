package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stagedoor/theatre-api/internal/domain"
	"github.com/stagedoor/theatre-api/internal/repository"
)

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	user.ID = uint(len(f.users) + 1)
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "alice@example.com",
		Password: "secret-pass1",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	stored := repo.users["alice@example.com"]
	assert.NotEqual(t, "secret-pass1", stored.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-pass1")))

	_, err = svc.Signup(context.Background(), domain.User{
		Email:    "alice@example.com",
		Password: "another-pass1",
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{
		Email:    "bob@example.com",
		Password: "secret-pass1",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "bob@example.com", "secret-pass1")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)

	_, err = svc.Login(context.Background(), "bob@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret-pass1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
