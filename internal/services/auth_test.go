package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "created-1"
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	saltErr    error
	compareErr error
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) {
	if f.saltErr != nil {
		return "", f.saltErr
	}
	return "salt-1", nil
}

func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if f.compareErr != nil {
		return f.compareErr
	}
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users, &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, time.Second)

		user, err := svc.SignUp(ctx, "  Jo@Example.COM ", "secret123", " Jo ")
		require.NoError(t, err)
		assert.Equal(t, "created-1", user.ID)
		assert.Equal(t, "jo@example.com", user.Email)
		assert.Equal(t, "Jo", user.Name)
		assert.Equal(t, "hash-salt-1-secret123", user.PasswordHash)
		assert.Equal(t, "salt-1", user.Salt)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := newFakeUserRepo()
		users.byEmail["jo@example.com"] = &domain.User{ID: "user-1", Email: "jo@example.com"}
		svc := NewAuthService(users, &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, time.Second)

		_, err := svc.SignUp(ctx, "jo@example.com", "secret123", "Jo")
		require.True(t, errors.Is(err, domain.ErrDuplicateEmail))
	})

	t.Run("salt generation error", func(t *testing.T) {
		users := newFakeUserRepo()
		hasher := &fakePasswordHasher{saltErr: errors.New("entropy exhausted")}
		svc := NewAuthService(users, hasher, &fakeTokenIssuer{}, time.Hour, time.Second)

		_, err := svc.SignUp(ctx, "jo@example.com", "secret123", "Jo")
		require.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	seed := func() *fakeUserRepo {
		users := newFakeUserRepo()
		users.byEmail["jo@example.com"] = &domain.User{
			ID:           "user-1",
			Email:        "jo@example.com",
			PasswordHash: "hash-salt-1-secret123",
			Salt:         "salt-1",
		}
		return users
	}

	t.Run("success", func(t *testing.T) {
		svc := NewAuthService(seed(), &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, time.Second)

		token, user, err := svc.Login(ctx, "Jo@Example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "token-user-1", token)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewAuthService(seed(), &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, time.Second)

		_, _, err := svc.Login(ctx, "jo@example.com", "nope")
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, time.Second)

		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("issuer failure", func(t *testing.T) {
		svc := NewAuthService(seed(), &fakePasswordHasher{}, &fakeTokenIssuer{err: errors.New("no key")}, time.Hour, time.Second)

		_, _, err := svc.Login(ctx, "jo@example.com", "secret123")
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrInvalidCredentials))
	})
}
