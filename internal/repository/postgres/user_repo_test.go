package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"autoevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		user        *domain.User
		mock        func(mock sqlmock.Sqlmock)
		wantID      string
		wantErr     bool
		isDuplicate bool
	}{
		{
			name: "success",
			user: &domain.User{
				Email:        "jo@example.com",
				Name:         "Jo Organizer",
				PasswordHash: "hash",
				Salt:         "salt",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users \(email, name, password_hash, salt, created_at, updated_at\)`).
					WithArgs("jo@example.com", "Jo Organizer", "hash", "salt", now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
			},
			wantID: "user-uuid-1",
		},
		{
			name: "duplicate email",
			user: &domain.User{
				Email:        "jo@example.com",
				Name:         "Jo Again",
				PasswordHash: "hash",
				Salt:         "salt",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr:     true,
			isDuplicate: true,
		},
		{
			name: "db error",
			user: &domain.User{
				Email: "jo@example.com",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.Create(ctx, tt.user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isDuplicate {
					require.True(t, errors.Is(err, domain.ErrDuplicateEmail))
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.user.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "name", "password_hash", "salt", "created_at", "updated_at"}

	tests := []struct {
		name       string
		email      string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.User
		wantErr    bool
		isNotFound bool
	}{
		{
			name:  "success",
			email: "jo@example.com",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, name, password_hash, salt, created_at, updated_at\s+FROM users\s+WHERE email = \$1`).
					WithArgs("jo@example.com").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("user-1", "jo@example.com", "Jo", "hash", "salt", now, now))
			},
			want: &domain.User{
				ID: "user-1", Email: "jo@example.com", Name: "Jo",
				PasswordHash: "hash", Salt: "salt", CreatedAt: now, UpdatedAt: now,
			},
		},
		{
			name:  "not found",
			email: "nobody@example.com",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, name, password_hash, salt`).
					WithArgs("nobody@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.GetByEmail(ctx, tt.email)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrUserNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "name", "password_hash", "salt", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, name, password_hash, salt, created_at, updated_at\s+FROM users\s+WHERE id = \$1`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("user-1", "jo@example.com", "Jo", "hash", "salt", now, now))

		repo := NewUserRepository(db)
		got, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, "user-1", got.ID)
		require.Equal(t, "jo@example.com", got.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, name, password_hash, salt`).
			WithArgs("user-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		got, err := repo.GetByID(ctx, "user-missing")
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrUserNotFound))
		require.Nil(t, got)
	})
}
