package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoevents/internal/delivery/http/helpers"
	"autoevents/internal/domain"
	"autoevents/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	signUpErr error
	loginErr  error
	user      *domain.User
	token     string

	lastEmail    string
	lastPassword string
	lastName     string
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	f.lastEmail = email
	f.lastPassword = password
	f.lastName = name
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.user, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.lastEmail = email
	f.lastPassword = password
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.token, f.user, nil
}

func TestAuthController_SignUp(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"email":"jo@example.com","password":"secret123","name":"Jo"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			body:           `{"email":"nope","password":"secret123","name":"Jo"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid email format",
		},
		{
			name:           "short password",
			body:           `{"email":"jo@example.com","password":"short","name":"Jo"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "at least 8 characters",
		},
		{
			name:           "missing name",
			body:           `{"email":"jo@example.com","password":"secret123"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "duplicate email",
			body:           `{"email":"jo@example.com","password":"secret123","name":"Jo"}`,
			fakeErr:        domain.ErrDuplicateEmail,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "email already registered",
		},
		{
			name:           "service error",
			body:           `{"email":"jo@example.com","password":"secret123","name":"Jo"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{
				signUpErr: tt.fakeErr,
				user:      &domain.User{ID: "user-1", Email: "jo@example.com", Name: "Jo"},
			}
			ctrl := NewAuthController(testLogger, fake, "test")
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.SignUp(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var user domain.User
				require.NoError(t, json.Unmarshal(dataBytes, &user))
				assert.Equal(t, "user-1", user.ID)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"email":"jo@example.com","password":"secret123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing password",
			body:           `{"email":"jo@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "password is required",
		},
		{
			name:           "wrong credentials",
			body:           `{"email":"jo@example.com","password":"wrong1234"}`,
			fakeErr:        services.ErrInvalidCredentials,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "invalid email or password",
		},
		{
			name:           "service error",
			body:           `{"email":"jo@example.com","password":"secret123"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{
				loginErr: tt.fakeErr,
				token:    "jwt-token",
				user:     &domain.User{ID: "user-1", Email: "jo@example.com"},
			}
			ctrl := NewAuthController(testLogger, fake, "test")
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var envelope struct {
					Data  LoginResponse     `json:"data"`
					Error *helpers.APIError `json:"error"`
				}
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				assert.Equal(t, "jwt-token", envelope.Data.Token)
				assert.Equal(t, "Bearer", envelope.Data.TokenType)
				require.NotNil(t, envelope.Data.User)
				return
			}
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
		})
	}
}
