package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"locallibrary/internal/http-api/dto"
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authRouter(authService *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthHandler(authService, 15*time.Minute, discardLogger()).RegisterRoutes(r.Group("/api"))
	return r
}

func TestRegister_Success(t *testing.T) {
	authService := new(MockAuthService)
	r := authRouter(authService)

	user := &models.User{ID: "user-123", Username: "testuser", Email: "test@example.com"}
	authService.On("Register", mock.Anything, "testuser", "password123", "test@example.com").Return(user, nil)

	w := perform(r, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "testuser",
		Password: "password123",
		Email:    "test@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "user-123", response["user_id"])
	assert.Equal(t, "testuser", response["username"])
	authService.AssertExpectations(t)
}

func TestRegister_Conflict(t *testing.T) {
	authService := new(MockAuthService)
	r := authRouter(authService)

	authService.On("Register", mock.Anything, "testuser", "password123", "test@example.com").
		Return(nil, service.ErrEmailInUse)

	w := perform(r, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "testuser",
		Password: "password123",
		Email:    "test@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_InvalidPayload(t *testing.T) {
	authService := new(MockAuthService)
	r := authRouter(authService)

	w := perform(r, http.MethodPost, "/api/auth/register", "", gin.H{"username": "ab", "email": "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		authService := new(MockAuthService)
		r := authRouter(authService)

		user := &models.User{ID: "user-123", Username: "testuser"}
		authService.On("Login", mock.Anything, "testuser", "password123").Return("access", "refresh", user, nil)

		w := perform(r, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "testuser", Password: "password123"})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp.AccessToken)
		assert.Equal(t, int64(900), resp.ExpiresIn)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		authService := new(MockAuthService)
		r := authRouter(authService)

		authService.On("Login", mock.Anything, "testuser", "wrong").Return("", "", nil, service.ErrInvalidCredentials)

		w := perform(r, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "testuser", Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRefreshToken(t *testing.T) {
	authService := new(MockAuthService)
	r := authRouter(authService)

	authService.On("RefreshAccessToken", mock.Anything, "good").Return("new-access", "new-refresh", nil)
	authService.On("RefreshAccessToken", mock.Anything, "stale").Return("", "", service.ErrExpiredToken)

	w := perform(r, http.MethodPost, "/api/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: "good"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.RefreshResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "new-refresh", resp.RefreshToken)

	w = perform(r, http.MethodPost, "/api/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: "stale"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRevokeToken_AlwaysOK(t *testing.T) {
	authService := new(MockAuthService)
	r := authRouter(authService)

	authService.On("RevokeToken", mock.Anything, "unknown").Return(errors.New("invalid token"))

	w := perform(r, http.MethodPost, "/api/auth/revoke", "", dto.RevokeTokenRequest{RefreshToken: "unknown"})
	assert.Equal(t, http.StatusOK, w.Code)
	authService.AssertExpectations(t)
}
