package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase はAuthUsecaseインターフェースのモック実装です。
type mockAuthUsecase struct {
	LoginFunc          func(ctx context.Context, email, password string, remember bool) (*usecase.LoginResult, error)
	LoginWithTokenFunc func(ctx context.Context, token string) (*usecase.LoginResult, error)
	LogoutFunc         func(ctx context.Context, userID uint, rememberToken string) error
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ChangePasswordFunc func(ctx context.Context, email, code, password string) error
	ProfileFunc        func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string, remember bool) (*usecase.LoginResult, error) {
	return m.LoginFunc(ctx, email, password, remember)
}

func (m *mockAuthUsecase) LoginWithToken(ctx context.Context, token string) (*usecase.LoginResult, error) {
	return m.LoginWithTokenFunc(ctx, token)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uint, rememberToken string) error {
	return m.LogoutFunc(ctx, userID, rememberToken)
}

func (m *mockAuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	return m.ForgotPasswordFunc(ctx, email)
}

func (m *mockAuthUsecase) ChangePassword(ctx context.Context, email, code, password string) error {
	return m.ChangePasswordFunc(ctx, email, code, password)
}

func (m *mockAuthUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return m.ProfileFunc(ctx, userID)
}

// postJSON runs the handler against a JSON body and returns the recorder.
func postJSON(t *testing.T, h gin.HandlerFunc, body any, userID uint) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		c.Set(jwtmw.ContextUserID, userID)
	}

	h(c)
	return w
}

// decodeEnvelope parses the response body into a generic envelope map.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("password login success", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, remember bool) (*usecase.LoginResult, error) {
				assert.Equal(t, "test@example.com", email)
				assert.Equal(t, "password123", password)
				assert.False(t, remember)
				return &usecase.LoginResult{
					User:  &entity.User{ID: 1, Email: email},
					Token: "session-token",
				}, nil
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Login, gin.H{"email": "test@example.com", "password": "password123"}, 0)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, true, envelope["success"])
		data := envelope["data"].(map[string]any)
		assert.Equal(t, "session-token", data["token"])
		assert.NotContains(t, data, "rememberToken", "remember token leaked without opt-in")
	})

	t.Run("remember opt-in returns remember token", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, remember bool) (*usecase.LoginResult, error) {
				assert.True(t, remember)
				return &usecase.LoginResult{
					User:          &entity.User{ID: 1, Email: email},
					Token:         "session-token",
					RememberToken: "remember-abc",
				}, nil
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Login, gin.H{
			"email":    "test@example.com",
			"password": "password123",
			"remember": true,
		}, 0)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeEnvelope(t, w)["data"].(map[string]any)
		assert.Equal(t, "remember-abc", data["rememberToken"])
	})

	t.Run("remember token branch skips password validation", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, remember bool) (*usecase.LoginResult, error) {
				t.Error("password login should not run for a token login")
				return nil, usecase.ErrInvalidCredentials
			},
			LoginWithTokenFunc: func(ctx context.Context, token string) (*usecase.LoginResult, error) {
				assert.Equal(t, "remember-abc", token)
				return &usecase.LoginResult{
					User:  &entity.User{ID: 1},
					Token: "session-token",
				}, nil
			},
		}
		h := NewAuthHandler(mock)

		// No email or password: the token alone is the credential.
		w := postJSON(t, h.Login, gin.H{"rememberToken": "remember-abc"}, 0)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, remember bool) (*usecase.LoginResult, error) {
				return nil, usecase.ErrInvalidCredentials
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Login, gin.H{"email": "test@example.com", "password": "wrong"}, 0)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "invalid credentials", envelope["error"])
	})

	t.Run("missing fields return field-level errors", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := postJSON(t, h.Login, gin.H{"email": "not-an-email"}, 0)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, false, envelope["success"])
		fields := envelope["error"].(map[string]any)
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("usecase failure returns 500", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, remember bool) (*usecase.LoginResult, error) {
				return nil, errors.New("db down")
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Login, gin.H{"email": "test@example.com", "password": "password123"}, 0)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes the presented remember token", func(t *testing.T) {
		var gotToken string
		mock := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, userID uint, rememberToken string) error {
				assert.Equal(t, uint(1), userID)
				gotToken = rememberToken
				return nil
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Logout, gin.H{"rememberToken": "remember-abc"}, 1)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "remember-abc", gotToken)
	})

	t.Run("no body still succeeds", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, userID uint, rememberToken string) error {
				assert.Empty(t, rememberToken)
				return nil
			},
		}
		h := NewAuthHandler(mock)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		c.Set(jwtmw.ContextUserID, uint(1))

		h.Logout(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := postJSON(t, h.Logout, gin.H{}, 0)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	t.Run("valid email returns 200", func(t *testing.T) {
		mock := &mockAuthUsecase{
			ForgotPasswordFunc: func(ctx context.Context, email string) error {
				assert.Equal(t, "test@example.com", email)
				return nil
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.ForgotPassword, gin.H{"email": "test@example.com"}, 0)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeEnvelope(t, w)["success"])
	})

	t.Run("invalid email returns field errors", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := postJSON(t, h.ForgotPassword, gin.H{"email": "nope"}, 0)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	validBody := gin.H{
		"email":    "test@example.com",
		"code":     "Abc123",
		"password": "new-password-1",
	}

	t.Run("success", func(t *testing.T) {
		mock := &mockAuthUsecase{
			ChangePasswordFunc: func(ctx context.Context, email, code, password string) error {
				assert.Equal(t, "Abc123", code)
				return nil
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.ChangePassword, validBody, 0)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong code or unknown email returns 404", func(t *testing.T) {
		mock := &mockAuthUsecase{
			ChangePasswordFunc: func(ctx context.Context, email, code, password string) error {
				return usecase.ErrUserNotFound
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.ChangePassword, validBody, 0)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "errors.user.not_found", decodeEnvelope(t, w)["error"])
	})

	t.Run("expired code returns 400", func(t *testing.T) {
		mock := &mockAuthUsecase{
			ChangePasswordFunc: func(ctx context.Context, email, code, password string) error {
				return usecase.ErrResetCodeExpired
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.ChangePassword, validBody, 0)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "errors.code.expired", decodeEnvelope(t, w)["error"])
	})

	t.Run("short code fails validation", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := postJSON(t, h.ChangePassword, gin.H{
			"email":    "test@example.com",
			"code":     "abc",
			"password": "new-password-1",
		}, 0)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fields := decodeEnvelope(t, w)["error"].(map[string]any)
		assert.Contains(t, fields, "code")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns the caller profile", func(t *testing.T) {
		mock := &mockAuthUsecase{
			ProfileFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				assert.Equal(t, uint(7), userID)
				return &entity.User{ID: 7, Name: "Test User", Email: "test@example.com"}, nil
			},
		}
		h := NewAuthHandler(mock)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/user", nil)
		c.Set(jwtmw.ContextUserID, uint(7))

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeEnvelope(t, w)["data"].(map[string]any)
		assert.Equal(t, "test@example.com", data["email"])
		assert.NotContains(t, data, "password", "password hash leaked in profile")
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/user", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
