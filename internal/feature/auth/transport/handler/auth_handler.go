// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/response"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はメールアドレスとパスワードでユーザーを認証します。
	Login(ctx context.Context, email, password string, remember bool) (*usecase.LoginResult, error)
	// LoginWithToken はリメンバートークンでユーザーを認証します。
	LoginWithToken(ctx context.Context, token string) (*usecase.LoginResult, error)
	// Logout は提示されたリメンバートークンを呼び出し元のスコープで失効させます。
	Logout(ctx context.Context, userID uint, rememberToken string) error
	// ForgotPassword はリセットコードを発行・通知します。
	ForgotPassword(ctx context.Context, email string) error
	// ChangePassword はリセットコードを消費してパスワードを変更します。
	ChangePassword(ctx context.Context, email, code, password string) error
	// Profile は検証済みの呼び出し元IDからユーザーを取得します。
	Profile(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login は/loginエンドポイントを処理します。
// リクエストにrememberTokenがあればトークンログイン、なければ
// メールアドレス＋パスワードのログインとして処理します。
// - バリデーションエラー時はフィールド単位のメッセージ付きで400を返却
// - 認証失敗時は401を返却（メールアドレスの存在有無は漏らさない）
// - 成功時はユーザー・セッショントークン（・リメンバートークン）付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	var (
		result *usecase.LoginResult
		err    error
	)
	if req.RememberToken != "" {
		result, err = h.auth.LoginWithToken(c.Request.Context(), req.RememberToken)
	} else {
		result, err = h.auth.Login(c.Request.Context(), req.Email, req.Password, req.Remember)
	}

	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// 認証失敗の内訳（未知のメール・パスワード違い・無効トークン）は公開しない
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("user login successful", "user_id", result.User.ID, "remote_addr", c.ClientIP())
	response.OK(c, dto.LoginRes{
		User:          result.User,
		Token:         result.Token,
		RememberToken: result.RememberToken,
	})
}

// Logout は/logoutエンドポイントを処理します。
// セッショントークンは上流のミドルウェアで検証済みです。
// リメンバートークンが提示されていれば呼び出し元のスコープで失効させます。
// トークンなし・未知のトークンでも成功を返します（冪等）。
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	// ボディは任意。読めなければトークンなしとして扱う
	var req dto.LogoutReq
	_ = c.ShouldBindJSON(&req)

	if err := h.auth.Logout(c.Request.Context(), userID, req.RememberToken); err != nil {
		slog.Error("logout error", "error", err, "user_id", userID)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("user logout", "user_id", userID)
	response.OK(c, nil)
}

// ForgotPassword は/forgot-passwordエンドポイントを処理します。
// 未知のメールアドレスでも成功を返します（ユーザー列挙攻撃の防止）。
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("forgot-password validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		slog.Error("forgot-password error", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, nil)
}

// ChangePassword は/change-passwordエンドポイントを処理します。
// - メールアドレスとコードが一致しない場合は404（内訳は公開しない）
// - コード発行から1時間超で400
// - 成功時はコードをクリアして200
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("change-password validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), req.Email, req.Code, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			// 「コード違い」と「未知のメールアドレス」は同一のレスポンス
			response.Error(c, http.StatusNotFound, "errors.user.not_found")
		case errors.Is(err, usecase.ErrResetCodeExpired):
			response.Error(c, http.StatusBadRequest, "errors.code.expired")
		default:
			slog.Error("change-password error", "error", err, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	slog.Info("password changed via reset code", "email", req.Email)
	response.OK(c, nil)
}

// Me は/userエンドポイントを処理し、呼び出し元のプロフィールを返します。
// 呼び出し元IDはミドルウェアが検証したものを明示的に受け取ります。
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "errors.user.not_found")
			return
		}
		slog.Error("profile error", "error", err, "user_id", userID)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, user)
}
