// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shop_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// resetCodeLength はパスワードリセットコードの文字数を定義します。
	resetCodeLength = 6
)

// resetCodeCharset はリセットコードに使用する文字集合です。
const resetCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmailAndResetCode はメールアドレスとリセットコードの両方が一致する
	// ユーザーを取得します。どちらか一方でも一致しない場合、ErrUserNotFoundを返します。
	// 「コード違い」と「未知のメールアドレス」を区別させないための単一クエリです。
	FindByEmailAndResetCode(ctx context.Context, email, code string) (*entity.User, error)

	// Update は既存ユーザーの変更を永続化します。
	Update(ctx context.Context, user *entity.User) error
}

// TokenGenerator はセッショントークン（JWT）発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uint) (string, error)
}

// ResetCodeMailer はリセットコードの外部通知を抽象化します。
type ResetCodeMailer interface {
	// SendForgotPasswordCode はuser.ForgotCodeをユーザーのメールアドレスへ送信します。
	SendForgotPasswordCode(ctx context.Context, user *entity.User) error
}

// LoginResult はログイン成功時に呼び出し側へ返す一式です。
type LoginResult struct {
	User *entity.User

	// Token は新規発行されたセッショントークンです。
	Token string

	// RememberToken はremberフラグ付きログイン時のみ設定されます。
	RememberToken string
}

// authUsecase は認証・クレデンシャルライフサイクルのビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens RememberTokenRepository
	jwt    TokenGenerator
	mailer ResetCodeMailer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens RememberTokenRepository,
	jwt TokenGenerator, mailer ResetCodeMailer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		jwt:    jwt,
		mailer: mailer,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// newResetCode はcrypto/randで6文字の英数字リセットコードを生成します。
func newResetCode() (string, error) {
	buf := make([]byte, resetCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	for i, b := range buf {
		buf[i] = resetCodeCharset[int(b)%len(resetCodeCharset)]
	}
	return string(buf), nil
}

// Login はメールアドレスとパスワードでユーザーを認証し、成功時にセッショントークンを返します。
// rememberがtrueの場合、リメンバートークンも併せて発行します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string, remember bool) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	// （メールアドレスの存在有無を漏らさない）
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenErr := u.jwt.GenerateToken(user.ID)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	result := &LoginResult{User: user, Token: token}

	if remember {
		rememberToken, err := u.tokens.Generate(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate remember token: %w", err)
		}
		result.RememberToken = rememberToken
	}

	return result, nil
}

// LoginWithToken はリメンバートークンを消費してユーザーを認証します。
// パスワード検証は行いません。トークン自体がクレデンシャルです。
// 再利用成功時は有効期限を延長し、新しいセッショントークンを発行します。
func (u *authUsecase) LoginWithToken(ctx context.Context, token string) (*LoginResult, error) {
	userID, err := u.tokens.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvalidRememberToken) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		// トークンが孤児化している（所有ユーザーが存在しない）場合も
		// 呼び出し側には汎用エラーのみを返す
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 延長はベストエフォート。失敗してもトークンは元の期限で失効するだけで
	// 認証自体は成立している
	if err := u.tokens.ExtendValidity(ctx, token); err != nil {
		slog.Warn("failed to extend remember token validity", "error", err, "user_id", user.ID)
	}

	jwtToken, err := u.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{User: user, Token: jwtToken}, nil
}

// Logout は提示されたリメンバートークンを呼び出し元ユーザーのスコープで失効させます。
// トークンが提示されない場合は何もしません（冪等）。
func (u *authUsecase) Logout(ctx context.Context, userID uint, rememberToken string) error {
	if rememberToken == "" {
		return nil
	}
	return u.tokens.Revoke(ctx, rememberToken, userID)
}

// ForgotPassword は6文字のリセットコードを発行・保存し、メールで通知します。
// 未知のメールアドレスはサイレントに成功扱いとします（ユーザー列挙攻撃の防止）。
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// 存在しないメールアドレスにも成功を返し、列挙攻撃を防ぐ
			slog.Info("password reset requested for unknown email", "email", email)
			return nil
		}
		return err
	}

	code, err := newResetCode()
	if err != nil {
		return err
	}

	now := time.Now()
	user.ForgotCode = code
	user.ForgotGeneratedAt = &now

	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	// メール送信の失敗でリクエスト自体は失敗させない
	// コードは保存済みなので再送依頼で回復できる
	if err := u.mailer.SendForgotPasswordCode(ctx, user); err != nil {
		slog.Warn("failed to send password reset code", "error", err, "user_id", user.ID)
	}

	return nil
}

// ChangePassword はリセットコードを消費してパスワードを変更します。
// メールアドレスとコードの両方が一致しない場合はErrUserNotFoundを返します
// （「コード違い」と「未知のメールアドレス」は区別されません）。
// コード発行から1時間を超えている場合はErrResetCodeExpiredを返します。
func (u *authUsecase) ChangePassword(ctx context.Context, email, code, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	user, err := u.users.FindByEmailAndResetCode(ctx, email, code)
	if err != nil {
		return err
	}

	if user.ResetCodeExpired(time.Now()) {
		return ErrResetCodeExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// コードはワンタイム。消費と同時にクリアする
	user.Password = string(hashed)
	user.ForgotCode = ""
	user.ForgotGeneratedAt = nil

	return u.users.Update(ctx, user)
}

// Profile は検証済みの呼び出し元IDからユーザープロフィールを取得します。
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
