// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "shop_backend/internal/feature/auth/domain/entity"

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// rememberTokenが提示された場合はトークンログイン、それ以外は
// メールアドレス＋パスワードのログインとして扱われます。
type LoginReq struct {
	Email         string `json:"email" binding:"required_without=RememberToken,omitempty,email"`
	Password      string `json:"password" binding:"required_without=RememberToken"`
	RememberToken string `json:"rememberToken"`

	// Remember はリメンバートークンの発行を希望するフラグです。
	Remember bool `json:"remember"`
}

// LoginRes はログイン成功時のレスポンスボディを表します。
type LoginRes struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`

	// RememberToken はrememberフラグ付きログイン時のみ設定されます。
	RememberToken string `json:"rememberToken,omitempty"`
}
