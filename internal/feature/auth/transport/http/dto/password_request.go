package dto

// ForgotPasswordReq は/forgot-passwordエンドポイントのリクエストボディを表します。
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordReq は/change-passwordエンドポイントのリクエストボディを表します。
// コードはワンタイムの6文字英数字です。
type ChangePasswordReq struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required,len=6"`
	Password string `json:"password" binding:"required,min=8"`
}

// LogoutReq は/logoutエンドポイントのリクエストボディを表します。
// ボディもトークンも任意です。
type LogoutReq struct {
	RememberToken string `json:"rememberToken"`
}
