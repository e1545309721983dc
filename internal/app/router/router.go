package router

import (
	"github.com/gin-gonic/gin"

	authhandler "shop_backend/internal/feature/auth/transport/handler"
	categoryhandler "shop_backend/internal/feature/categories/transport/handler"
	producthandler "shop_backend/internal/feature/products/transport/handler"
	userhandler "shop_backend/internal/feature/users/transport/handler"
	"shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/requestid"
)

// NewRouter registers every route of the API.
// The admin gate needs to load the caller, hence the extra UserFinder.
func NewRouter(auth *authhandler.AuthHandler, users *userhandler.UserHandler,
	products *producthandler.ProductHandler, categories *categoryhandler.CategoryHandler,
	userFinder jwtmw.UserFinder) *gin.Engine {
	r := gin.Default()
	r.Use(requestid.New())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// ログイン（パスワードまたはリメンバートークン）
	r.POST("/login", auth.Login)
	// パスワードリセットコード発行
	r.POST("/forgot-password", auth.ForgotPassword)
	// リセットコード消費・パスワード変更
	r.POST("/change-password", auth.ChangePassword)

	// 認証必須のルート
	// リクエストヘッダーに Bearer JWT が必要になる
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/logout", auth.Logout)
		authed.GET("/user", auth.Me)

		// User management
		authed.GET("/users", users.List)
		// ユーザー作成のみ管理者権限が必要
		authed.POST("/user", jwtmw.AdminRequired(userFinder), users.Create)
		authed.GET("/user/:id", users.Get)
		authed.PATCH("/user/:id", users.Update)

		// Category CRUD
		authed.GET("/categories", categories.List)
		authed.POST("/category", categories.Create)
		authed.GET("/category/:id", categories.Get)
		authed.PATCH("/category/:id", categories.Update)
		authed.DELETE("/category/:id", categories.Delete)

		// Product CRUD
		authed.GET("/products", products.List)
		authed.POST("/product", products.Create)
		authed.GET("/product/:id", products.Get)
		authed.PATCH("/product/:id", products.Update)
		authed.DELETE("/product/:id", products.Delete)
	}

	return r
}
