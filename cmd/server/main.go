package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"shop_backend/internal/app/di"
	"shop_backend/internal/app/router"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	categoryadapters "shop_backend/internal/feature/categories/adapters"
	categoryhandler "shop_backend/internal/feature/categories/transport/handler"
	categoryusecase "shop_backend/internal/feature/categories/usecase"
	productadapters "shop_backend/internal/feature/products/adapters"
	producthandler "shop_backend/internal/feature/products/transport/handler"
	productusecase "shop_backend/internal/feature/products/usecase"
	userhandler "shop_backend/internal/feature/users/transport/handler"
	userusecase "shop_backend/internal/feature/users/usecase"
	"shop_backend/internal/platform/config"
	infradb "shop_backend/internal/platform/db"
	jwtmw "shop_backend/internal/platform/jwt"
	infraredis "shop_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Remember tokens stored in the database.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	tokenRepo := di.NewRememberTokenRepository(rdb, db)
	productRepo := productadapters.NewProductMySQL(db)
	categoryRepo := categoryadapters.NewCategoryMySQL(db)

	// Platform
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	resetMailer := di.NewMailer(cfg.SMTP)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo, jwtGen, resetMailer)
	userUC := userusecase.NewUserUsecase(userRepo)
	productUC := productusecase.NewProductUsecase(productRepo)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)
	productH := producthandler.NewProductHandler(productUC)
	categoryH := categoryhandler.NewCategoryHandler(categoryUC)

	// ルータ生成
	r := router.NewRouter(authH, userH, productH, categoryH, userRepo)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
