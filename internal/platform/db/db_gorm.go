// Package db bootstraps the GORM database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shop_backend/internal/feature/auth/adapters"
	"shop_backend/internal/feature/auth/domain/entity"
	categoryentity "shop_backend/internal/feature/categories/domain/entity"
	productentity "shop_backend/internal/feature/products/domain/entity"
)

// OpenDB opens the database selected by DB_DRIVER (mysql, postgres or
// sqlite). MySQL and Postgres retry for up to a minute so the service
// survives a database that is still starting.
func OpenDB() *gorm.DB {
	var dialector gorm.Dialector

	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dialector = gpostgres.Open(os.Getenv("DATABASE_URL"))
	case "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "./shop.db"
		}
		dialector = gsqlite.Open(path)
	default:
		dialector = gmysql.Open(mysqlDSN())
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&entity.User{},
			&adapters.TokenModel{},
			&productentity.Product{},
			&categoryentity.Category{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// mysqlDSN assembles the MySQL DSN from the environment, using a unix
// socket when INSTANCE_CONNECTION_NAME is set (Cloud SQL style).
func mysqlDSN() string {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	if instance := os.Getenv("INSTANCE_CONNECTION_NAME"); instance != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, instance, name)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)
}
