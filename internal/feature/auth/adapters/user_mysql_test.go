package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError makes SQLite unique violations surface as gorm.ErrDuplicatedKey,
// the same way production reports MySQL error 1062.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &TokenModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		first := &entity.User{Name: "A", Email: "dup@example.com", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), first))

		second := &entity.User{Name: "B", Email: "dup@example.com", Password: "y"}
		err := repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("existing user is found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		created := &entity.User{Name: "Test User", Email: "test@example.com", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByEmail(context.Background(), "test@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Test User", found.Name)
	})

	t.Run("unknown email returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("existing user is found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		created := &entity.User{Name: "Test User", Email: "test@example.com", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.Email, found.Email)
	})

	t.Run("unknown ID returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByID(context.Background(), 9999)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByEmailAndResetCode(t *testing.T) {
	seedUserWithCode := func(t *testing.T, repo *userMySQL) *entity.User {
		t.Helper()
		issued := time.Now()
		user := &entity.User{
			Name:              "Test User",
			Email:             "test@example.com",
			Password:          "x",
			ForgotCode:        "Abc123",
			ForgotGeneratedAt: &issued,
		}
		require.NoError(t, repo.Create(context.Background(), user))
		return user
	}

	t.Run("matching email and code", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		created := seedUserWithCode(t, repo)

		found, err := repo.FindByEmailAndResetCode(context.Background(), "test@example.com", "Abc123")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		require.NotNil(t, found.ForgotGeneratedAt)
	})

	t.Run("wrong code returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedUserWithCode(t, repo)

		found, err := repo.FindByEmailAndResetCode(context.Background(), "test@example.com", "Zzz999")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("empty code never matches", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		// This user never requested a reset, so their stored code is empty.
		user := &entity.User{Name: "No Reset", Email: "noreset@example.com", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), user))

		found, err := repo.FindByEmailAndResetCode(context.Background(), "noreset@example.com", "")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_Update(t *testing.T) {
	t.Run("persists changed fields and cleared code", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		issued := time.Now()
		user := &entity.User{
			Name:              "Before",
			Email:             "test@example.com",
			Password:          "x",
			ForgotCode:        "Abc123",
			ForgotGeneratedAt: &issued,
		}
		require.NoError(t, repo.Create(context.Background(), user))

		user.Name = "After"
		user.ForgotCode = ""
		user.ForgotGeneratedAt = nil
		require.NoError(t, repo.Update(context.Background(), user))

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", found.Name)
		assert.Empty(t, found.ForgotCode, "cleared code was not persisted")
		assert.Nil(t, found.ForgotGeneratedAt)
	})

	t.Run("changing email to a taken one fails", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		require.NoError(t, repo.Create(context.Background(), &entity.User{Name: "A", Email: "a@example.com", Password: "x"}))
		user := &entity.User{Name: "B", Email: "b@example.com", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), user))

		user.Email = "a@example.com"
		err := repo.Update(context.Background(), user)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserMySQL_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)

	emails := []string{"u1@example.com", "u2@example.com", "u3@example.com"}
	for i, email := range emails {
		require.NoError(t, repo.Create(context.Background(), &entity.User{
			Name:     emails[i],
			Email:    email,
			Password: "x",
		}))
	}

	t.Run("pages in ID order", func(t *testing.T) {
		users, err := repo.List(context.Background(), 1, 2)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "u2@example.com", users[0].Email)
		assert.Equal(t, "u3@example.com", users[1].Email)
	})

	t.Run("count reflects all rows", func(t *testing.T) {
		total, err := repo.Count(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}
