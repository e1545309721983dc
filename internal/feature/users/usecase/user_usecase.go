// Package usecase implements the business logic for the users feature.
//
// The user aggregate itself is owned by the auth feature (its lifecycle is
// credential-driven); this package layers the management CRUD on top of the
// same repository.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shop_backend/internal/feature/auth/domain/entity"
)

// minPasswordLength mirrors the auth feature's password policy.
const minPasswordLength = 8

// ErrForbidden is returned when a caller tries to modify another user's
// account without admin rights.
var ErrForbidden = errors.New("forbidden")

// UserRepository abstracts the persistence layer for user management.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
// The auth feature's GORM adapter satisfies it.
type UserRepository interface {
	// Create persists a new user. Returns the auth feature's
	// ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID, ErrUserNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// List retrieves users ordered by ID with the given offset/limit.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}

// userUsecase implements the user management business logic.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// List returns a page of users plus the total count for pagination.
func (u *userUsecase) List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error) {
	total, err := u.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	users, err := u.users.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Create registers a new user with a hashed password. The route is
// admin-gated upstream; the account itself is created without admin rights.
func (u *userUsecase) Create(ctx context.Context, name, email, password string) (*entity.User, error) {
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns a single user by ID.
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update changes a user's name and email. The verified caller identity is
// passed explicitly: callers may update themselves, admins may update anyone.
func (u *userUsecase) Update(ctx context.Context, callerID, targetID uint, name, email string) (*entity.User, error) {
	if callerID != targetID {
		caller, err := u.users.FindByID(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if !caller.IsAdmin {
			return nil, ErrForbidden
		}
	}

	user, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
