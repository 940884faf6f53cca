// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/nfournier/cinelog/internal/models"
)

var (
	// ErrEmailExists is returned by CreateUser and UpdateUser when the
	// email uniqueness constraint would be violated.
	ErrEmailExists = errors.New("email already registered")

	// ErrFavoriteExists is returned by CreateFavorite when a favorite for
	// the same (user, movie) pair already exists.
	ErrFavoriteExists = errors.New("favorite already exists")
)

// Store defines the interface for cinelog's durable local storage.
// This abstraction allows swapping storage backends (SQLite today)
// without changing the service layer.
//
// Read operations treat absence as a non-error: lookups return (nil, nil)
// when the requested row does not exist.
type Store interface {
	// CreateUser persists a new user. Fails with ErrEmailExists if the
	// email is already registered.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, or (nil, nil) if absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID, or (nil, nil) if absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpdateUser replaces the stored row for user.ID with user.
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser removes a user and, by cascade, their favorites.
	// Idempotent; deleting an absent user is not an error.
	DeleteUser(ctx context.Context, id string) error

	// SaveSession persists the session, replacing any previous one.
	// Only one session is live on the device at a time.
	SaveSession(ctx context.Context, session *models.Session) error

	// GetSession loads the persisted session, or (nil, nil) if none.
	GetSession(ctx context.Context) (*models.Session, error)

	// ClearSession removes the persisted session. Idempotent.
	ClearSession(ctx context.Context) error

	// CreateFavorite persists a new favorite. Fails with ErrFavoriteExists
	// if the (user, movie) pair is already present.
	CreateFavorite(ctx context.Context, favorite *models.Favorite) error

	// FavoriteExists reports whether the (user, movie) pair is saved.
	FavoriteExists(ctx context.Context, userID string, movieID int64) (bool, error)

	// DeleteFavorite removes a favorite. Idempotent.
	DeleteFavorite(ctx context.Context, userID string, movieID int64) error

	// ListFavoritesByUser returns the user's favorites ordered by
	// AddedAt descending (most recent first).
	ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error)

	// Close releases any resources held by the store.
	Close() error
}
