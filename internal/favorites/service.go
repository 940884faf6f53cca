// Package favorites implements the favorites service: a durable mapping from
// (user, movie) to a snapshot of catalog data taken at save time.
package favorites

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nfournier/cinelog/internal/models"
	"github.com/nfournier/cinelog/internal/storage"
)

// Service exposes favorite operations over a storage.Store.
type Service struct {
	store  storage.Store
	logger *slog.Logger
}

// NewService creates a favorites service.
func NewService(store storage.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// IsFavorite reports whether the user has saved the movie.
func (s *Service) IsFavorite(ctx context.Context, userID string, movieID int64) (bool, error) {
	return s.store.FavoriteExists(ctx, userID, movieID)
}

// Add saves the movie as a favorite for the user. The second return value is
// false when the pair was already saved; the call is then a no-op rather than
// an error or a duplicate. The store's unique index backs this up even if two
// callers race past the existence check.
func (s *Service) Add(ctx context.Context, movie models.Movie, userID string) (*models.Favorite, bool, error) {
	exists, err := s.store.FavoriteExists(ctx, userID, movie.ID)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return nil, false, nil
	}

	favorite := models.NewFavorite(userID, movie)
	if err := s.store.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, storage.ErrFavoriteExists) {
			return nil, false, nil
		}
		return nil, false, err
	}

	s.logger.Info("favorite added", "user_id", userID, "movie_id", movie.ID)
	return favorite, true, nil
}

// Remove deletes the favorite for (userID, movieID). Idempotent.
func (s *Service) Remove(ctx context.Context, userID string, movieID int64) error {
	if err := s.store.DeleteFavorite(ctx, userID, movieID); err != nil {
		return err
	}
	s.logger.Info("favorite removed", "user_id", userID, "movie_id", movieID)
	return nil
}

// ListByUser returns the user's favorites, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	return s.store.ListFavoritesByUser(ctx, userID)
}
