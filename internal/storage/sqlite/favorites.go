package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nfournier/cinelog/internal/models"
	"github.com/nfournier/cinelog/internal/storage"
)

// CreateFavorite inserts a new favorite with the movie payload serialized as
// an opaque JSON blob. Returns storage.ErrFavoriteExists if the
// (user, movie) pair is already saved; the UNIQUE index makes this hold even
// when two callers race through a check-then-insert.
func (s *SQLiteStore) CreateFavorite(ctx context.Context, favorite *models.Favorite) error {
	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	if favorite.AddedAt.IsZero() {
		favorite.AddedAt = time.Now().UTC()
	}
	if favorite.MovieID == 0 {
		favorite.MovieID = favorite.Movie.ID
	}

	movieData, err := json.Marshal(favorite.Movie)
	if err != nil {
		return fmt.Errorf("failed to encode movie payload: %w", err)
	}

	query := `
		INSERT INTO favorites (id, user_id, movie_id, movie_data, added_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.MovieID,
		movieData,
		formatTime(favorite.AddedAt),
	)

	if isUniqueViolation(err) {
		return storage.ErrFavoriteExists
	}
	if err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

// FavoriteExists reports whether the user has saved the movie.
func (s *SQLiteStore) FavoriteExists(ctx context.Context, userID string, movieID int64) (bool, error) {
	query := `
		SELECT 1
		FROM favorites
		WHERE user_id = ? AND movie_id = ?
		LIMIT 1
	`

	var one int
	err := s.db.QueryRowContext(ctx, query, userID, movieID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return true, nil
}

// DeleteFavorite removes the favorite for (userID, movieID).
// Deleting an absent favorite is a no-op.
func (s *SQLiteStore) DeleteFavorite(ctx context.Context, userID string, movieID int64) error {
	query := `
		DELETE FROM favorites
		WHERE user_id = ? AND movie_id = ?
	`

	if _, err := s.db.ExecContext(ctx, query, userID, movieID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// ListFavoritesByUser returns the user's favorites, newest first.
func (s *SQLiteStore) ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	query := `
		SELECT id, user_id, movie_id, movie_data, added_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY added_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []models.Favorite
	for rows.Next() {
		var (
			fav       models.Favorite
			movieData []byte
			addedAt   string
		)
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.MovieID, &movieData, &addedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		if err := json.Unmarshal(movieData, &fav.Movie); err != nil {
			return nil, fmt.Errorf("failed to decode movie payload: %w", err)
		}
		if fav.AddedAt, err = parseTime(addedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return favorites, nil
}
