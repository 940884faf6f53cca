package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a user's saved reference to a catalog movie.
// At most one Favorite exists per (UserID, MovieID) pair.
type Favorite struct {
	// ID is the unique identifier for the favorite (UUID format).
	ID string `json:"id"`

	// UserID is the owning user.
	UserID string `json:"user_id"`

	// MovieID duplicates Movie.ID for keyed lookups without decoding
	// the snapshot.
	MovieID int64 `json:"movie_id"`

	// Movie is the full catalog payload copied at add time. Later
	// catalog-side changes are never reflected here.
	Movie Movie `json:"movie"`

	// AddedAt is when the user favorited the movie.
	AddedAt time.Time `json:"added_at"`
}

// NewFavorite creates a favorite snapshot of movie for the given user.
func NewFavorite(userID string, movie Movie) *Favorite {
	return &Favorite{
		ID:      uuid.New().String(),
		UserID:  userID,
		MovieID: movie.ID,
		Movie:   movie,
		AddedAt: time.Now().UTC(),
	}
}
