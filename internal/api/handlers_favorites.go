package api

import (
	"net/http"
	"strconv"

	"github.com/nfournier/cinelog/internal/middleware"
	"github.com/nfournier/cinelog/internal/models"
)

func movieIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("movieID"), 10, 64)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid movie id")
		return 0, false
	}
	return id, true
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	favs, err := s.favorites.ListByUser(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if favs == nil {
		favs = []models.Favorite{}
	}
	writeJSON(w, http.StatusOK, favs)
}

type addFavoriteResponse struct {
	Favorite      *models.Favorite `json:"favorite,omitempty"`
	AlreadyExists bool             `json:"already_exists"`
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDFromPath(w, r)
	if !ok {
		return
	}

	var movie models.Movie
	if !decodeBody(w, r, &movie) {
		return
	}
	if movie.ID == 0 {
		movie.ID = movieID
	}
	if movie.ID != movieID {
		writeErrorMessage(w, http.StatusBadRequest, "movie id mismatch")
		return
	}

	userID := middleware.GetUserID(r.Context())
	fav, added, err := s.favorites.Add(r.Context(), movie, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !added {
		writeJSON(w, http.StatusOK, addFavoriteResponse{AlreadyExists: true})
		return
	}
	writeJSON(w, http.StatusCreated, addFavoriteResponse{Favorite: fav})
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDFromPath(w, r)
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())
	if err := s.favorites.Remove(r.Context(), userID, movieID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
