package api

import (
	"net/http"
	"strconv"

	"github.com/nfournier/cinelog/internal/catalog"
)

func pageFromQuery(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	sort := catalog.Sort{
		Field: catalog.ParseSortField(r.URL.Query().Get("sort")),
		Order: catalog.ParseSortOrder(r.URL.Query().Get("order")),
	}

	page, err := s.catalog.Discover(r.Context(), pageFromQuery(r), sort)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeErrorMessage(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	page, err := s.catalog.Search(r.Context(), query, pageFromQuery(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	page, err := s.catalog.Upcoming(r.Context(), pageFromQuery(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleTopRated(w http.ResponseWriter, r *http.Request) {
	page, err := s.catalog.TopRated(r.Context(), pageFromQuery(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleMovieDetails(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDFromPath(w, r)
	if !ok {
		return
	}

	movie, err := s.catalog.Details(r.Context(), movieID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}
