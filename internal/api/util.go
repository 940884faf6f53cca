package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nfournier/cinelog/internal/auth"
	"github.com/nfournier/cinelog/internal/catalog"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps service errors to status codes. Validation failures are
// 400, duplicate email 409, bad credentials 401, missing catalog resources
// 404, upstream catalog failures 502, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var invalidResp *catalog.InvalidResponseError
	var netErr *catalog.NetworkError
	var decErr *catalog.DecodingError

	switch {
	case errors.Is(err, auth.ErrInvalidInput), errors.Is(err, auth.ErrWeakPassword):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrEmailExists):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrUnauthorized),
		errors.Is(err, catalog.ErrServer),
		errors.As(err, &invalidResp),
		errors.As(err, &netErr),
		errors.As(err, &decErr):
		writeErrorMessage(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("internal error", "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
