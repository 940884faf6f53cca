package api

import (
	"net/http"
	"time"

	"github.com/nfournier/cinelog/internal/middleware"
	"github.com/nfournier/cinelog/internal/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	LoginAt   time.Time   `json:"login_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func newSessionResponse(s *models.Session) sessionResponse {
	return sessionResponse{
		User:      s.User,
		Token:     s.Token,
		LoginAt:   s.LoginAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Registration opens the session; return it like a login would.
	session, err := s.sessions.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSessionResponse(session))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, err := s.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Logout(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.CurrentSession(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if session == nil {
		writeErrorMessage(w, http.StatusUnauthorized, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Start from the session's copy so untouched fields are preserved.
	user := middleware.GetSession(r.Context()).User
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.sessions.UpdateUser(r.Context(), &user); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
