package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSessionExpired(t *testing.T) {
	now := time.Now()

	live := &Session{LoginAt: now, ExpiresAt: now.Add(time.Hour)}
	if live.Expired() {
		t.Error("Session with future expiry reported expired")
	}

	dead := &Session{LoginAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	if !dead.Expired() {
		t.Error("Session with past expiry reported live")
	}
}

func TestSessionEqualityIsTokenOnly(t *testing.T) {
	u1 := User{ID: "u1", Email: "a@x.com"}
	u2 := User{ID: "u2", Email: "b@x.com"}
	now := time.Now()

	a := &Session{User: u1, Token: "tok", LoginAt: now}
	b := &Session{User: u2, Token: "tok", LoginAt: now.Add(time.Hour)}
	c := &Session{User: u1, Token: "other", LoginAt: now}

	if !a.Equal(b) {
		t.Error("Sessions with the same token should be equal regardless of other fields")
	}
	if a.Equal(c) {
		t.Error("Sessions with different tokens should not be equal")
	}
	var nilSession *Session
	if a.Equal(nilSession) {
		t.Error("Session should not equal nil")
	}
}

func TestSessionRemainingDays(t *testing.T) {
	s := &Session{ExpiresAt: time.Now().Add(72*time.Hour + time.Minute)}
	if got := s.RemainingDays(); got != 3 {
		t.Errorf("Expected 3 remaining days, got %d", got)
	}

	past := &Session{ExpiresAt: time.Now().Add(-time.Hour)}
	if got := past.RemainingDays(); got != 0 {
		t.Errorf("Expected 0 remaining days for an expired session, got %d", got)
	}
}

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	user := NewUser("Ana", "ana@x.com", "secret-hash")

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for key := range raw {
		if key == "password_hash" || key == "PasswordHash" {
			t.Errorf("Password hash leaked into JSON under key %q", key)
		}
	}
	if raw["email"] != "ana@x.com" {
		t.Errorf("Email not serialized: %v", raw)
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	session := &Session{
		User:      User{ID: "u1", Name: "Ana", Email: "ana@x.com"},
		Token:     "tok",
		LoginAt:   now,
		ExpiresAt: now.Add(30 * 24 * time.Hour),
	}

	data, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got Session
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !got.Equal(session) {
		t.Error("Round-trip changed the token")
	}
	if got.User.ID != "u1" || got.User.Email != "ana@x.com" {
		t.Errorf("User fields lost: %+v", got.User)
	}
	if !got.LoginAt.Equal(session.LoginAt) || !got.ExpiresAt.Equal(session.ExpiresAt) {
		t.Errorf("Timestamps lost: %v/%v", got.LoginAt, got.ExpiresAt)
	}
}

func TestFavoriteJSONRoundTrip(t *testing.T) {
	movie := Movie{
		ID: 42, Title: "The Answer", Overview: "o",
		PosterPath: "/p.jpg", BackdropPath: "/b.jpg",
		VoteAverage: 8.2, ReleaseDate: "2024-05-01", Popularity: 99.5,
	}
	fav := NewFavorite("u1", movie)

	data, err := json.Marshal(fav)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got Favorite
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if got.ID != fav.ID || got.UserID != "u1" || got.MovieID != 42 {
		t.Errorf("Identity fields lost: %+v", got)
	}
	if got.Movie != movie {
		t.Errorf("Movie snapshot changed: %+v", got.Movie)
	}
	if !got.AddedAt.Equal(fav.AddedAt) {
		t.Errorf("AddedAt lost: %v vs %v", got.AddedAt, fav.AddedAt)
	}
}

func TestNewFavoriteDerivesMovieID(t *testing.T) {
	fav := NewFavorite("u1", Movie{ID: 7, Title: "Seven"})
	if fav.MovieID != 7 {
		t.Errorf("Expected MovieID 7, got %d", fav.MovieID)
	}
	if fav.ID == "" {
		t.Error("Expected a generated ID")
	}
	if fav.AddedAt.IsZero() {
		t.Error("Expected AddedAt to be set")
	}
}
