package favorites

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/nfournier/cinelog/internal/models"
	"github.com/nfournier/cinelog/internal/storage"
	"github.com/nfournier/cinelog/internal/storage/sqlite"
)

func newTestService(t *testing.T) (*Service, storage.Store) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, logger), store
}

func createUser(t *testing.T, store storage.Store, email string) *models.User {
	t.Helper()
	user := models.NewUser("Test", email, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func movie(id int64, title string) models.Movie {
	return models.Movie{ID: id, Title: title, VoteAverage: 8.1, Popularity: 10}
}

func TestAddIsFavoriteRemove(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	user := createUser(t, store, "u1@x.com")

	fav, added, err := svc.Add(ctx, movie(42, "The Answer"), user.ID)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !added || fav == nil {
		t.Fatal("Expected first add to create a favorite")
	}
	if fav.UserID != user.ID || fav.MovieID != 42 {
		t.Errorf("Unexpected favorite: %+v", fav)
	}

	is, err := svc.IsFavorite(ctx, user.ID, 42)
	if err != nil {
		t.Fatalf("IsFavorite failed: %v", err)
	}
	if !is {
		t.Error("Expected IsFavorite true after add")
	}

	if err := svc.Remove(ctx, user.ID, 42); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	is, err = svc.IsFavorite(ctx, user.ID, 42)
	if err != nil {
		t.Fatalf("IsFavorite failed: %v", err)
	}
	if is {
		t.Error("Expected IsFavorite false after remove")
	}

	// Remove is idempotent.
	if err := svc.Remove(ctx, user.ID, 42); err != nil {
		t.Fatalf("Second Remove failed: %v", err)
	}
}

func TestDoubleAddIsNoOp(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	user := createUser(t, store, "u1@x.com")

	if _, added, err := svc.Add(ctx, movie(42, "The Answer"), user.ID); err != nil || !added {
		t.Fatalf("First add: added=%v err=%v", added, err)
	}

	fav, added, err := svc.Add(ctx, movie(42, "The Answer"), user.ID)
	if err != nil {
		t.Fatalf("Second add failed: %v", err)
	}
	if added || fav != nil {
		t.Error("Expected second add to report already-exists")
	}

	favs, err := svc.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(favs) != 1 {
		t.Errorf("Expected exactly one stored favorite, got %d", len(favs))
	}
}

func TestListByUserOrderAndScope(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	u1 := createUser(t, store, "u1@x.com")
	u2 := createUser(t, store, "u2@x.com")

	// Distinct AddedAt values planted directly so the order is deterministic.
	base := time.Now().UTC().Add(-time.Hour)
	for i, id := range []int64{1, 2, 3} {
		fav := models.NewFavorite(u1.ID, movie(id, "Movie"))
		fav.AddedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.CreateFavorite(ctx, fav); err != nil {
			t.Fatalf("CreateFavorite failed: %v", err)
		}
	}
	if _, _, err := svc.Add(ctx, movie(99, "Other User's"), u2.ID); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	favs, err := svc.ListByUser(ctx, u1.ID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(favs) != 3 {
		t.Fatalf("Expected 3 favorites for u1, got %d", len(favs))
	}

	wantOrder := []int64{3, 2, 1} // newest first
	for i, want := range wantOrder {
		if favs[i].MovieID != want {
			t.Errorf("Position %d: expected movie %d, got %d", i, want, favs[i].MovieID)
		}
	}
}

func TestSnapshotIsPointInTime(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	user := createUser(t, store, "u1@x.com")

	original := movie(42, "Original Title")
	if _, _, err := svc.Add(ctx, original, user.ID); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Catalog-side change after the add must not be reflected.
	favs, err := svc.ListByUser(ctx, user.ID)
	if err != nil || len(favs) != 1 {
		t.Fatalf("ListByUser failed: %v (n=%d)", err, len(favs))
	}
	if favs[0].Movie.Title != "Original Title" {
		t.Errorf("Snapshot changed: %q", favs[0].Movie.Title)
	}
}
