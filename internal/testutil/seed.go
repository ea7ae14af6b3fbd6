package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"userdash/internal/config"
	"userdash/internal/store"
)

// SeedTime is the fake clock's starting instant for seeded stores.
var SeedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// NewStore opens a fresh store in a temp directory with a fake clock.
func NewStore(t *testing.T) (*store.Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(SeedTime)
	st, err := store.Open(filepath.Join(t.TempDir(), config.StoreFile), clock)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return st, clock
}

// SeededUser is the user record LoginStore establishes.
var SeededUser = store.User{
	ID:        1,
	Name:      "Jane Doe",
	Email:     "jane@example.com",
	CreatedAt: SeedTime,
}

// LoginStore opens a fresh store with an authenticated session, for
// commands that require one.
func LoginStore(t *testing.T) (*store.Store, *clockwork.FakeClock) {
	t.Helper()
	st, clock := NewStore(t)
	if err := st.Login(SeededUser); err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	return st, clock
}
