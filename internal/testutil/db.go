package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/dispatch/internal/domain"
	"github.com/footprint-tools/dispatch/internal/store"
)

// NewTestStore opens an in-memory store with migrations applied.
// The store is closed when the test finishes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(store.MemoryPath)
	require.NoError(t, err, "failed to open in-memory store")

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// SeedUsers inserts users in one committed transaction.
func SeedUsers(t *testing.T, s *store.Store, users ...domain.User) {
	t.Helper()

	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	for _, u := range users {
		require.NoError(t, tx.CreateUser(ctx, u), "failed to seed user: %+v", u)
	}
	require.NoError(t, tx.Commit())
}

// ListUsers reads users in a throwaway transaction.
func ListUsers(t *testing.T, s *store.Store, filter domain.UserFilter) []domain.User {
	t.Helper()

	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	users, err := tx.ListUsers(ctx, filter)
	require.NoError(t, err)
	return users
}
