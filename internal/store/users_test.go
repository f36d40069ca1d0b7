package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/dispatch/internal/domain"
	"github.com/footprint-tools/dispatch/internal/store"
	"github.com/footprint-tools/dispatch/internal/testutil"
)

func names(users []domain.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func TestTx_CreateAndList(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedUsers(t, s,
		domain.User{Name: "grace", Admin: true, Age: 85},
		domain.User{Name: "ada", Age: 36},
		domain.User{Name: "linus"},
	)

	all := testutil.ListUsers(t, s, domain.UserFilter{})
	require.Equal(t, []string{"ada", "grace", "linus"}, names(all))
	require.NotEmpty(t, all[0].ID)
	require.False(t, all[0].CreatedAt.IsZero())
	require.Equal(t, 36, all[0].Age)

	admins := testutil.ListUsers(t, s, domain.UserFilter{AdminOnly: true})
	require.Equal(t, []string{"grace"}, names(admins))
	require.True(t, admins[0].Admin)

	limited := testutil.ListUsers(t, s, domain.UserFilter{Limit: 2})
	require.Equal(t, []string{"ada", "grace"}, names(limited))
}

func TestTx_KeepsGivenIDAndTime(t *testing.T) {
	s := testutil.NewTestStore(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedUsers(t, s, domain.User{ID: "u-1", Name: "ada", CreatedAt: created})

	users := testutil.ListUsers(t, s, domain.UserFilter{})
	require.Equal(t, "u-1", users[0].ID)
	require.True(t, created.Equal(users[0].CreatedAt))
}

func TestTx_DuplicateName(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedUsers(t, s, domain.User{Name: "ada"})

	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	err = tx.CreateUser(ctx, domain.User{Name: "ada"})
	require.ErrorIs(t, err, domain.ErrUserExists)
}

func TestTx_RemoveAndRename(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedUsers(t, s, domain.User{Name: "ada"}, domain.User{Name: "grace"})

	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, tx.RenameUser(ctx, "ada", "lovelace"))
	require.ErrorIs(t, tx.RenameUser(ctx, "nobody", "x"), domain.ErrUserNotFound)
	require.ErrorIs(t, tx.RenameUser(ctx, "lovelace", "grace"), domain.ErrUserExists)
	require.NoError(t, tx.RemoveUser(ctx, "grace"))
	require.ErrorIs(t, tx.RemoveUser(ctx, "grace"), domain.ErrUserNotFound)
	require.NoError(t, tx.Commit())

	require.Equal(t, []string{"lovelace"}, names(testutil.ListUsers(t, s, domain.UserFilter{})))
}

func TestTx_RollbackDiscards(t *testing.T) {
	s := testutil.NewTestStore(t)

	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateUser(ctx, domain.User{Name: "ada"}))
	require.NoError(t, tx.Rollback())

	require.NoError(t, tx.Rollback(), "second rollback is a no-op")
	require.NoError(t, tx.Commit(), "commit after rollback is a no-op")

	require.Empty(t, testutil.ListUsers(t, s, domain.UserFilter{}))
}

func TestNew_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsp.db")

	s, err := store.New(path)
	require.NoError(t, err)
	testutil.SeedUsers(t, s, domain.User{Name: "ada"})
	require.NoError(t, s.Close())

	reopened, err := store.New(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	require.Equal(t, []string{"ada"}, names(testutil.ListUsers(t, reopened, domain.UserFilter{})))
}
