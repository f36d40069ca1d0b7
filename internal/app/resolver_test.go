package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/dispatch/internal/cli"
	"github.com/footprint-tools/dispatch/internal/dispatchers"
	"github.com/footprint-tools/dispatch/internal/domain"
	"github.com/footprint-tools/dispatch/internal/testutil"
	"github.com/footprint-tools/dispatch/internal/ui"
	"github.com/footprint-tools/dispatch/internal/ui/style"
)

func TestCapabilities_CoverEveryLeaf(t *testing.T) {
	reg, err := cli.BuildRegistry()
	require.NoError(t, err)

	for _, id := range reg.Leaves() {
		_, ok := capabilities[id]
		require.True(t, ok, "no handler for %s", id)
	}
	for id := range capabilities {
		_, ok := reg.Lookup(id)
		require.True(t, ok, "capability %s is not registered", id)
	}
}

func TestNewResolver_RejectsUnregisteredCapability(t *testing.T) {
	reg, err := cli.BuildRegistry()
	require.NoError(t, err)

	factories := map[dispatchers.CommandID]handlerFactory{
		"user.purge": func(scopeEnv) dispatchers.Handler { return nil },
	}
	_, err = newResolver(reg, testutil.NewTestStore(t), ui.NewWriterTo(&bytes.Buffer{}), style.NopStyler{}, factories)
	require.ErrorContains(t, err, `"user.purge"`)
}

func TestResolver_ScopeCommitsOnSuccess(t *testing.T) {
	reg, err := cli.BuildRegistry()
	require.NoError(t, err)
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	factories := map[dispatchers.CommandID]handlerFactory{
		"user.create": func(env scopeEnv) dispatchers.Handler {
			return dispatchers.HandlerFunc(func(ctx context.Context, _ *dispatchers.Arguments) error {
				return env.Users.CreateUser(ctx, domain.User{Name: "dana"})
			})
		},
	}
	r, err := newResolver(reg, st, ui.NewWriterTo(&bytes.Buffer{}), style.NopStyler{}, factories)
	require.NoError(t, err)

	scope, err := r.BeginScope(ctx)
	require.NoError(t, err)
	h, ok := scope.Handler("user.create")
	require.True(t, ok)
	require.NoError(t, h.Handle(ctx, nil))
	require.NoError(t, scope.Close(nil))

	got := testutil.ListUsers(t, st, domain.UserFilter{})
	require.Len(t, got, 1)
	require.Equal(t, "dana", got[0].Name)
}

func TestResolver_ScopeRollsBackOnFailure(t *testing.T) {
	reg, err := cli.BuildRegistry()
	require.NoError(t, err)
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	r, err := NewResolver(reg, st, ui.NewWriterTo(&bytes.Buffer{}), style.NopStyler{})
	require.NoError(t, err)

	scope, err := r.BeginScope(ctx)
	require.NoError(t, err)
	tx := scope.(*txScope).tx
	require.NoError(t, tx.CreateUser(ctx, domain.User{Name: "erin"}))
	require.NoError(t, scope.Close(errors.New("boom")))

	require.Empty(t, testutil.ListUsers(t, st, domain.UserFilter{}))
}

func TestResolver_UnknownHandler(t *testing.T) {
	reg, err := cli.BuildRegistry()
	require.NoError(t, err)

	r, err := NewResolver(reg, testutil.NewTestStore(t), ui.NewWriterTo(&bytes.Buffer{}), style.NopStyler{})
	require.NoError(t, err)

	scope, err := r.BeginScope(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = scope.Close(errors.New("done")) })

	_, ok := scope.Handler("user")
	require.False(t, ok)
	h, ok := scope.Handler("version")
	require.True(t, ok)
	require.NotNil(t, h)
}
