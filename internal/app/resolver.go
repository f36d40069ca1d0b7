package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/footprint-tools/dispatch/internal/actions"
	"github.com/footprint-tools/dispatch/internal/actions/completions"
	"github.com/footprint-tools/dispatch/internal/actions/help"
	"github.com/footprint-tools/dispatch/internal/actions/users"
	"github.com/footprint-tools/dispatch/internal/dispatchers"
	"github.com/footprint-tools/dispatch/internal/domain"
	"github.com/footprint-tools/dispatch/internal/store"
)

// scopeEnv is what a handler constructor may bind to for one invocation.
type scopeEnv struct {
	Registry *dispatchers.Registry
	Users    domain.UserStore
	Out      domain.OutputWriter
	Styler   domain.Styler
}

type handlerFactory func(env scopeEnv) dispatchers.Handler

// capabilities maps every executable command to the constructor of its handler.
var capabilities = map[dispatchers.CommandID]handlerFactory{
	"user.create": func(env scopeEnv) dispatchers.Handler {
		return users.Create(users.DefaultDeps(env.Users, env.Out, env.Styler))
	},
	"user.remove": func(env scopeEnv) dispatchers.Handler {
		return users.Remove(users.DefaultDeps(env.Users, env.Out, env.Styler))
	},
	"user.rename": func(env scopeEnv) dispatchers.Handler {
		return users.Rename(users.DefaultDeps(env.Users, env.Out, env.Styler))
	},
	"list": func(env scopeEnv) dispatchers.Handler {
		return users.List(users.DefaultDeps(env.Users, env.Out, env.Styler))
	},
	"help": func(env scopeEnv) dispatchers.Handler {
		return help.Handler(help.DefaultDeps(env.Registry, env.Out))
	},
	"completion": func(env scopeEnv) dispatchers.Handler {
		return completions.Completions(completions.DefaultDeps(env.Registry, env.Out))
	},
	"version": func(env scopeEnv) dispatchers.Handler {
		return actions.ShowVersion(actions.NewDeps(env.Out, func() string { return Version }))
	},
}

// Resolver opens one store transaction per invocation and builds handlers bound to it.
// The transaction commits when the invocation succeeds and rolls back otherwise.
type Resolver struct {
	registry  *dispatchers.Registry
	store     *store.Store
	out       domain.OutputWriter
	styler    domain.Styler
	factories map[dispatchers.CommandID]handlerFactory
}

// NewResolver checks that every capability names a command in reg.
func NewResolver(reg *dispatchers.Registry, st *store.Store, out domain.OutputWriter, styler domain.Styler) (*Resolver, error) {
	return newResolver(reg, st, out, styler, capabilities)
}

func newResolver(reg *dispatchers.Registry, st *store.Store, out domain.OutputWriter, styler domain.Styler, factories map[dispatchers.CommandID]handlerFactory) (*Resolver, error) {
	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := reg.Lookup(dispatchers.CommandID(id)); !ok {
			return nil, fmt.Errorf("capability %q has no registered command", id)
		}
	}

	return &Resolver{
		registry:  reg,
		store:     st,
		out:       out,
		styler:    styler,
		factories: factories,
	}, nil
}

// BeginScope implements dispatchers.HandlerResolver.
func (r *Resolver) BeginScope(ctx context.Context) (dispatchers.Scope, error) {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &txScope{
		tx:        tx,
		factories: r.factories,
		env: scopeEnv{
			Registry: r.registry,
			Users:    tx,
			Out:      r.out,
			Styler:   r.styler,
		},
	}, nil
}

type txScope struct {
	tx        *store.Tx
	env       scopeEnv
	factories map[dispatchers.CommandID]handlerFactory
}

func (s *txScope) Handler(id dispatchers.CommandID) (dispatchers.Handler, bool) {
	f, ok := s.factories[id]
	if !ok {
		return nil, false
	}
	return f(s.env), true
}

func (s *txScope) Close(outcome error) error {
	if outcome != nil {
		return s.tx.Rollback()
	}
	return s.tx.Commit()
}
