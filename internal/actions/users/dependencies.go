package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/dispatch/internal/domain"
)

type Deps struct {
	Users  domain.UserStore
	Out    domain.OutputWriter
	Styler domain.Styler
	NewID  func() string
	Now    func() time.Time
}

// DefaultDeps binds the handlers to one invocation's store.
func DefaultDeps(users domain.UserStore, out domain.OutputWriter, styler domain.Styler) Deps {
	return Deps{
		Users:  users,
		Out:    out,
		Styler: styler,
		NewID:  uuid.NewString,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}
