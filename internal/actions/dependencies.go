package actions

import (
	"github.com/footprint-tools/dispatch/internal/domain"
)

type Deps struct {
	Out     domain.OutputWriter
	Version func() string
}

// NewDeps wires the version handler to out and the build's version string.
func NewDeps(out domain.OutputWriter, version func() string) Deps {
	return Deps{
		Out:     out,
		Version: version,
	}
}
