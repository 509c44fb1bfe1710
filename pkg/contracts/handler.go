package contracts

import (
	"context"

	"github.com/julienschmidt/httprouter"
)

// Handler is anything that mounts its routes on the shared router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// ReadinessCheck reports whether a dependency can serve traffic. A nil
// error means ready.
type ReadinessCheck func(ctx context.Context) error
