package locator

import (
	"context"

	"github.com/proverbs-one/npslocator/internal/domain/agent"
)

// Source supplies the static agent records a registry is built from.
type Source interface {
	Load(ctx context.Context) ([]agent.Agent, error)
}

// Recorder receives locator observations. Implementations must be safe for concurrent use.
type Recorder interface {
	ObserveSearch(matches int, err error)
	ObserveReload(agents int, err error)
}
