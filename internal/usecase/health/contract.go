package health

import "context"

// RegistrySizer reports the size of the current registry snapshot.
type RegistrySizer interface {
	Size() int
}

// SourceChecker checks that the registry source is still readable.
type SourceChecker interface {
	Check(ctx context.Context) error
}
