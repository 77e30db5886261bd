package locking

import (
	"context"
	"errors"
)

// SweepLock guards the expiry sweep so that at most one instance per
// deployment runs a cycle at a time.
type SweepLock interface {
	Acquire(ctx context.Context) error

	Release(ctx context.Context) error
}

var ErrLockHeld = errors.New("sweep lock is held by another instance")
