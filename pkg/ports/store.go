package ports

import (
	"context"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
)

// RunStore defines the interface for persisting sequence runs.
// Runs are saved after every tick so a partial log survives a crash.
type RunStore interface {
	// Save persists the run under run.ID.
	Save(ctx context.Context, run *domain.Run) error

	// Load retrieves a run.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.Run, error)

	// Delete removes a run.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored runs.
	List(ctx context.Context) ([]string, error)
}

// UnlockFunc releases a lock obtained from a Locker.
type UnlockFunc func(ctx context.Context) error

// Locker serialises runs that would drive the same timeline.
type Locker interface {
	// Lock blocks until key is held or ctx is done. The lock expires after ttl
	// if it is never released.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
