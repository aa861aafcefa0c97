package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/plantctl/pkg/ports"
)

// Locker implements ports.Locker within one process.
type Locker struct {
	mu    sync.Mutex
	held  map[string]lease
	seq   uint64
	poll  time.Duration
	clock func() time.Time
}

type lease struct {
	token  uint64
	expiry time.Time // zero: never expires
}

var _ ports.Locker = (*Locker)(nil)

// NewLocker creates an empty in-process locker.
func NewLocker() *Locker {
	return &Locker{
		held:  make(map[string]lease),
		poll:  10 * time.Millisecond,
		clock: time.Now,
	}
}

// Lock waits until key is free or its holder's ttl has lapsed.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	for {
		if token, ok := l.tryLock(key, ttl); ok {
			return func(context.Context) error {
				l.mu.Lock()
				defer l.mu.Unlock()
				if l.held[key].token == token {
					delete(l.held, key)
				}
				return nil
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.poll):
		}
	}
}

func (l *Locker) tryLock(key string, ttl time.Duration) (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.clock()
	if cur, ok := l.held[key]; ok && (cur.expiry.IsZero() || now.Before(cur.expiry)) {
		return 0, false
	}
	l.seq++
	next := lease{token: l.seq}
	if ttl > 0 {
		next.expiry = now.Add(ttl)
	}
	l.held[key] = next
	return next.token, true
}
