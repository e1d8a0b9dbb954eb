// Package memory provides the in-process adapters of the point-of-sale core.
//
// The core assumes a single writer. Once it is reachable from concurrent HTTP
// handlers and cron jobs, every use case runs inside a UnitOfWork from this package:
// all units created by one factory share a weight-1 semaphore, so at most one is
// active at a time and Begin waits (honoring ctx) for the current holder to finish.
package memory

import (
	"context"
	"errors"

	"burgerpos/internal/core/ports"

	"golang.org/x/sync/semaphore"
)

var ErrUnitOfWorkNotStarted = errors.New("unit of work has not begun")

// UnitOfWorkFactory hands out units that serialize on one shared semaphore.
type UnitOfWorkFactory struct {
	sem *semaphore.Weighted
}

func NewUnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{sem: semaphore.NewWeighted(1)}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{sem: f.sem}
}

// UnitOfWork holds exclusive access between Begin and Commit/Rollback.
// A single instance is not meant to be shared between goroutines.
type UnitOfWork struct {
	sem    *semaphore.Weighted
	active bool
}

// Begin acquires exclusive access. Calling Begin on an active unit is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := u.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	u.active = true
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrUnitOfWorkNotStarted
	}
	u.release()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.active {
		u.release()
	}
	return nil
}

func (u *UnitOfWork) release() {
	u.active = false
	u.sem.Release(1)
}
