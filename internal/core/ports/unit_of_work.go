package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per request or command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork brackets one use case. The in-memory core has a single writer, so a
// unit of work grants exclusive access to the shared state between Begin and
// Commit or Rollback.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//	// ... call into the controller
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin blocks until access is granted or ctx is done.
	Begin(ctx context.Context) error

	// Commit ends the unit of work. Domain operations validate before they mutate,
	// so there is nothing to flush.
	Commit(ctx context.Context) error

	// Rollback ends the unit of work if it is still active; it is safe to call
	// after Commit. It does not undo mutations already applied.
	Rollback(ctx context.Context) error
}
