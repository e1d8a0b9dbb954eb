// Package errs provides the error types shared by every layer of the point-of-sale core.
//
// Each kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrModificationIsInvalid, ...) for errors.Is checks
//   - a struct carrying the offending parameter, optional value and optional Cause
//   - NewX and NewXWithCause constructors
//   - Unwrap returning the sentinel
//
// Domain packages wrap their own rule-specific sentinels (for example
// order.ErrIngredientAlreadyPresent) as the Cause so callers can branch on the kind
// and still log the exact reason.
package errs
