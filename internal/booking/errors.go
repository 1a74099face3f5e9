// Package booking implements the reservation lifecycle: creating and
// editing bookings, the status state machine, and the check-in /
// check-out transactions.  All operations here are pure functions over the
// model types; persistence and notification are the caller's concern.
// This package is the only code allowed to assign Booking.Status.
package booking

import (
	"errors"
	"fmt"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// ValidationError collects per-field input problems found before any
// mutation happens.  It is surfaced verbatim to the operator and never
// persisted.  An operation returning a ValidationError guarantees the
// booking was left untouched.
type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

// IsValidationError returns the ValidationError wrapped in err, or nil.
func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func (e *ValidationError) add(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *ValidationError) count() int { return len(e.fields) }

// Fields returns the field-to-messages map for rendering to the client.
func (e *ValidationError) Fields() map[string][]string { return e.fields }

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %+v", e.fields)
}

// InvalidTransitionError reports a status change that is not in the
// transition table.  It names the booking's current status and the action
// that was rejected; the booking itself is guaranteed unchanged.
type InvalidTransitionError struct {
	From   model.BookingStatus
	Action Action
}

// IsInvalidTransition returns the InvalidTransitionError wrapped in err,
// or nil.
func IsInvalidTransition(err error) *InvalidTransitionError {
	if err == nil {
		return nil
	}
	var ite *InvalidTransitionError
	if errors.As(err, &ite) {
		return ite
	}
	return nil
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Action, e.From)
}
