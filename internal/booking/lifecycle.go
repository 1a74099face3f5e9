package booking

import "github.com/iliyamo/hotel-reservation-admin/internal/model"

// Action names an operation that moves a booking through its lifecycle.
// Actions are used in transition errors so operators see exactly which
// operation was rejected against which status.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionCheckIn  Action = "check-in"
	ActionCheckOut Action = "check-out"
	ActionDelete   Action = "delete"
)

// transitions is the single source of truth for legal status changes.
// Anything not listed here is rejected with InvalidTransitionError.
// Delete is intentionally absent: it removes the record instead of moving
// it to a new status, so it has its own guard (EnsureDeletable).
//
// no_show is a recognised status on existing records but no action
// produces it; rows carrying it are treated as soft-terminal like
// cancelled.
var transitions = map[model.BookingStatus]map[Action]model.BookingStatus{
	model.StatusPending: {
		ActionConfirm: model.StatusConfirmed,
		ActionCancel:  model.StatusCancelled,
	},
	model.StatusConfirmed: {
		ActionCancel:  model.StatusCancelled,
		ActionCheckIn: model.StatusCheckedIn,
	},
	model.StatusCheckedIn: {
		ActionCheckOut: model.StatusCheckedOut,
	},
}

// nextStatus resolves the target status for applying action to a booking
// currently in from.  It returns an InvalidTransitionError when the pair
// is not in the table.
func nextStatus(from model.BookingStatus, action Action) (model.BookingStatus, error) {
	if to, ok := transitions[from][action]; ok {
		return to, nil
	}
	return "", &InvalidTransitionError{From: from, Action: action}
}

// Confirm moves a pending booking to confirmed.
func Confirm(b *model.Booking) error {
	to, err := nextStatus(b.Status, ActionConfirm)
	if err != nil {
		return err
	}
	b.Status = to
	return nil
}

// Cancel moves a pending or confirmed booking to cancelled.  Cancel is
// the soft, reversible-in-spirit counterpart to delete: the record stays
// in the collection.
func Cancel(b *model.Booking) error {
	to, err := nextStatus(b.Status, ActionCancel)
	if err != nil {
		return err
	}
	b.Status = to
	return nil
}

// EnsureDeletable reports whether the booking may be permanently removed.
// Only soft-terminal bookings (cancelled, checked_out) qualify; delete
// requested on a live booking is rejected so callers route it to Cancel
// instead.  The same guard applies to single and bulk deletes.
func EnsureDeletable(b *model.Booking) error {
	switch b.Status {
	case model.StatusCancelled, model.StatusCheckedOut:
		return nil
	}
	return &InvalidTransitionError{From: b.Status, Action: ActionDelete}
}

// SetPaymentStatus updates the payment axis of a booking.  Payment status
// is independent from the lifecycle status and may be toggled back and
// forth freely between its known values.
func SetPaymentStatus(b *model.Booking, status model.PaymentStatus) error {
	if !model.KnownPaymentStatus(status) {
		ve := newValidationError()
		ve.add("payment.status", "unknown payment status")
		return ve
	}
	b.Payment.Status = status
	return nil
}
