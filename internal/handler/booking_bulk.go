package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-admin/internal/booking"
	"github.com/iliyamo/hotel-reservation-admin/internal/model"
	"github.com/iliyamo/hotel-reservation-admin/internal/repository"
)

// bookingStore is the slice of BookingRepo the batch delete loop needs.
// Keeping it an interface lets tests drive the loop without a database.
type bookingStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	Delete(ctx context.Context, id uint64) error
}

// deleteBatch runs the per-id delete cycle: load, check the per-status
// guard, delete.  Items are processed strictly one at a time; a failing
// id is reported and skipped without blocking the ids behind it, and
// earlier deletions are never rolled back by a later failure.
func deleteBatch(ctx context.Context, store bookingStore, ids []uint64) (deleted []uint64, failures []echo.Map) {
	deleted = make([]uint64, 0, len(ids))
	failures = make([]echo.Map, 0)
	for _, id := range ids {
		b, err := store.GetByID(ctx, id)
		if err != nil {
			failures = append(failures, bulkFailure(id, err))
			continue
		}
		if err := booking.EnsureDeletable(b); err != nil {
			failures = append(failures, bulkFailure(id, err))
			continue
		}
		if err := store.Delete(ctx, id); err != nil {
			failures = append(failures, bulkFailure(id, err))
			continue
		}
		deleted = append(deleted, id)
	}
	return deleted, failures
}

// BulkDeleteBookings handles POST /v1/bookings/bulk-delete.  The body is
// {"ids": [..]}, normally the selection from the current list view.
// Each id runs the same per-status delete guard as the single-delete
// endpoint: a booking that is still live fails on its own without
// blocking the rest of the batch.  The response reports how many ids
// succeeded and, per failed id, why.
func (h *BookingHandler) BulkDeleteBookings(c echo.Context) error {
	var body struct {
		IDs []uint64 `json:"ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ids is required"})
	}

	// deduplicate while keeping first-seen order
	seen := make(map[uint64]struct{}, len(body.IDs))
	ids := make([]uint64, 0, len(body.IDs))
	for _, id := range body.IDs {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	deleted, failures := deleteBatch(c.Request().Context(), h.Bookings, ids)

	return c.JSON(http.StatusOK, echo.Map{
		"deleted":  len(deleted),
		"failed":   len(failures),
		"ids":      deleted,
		"failures": failures,
	})
}

func bulkFailure(id uint64, err error) echo.Map {
	msg := "database error"
	if ite := booking.IsInvalidTransition(err); ite != nil {
		msg = ite.Error()
	} else if err == repository.ErrBookingNotFound {
		msg = "booking not found"
	}
	return echo.Map{"id": id, "error": msg}
}
