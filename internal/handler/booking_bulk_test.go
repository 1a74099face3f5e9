package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
	"github.com/iliyamo/hotel-reservation-admin/internal/repository"
)

// fakeBookingStore backs deleteBatch tests with an in-memory map.
type fakeBookingStore struct {
	bookings map[uint64]*model.Booking
	deleted  []uint64
}

func (f *fakeBookingStore) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.bookings[id]; !ok {
		return repository.ErrBookingNotFound
	}
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestDeleteBatchMixedOutcomes(t *testing.T) {
	store := &fakeBookingStore{bookings: map[uint64]*model.Booking{
		7: {ID: 7, BookingNumber: "BK-20240501-0A1B2C3D", Status: model.StatusPending},
		9: {ID: 9, BookingNumber: "BK-20240501-4E5F6A7B", Status: model.StatusCancelled},
	}}

	// The live booking and the unknown id come first so their failures
	// must not stop the cancelled booking behind them from being deleted.
	deleted, failures := deleteBatch(context.Background(), store, []uint64{7, 42, 9})

	require.Len(t, deleted, 1)
	assert.Equal(t, uint64(9), deleted[0])

	require.Len(t, failures, 2)
	assert.Equal(t, uint64(7), failures[0]["id"])
	assert.Contains(t, failures[0]["error"], "pending")
	assert.Equal(t, uint64(42), failures[1]["id"])
	assert.Equal(t, "booking not found", failures[1]["error"])

	// only the cancelled booking was removed from the store
	assert.Equal(t, []uint64{9}, store.deleted)
	assert.Contains(t, store.bookings, uint64(7))
	assert.NotContains(t, store.bookings, uint64(9))
}

func TestDeleteBatchSoftTerminalStatusesSucceed(t *testing.T) {
	store := &fakeBookingStore{bookings: map[uint64]*model.Booking{
		1: {ID: 1, Status: model.StatusCancelled},
		2: {ID: 2, Status: model.StatusCheckedOut},
	}}

	deleted, failures := deleteBatch(context.Background(), store, []uint64{1, 2})

	assert.Equal(t, []uint64{1, 2}, deleted)
	assert.Empty(t, failures)
	assert.Empty(t, store.bookings)
}

func TestDeleteBatchAllLiveNothingDeleted(t *testing.T) {
	store := &fakeBookingStore{bookings: map[uint64]*model.Booking{
		1: {ID: 1, Status: model.StatusConfirmed},
		2: {ID: 2, Status: model.StatusCheckedIn},
	}}

	deleted, failures := deleteBatch(context.Background(), store, []uint64{1, 2})

	assert.Empty(t, deleted)
	require.Len(t, failures, 2)
	assert.Len(t, store.bookings, 2)
	assert.Empty(t, store.deleted)
}
