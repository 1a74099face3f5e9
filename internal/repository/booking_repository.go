package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// BookingRepo provides persistence for bookings.  The status column is
// only ever written with values the lifecycle state machine produced; the
// repository itself never decides transitions.  All timestamp columns are
// stored in UTC (the DSN pins loc=UTC, see database.Open).
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingColumns = `id, booking_number, customer_id, room_id,
	check_in_date, check_out_date, check_in_time, check_out_time,
	adults, children, room_price_at_booking, total_amount,
	payment_method, payment_status, status,
	actual_check_in, room_key, additional_guests,
	actual_check_out, room_condition, damages,
	notes, created_at`

// Create inserts a new booking and populates the generated ID on the
// provided model.  The booking number, snapshot rate and total amount
// must already be set by the booking package; this method stores what it
// is given.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
		(booking_number, customer_id, room_id,
		 check_in_date, check_out_date, check_in_time, check_out_time,
		 adults, children, room_price_at_booking, total_amount,
		 payment_method, payment_status, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		b.BookingNumber, b.CustomerID, b.RoomID,
		b.CheckInDate, b.CheckOutDate, b.CheckInTime, b.CheckOutTime,
		b.Guests.Adults, b.Guests.Children, b.RoomPriceAtBooking, b.TotalAmount,
		b.Payment.Method, string(b.Payment.Status), string(b.Status), b.Notes, b.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID loads a single booking.  ErrBookingNotFound is returned when no
// row matches.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Save writes the full mutable state of a booking back to its row.  The
// domain layer mutates the model (edits, transitions, check-in/out info,
// payment status) and Save persists the result in one statement, keeping
// the caller's check+apply+persist cycle atomic per booking.  The
// booking number and created_at are immutable and deliberately absent
// from the UPDATE.
func (r *BookingRepo) Save(ctx context.Context, b *model.Booking) error {
	guestsJSON, damagesJSON, err := marshalInfoLists(b)
	if err != nil {
		return err
	}
	var (
		actualIn, actualOut    any
		roomKey, roomCondition any
	)
	if b.CheckInInfo != nil {
		actualIn = b.CheckInInfo.ActualCheckIn
		roomKey = b.CheckInInfo.RoomKey
	}
	if b.CheckOutInfo != nil {
		actualOut = b.CheckOutInfo.ActualCheckOut
		roomCondition = string(b.CheckOutInfo.RoomCondition)
	}
	const q = `UPDATE bookings SET
		customer_id = ?, room_id = ?,
		check_in_date = ?, check_out_date = ?, check_in_time = ?, check_out_time = ?,
		adults = ?, children = ?, room_price_at_booking = ?, total_amount = ?,
		payment_method = ?, payment_status = ?, status = ?,
		actual_check_in = ?, room_key = ?, additional_guests = ?,
		actual_check_out = ?, room_condition = ?, damages = ?,
		notes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		b.CustomerID, b.RoomID,
		b.CheckInDate, b.CheckOutDate, b.CheckInTime, b.CheckOutTime,
		b.Guests.Adults, b.Guests.Children, b.RoomPriceAtBooking, b.TotalAmount,
		b.Payment.Method, string(b.Payment.Status), string(b.Status),
		actualIn, roomKey, guestsJSON,
		actualOut, roomCondition, damagesJSON,
		b.Notes,
		b.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL reports zero affected rows both for a missing id and for a
		// no-op update; re-check existence to tell them apart.
		var exists uint64
		if err := r.db.QueryRowContext(ctx, `SELECT id FROM bookings WHERE id = ?`, b.ID).Scan(&exists); err == sql.ErrNoRows {
			return ErrBookingNotFound
		}
	}
	return nil
}

// Delete permanently removes a booking row.  The per-status delete guard
// lives in the booking package; callers must have passed it before
// reaching here.  ErrBookingNotFound is returned when no row matched.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListView returns every booking joined with the customer and room fields
// the list screens need, ordered by creation time ascending.  The stable
// input order matters: the query engine's sort guarantees that rows
// comparing equal on the sort key keep this order.
func (r *BookingRepo) ListView(ctx context.Context) ([]model.BookingView, error) {
	const q = `SELECT b.id, b.booking_number, b.customer_id, b.room_id,
			b.check_in_date, b.check_out_date, b.check_in_time, b.check_out_time,
			b.adults, b.children, b.room_price_at_booking, b.total_amount,
			b.payment_method, b.payment_status, b.status,
			b.actual_check_in, b.room_key, b.additional_guests,
			b.actual_check_out, b.room_condition, b.damages,
			b.notes, b.created_at,
			c.full_name, c.email, rm.room_number
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN rooms rm   ON rm.id = b.room_id
		ORDER BY b.created_at ASC, b.id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var (
		b                       model.Booking
		paymentStatus, status   string
		actualIn, actualOut     sql.NullTime
		roomKey, condition      sql.NullString
		guestsJSON, damagesJSON sql.NullString
		notes                   sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.BookingNumber, &b.CustomerID, &b.RoomID,
		&b.CheckInDate, &b.CheckOutDate, &b.CheckInTime, &b.CheckOutTime,
		&b.Guests.Adults, &b.Guests.Children, &b.RoomPriceAtBooking, &b.TotalAmount,
		&b.Payment.Method, &paymentStatus, &status,
		&actualIn, &roomKey, &guestsJSON,
		&actualOut, &condition, &damagesJSON,
		&notes, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Payment.Status = model.PaymentStatus(paymentStatus)
	b.Status = model.BookingStatus(status)
	b.Notes = notes.String
	if actualIn.Valid {
		b.CheckInInfo = &model.CheckInInfo{
			ActualCheckIn:    actualIn.Time,
			RoomKey:          roomKey.String,
			AdditionalGuests: unmarshalList(guestsJSON),
		}
	}
	if actualOut.Valid {
		b.CheckOutInfo = &model.CheckOutInfo{
			ActualCheckOut: actualOut.Time,
			RoomCondition:  model.RoomCondition(condition.String),
			Damages:        unmarshalList(damagesJSON),
		}
	}
	return &b, nil
}

func scanBookingView(rows *sql.Rows) (model.BookingView, error) {
	var (
		view                    model.BookingView
		paymentStatus, status   string
		actualIn, actualOut     sql.NullTime
		roomKey, condition      sql.NullString
		guestsJSON, damagesJSON sql.NullString
		notes                   sql.NullString
	)
	b := &view.Booking
	err := rows.Scan(
		&b.ID, &b.BookingNumber, &b.CustomerID, &b.RoomID,
		&b.CheckInDate, &b.CheckOutDate, &b.CheckInTime, &b.CheckOutTime,
		&b.Guests.Adults, &b.Guests.Children, &b.RoomPriceAtBooking, &b.TotalAmount,
		&b.Payment.Method, &paymentStatus, &status,
		&actualIn, &roomKey, &guestsJSON,
		&actualOut, &condition, &damagesJSON,
		&notes, &b.CreatedAt,
		&view.CustomerName, &view.CustomerEmail, &view.RoomNumber,
	)
	if err != nil {
		return model.BookingView{}, err
	}
	b.Payment.Status = model.PaymentStatus(paymentStatus)
	b.Status = model.BookingStatus(status)
	b.Notes = notes.String
	if actualIn.Valid {
		b.CheckInInfo = &model.CheckInInfo{
			ActualCheckIn:    actualIn.Time,
			RoomKey:          roomKey.String,
			AdditionalGuests: unmarshalList(guestsJSON),
		}
	}
	if actualOut.Valid {
		b.CheckOutInfo = &model.CheckOutInfo{
			ActualCheckOut: actualOut.Time,
			RoomCondition:  model.RoomCondition(condition.String),
			Damages:        unmarshalList(damagesJSON),
		}
	}
	return view, nil
}

// marshalInfoLists serialises the optional string lists as JSON for the
// additional_guests and damages text columns.  Nil lists are stored as
// SQL NULL.
func marshalInfoLists(b *model.Booking) (guests, damages any, err error) {
	if b.CheckInInfo != nil && len(b.CheckInInfo.AdditionalGuests) > 0 {
		bs, err := json.Marshal(b.CheckInInfo.AdditionalGuests)
		if err != nil {
			return nil, nil, err
		}
		guests = string(bs)
	}
	if b.CheckOutInfo != nil && len(b.CheckOutInfo.Damages) > 0 {
		bs, err := json.Marshal(b.CheckOutInfo.Damages)
		if err != nil {
			return nil, nil, err
		}
		damages = string(bs)
	}
	return guests, damages, nil
}

func unmarshalList(ns sql.NullString) []string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil
	}
	return out
}
