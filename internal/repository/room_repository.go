package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// RoomRepo reads the room directory.  The reservation core consumes
// rooms read-only: rates and descriptive fields are loaded here, while
// the availability status column is owned and written by a separate
// collaborator reacting to booking events.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `id, room_number, room_type, floor, base_price,
	hourly_first, hourly_additional, max_occupancy, status, created_at`

// List returns all rooms ordered by room number.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads a single room.  ErrRoomNotFound is returned when no row
// matches.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	room, err := scanRoom(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func scanRoom(row rowScanner) (model.Room, error) {
	var (
		room           model.Room
		hourlyFirst    sql.NullInt64
		hourlyAdd      sql.NullInt64
	)
	err := row.Scan(
		&room.ID, &room.RoomNumber, &room.RoomType, &room.Floor, &room.BasePrice,
		&hourlyFirst, &hourlyAdd, &room.MaxOccupancy, &room.Status, &room.CreatedAt,
	)
	if err != nil {
		return model.Room{}, err
	}
	// NULL hourly columns stay zero; the pricing engine substitutes the
	// documented defaults when building a rate table.
	room.HourlyPrice = model.HourlyPrice{
		FirstHour:      hourlyFirst.Int64,
		AdditionalHour: hourlyAdd.Int64,
	}
	return room, nil
}
