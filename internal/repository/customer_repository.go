package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// CustomerRepo provides the customer directory: listing for pickers and
// search, lookup when creating bookings, and simple creation from the
// admin form.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo returns a new CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// List returns all customers ordered by name.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	const q = `SELECT id, full_name, email, phone, created_at FROM customers ORDER BY full_name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Customer, 0)
	for rows.Next() {
		var (
			c     model.Customer
			phone sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Phone = phone.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads a single customer.  ErrCustomerNotFound is returned when
// no row matches.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	const q = `SELECT id, full_name, email, phone, created_at FROM customers WHERE id = ?`
	var (
		c     model.Customer
		phone sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.FullName, &c.Email, &phone, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	c.Phone = phone.String
	return &c, nil
}

// Create inserts a customer and populates the generated ID.  Email is
// normalised to lower case before storage.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	const q = `INSERT INTO customers (full_name, email, phone) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.FullName, c.Email, c.Phone)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	// Query back to pick up the DB-assigned creation timestamp.
	const sel = `SELECT created_at FROM customers WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, sel, c.ID).Scan(&c.CreatedAt); err != nil {
		return err
	}
	return nil
}
