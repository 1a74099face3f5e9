// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// string matching: a missing booking maps to a 404 while an arbitrary
// database failure stays a 500 with a generic message.
package repository

import "errors"

// ErrBookingNotFound indicates that no booking row matched the given id.
var ErrBookingNotFound = errors.New("booking not found")

// ErrRoomNotFound indicates that no room row matched the given id.
var ErrRoomNotFound = errors.New("room not found")

// ErrCustomerNotFound indicates that no customer row matched the given id.
var ErrCustomerNotFound = errors.New("customer not found")
