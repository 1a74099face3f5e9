package model

import "time"

// Customer is a guest record referenced by bookings.  The reservation core
// resolves customers for display and search but does not own their
// lifecycle beyond simple creation.
//
// Fields:
//  ID        – primary key identifier.
//  FullName  – display name, searched by list views.
//  Email     – contact email, searched by list views.
//  Phone     – contact phone number.
//  CreatedAt – creation timestamp.
type Customer struct {
	ID        uint64    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
