package types

import "time"

// User is content-addressed: UserKey is derived from the normalized email,
// so it is immutable for the lifetime of the row. Only the name fields are
// mutable.
type User struct {
	UserKey   string    `json:"user_key"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
