package models

import (
	"errors"
)

// ErrUsernameTaken is returned when a signup collides with an existing
// username. Uniqueness is enforced by the database index, so concurrent
// signups cannot both succeed.
var ErrUsernameTaken = errors.New("username already exists")
