// Package validation provides input validation for signup forms.
package validation

import (
	"errors"
	"regexp"
)

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z ]{3,20}$`)
	passwordRE = regexp.MustCompile(`^.{3,20}$`)
	emailRE    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// ValidateUsername checks that a username is 3-20 characters of letters and
// spaces.
func ValidateUsername(username string) error {
	if !usernameRE.MatchString(username) {
		return errors.New("That's not a valid username.")
	}
	return nil
}

// ValidatePassword checks that a password is 3-20 characters; any characters
// are allowed.
func ValidatePassword(password string) error {
	if !passwordRE.MatchString(password) {
		return errors.New("That's not a valid password.")
	}
	return nil
}

// ValidateEmail checks the permissive local@domain.tld shape. This is not a
// full RFC 5322 validator and is not meant to be one.
func ValidateEmail(email string) error {
	if !emailRE.MatchString(email) {
		return errors.New("That's not a valid email.")
	}
	return nil
}
