// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// reservedUsernames are rejected by exact literal match. The check is
// deliberately case-sensitive over these three forms only; other casings
// such as "aDmin" pass.
var reservedUsernames = map[string]struct{}{
	"admin": {},
	"Admin": {},
	"ADMIN": {},
}

// ValidateUsername checks if a username meets requirements. The checks run
// in a fixed order so the first failing rule decides the error message.
func ValidateUsername(username string) error {
	if len(username) > 15 {
		return fmt.Errorf("username cannot be more than 15 characters")
	}

	if len(username) < 3 {
		return fmt.Errorf("username cannot be less than 3 characters")
	}

	if _, reserved := reservedUsernames[username]; reserved {
		return fmt.Errorf("username cannot be %s", username)
	}

	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username cannot contain special characters")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}
