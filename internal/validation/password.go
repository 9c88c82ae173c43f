package validation

import "errors"

var ErrWeakPassword = errors.New("password must be at least 12 characters")

func ValidatePassword(password string) error {
	if len(password) < 12 {
		return ErrWeakPassword
	}
	return nil
}
