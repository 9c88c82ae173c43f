package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id"`
	Email        *string   `db:"email"` // Nullable: imported accounts may have no address on file
	Name         *string   `db:"name"`
	PasswordHash *string   `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) HasEmail() bool {
	return u.Email != nil && *u.Email != ""
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// DisplayName returns the user's name for email greetings, falling back to
// "there" when no name is registered.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return "there"
}
