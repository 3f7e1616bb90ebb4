// Package models defines server-side data models persisted in the database.
package models

// User is a registered account. Email is unique and matched
// case-insensitively at login. PasswordHash is a bcrypt hash.
// Optional profile fields are empty strings when unset; PageImage holds the
// object-storage key of the current profile photo, or "" when there is none.
type User struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	City         string `db:"city"`
	State        string `db:"state"`
	Country      string `db:"country"`
	Birthday     string `db:"birthday"`
	PageImage    string `db:"page_image"`
	Discipline   string `db:"discipline"`
	About        string `db:"about"`
	Award        string `db:"award"`
}
