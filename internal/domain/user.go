package domain

import "errors"

// Store errors shared by the sqlite and redis backends.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("record not found")
)

type User struct {
	ID        string `db:"id" json:"id"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Hash      string `db:"password_hash" json:"password_hash"`
	Remarks   string `db:"remarks" json:"remarks"`
}
