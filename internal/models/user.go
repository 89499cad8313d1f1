package models

import (
	"database/sql"
	"time"
)

// User is the database representation of a user account.
type User struct {
	UserID       string       `db:"user_id"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	FirstName    string       `db:"first_name"`
	LastName     string       `db:"last_name"`
	Role         string       `db:"role"`
	IsActive     bool         `db:"is_active"`
	CreatedAt    time.Time    `db:"created_at"`
	LastLoginAt  sql.NullTime `db:"last_login_at"`
}
