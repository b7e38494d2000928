package entity

import (
	"time"
)

// User is an operator account for the admin panel.
// PasswordHash holds a bcrypt hash; the plaintext never leaves the login and
// registration handlers, and the hash never leaves the repository layer.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
