package entity

import (
	"time"
)

// Post is a blog entry managed from the admin dashboard.
type Post struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
