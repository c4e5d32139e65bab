package models

import "time"

// Tag describes one of the tags creatures may carry.
type Tag struct {
	ID          int64
	Name        string
	Color       *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
