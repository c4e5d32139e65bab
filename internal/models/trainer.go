package models

import "time"

const MaxBadgeCount = 8

type Trainer struct {
	ID          int64
	Name        string
	Hometown    *string
	BadgeCount  int
	Bio         *string
	PortraitRef *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
