package models

import "time"

const (
	// RosterCapacity is the maximum number of slots the roster can hold.
	RosterCapacity = 6
	// MaxNotesLength is the maximum length of a roster slot's notes.
	MaxNotesLength = 255
)

type RosterSlot struct {
	ID        int64
	CatalogID int
	Nickname  *string
	Role      *string
	Notes     *string
	Creature  *CreatureSummary
	CreatedAt time.Time
	UpdatedAt time.Time
}
