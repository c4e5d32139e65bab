package models

import "time"

// LedgerEntry records a migration unit that has been applied.
type LedgerEntry struct {
	Name      string
	AppliedAt time.Time
}
