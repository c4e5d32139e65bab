package models

import "time"

// SeedReport summarizes one seed run.
type SeedReport struct {
	RunID     string
	Tags      int
	Trainers  int
	Creatures int
	Attempts  int
	Duration  time.Duration
}

type ImportJobState string

const (
	ImportJobStateIdle      ImportJobState = "idle"
	ImportJobStateRunning   ImportJobState = "running"
	ImportJobStateCompleted ImportJobState = "completed"
	ImportJobStateError     ImportJobState = "error"
)

// ImportJob is the state of the background seed run started through the API.
type ImportJob struct {
	State      ImportJobState
	StartedAt  *time.Time
	FinishedAt *time.Time
	Report     *SeedReport
	Error      error
}
