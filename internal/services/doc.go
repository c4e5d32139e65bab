// Package services implements the business logic layer of dexkeeper.
//
// Services sit between the HTTP handlers (or the CLI) and the store. They
// normalize and validate input, enforce domain rules and return the typed
// errors of pkg/errors, which the handlers map to status codes.
//
// # Service Dependency Graph
//
//	Handlers / CLI
//	    │
//	    ▼
//	Services Layer
//	    ├── CreatureService ──► Store
//	    ├── TrainerService ───► Store
//	    ├── TagService ───────► Store
//	    ├── RosterService ────► Store
//	    ├── InsightsService ──► Store, insights (DuckDB)
//	    ├── SeedService ──────► Store, Importer
//	    └── ImportJobService ─► Scheduler, SeedService
//
// # Validation
//
// Inputs carry go-playground/validator tags. The first failing field is
// reported as a ValidationError named after its json field:
//
//	catalogId: must be greater than 0
//	tags: must have at least 1 entries
//
// Tags are trimmed, lowercased and deduplicated before validation, so
// ["Fire", " fire "] is a single tag.
//
// # Roster
//
// RosterService.Add rejects in this order:
//
//	roster already full             → CapacityExceededError
//	catalogId missing or not > 0    → ValidationError
//	catalogId above the max id      → UnknownCreatureError
//	creature not in the catalog     → UnknownCreatureError
//
// The count check is a fast path. The insert repeats it atomically.
//
// # Seeding
//
// SeedService.Run upserts the default tag descriptors and trainers by name,
// then imports the remote catalog through the importer. Transient remote
// failures (5xx, 429, transport errors) are retried with exponential backoff
// up to the configured number of attempts. Other errors stop at once.
// Every write is an upsert, so running the seed again is always safe.
//
// # Import jobs
//
// ImportJobService submits one seed run to the scheduler and tracks it:
//
//	┌──────┐  Start  ┌─────────┐  done  ┌───────────┐
//	│ idle │────────►│ running │───────►│ completed │
//	└──────┘         └─────────┘        └───────────┘
//	                      │ error / Stop
//	                      ▼
//	                 ┌─────────┐
//	                 │  error  │
//	                 └─────────┘
//
// Start while running returns a ConflictError. Stop cancels the run
// through its future and waits for it to settle.
package services
