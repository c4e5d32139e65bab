// Package store implements the data access layer of dexkeeper.
//
// Storage is a single SQLite database opened through the pure Go
// modernc.org/sqlite driver. Foreign keys are enforced on every connection.
// An in-memory database (":memory:") is pinned to one connection so that the
// schema is shared by every caller.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├────────────────┬────────────────┬───────────────┬───────────────┤
//	│ CreatureStore  │ TrainerStore   │ RosterStore   │ TagStore      │
//	│      ▼         │      ▼         │      ▼        │      ▼        │
//	│  creatures     │  trainers      │ roster_slots  │  tags         │
//	└────────────────┴────────────────┴───────────────┴───────────────┘
//	                  QueryInterceptor (debug SQL logging)
//
// Tables are created by the migration units in internal/store/migrations,
// which also own the schema_migrations ledger.
//
// # Relations
//
//	creatures.owner_ref    → trainers.id            ON DELETE SET NULL
//	roster_slots.catalog_id → creatures.catalog_id  ON DELETE CASCADE
//
// Deleting a trainer keeps its creatures without owner. Deleting a creature
// removes every roster slot that points to it.
//
// # JSON columns
//
// tags, traits and base_stats are JSON arrays. The tag filter runs one
// EXISTS over json_each per requested tag, so a creature matches only when
// it carries every tag:
//
//	store.ByTags("fire", "flying")
//	→ EXISTS (SELECT 1 FROM json_each(c.tags) WHERE json_each.value = 'fire')
//	  AND EXISTS (SELECT 1 FROM json_each(c.tags) WHERE json_each.value = 'flying')
//
// Filter tags are normalized (trimmed, lowercased, deduplicated) first.
//
// # Query Building
//
// Creature listings use squirrel with functional options:
//
//	creatures, err := s.Creature().List(ctx,
//	    store.BySearch("char"),
//	    store.ByTags("fire"),
//	    store.WithLimit(20),
//	    store.WithOffset(40),
//	)
//	total, err := s.Creature().Count(ctx, store.BySearch("char"), store.ByTags("fire"))
//
// BySearch is a case-insensitive substring match with LIKE wildcards escaped.
// Rows are scanned with sqlx.StructScan into row structs and converted to
// models.
//
// # Roster capacity
//
// RosterStore.Add inserts with INSERT ... SELECT ... WHERE (SELECT COUNT(*)
// FROM roster_slots) < capacity. The check and the write are one statement,
// so concurrent adds cannot overfill the roster. Zero affected rows becomes
// a CapacityExceededError.
//
// # Errors
//
//	ResourceNotFoundError   missing row on Get, Update or Delete
//	ConflictError           unique name violation on trainers and tags
//	UnknownCreatureError    roster slot pointing to a missing creature
//	CapacityExceededError   roster full
//	StoreFailureError       any other driver error
//
// # Imports
//
// CreatureStore.UpsertBatch writes an import batch in one transaction and
// leaves owner_ref untouched on existing rows, so re-importing never drops
// ownership.
package store
