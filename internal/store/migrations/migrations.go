package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/dexkeeper/internal/metrics"
	"github.com/kubev2v/dexkeeper/internal/models"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

const ledgerTable = "schema_migrations"

type Direction string

const (
	Forward Direction = "forward"
	Reverse Direction = "reverse"
)

// ParseDirection accepts forward/reverse and the up/down aliases.
// An empty token means forward.
func ParseDirection(token string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "forward", "up":
		return Forward, nil
	case "reverse", "down":
		return Reverse, nil
	default:
		return "", srvErrors.NewValidationError("direction", fmt.Sprintf("invalid direction %q: must be forward or reverse", token))
	}
}

// Action changes the schema inside the unit's transaction. Actions must be
// safe to re-run.
type Action func(ctx context.Context, tx *sql.Tx) error

// Unit is one named schema change.
type Unit struct {
	Name string
	Up   Action
	Down Action
}

func (u Unit) action(dir Direction) Action {
	if dir == Reverse {
		return u.Down
	}
	return u.Up
}

type UnitStatus struct {
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

type Engine struct {
	db      *sql.DB
	units   []Unit
	metrics *metrics.Metrics
}

type Option func(*Engine)

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine validates that unit names are unique and strictly increasing.
func NewEngine(db *sql.DB, units []Unit, opts ...Option) (*Engine, error) {
	for i, u := range units {
		if u.Name == "" {
			return nil, fmt.Errorf("migration unit at position %d has no name", i)
		}
		if i > 0 && units[i-1].Name >= u.Name {
			return nil, fmt.Errorf("migration unit %q must sort after %q", u.Name, units[i-1].Name)
		}
	}

	e := &Engine{db: db, units: slices.Clone(units)}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run brings every unit to the state requested by dir. Each unit is applied
// together with its ledger update in its own transaction. On failure the
// engine stops; units committed before the failure stay committed.
func (e *Engine) Run(ctx context.Context, dir Direction) error {
	logger := zap.S().Named("migrations")

	if err := e.ensureLedger(ctx); err != nil {
		return err
	}

	ledger, err := e.Ledger(ctx)
	if err != nil {
		return err
	}
	applied := make(map[string]struct{}, len(ledger))
	for _, entry := range ledger {
		applied[entry.Name] = struct{}{}
	}

	units := slices.Clone(e.units)
	if dir == Reverse {
		slices.Reverse(units)
	}

	for _, u := range units {
		action := u.action(dir)
		if action == nil {
			logger.Warnw("migration unit has no action for direction, skipping", "unit", u.Name, "direction", dir)
			continue
		}

		_, isApplied := applied[u.Name]
		if dir == Forward && isApplied {
			logger.Debugw("skip migration unit, already applied", "unit", u.Name)
			continue
		}
		if dir == Reverse && !isApplied {
			logger.Debugw("skip migration unit, not applied", "unit", u.Name)
			continue
		}

		logger.Infow("running migration unit", "unit", u.Name, "direction", dir)
		if err := e.apply(ctx, u.Name, dir, action); err != nil {
			e.metrics.ObserveMigration(string(dir), false)
			return srvErrors.NewMigrationFailedError(u.Name, string(dir), err)
		}
		e.metrics.ObserveMigration(string(dir), true)
	}

	logger.Infow("migrations completed", "direction", dir)
	return nil
}

func (e *Engine) apply(ctx context.Context, name string, dir Direction, action Action) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := action(ctx, tx); err != nil {
		return err
	}

	if dir == Forward {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO `+ledgerTable+` (name, applied_at) VALUES (?, ?)
			ON CONFLICT (name) DO UPDATE SET applied_at = excluded.applied_at`,
			name, time.Now().UTC().UnixMilli(),
		)
	} else {
		_, err = tx.ExecContext(ctx, `DELETE FROM `+ledgerTable+` WHERE name = ?`, name)
	}
	if err != nil {
		return fmt.Errorf("update ledger: %w", err)
	}

	return tx.Commit()
}

func (e *Engine) ensureLedger(ctx context.Context) error {
	_, err := e.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+ledgerTable+` (
			name TEXT NOT NULL PRIMARY KEY,
			applied_at INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure migration ledger: %w", err)
	}
	return nil
}

// Ledger returns the applied units ordered by name.
func (e *Engine) Ledger(ctx context.Context) ([]models.LedgerEntry, error) {
	if err := e.ensureLedger(ctx); err != nil {
		return nil, err
	}

	rows, err := e.db.QueryContext(ctx, `SELECT name, applied_at FROM `+ledgerTable+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("read migration ledger: %w", err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var (
			name      string
			appliedAt int64
		)
		if err := rows.Scan(&name, &appliedAt); err != nil {
			return nil, fmt.Errorf("read migration ledger: %w", err)
		}
		entries = append(entries, models.LedgerEntry{Name: name, AppliedAt: time.UnixMilli(appliedAt).UTC()})
	}
	return entries, rows.Err()
}

// Status reports every known unit with its ledger state, in declaration order.
func (e *Engine) Status(ctx context.Context) ([]UnitStatus, error) {
	ledger, err := e.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	appliedAt := make(map[string]time.Time, len(ledger))
	for _, entry := range ledger {
		appliedAt[entry.Name] = entry.AppliedAt
	}

	statuses := make([]UnitStatus, 0, len(e.units))
	for _, u := range e.units {
		status := UnitStatus{Name: u.Name}
		if t, ok := appliedAt[u.Name]; ok {
			status.Applied = true
			status.AppliedAt = &t
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Run applies every built-in unit that is not yet applied.
func Run(ctx context.Context, db *sql.DB, opts ...Option) error {
	return Migrate(ctx, db, Forward, opts...)
}

// Migrate runs the built-in units in the given direction.
func Migrate(ctx context.Context, db *sql.DB, dir Direction, opts ...Option) error {
	engine, err := NewEngine(db, Units(), opts...)
	if err != nil {
		return err
	}
	return engine.Run(ctx, dir)
}
