package migrations

import (
	"context"
	"database/sql"
)

// Units returns the built-in schema history in declaration order.
func Units() []Unit {
	return []Unit{
		{
			Name: "001_create_tags_table",
			Up: execAll(`
				CREATE TABLE IF NOT EXISTS tags (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL UNIQUE,
					color TEXT,
					description TEXT,
					created_at INTEGER NOT NULL,
					updated_at INTEGER NOT NULL
				)`),
			Down: execAll(`DROP TABLE IF EXISTS tags`),
		},
		{
			Name: "002_create_trainers_table",
			Up: execAll(`
				CREATE TABLE IF NOT EXISTS trainers (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					hometown TEXT,
					badge_count INTEGER NOT NULL DEFAULT 0 CHECK (badge_count BETWEEN 0 AND 8),
					bio TEXT,
					created_at INTEGER NOT NULL,
					updated_at INTEGER NOT NULL
				)`),
			Down: execAll(`DROP TABLE IF EXISTS trainers`),
		},
		{
			Name: "003_create_creatures_table",
			Up: execAll(`
				CREATE TABLE IF NOT EXISTS creatures (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					catalog_id INTEGER NOT NULL UNIQUE CHECK (catalog_id > 0),
					name TEXT NOT NULL,
					height REAL CHECK (height IS NULL OR height >= 0),
					weight REAL CHECK (weight IS NULL OR weight >= 0),
					base_experience REAL CHECK (base_experience IS NULL OR base_experience >= 0),
					image_ref TEXT,
					tags TEXT NOT NULL DEFAULT '[]' CHECK (json_valid(tags)),
					traits TEXT NOT NULL DEFAULT '[]' CHECK (json_valid(traits)),
					base_stats TEXT NOT NULL DEFAULT '[]' CHECK (json_valid(base_stats)),
					owner_ref INTEGER REFERENCES trainers (id) ON DELETE SET NULL ON UPDATE CASCADE,
					created_at INTEGER NOT NULL,
					updated_at INTEGER NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_creatures_name ON creatures (name)`,
				`CREATE INDEX IF NOT EXISTS idx_creatures_owner ON creatures (owner_ref)`,
			),
			Down: execAll(`DROP TABLE IF EXISTS creatures`),
		},
		{
			Name: "004_add_trainer_portrait",
			Up: func(ctx context.Context, tx *sql.Tx) error {
				exists, err := columnExists(ctx, tx, "trainers", "portrait_ref")
				if err != nil || exists {
					return err
				}
				_, err = tx.ExecContext(ctx, `ALTER TABLE trainers ADD COLUMN portrait_ref TEXT`)
				return err
			},
			Down: func(ctx context.Context, tx *sql.Tx) error {
				exists, err := columnExists(ctx, tx, "trainers", "portrait_ref")
				if err != nil || !exists {
					return err
				}
				_, err = tx.ExecContext(ctx, `ALTER TABLE trainers DROP COLUMN portrait_ref`)
				return err
			},
		},
		{
			Name: "005_add_unique_trainer_name",
			Up: func(ctx context.Context, tx *sql.Tx) error {
				exists, err := indexExists(ctx, tx, "unique_trainer_name")
				if err != nil || exists {
					return err
				}
				// keep the oldest trainer of every duplicated name
				return execAll(
					`DELETE FROM trainers WHERE id NOT IN (SELECT MIN(id) FROM trainers GROUP BY name)`,
					`CREATE UNIQUE INDEX unique_trainer_name ON trainers (name)`,
				)(ctx, tx)
			},
			Down: execAll(`DROP INDEX IF EXISTS unique_trainer_name`),
		},
		{
			Name: "006_create_roster_slots_table",
			Up: execAll(`
				CREATE TABLE IF NOT EXISTS roster_slots (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					catalog_id INTEGER NOT NULL REFERENCES creatures (catalog_id) ON DELETE CASCADE ON UPDATE CASCADE,
					nickname TEXT,
					role TEXT,
					notes TEXT CHECK (notes IS NULL OR length(notes) <= 255),
					created_at INTEGER NOT NULL,
					updated_at INTEGER NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_roster_slots_catalog ON roster_slots (catalog_id)`,
			),
			Down: execAll(`DROP TABLE IF EXISTS roster_slots`),
		},
	}
}

func execAll(statements ...string) Action {
	return func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	}
}

func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	var count int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column,
	).Scan(&count)
	return count > 0, err
}

func indexExists(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	var count int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?`, name,
	).Scan(&count)
	return count > 0, err
}
