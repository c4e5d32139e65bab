// Package insights computes tag analytics over the creature catalog.
//
// Every computation loads a snapshot of the catalog into a private in-memory
// DuckDB database and runs the aggregations there, so the SQLite store only
// serves one plain read. Averages are rounded to two decimals.
package insights

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"

	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/util"
)

const (
	createCreatures = `CREATE TABLE creatures (
		catalog_id INTEGER PRIMARY KEY,
		base_experience DOUBLE,
		stat_total INTEGER
	)`
	createCreatureTags = `CREATE TABLE creature_tags (
		catalog_id INTEGER NOT NULL,
		tag VARCHAR NOT NULL
	)`

	insertCreature    = `INSERT INTO creatures (catalog_id, base_experience, stat_total) VALUES (?, ?, ?)`
	insertCreatureTag = `INSERT INTO creature_tags (catalog_id, tag) VALUES (?, ?)`

	queryTagStats = `
		SELECT
			t.tag,
			COUNT(DISTINCT t.catalog_id) AS creatures,
			AVG(c.base_experience) AS avg_base_experience,
			AVG(c.stat_total) AS avg_stat_total
		FROM creature_tags t
		JOIN creatures c ON c.catalog_id = t.catalog_id
		GROUP BY t.tag
		ORDER BY creatures DESC, t.tag ASC`

	queryTagPairs = `
		SELECT a.tag, b.tag, COUNT(DISTINCT a.catalog_id) AS creatures
		FROM creature_tags a
		JOIN creature_tags b ON a.catalog_id = b.catalog_id AND a.tag < b.tag
		GROUP BY a.tag, b.tag
		ORDER BY creatures DESC, a.tag ASC, b.tag ASC`
)

// Compute aggregates creatures by tag and by co-occurring tag pair.
func Compute(ctx context.Context, creatures []models.Creature) (*models.TagInsights, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := load(ctx, db, creatures); err != nil {
		return nil, err
	}

	insights := &models.TagInsights{
		Total: len(creatures),
		Tags:  []models.TagStats{},
		Pairs: []models.TagPair{},
	}

	if insights.Tags, err = tagStats(ctx, db); err != nil {
		return nil, err
	}
	if insights.Pairs, err = tagPairs(ctx, db); err != nil {
		return nil, err
	}

	zap.S().Named("insights").Debugw("tag insights computed",
		"creatures", insights.Total, "tags", len(insights.Tags), "pairs", len(insights.Pairs))
	return insights, nil
}

func load(ctx context.Context, db *sql.DB, creatures []models.Creature) error {
	for _, stmt := range []string{createCreatures, createCreatureTags} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create analytics table: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin analytics load: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range creatures {
		var statTotal sql.NullInt64
		if len(c.BaseStats) > 0 {
			statTotal = sql.NullInt64{Int64: int64(c.StatTotal()), Valid: true}
		}
		var baseExperience sql.NullFloat64
		if c.BaseExperience != nil {
			baseExperience = sql.NullFloat64{Float64: *c.BaseExperience, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, insertCreature, c.CatalogID, baseExperience, statTotal); err != nil {
			return fmt.Errorf("failed to load creature %d: %w", c.CatalogID, err)
		}
		for _, tag := range models.NormalizeTags(c.Tags) {
			if _, err := tx.ExecContext(ctx, insertCreatureTag, c.CatalogID, tag); err != nil {
				return fmt.Errorf("failed to load tags of creature %d: %w", c.CatalogID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit analytics load: %w", err)
	}
	return nil
}

func tagStats(ctx context.Context, db *sql.DB) ([]models.TagStats, error) {
	rows, err := db.QueryContext(ctx, queryTagStats)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tags: %w", err)
	}
	defer rows.Close()

	stats := []models.TagStats{}
	for rows.Next() {
		var (
			s             models.TagStats
			count         int64
			avgExperience sql.NullFloat64
			avgStatTotal  sql.NullFloat64
		)
		if err := rows.Scan(&s.Tag, &count, &avgExperience, &avgStatTotal); err != nil {
			return nil, fmt.Errorf("failed to read tag aggregate: %w", err)
		}
		s.Creatures = int(count)
		if avgExperience.Valid {
			s.AvgBaseExperience = util.Ptr(util.Round(avgExperience.Float64))
		}
		if avgStatTotal.Valid {
			s.AvgStatTotal = util.Ptr(util.Round(avgStatTotal.Float64))
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func tagPairs(ctx context.Context, db *sql.DB) ([]models.TagPair, error) {
	rows, err := db.QueryContext(ctx, queryTagPairs)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tag pairs: %w", err)
	}
	defer rows.Close()

	pairs := []models.TagPair{}
	for rows.Next() {
		var (
			p     models.TagPair
			count int64
		)
		if err := rows.Scan(&p.First, &p.Second, &count); err != nil {
			return nil, fmt.Errorf("failed to read tag pair: %w", err)
		}
		p.Creatures = int(count)
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}
