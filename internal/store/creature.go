package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/kubev2v/dexkeeper/internal/models"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

var creatureColumns = []string{
	"c.id",
	"c.catalog_id",
	"c.name",
	"c.height",
	"c.weight",
	"c.base_experience",
	"c.image_ref",
	"c.tags",
	"c.traits",
	"c.base_stats",
	"c.owner_ref",
	"c.created_at",
	"c.updated_at",
}

type creatureRow struct {
	ID             int64           `db:"id"`
	CatalogID      int             `db:"catalog_id"`
	Name           string          `db:"name"`
	Height         sql.NullFloat64 `db:"height"`
	Weight         sql.NullFloat64 `db:"weight"`
	BaseExperience sql.NullFloat64 `db:"base_experience"`
	ImageRef       sql.NullString  `db:"image_ref"`
	Tags           string          `db:"tags"`
	Traits         string          `db:"traits"`
	BaseStats      string          `db:"base_stats"`
	OwnerRef       sql.NullInt64   `db:"owner_ref"`
	CreatedAt      int64           `db:"created_at"`
	UpdatedAt      int64           `db:"updated_at"`
}

func (r creatureRow) toModel() (models.Creature, error) {
	c := models.Creature{
		ID:             r.ID,
		CatalogID:      r.CatalogID,
		Name:           r.Name,
		Height:         nullFloat(r.Height),
		Weight:         nullFloat(r.Weight),
		BaseExperience: nullFloat(r.BaseExperience),
		ImageRef:       nullString(r.ImageRef),
		OwnerRef:       nullInt(r.OwnerRef),
		Tags:           []string{},
		Traits:         []models.Trait{},
		BaseStats:      []models.BaseStat{},
		CreatedAt:      fromMillis(r.CreatedAt),
		UpdatedAt:      fromMillis(r.UpdatedAt),
	}
	if err := fromJSON(r.Tags, &c.Tags); err != nil {
		return c, fmt.Errorf("failed to decode tags of creature %d: %w", r.CatalogID, err)
	}
	if err := fromJSON(r.Traits, &c.Traits); err != nil {
		return c, fmt.Errorf("failed to decode traits of creature %d: %w", r.CatalogID, err)
	}
	if err := fromJSON(r.BaseStats, &c.BaseStats); err != nil {
		return c, fmt.Errorf("failed to decode base stats of creature %d: %w", r.CatalogID, err)
	}
	return c, nil
}

type creatureJSON struct {
	tags      string
	traits    string
	baseStats string
}

func encodeCreatureJSON(c models.Creature) (creatureJSON, error) {
	var (
		out creatureJSON
		err error
	)
	tags := models.NormalizeTags(c.Tags)
	traits := c.Traits
	if traits == nil {
		traits = []models.Trait{}
	}
	stats := c.BaseStats
	if stats == nil {
		stats = []models.BaseStat{}
	}
	if out.tags, err = toJSON(tags); err != nil {
		return out, err
	}
	if out.traits, err = toJSON(traits); err != nil {
		return out, err
	}
	if out.baseStats, err = toJSON(stats); err != nil {
		return out, err
	}
	return out, nil
}

// CreatureStore persists the creature catalog.
type CreatureStore struct {
	db QueryInterceptor
}

func NewCreatureStore(db QueryInterceptor) *CreatureStore {
	return &CreatureStore{db: db}
}

// List returns the creatures matching opts ordered by catalog id.
func (s *CreatureStore) List(ctx context.Context, opts ...ListOption) ([]models.Creature, error) {
	builder := sq.Select(creatureColumns...).From("creatures c")

	for _, opt := range opts {
		builder = opt(builder)
	}
	builder = builder.OrderBy("c.catalog_id ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, srvErrors.NewStoreFailureError("list creatures", err)
	}
	defer rows.Close()

	var records []creatureRow
	if err := sqlx.StructScan(rows, &records); err != nil {
		return nil, srvErrors.NewStoreFailureError("scan creatures", err)
	}

	creatures := make([]models.Creature, 0, len(records))
	for _, r := range records {
		c, err := r.toModel()
		if err != nil {
			return nil, err
		}
		creatures = append(creatures, c)
	}

	return creatures, nil
}

// Count returns the number of creatures matching the filter options.
// Pagination options must not be passed.
func (s *CreatureStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("creatures c")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, srvErrors.NewStoreFailureError("count creatures", err)
	}
	return count, nil
}

// Get returns the creature with the given catalog id.
func (s *CreatureStore) Get(ctx context.Context, catalogID int) (*models.Creature, error) {
	creatures, err := s.List(ctx, byCatalogID(catalogID), WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(creatures) == 0 {
		return nil, srvErrors.NewCreatureNotFoundError(catalogID)
	}
	return &creatures[0], nil
}

func (s *CreatureStore) Exists(ctx context.Context, catalogID int) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, queryCreatureExists, catalogID).Scan(&exists); err != nil {
		return false, srvErrors.NewStoreFailureError("check creature", err)
	}
	return exists, nil
}

// Upsert inserts the creature or overwrites every mutable field of the row
// sharing its catalog id.
func (s *CreatureStore) Upsert(ctx context.Context, c models.Creature) (*models.Creature, error) {
	encoded, err := encodeCreatureJSON(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode creature %d: %w", c.CatalogID, err)
	}

	now := nowMillis()
	_, err = s.db.ExecContext(ctx, queryUpsertCreature,
		c.CatalogID,
		c.Name,
		c.Height,
		c.Weight,
		c.BaseExperience,
		c.ImageRef,
		encoded.tags,
		encoded.traits,
		encoded.baseStats,
		c.OwnerRef,
		now,
		now,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, srvErrors.NewValidationError("ownerRef", "trainer does not exist")
		}
		return nil, srvErrors.NewStoreFailureError(fmt.Sprintf("upsert creature %d", c.CatalogID), err)
	}

	return s.Get(ctx, c.CatalogID)
}

// UpsertBatch upserts imported creatures in a single transaction. Ownership
// of existing rows is preserved.
func (s *CreatureStore) UpsertBatch(ctx context.Context, batch []models.Creature) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, srvErrors.NewStoreFailureError("begin creature batch", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, queryUpsertImportedCreature)
	if err != nil {
		return 0, srvErrors.NewStoreFailureError("prepare creature batch", err)
	}
	defer stmt.Close()

	now := nowMillis()
	for _, c := range batch {
		encoded, err := encodeCreatureJSON(c)
		if err != nil {
			return 0, fmt.Errorf("failed to encode creature %d: %w", c.CatalogID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			c.CatalogID,
			c.Name,
			c.Height,
			c.Weight,
			c.BaseExperience,
			c.ImageRef,
			encoded.tags,
			encoded.traits,
			encoded.baseStats,
			now,
			now,
		); err != nil {
			return 0, srvErrors.NewStoreFailureError(fmt.Sprintf("upsert creature %d", c.CatalogID), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, srvErrors.NewStoreFailureError("commit creature batch", err)
	}
	return len(batch), nil
}

// Delete removes the creature. Roster slots referencing it are removed by the
// foreign key cascade.
func (s *CreatureStore) Delete(ctx context.Context, catalogID int) error {
	res, err := s.db.ExecContext(ctx, queryDeleteCreature, catalogID)
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("delete creature %d", catalogID), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("delete creature %d", catalogID), err)
	}
	if affected == 0 {
		return srvErrors.NewCreatureNotFoundError(catalogID)
	}
	return nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func byCatalogID(catalogID int) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"c.catalog_id": catalogID})
	}
}

// BySearch keeps creatures whose name contains term. The match is
// case-insensitive for ASCII letters.
func BySearch(term string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if term == "" {
			return b
		}
		return b.Where(sq.Expr(`c.name LIKE ? ESCAPE '\'`, "%"+escapeLike(term)+"%"))
	}
}

// ByTags keeps creatures carrying every one of tags.
func ByTags(tags ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		for _, tag := range models.NormalizeTags(tags) {
			b = b.Where(sq.Expr(
				`EXISTS (SELECT 1 FROM json_each(c.tags) WHERE json_each.value = ?)`,
				tag,
			))
		}
		return b
	}
}

// ByOwner keeps creatures owned by the given trainer.
func ByOwner(trainerID int64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"c.owner_ref": trainerID})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

// WithOffset skips the first offset rows. SQLite requires a limit to be set as well.
func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}
