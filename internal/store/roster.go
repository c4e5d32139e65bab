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

type rosterRow struct {
	ID               int64          `db:"id"`
	CatalogID        int            `db:"catalog_id"`
	Nickname         sql.NullString `db:"nickname"`
	Role             sql.NullString `db:"role"`
	Notes            sql.NullString `db:"notes"`
	CreatedAt        int64          `db:"created_at"`
	UpdatedAt        int64          `db:"updated_at"`
	CreatureName     sql.NullString `db:"creature_name"`
	CreatureImageRef sql.NullString `db:"creature_image_ref"`
	CreatureTags     sql.NullString `db:"creature_tags"`
}

func (r rosterRow) toModel() (models.RosterSlot, error) {
	slot := models.RosterSlot{
		ID:        r.ID,
		CatalogID: r.CatalogID,
		Nickname:  nullString(r.Nickname),
		Role:      nullString(r.Role),
		Notes:     nullString(r.Notes),
		CreatedAt: fromMillis(r.CreatedAt),
		UpdatedAt: fromMillis(r.UpdatedAt),
	}
	if r.CreatureName.Valid {
		summary := &models.CreatureSummary{
			Name:     r.CreatureName.String,
			ImageRef: nullString(r.CreatureImageRef),
			Tags:     []string{},
		}
		if err := fromJSON(r.CreatureTags.String, &summary.Tags); err != nil {
			return slot, fmt.Errorf("failed to decode tags of roster slot %d: %w", r.ID, err)
		}
		slot.Creature = summary
	}
	return slot, nil
}

// RosterStore persists the capacity-bounded roster.
type RosterStore struct {
	db QueryInterceptor
}

func NewRosterStore(db QueryInterceptor) *RosterStore {
	return &RosterStore{db: db}
}

func (s *RosterStore) selectBuilder() sq.SelectBuilder {
	return sq.Select(
		"r.id",
		"r.catalog_id",
		"r.nickname",
		"r.role",
		"r.notes",
		"r.created_at",
		"r.updated_at",
		"c.name AS creature_name",
		"c.image_ref AS creature_image_ref",
		"c.tags AS creature_tags",
	).From("roster_slots r").
		LeftJoin("creatures c ON c.catalog_id = r.catalog_id")
}

func (s *RosterStore) query(ctx context.Context, builder sq.SelectBuilder) ([]models.RosterSlot, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, srvErrors.NewStoreFailureError("list roster", err)
	}
	defer rows.Close()

	var records []rosterRow
	if err := sqlx.StructScan(rows, &records); err != nil {
		return nil, srvErrors.NewStoreFailureError("scan roster", err)
	}

	slots := make([]models.RosterSlot, 0, len(records))
	for _, r := range records {
		slot, err := r.toModel()
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// List returns the roster in insertion order.
func (s *RosterStore) List(ctx context.Context) ([]models.RosterSlot, error) {
	return s.query(ctx, s.selectBuilder().OrderBy("r.created_at ASC", "r.id ASC"))
}

func (s *RosterStore) Get(ctx context.Context, id int64) (*models.RosterSlot, error) {
	slots, err := s.query(ctx, s.selectBuilder().Where(sq.Eq{"r.id": id}).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, srvErrors.NewRosterSlotNotFoundError(id)
	}
	return &slots[0], nil
}

func (s *RosterStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, queryCountRosterSlots).Scan(&count); err != nil {
		return 0, srvErrors.NewStoreFailureError("count roster", err)
	}
	return count, nil
}

// Add inserts the slot unless the roster already holds capacity slots.
func (s *RosterStore) Add(ctx context.Context, slot models.RosterSlot, capacity int) (*models.RosterSlot, error) {
	now := nowMillis()
	res, err := s.db.ExecContext(ctx, queryInsertRosterSlot,
		slot.CatalogID, slot.Nickname, slot.Role, slot.Notes, now, now, capacity,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, srvErrors.NewUnknownCreatureError(slot.CatalogID, "not found in local catalog")
		}
		return nil, srvErrors.NewStoreFailureError("add roster slot", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, srvErrors.NewStoreFailureError("add roster slot", err)
	}
	if affected == 0 {
		return nil, srvErrors.NewCapacityExceededError(capacity)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, srvErrors.NewStoreFailureError("add roster slot", err)
	}
	return s.Get(ctx, id)
}

func (s *RosterStore) Update(ctx context.Context, slot models.RosterSlot) (*models.RosterSlot, error) {
	res, err := s.db.ExecContext(ctx, queryUpdateRosterSlot,
		slot.CatalogID, slot.Nickname, slot.Role, slot.Notes, nowMillis(), slot.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, srvErrors.NewUnknownCreatureError(slot.CatalogID, "not found in local catalog")
		}
		return nil, srvErrors.NewStoreFailureError(fmt.Sprintf("update roster slot %d", slot.ID), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, srvErrors.NewStoreFailureError(fmt.Sprintf("update roster slot %d", slot.ID), err)
	}
	if affected == 0 {
		return nil, srvErrors.NewRosterSlotNotFoundError(slot.ID)
	}
	return s.Get(ctx, slot.ID)
}

func (s *RosterStore) Remove(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, queryDeleteRosterSlot, id)
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("remove roster slot %d", id), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("remove roster slot %d", id), err)
	}
	if affected == 0 {
		return srvErrors.NewRosterSlotNotFoundError(id)
	}
	return nil
}
