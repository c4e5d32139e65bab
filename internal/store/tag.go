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

type tagRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Color       sql.NullString `db:"color"`
	Description sql.NullString `db:"description"`
	CreatedAt   int64          `db:"created_at"`
	UpdatedAt   int64          `db:"updated_at"`
}

func (r tagRow) toModel() models.Tag {
	return models.Tag{
		ID:          r.ID,
		Name:        r.Name,
		Color:       nullString(r.Color),
		Description: nullString(r.Description),
		CreatedAt:   fromMillis(r.CreatedAt),
		UpdatedAt:   fromMillis(r.UpdatedAt),
	}
}

// TagStore persists tag descriptors.
type TagStore struct {
	db QueryInterceptor
}

func NewTagStore(db QueryInterceptor) *TagStore {
	return &TagStore{db: db}
}

func (s *TagStore) query(ctx context.Context, builder sq.SelectBuilder) ([]models.Tag, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, srvErrors.NewStoreFailureError("list tags", err)
	}
	defer rows.Close()

	var records []tagRow
	if err := sqlx.StructScan(rows, &records); err != nil {
		return nil, srvErrors.NewStoreFailureError("scan tags", err)
	}

	tags := make([]models.Tag, 0, len(records))
	for _, r := range records {
		tags = append(tags, r.toModel())
	}
	return tags, nil
}

func (s *TagStore) selectBuilder() sq.SelectBuilder {
	return sq.Select("id", "name", "color", "description", "created_at", "updated_at").From("tags")
}

func (s *TagStore) List(ctx context.Context) ([]models.Tag, error) {
	return s.query(ctx, s.selectBuilder().OrderBy("name ASC"))
}

func (s *TagStore) Get(ctx context.Context, id int64) (*models.Tag, error) {
	tags, err := s.query(ctx, s.selectBuilder().Where(sq.Eq{"id": id}).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, srvErrors.NewTagNotFoundError(id)
	}
	return &tags[0], nil
}

func (s *TagStore) Create(ctx context.Context, t models.Tag) (*models.Tag, error) {
	now := nowMillis()
	res, err := s.db.ExecContext(ctx, queryInsertTag, t.Name, t.Color, t.Description, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, srvErrors.NewConflictError("tag", t.Name)
		}
		return nil, srvErrors.NewStoreFailureError("create tag", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, srvErrors.NewStoreFailureError("create tag", err)
	}
	return s.Get(ctx, id)
}

func (s *TagStore) Update(ctx context.Context, t models.Tag) (*models.Tag, error) {
	res, err := s.db.ExecContext(ctx, queryUpdateTag, t.Name, t.Color, t.Description, nowMillis(), t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, srvErrors.NewConflictError("tag", t.Name)
		}
		return nil, srvErrors.NewStoreFailureError(fmt.Sprintf("update tag %d", t.ID), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, srvErrors.NewStoreFailureError(fmt.Sprintf("update tag %d", t.ID), err)
	}
	if affected == 0 {
		return nil, srvErrors.NewTagNotFoundError(t.ID)
	}
	return s.Get(ctx, t.ID)
}

// UpsertByName creates the descriptor or refreshes the one with the same name.
func (s *TagStore) UpsertByName(ctx context.Context, t models.Tag) error {
	now := nowMillis()
	if _, err := s.db.ExecContext(ctx, queryUpsertTagByName, t.Name, t.Color, t.Description, now, now); err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("upsert tag %q", t.Name), err)
	}
	return nil
}

func (s *TagStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, queryDeleteTag, id)
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("delete tag %d", id), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("delete tag %d", id), err)
	}
	if affected == 0 {
		return srvErrors.NewTagNotFoundError(id)
	}
	return nil
}
