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

type trainerRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Hometown    sql.NullString `db:"hometown"`
	BadgeCount  int            `db:"badge_count"`
	Bio         sql.NullString `db:"bio"`
	PortraitRef sql.NullString `db:"portrait_ref"`
	CreatedAt   int64          `db:"created_at"`
	UpdatedAt   int64          `db:"updated_at"`
}

func (r trainerRow) toModel() models.Trainer {
	return models.Trainer{
		ID:          r.ID,
		Name:        r.Name,
		Hometown:    nullString(r.Hometown),
		BadgeCount:  r.BadgeCount,
		Bio:         nullString(r.Bio),
		PortraitRef: nullString(r.PortraitRef),
		CreatedAt:   fromMillis(r.CreatedAt),
		UpdatedAt:   fromMillis(r.UpdatedAt),
	}
}

type TrainerStore struct {
	db QueryInterceptor
}

func NewTrainerStore(db QueryInterceptor) *TrainerStore {
	return &TrainerStore{db: db}
}

func (s *TrainerStore) selectBuilder() sq.SelectBuilder {
	return sq.Select(
		"id", "name", "hometown", "badge_count", "bio", "portrait_ref", "created_at", "updated_at",
	).From("trainers")
}

func (s *TrainerStore) query(ctx context.Context, builder sq.SelectBuilder) ([]models.Trainer, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, srvErrors.NewStoreFailureError("list trainers", err)
	}
	defer rows.Close()

	var records []trainerRow
	if err := sqlx.StructScan(rows, &records); err != nil {
		return nil, srvErrors.NewStoreFailureError("scan trainers", err)
	}

	trainers := make([]models.Trainer, 0, len(records))
	for _, r := range records {
		trainers = append(trainers, r.toModel())
	}
	return trainers, nil
}

// List returns all trainers ordered by name.
func (s *TrainerStore) List(ctx context.Context) ([]models.Trainer, error) {
	return s.query(ctx, s.selectBuilder().OrderBy("name ASC"))
}

func (s *TrainerStore) Get(ctx context.Context, id int64) (*models.Trainer, error) {
	trainers, err := s.query(ctx, s.selectBuilder().Where(sq.Eq{"id": id}).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(trainers) == 0 {
		return nil, srvErrors.NewTrainerNotFoundError(id)
	}
	return &trainers[0], nil
}

func (s *TrainerStore) Create(ctx context.Context, t models.Trainer) (*models.Trainer, error) {
	now := nowMillis()
	res, err := s.db.ExecContext(ctx, queryInsertTrainer,
		t.Name, t.Hometown, t.BadgeCount, t.Bio, t.PortraitRef, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, srvErrors.NewConflictError("trainer", t.Name)
		}
		return nil, srvErrors.NewStoreFailureError("create trainer", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, srvErrors.NewStoreFailureError("create trainer", err)
	}
	return s.Get(ctx, id)
}

func (s *TrainerStore) Update(ctx context.Context, t models.Trainer) (*models.Trainer, error) {
	res, err := s.db.ExecContext(ctx, queryUpdateTrainer,
		t.Name, t.Hometown, t.BadgeCount, t.Bio, t.PortraitRef, nowMillis(), t.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, srvErrors.NewConflictError("trainer", t.Name)
		}
		return nil, srvErrors.NewStoreFailureError(fmt.Sprintf("update trainer %d", t.ID), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, srvErrors.NewStoreFailureError(fmt.Sprintf("update trainer %d", t.ID), err)
	}
	if affected == 0 {
		return nil, srvErrors.NewTrainerNotFoundError(t.ID)
	}
	return s.Get(ctx, t.ID)
}

// UpsertByName creates the trainer or refreshes the seeded fields of the
// trainer with the same name.
func (s *TrainerStore) UpsertByName(ctx context.Context, t models.Trainer) error {
	now := nowMillis()
	_, err := s.db.ExecContext(ctx, queryUpsertTrainerByName,
		t.Name, t.Hometown, t.BadgeCount, t.Bio, now, now,
	)
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("upsert trainer %q", t.Name), err)
	}
	return nil
}

func (s *TrainerStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, queryDeleteTrainer, id)
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("delete trainer %d", id), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return srvErrors.NewStoreFailureError(fmt.Sprintf("delete trainer %d", id), err)
	}
	if affected == 0 {
		return srvErrors.NewTrainerNotFoundError(id)
	}
	return nil
}
