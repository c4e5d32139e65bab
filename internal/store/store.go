package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db        *sql.DB
	creatures *CreatureStore
	trainers  *TrainerStore
	roster    *RosterStore
	tags      *TagStore
}

func NewStore(db *sql.DB) *Store {
	qi := NewQueryInterceptor(db)
	return &Store{
		db:        db,
		creatures: NewCreatureStore(qi),
		trainers:  NewTrainerStore(qi),
		roster:    NewRosterStore(qi),
		tags:      NewTagStore(qi),
	}
}

func (s *Store) Creature() *CreatureStore {
	return s.creatures
}

func (s *Store) Trainer() *TrainerStore {
	return s.trainers
}

func (s *Store) Roster() *RosterStore {
	return s.roster
}

func (s *Store) Tag() *TagStore {
	return s.tags
}

// DB returns the underlying handle, used by the migration engine.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}
