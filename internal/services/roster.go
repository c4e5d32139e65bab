package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/store"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

const DefaultMaxCatalogID = 151

// RosterService enforces the roster rules: at most RosterCapacity slots, each
// pointing to a creature of the local catalog within 1..maxCatalogID.
type RosterService struct {
	store        *store.Store
	capacity     int
	maxCatalogID int
}

func NewRosterService(st *store.Store, maxCatalogID int) *RosterService {
	if maxCatalogID <= 0 {
		maxCatalogID = DefaultMaxCatalogID
	}
	return &RosterService{
		store:        st,
		capacity:     models.RosterCapacity,
		maxCatalogID: maxCatalogID,
	}
}

type RosterSlotInput struct {
	CatalogID *int    `json:"catalogId"`
	Nickname  *string `json:"nickname"`
	Role      *string `json:"role"`
	Notes     *string `json:"notes"`
}

func (s *RosterService) List(ctx context.Context) ([]models.RosterSlot, error) {
	return s.store.Roster().List(ctx)
}

func (s *RosterService) Get(ctx context.Context, id int64) (*models.RosterSlot, error) {
	return s.store.Roster().Get(ctx, id)
}

// Add appends a slot. The capacity check is repeated by the insert itself so
// concurrent adds cannot overfill the roster.
func (s *RosterService) Add(ctx context.Context, in RosterSlotInput) (*models.RosterSlot, error) {
	count, err := s.store.Roster().Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= s.capacity {
		return nil, srvErrors.NewCapacityExceededError(s.capacity)
	}

	if in.CatalogID == nil {
		return nil, srvErrors.NewValidationError("catalogId", "is required")
	}
	if err := s.requireCreature(ctx, *in.CatalogID); err != nil {
		return nil, err
	}

	slot, err := s.store.Roster().Add(ctx, models.RosterSlot{
		CatalogID: *in.CatalogID,
		Nickname:  trimmed(in.Nickname),
		Role:      trimmed(in.Role),
		Notes:     clampNotes(in.Notes),
	}, s.capacity)
	if err != nil {
		return nil, err
	}

	zap.S().Named("roster_service").Infow("roster slot added", "id", slot.ID, "catalog_id", slot.CatalogID)
	return slot, nil
}

// Update merges in into the existing slot. Nil fields keep their value, an
// empty string clears the field.
func (s *RosterService) Update(ctx context.Context, id int64, in RosterSlotInput) (*models.RosterSlot, error) {
	existing, err := s.store.Roster().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	slot := *existing
	if in.CatalogID != nil {
		if err := s.requireCreature(ctx, *in.CatalogID); err != nil {
			return nil, err
		}
		slot.CatalogID = *in.CatalogID
	}
	if in.Nickname != nil {
		slot.Nickname = trimmed(in.Nickname)
	}
	if in.Role != nil {
		slot.Role = trimmed(in.Role)
	}
	if in.Notes != nil {
		slot.Notes = clampNotes(in.Notes)
	}

	return s.store.Roster().Update(ctx, slot)
}

func (s *RosterService) Remove(ctx context.Context, id int64) error {
	if err := s.store.Roster().Remove(ctx, id); err != nil {
		return err
	}
	zap.S().Named("roster_service").Infow("roster slot removed", "id", id)
	return nil
}

func (s *RosterService) requireCreature(ctx context.Context, catalogID int) error {
	if catalogID <= 0 {
		return srvErrors.NewUnknownCreatureError(catalogID, "catalog ids start at 1")
	}
	if catalogID > s.maxCatalogID {
		return srvErrors.NewUnknownCreatureError(catalogID, fmt.Sprintf("only catalog ids up to %d are supported", s.maxCatalogID))
	}

	exists, err := s.store.Creature().Exists(ctx, catalogID)
	if err != nil {
		return err
	}
	if !exists {
		return srvErrors.NewUnknownCreatureError(catalogID, "not found in local catalog")
	}
	return nil
}

// clampNotes trims notes and cuts them to MaxNotesLength characters.
func clampNotes(notes *string) *string {
	n := trimmed(notes)
	if n == nil {
		return nil
	}
	if r := []rune(*n); len(r) > models.MaxNotesLength {
		v := string(r[:models.MaxNotesLength])
		return &v
	}
	return n
}
