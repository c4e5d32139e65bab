package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/store"
)

const defaultCreatureLimit = 151

type CreatureService struct {
	store *store.Store
}

func NewCreatureService(st *store.Store) *CreatureService {
	return &CreatureService{store: st}
}

type CreatureListParams struct {
	Search string
	// Type and Types are merged into one conjunctive tag filter.
	Type   string
	Types  []string
	Owner  *int64
	Limit  uint64
	Offset uint64
}

type CreatureListResult struct {
	Creatures []models.Creature
	Total     int
}

func (s *CreatureService) List(ctx context.Context, params CreatureListParams) (*CreatureListResult, error) {
	filters := s.buildFilterOptions(params)

	limit := params.Limit
	if limit == 0 {
		limit = defaultCreatureLimit
	}
	opts := append(filters, store.WithLimit(limit))
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	creatures, err := s.store.Creature().List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// total without pagination
	total, err := s.store.Creature().Count(ctx, s.buildFilterOptions(params)...)
	if err != nil {
		return nil, err
	}

	return &CreatureListResult{
		Creatures: creatures,
		Total:     total,
	}, nil
}

func (s *CreatureService) buildFilterOptions(params CreatureListParams) []store.ListOption {
	var opts []store.ListOption

	if search := strings.TrimSpace(params.Search); search != "" {
		opts = append(opts, store.BySearch(search))
	}

	tags := make([]string, 0, len(params.Types)+1)
	if params.Type != "" {
		tags = append(tags, params.Type)
	}
	tags = append(tags, params.Types...)
	if tags = models.NormalizeTags(tags); len(tags) > 0 {
		opts = append(opts, store.ByTags(tags...))
	}

	if params.Owner != nil {
		opts = append(opts, store.ByOwner(*params.Owner))
	}

	return opts
}

func (s *CreatureService) Get(ctx context.Context, catalogID int) (*models.Creature, error) {
	return s.store.Creature().Get(ctx, catalogID)
}

type TraitInput struct {
	Name     string `json:"name" validate:"required"`
	IsHidden bool   `json:"isHidden"`
}

type BaseStatInput struct {
	Name  string `json:"name" validate:"required"`
	Value int    `json:"value" validate:"gte=0"`
}

// CreatureInput is a full creature record as accepted from callers.
type CreatureInput struct {
	CatalogID      int             `json:"catalogId" validate:"gt=0"`
	Name           string          `json:"name" validate:"required"`
	Height         *float64        `json:"height" validate:"omitempty,gte=0"`
	Weight         *float64        `json:"weight" validate:"omitempty,gte=0"`
	BaseExperience *float64        `json:"baseExperience" validate:"omitempty,gte=0"`
	ImageRef       string          `json:"imageRef" validate:"required"`
	Tags           []string        `json:"tags" validate:"min=1"`
	Traits         []TraitInput    `json:"traits" validate:"dive"`
	BaseStats      []BaseStatInput `json:"baseStats" validate:"dive"`
	OwnerRef       *int64          `json:"ownerRef" validate:"omitempty,gt=0"`
}

func (in CreatureInput) normalize() CreatureInput {
	out := in
	out.Name = strings.TrimSpace(in.Name)
	out.ImageRef = strings.TrimSpace(in.ImageRef)
	out.Tags = models.NormalizeTags(in.Tags)

	out.Traits = make([]TraitInput, 0, len(in.Traits))
	for _, t := range in.Traits {
		out.Traits = append(out.Traits, TraitInput{
			Name:     strings.ToLower(strings.TrimSpace(t.Name)),
			IsHidden: t.IsHidden,
		})
	}

	out.BaseStats = make([]BaseStatInput, 0, len(in.BaseStats))
	for _, st := range in.BaseStats {
		out.BaseStats = append(out.BaseStats, BaseStatInput{
			Name:  strings.ToLower(strings.TrimSpace(st.Name)),
			Value: st.Value,
		})
	}
	return out
}

func (in CreatureInput) toModel() models.Creature {
	imageRef := in.ImageRef
	c := models.Creature{
		CatalogID:      in.CatalogID,
		Name:           in.Name,
		Height:         in.Height,
		Weight:         in.Weight,
		BaseExperience: in.BaseExperience,
		ImageRef:       &imageRef,
		Tags:           in.Tags,
		Traits:         make([]models.Trait, 0, len(in.Traits)),
		BaseStats:      make([]models.BaseStat, 0, len(in.BaseStats)),
		OwnerRef:       in.OwnerRef,
	}
	for _, t := range in.Traits {
		c.Traits = append(c.Traits, models.Trait{Name: t.Name, IsHidden: t.IsHidden})
	}
	for _, st := range in.BaseStats {
		c.BaseStats = append(c.BaseStats, models.BaseStat{Name: st.Name, Value: st.Value})
	}
	return c
}

// Upsert validates the record and stores it, replacing every field of an
// existing record with the same catalog id.
func (s *CreatureService) Upsert(ctx context.Context, in CreatureInput) (*models.Creature, error) {
	in = in.normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	c, err := s.store.Creature().Upsert(ctx, in.toModel())
	if err != nil {
		return nil, err
	}

	zap.S().Named("creature_service").Debugw("creature upserted", "catalog_id", c.CatalogID)
	return c, nil
}

// CreaturePatch holds the fields to change on an existing creature. Nil
// fields keep their current value.
type CreaturePatch struct {
	Name           *string         `json:"name"`
	Height         *float64        `json:"height"`
	Weight         *float64        `json:"weight"`
	BaseExperience *float64        `json:"baseExperience"`
	ImageRef       *string         `json:"imageRef"`
	Tags           []string        `json:"tags"`
	Traits         []TraitInput    `json:"traits"`
	BaseStats      []BaseStatInput `json:"baseStats"`
	OwnerRef       *int64          `json:"ownerRef"`
}

// Update merges patch into the stored creature and upserts the result.
func (s *CreatureService) Update(ctx context.Context, catalogID int, patch CreaturePatch) (*models.Creature, error) {
	existing, err := s.store.Creature().Get(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	in := CreatureInput{
		CatalogID:      catalogID,
		Name:           existing.Name,
		Height:         existing.Height,
		Weight:         existing.Weight,
		BaseExperience: existing.BaseExperience,
		Tags:           existing.Tags,
		OwnerRef:       existing.OwnerRef,
	}
	if existing.ImageRef != nil {
		in.ImageRef = *existing.ImageRef
	}
	for _, t := range existing.Traits {
		in.Traits = append(in.Traits, TraitInput{Name: t.Name, IsHidden: t.IsHidden})
	}
	for _, st := range existing.BaseStats {
		in.BaseStats = append(in.BaseStats, BaseStatInput{Name: st.Name, Value: st.Value})
	}

	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Height != nil {
		in.Height = patch.Height
	}
	if patch.Weight != nil {
		in.Weight = patch.Weight
	}
	if patch.BaseExperience != nil {
		in.BaseExperience = patch.BaseExperience
	}
	if patch.ImageRef != nil {
		in.ImageRef = *patch.ImageRef
	}
	if patch.Tags != nil {
		in.Tags = patch.Tags
	}
	if patch.Traits != nil {
		in.Traits = patch.Traits
	}
	if patch.BaseStats != nil {
		in.BaseStats = patch.BaseStats
	}
	if patch.OwnerRef != nil {
		in.OwnerRef = patch.OwnerRef
	}

	return s.Upsert(ctx, in)
}

func (s *CreatureService) Delete(ctx context.Context, catalogID int) error {
	if err := s.store.Creature().Delete(ctx, catalogID); err != nil {
		return err
	}
	zap.S().Named("creature_service").Infow("creature deleted", "catalog_id", catalogID)
	return nil
}
