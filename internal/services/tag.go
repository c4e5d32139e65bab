package services

import (
	"context"
	"strings"

	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/store"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

type TagService struct {
	store *store.Store
}

func NewTagService(st *store.Store) *TagService {
	return &TagService{store: st}
}

type TagInput struct {
	Name        *string `json:"name" validate:"omitempty,max=64"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	return s.store.Tag().List(ctx)
}

func (s *TagService) Get(ctx context.Context, id int64) (*models.Tag, error) {
	return s.store.Tag().Get(ctx, id)
}

func (s *TagService) Create(ctx context.Context, in TagInput) (*models.Tag, error) {
	t := models.Tag{}
	if err := applyTagInput(&t, in); err != nil {
		return nil, err
	}
	return s.store.Tag().Create(ctx, t)
}

func (s *TagService) Update(ctx context.Context, id int64, in TagInput) (*models.Tag, error) {
	existing, err := s.store.Tag().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t := *existing
	if err := applyTagInput(&t, in); err != nil {
		return nil, err
	}
	return s.store.Tag().Update(ctx, t)
}

func (s *TagService) Delete(ctx context.Context, id int64) error {
	return s.store.Tag().Delete(ctx, id)
}

// applyTagInput lowercases the name so descriptors line up with creature
// tags. A blank color or description clears it.
func applyTagInput(t *models.Tag, in TagInput) error {
	if in.Name != nil {
		t.Name = strings.ToLower(strings.TrimSpace(*in.Name))
	}
	if in.Color != nil {
		t.Color = trimmed(in.Color)
	}
	if in.Description != nil {
		t.Description = trimmed(in.Description)
	}

	if t.Name == "" {
		return srvErrors.NewValidationError("name", "is required")
	}
	return validateStruct(TagInput{Name: &t.Name, Color: t.Color, Description: t.Description})
}
