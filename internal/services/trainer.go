package services

import (
	"context"
	"strings"

	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/store"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

type TrainerService struct {
	store *store.Store
}

func NewTrainerService(st *store.Store) *TrainerService {
	return &TrainerService{store: st}
}

type TrainerInput struct {
	Name        *string `json:"name"`
	Hometown    *string `json:"hometown"`
	BadgeCount  *int    `json:"badgeCount"`
	Bio         *string `json:"bio"`
	PortraitRef *string `json:"portraitRef"`
}

func (s *TrainerService) List(ctx context.Context) ([]models.Trainer, error) {
	return s.store.Trainer().List(ctx)
}

func (s *TrainerService) Get(ctx context.Context, id int64) (*models.Trainer, error) {
	return s.store.Trainer().Get(ctx, id)
}

func (s *TrainerService) Create(ctx context.Context, in TrainerInput) (*models.Trainer, error) {
	t := models.Trainer{}
	if err := applyTrainerInput(&t, in); err != nil {
		return nil, err
	}
	return s.store.Trainer().Create(ctx, t)
}

func (s *TrainerService) Update(ctx context.Context, id int64, in TrainerInput) (*models.Trainer, error) {
	existing, err := s.store.Trainer().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t := *existing
	if err := applyTrainerInput(&t, in); err != nil {
		return nil, err
	}
	return s.store.Trainer().Update(ctx, t)
}

func (s *TrainerService) Delete(ctx context.Context, id int64) error {
	return s.store.Trainer().Delete(ctx, id)
}

func applyTrainerInput(t *models.Trainer, in TrainerInput) error {
	if in.Name != nil {
		t.Name = strings.TrimSpace(*in.Name)
	}
	if t.Name == "" {
		return srvErrors.NewValidationError("name", "is required")
	}
	if in.Hometown != nil {
		t.Hometown = trimmed(in.Hometown)
	}
	if in.BadgeCount != nil {
		t.BadgeCount = clampBadges(*in.BadgeCount)
	}
	if in.Bio != nil {
		t.Bio = trimmed(in.Bio)
	}
	if in.PortraitRef != nil {
		t.PortraitRef = trimmed(in.PortraitRef)
	}
	return nil
}

func clampBadges(n int) int {
	return min(max(n, 0), models.MaxBadgeCount)
}
