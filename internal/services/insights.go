package services

import (
	"context"

	"github.com/kubev2v/dexkeeper/internal/insights"
	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/store"
)

type InsightsService struct {
	store *store.Store
}

func NewInsightsService(st *store.Store) *InsightsService {
	return &InsightsService{store: st}
}

// Tags computes tag analytics over the whole catalog.
func (s *InsightsService) Tags(ctx context.Context) (*models.TagInsights, error) {
	creatures, err := s.store.Creature().List(ctx)
	if err != nil {
		return nil, err
	}
	return insights.Compute(ctx, creatures)
}
