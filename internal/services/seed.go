package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/dexkeeper/internal/importer"
	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/store"
	"github.com/kubev2v/dexkeeper/internal/util"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

// DefaultTags are the descriptors seeded before the catalog import.
var DefaultTags = []models.Tag{
	{Name: "normal", Color: util.Ptr("#A8A77A"), Description: util.Ptr("Balanced type with few inherent strengths.")},
	{Name: "fire", Color: util.Ptr("#EE8130"), Description: util.Ptr("Specializes in offensive, high-heat moves.")},
	{Name: "water", Color: util.Ptr("#6390F0"), Description: util.Ptr("Adaptable type that excels at control.")},
	{Name: "electric", Color: util.Ptr("#F7D02C"), Description: util.Ptr("Fast attackers focused on paralysis and burst damage.")},
	{Name: "grass", Color: util.Ptr("#7AC74C"), Description: util.Ptr("Utility-focused type with sustain and control.")},
	{Name: "ice", Color: util.Ptr("#96D9D6"), Description: util.Ptr("Glass-cannon style with powerful crowd control.")},
	{Name: "fighting", Color: util.Ptr("#C22E28"), Description: util.Ptr("Close-quarters experts that punch through defenses.")},
	{Name: "poison", Color: util.Ptr("#A33EA1"), Description: util.Ptr("Status-inflicting specialists that wear foes down.")},
	{Name: "ground", Color: util.Ptr("#E2BF65"), Description: util.Ptr("Earth-shaping power that counters Electric types.")},
	{Name: "flying", Color: util.Ptr("#A98FF3"), Description: util.Ptr("High mobility units that dodge ground attacks.")},
	{Name: "psychic", Color: util.Ptr("#F95587"), Description: util.Ptr("Mind-based fighters with high special attack.")},
	{Name: "bug", Color: util.Ptr("#A6B91A"), Description: util.Ptr("Swarm tactics and utility moves define this type.")},
	{Name: "rock", Color: util.Ptr("#B6A136"), Description: util.Ptr("Defensive titans with strong physical presence.")},
	{Name: "ghost", Color: util.Ptr("#735797"), Description: util.Ptr("Intangible tricksters that ignore normal defenses.")},
	{Name: "dragon", Color: util.Ptr("#6F35FC"), Description: util.Ptr("Late-game powerhouses with high stats across the board.")},
	{Name: "dark", Color: util.Ptr("#705746"), Description: util.Ptr("Exploit enemy weaknesses with sneaky tactics.")},
	{Name: "steel", Color: util.Ptr("#B7B7CE"), Description: util.Ptr("Extremely durable type with many resistances.")},
	{Name: "fairy", Color: util.Ptr("#D685AD"), Description: util.Ptr("Protective type that counters dragons.")},
}

// DefaultTrainers are upserted by name on every seed run.
var DefaultTrainers = []models.Trainer{
	{Name: "Ash Ketchum", Hometown: util.Ptr("Pallet Town"), BadgeCount: 8, Bio: util.Ptr("Aspiring Pokémon Master traveling through Kanto.")},
	{Name: "Misty", Hometown: util.Ptr("Cerulean City"), BadgeCount: 4, Bio: util.Ptr("Water-type gym leader known for strategic battles.")},
	{Name: "Brock", Hometown: util.Ptr("Pewter City"), BadgeCount: 6, Bio: util.Ptr("Rock-type specialist and mentor figure.")},
}

// SeedService fills an empty store: tag descriptors, trainers and the
// creature catalog pulled through the importer. Every step is an upsert, so
// rerunning it is the recovery path after a failure.
type SeedService struct {
	store       *store.Store
	importer    *importer.Importer
	maxAttempts uint
	backoff     backoff.BackOff
}

type SeedOption func(*SeedService)

// WithMaxAttempts bounds the import attempts on transient remote errors.
func WithMaxAttempts(n int) SeedOption {
	return func(s *SeedService) {
		if n > 0 {
			s.maxAttempts = uint(n)
		}
	}
}

func WithBackOff(b backoff.BackOff) SeedOption {
	return func(s *SeedService) {
		s.backoff = b
	}
}

func NewSeedService(st *store.Store, imp *importer.Importer, opts ...SeedOption) *SeedService {
	s := &SeedService{
		store:       st,
		importer:    imp,
		maxAttempts: 3,
		backoff:     backoff.NewExponentialBackOff(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SeedService) Run(ctx context.Context) (*models.SeedReport, error) {
	report := &models.SeedReport{RunID: uuid.NewString()}
	logger := zap.S().Named("seed_service").With("run_id", report.RunID)
	start := time.Now()

	for _, t := range DefaultTags {
		if err := s.store.Tag().UpsertByName(ctx, t); err != nil {
			return nil, fmt.Errorf("failed to seed tags: %w", err)
		}
		report.Tags++
	}
	logger.Infow("tags seeded", "count", report.Tags)

	for _, t := range DefaultTrainers {
		if err := s.store.Trainer().UpsertByName(ctx, t); err != nil {
			return nil, fmt.Errorf("failed to seed trainers: %w", err)
		}
		report.Trainers++
	}
	logger.Infow("trainers seeded", "count", report.Trainers)

	persist := func(ctx context.Context, batch []models.Creature) error {
		_, err := s.store.Creature().UpsertBatch(ctx, batch)
		return err
	}

	imported, err := backoff.Retry(ctx, func() (int, error) {
		report.Attempts++
		n, err := s.importer.Import(ctx, persist)
		if err != nil && !isTransient(ctx, err) {
			return n, backoff.Permanent(err)
		}
		return n, err
	},
		backoff.WithBackOff(s.backoff),
		backoff.WithMaxTries(s.maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warnw("catalog import failed, retrying", "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to import catalog: %w", err)
	}

	report.Creatures = imported
	report.Duration = time.Since(start)
	logger.Infow("seed completed", "creatures", report.Creatures, "attempts", report.Attempts, "duration", report.Duration)
	return report, nil
}

// isTransient reports whether a failed import may succeed when rerun. Once
// the caller's context is done nothing is.
func isTransient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var unavailable *srvErrors.RemoteUnavailableError
	if errors.As(err, &unavailable) {
		return unavailable.Transient()
	}
	return srvErrors.IsRemoteUnreachableError(err)
}
