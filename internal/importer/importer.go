package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kubev2v/dexkeeper/internal/metrics"
	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/pkg/catalog"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

const (
	DefaultPageSize  = 151
	DefaultBatchSize = 20
)

// Fetcher is the read side of the remote catalog.
type Fetcher interface {
	FetchPage(ctx context.Context, limit, offset int) ([]catalog.Summary, error)
	FetchDetail(ctx context.Context, detailRef string) (*catalog.RawCreature, error)
}

// PersistFunc stores one normalized batch. It is never called concurrently.
type PersistFunc func(ctx context.Context, batch []models.Creature) error

type Importer struct {
	fetcher   Fetcher
	pageSize  int
	offset    int
	batchSize int
	metrics   *metrics.Metrics
}

type Option func(*Importer)

func WithPageSize(size int) Option {
	return func(i *Importer) {
		i.pageSize = size
	}
}

func WithOffset(offset int) Option {
	return func(i *Importer) {
		i.offset = offset
	}
}

// WithBatchSize sets both the number of records per persist call and the
// number of detail requests in flight.
func WithBatchSize(size int) Option {
	return func(i *Importer) {
		i.batchSize = size
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(i *Importer) {
		i.metrics = m
	}
}

func New(fetcher Fetcher, opts ...Option) *Importer {
	i := &Importer{
		fetcher:   fetcher,
		pageSize:  DefaultPageSize,
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Importer) validate(persist PersistFunc) error {
	switch {
	case i.fetcher == nil:
		return srvErrors.NewValidationError("fetcher", "must not be nil")
	case persist == nil:
		return srvErrors.NewValidationError("persist", "must not be nil")
	case i.pageSize <= 0:
		return srvErrors.NewValidationError("pageSize", fmt.Sprintf("must be positive, got %d", i.pageSize))
	case i.batchSize <= 0:
		return srvErrors.NewValidationError("batchSize", fmt.Sprintf("must be positive, got %d", i.batchSize))
	case i.offset < 0:
		return srvErrors.NewValidationError("offset", fmt.Sprintf("must not be negative, got %d", i.offset))
	}
	return nil
}

// Import fetches one bounded page, then walks it in chunks of batchSize.
// Details of a chunk are fetched concurrently, normalized in page order and
// handed to persist before the next chunk starts. The first failure stops the
// run; batches persisted before it stay persisted. It returns the number of
// records handed to persist.
func (i *Importer) Import(ctx context.Context, persist PersistFunc) (int, error) {
	if err := i.validate(persist); err != nil {
		return 0, err
	}

	runID := uuid.NewString()
	logger := zap.S().Named("importer").With("run_id", runID)
	start := time.Now()

	total, err := i.run(ctx, logger, persist)
	i.metrics.ObserveImport(err == nil)
	if err != nil {
		logger.Errorw("import aborted", "imported", total, "error", err)
		return total, err
	}

	logger.Infow("import completed", "imported", total, "duration", time.Since(start))
	return total, nil
}

func (i *Importer) run(ctx context.Context, logger *zap.SugaredLogger, persist PersistFunc) (int, error) {
	summaries, err := i.fetcher.FetchPage(ctx, i.pageSize, i.offset)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch catalog page: %w", err)
	}
	logger.Infow("catalog page fetched", "entries", len(summaries), "batch_size", i.batchSize)

	total := 0
	for start := 0; start < len(summaries); start += i.batchSize {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		end := min(start+i.batchSize, len(summaries))
		batch, err := i.fetchBatch(ctx, summaries[start:end])
		if err != nil {
			return total, err
		}

		if err := persist(ctx, batch); err != nil {
			return total, fmt.Errorf("failed to persist batch at offset %d: %w", i.offset+start, err)
		}

		total += len(batch)
		i.metrics.ObserveBatch(len(batch))
		logger.Debugw("batch persisted", "from", i.offset+start, "records", len(batch), "total", total)
	}

	return total, nil
}

func (i *Importer) fetchBatch(ctx context.Context, summaries []catalog.Summary) ([]models.Creature, error) {
	batch := make([]models.Creature, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.batchSize)

	for idx, summary := range summaries {
		g.Go(func() error {
			raw, err := i.fetcher.FetchDetail(gctx, summary.DetailRef)
			if err != nil {
				return fmt.Errorf("failed to fetch details of %q: %w", summary.Name, err)
			}
			if raw == nil {
				return fmt.Errorf("catalog returned no details for %q", summary.Name)
			}
			batch[idx] = catalog.Normalize(*raw)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batch, nil
}
