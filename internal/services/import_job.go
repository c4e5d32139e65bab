package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/dexkeeper/internal/models"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
	"github.com/kubev2v/dexkeeper/pkg/scheduler"
)

// Seeder runs one seed pass.
type Seeder interface {
	Run(ctx context.Context) (*models.SeedReport, error)
}

// ImportJobService runs seed passes in the background, one at a time.
type ImportJobService struct {
	seeder    Seeder
	scheduler *scheduler.Scheduler
	mu        sync.Mutex
	job       models.ImportJob
	future    *scheduler.Future[scheduler.Result[*models.SeedReport]]
	done      chan struct{}
}

func NewImportJobService(s *scheduler.Scheduler, seeder Seeder) *ImportJobService {
	return &ImportJobService{
		seeder:    seeder,
		scheduler: s,
		job:       models.ImportJob{State: models.ImportJobStateIdle},
	}
}

// Start submits a seed pass and returns at once. Only one pass may run.
func (s *ImportJobService) Start() (models.ImportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job.State == models.ImportJobStateRunning {
		return s.job, srvErrors.NewConflictError("import job", string(models.ImportJobStateRunning))
	}

	now := time.Now().UTC()
	s.job = models.ImportJob{State: models.ImportJobStateRunning, StartedAt: &now}
	s.future = scheduler.Submit(s.scheduler, s.seeder.Run)
	s.done = make(chan struct{})

	go s.watch(s.future, s.done)

	zap.S().Named("import_job").Infow("import job started")
	return s.job, nil
}

func (s *ImportJobService) watch(future *scheduler.Future[scheduler.Result[*models.SeedReport]], done chan struct{}) {
	defer close(done)
	result := <-future.C()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.job.FinishedAt = &now
	if result.Err != nil {
		s.job.State = models.ImportJobStateError
		s.job.Error = result.Err
		zap.S().Named("import_job").Errorw("import job failed", "error", result.Err)
		return
	}
	s.job.State = models.ImportJobStateCompleted
	s.job.Report = result.Data
	zap.S().Named("import_job").Infow("import job completed", "creatures", result.Data.Creatures)
}

func (s *ImportJobService) Status() models.ImportJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job
}

// Stop cancels the running pass, if any, and waits for it to settle.
func (s *ImportJobService) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.job.State != models.ImportJobStateRunning {
		s.mu.Unlock()
		return nil
	}
	future, done := s.future, s.done
	s.mu.Unlock()

	future.Stop()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
