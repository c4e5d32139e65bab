package services_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/services"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
	"github.com/kubev2v/dexkeeper/pkg/scheduler"
)

type seederFunc func(ctx context.Context) (*models.SeedReport, error)

func (f seederFunc) Run(ctx context.Context) (*models.SeedReport, error) {
	return f(ctx)
}

var _ = Describe("ImportJobService", func() {
	var (
		sched *scheduler.Scheduler
	)

	BeforeEach(func() {
		sched = scheduler.NewScheduler(1)
	})

	AfterEach(func() {
		sched.Close()
	})

	// Given an idle job service
	// When we start a job that succeeds
	// Then the status should move from running to completed with the report
	It("should run a job to completion", func() {
		// Arrange
		release := make(chan struct{})
		srv := services.NewImportJobService(sched, seederFunc(func(ctx context.Context) (*models.SeedReport, error) {
			<-release
			return &models.SeedReport{Creatures: 151}, nil
		}))
		Expect(srv.Status().State).To(Equal(models.ImportJobStateIdle))

		// Act
		job, err := srv.Start()

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(job.State).To(Equal(models.ImportJobStateRunning))
		Expect(job.StartedAt).NotTo(BeNil())

		close(release)
		Eventually(func() models.ImportJobState {
			return srv.Status().State
		}, 2*time.Second, 10*time.Millisecond).Should(Equal(models.ImportJobStateCompleted))
		Expect(srv.Status().Report.Creatures).To(Equal(151))
		Expect(srv.Status().FinishedAt).NotTo(BeNil())
	})

	It("should reject a second start while a job runs", func() {
		release := make(chan struct{})
		defer close(release)
		srv := services.NewImportJobService(sched, seederFunc(func(ctx context.Context) (*models.SeedReport, error) {
			<-release
			return &models.SeedReport{}, nil
		}))

		_, err := srv.Start()
		Expect(err).NotTo(HaveOccurred())

		_, err = srv.Start()
		Expect(srvErrors.IsConflictError(err)).To(BeTrue())
	})

	It("should record the error of a failed job", func() {
		srv := services.NewImportJobService(sched, seederFunc(func(ctx context.Context) (*models.SeedReport, error) {
			return nil, errors.New("catalog down")
		}))

		_, err := srv.Start()
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() models.ImportJobState {
			return srv.Status().State
		}, 2*time.Second, 10*time.Millisecond).Should(Equal(models.ImportJobStateError))
		Expect(srv.Status().Error).To(MatchError("catalog down"))
	})

	// Given a running job that honours its context
	// When we stop it
	// Then it should end in the error state with a cancellation
	It("should cancel a running job", func() {
		// Arrange
		started := make(chan struct{})
		srv := services.NewImportJobService(sched, seederFunc(func(ctx context.Context) (*models.SeedReport, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}))
		_, err := srv.Start()
		Expect(err).NotTo(HaveOccurred())
		Eventually(started, time.Second).Should(BeClosed())

		// Act
		err = srv.Stop(context.Background())

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(srv.Status().State).To(Equal(models.ImportJobStateError))
		Expect(srv.Status().Error).To(MatchError(context.Canceled))
	})
})
