package importer_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kubev2v/dexkeeper/internal/importer"
	"github.com/kubev2v/dexkeeper/internal/metrics"
	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/store"
	"github.com/kubev2v/dexkeeper/internal/store/migrations"
	"github.com/kubev2v/dexkeeper/pkg/catalog"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

type stubFetcher struct {
	n         int
	pageErr   error
	failRef   string
	emptyRef  string
	inFlight  atomic.Int32
	maxFlight atomic.Int32
}

func (f *stubFetcher) FetchPage(ctx context.Context, limit, offset int) ([]catalog.Summary, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	var out []catalog.Summary
	for i := offset + 1; i <= min(f.n, offset+limit); i++ {
		out = append(out, catalog.Summary{Name: fmt.Sprintf("c%d", i), DetailRef: fmt.Sprintf("/pokemon/%d/", i)})
	}
	return out, nil
}

func (f *stubFetcher) FetchDetail(ctx context.Context, ref string) (*catalog.RawCreature, error) {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		prev := f.maxFlight.Load()
		if cur <= prev || f.maxFlight.CompareAndSwap(prev, cur) {
			break
		}
	}

	if ref == f.failRef {
		return nil, srvErrors.NewRemoteUnavailableError(ref, 500, "500 Internal Server Error")
	}
	if ref == f.emptyRef {
		return nil, nil
	}
	var id int
	if _, err := fmt.Sscanf(ref, "/pokemon/%d/", &id); err != nil {
		return nil, err
	}
	return &catalog.RawCreature{
		ID:    id,
		Name:  fmt.Sprintf("C%d", id),
		Types: []catalog.RawTypeSlot{{Slot: 1, Type: &catalog.NamedRef{Name: "Normal"}}},
	}, nil
}

// recorder collects persisted batches.
type recorder struct {
	mu      sync.Mutex
	batches [][]models.Creature
	failAt  int
}

func (r *recorder) persist(ctx context.Context, batch []models.Creature) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAt > 0 && len(r.batches)+1 == r.failAt {
		return errors.New("disk full")
	}
	r.batches = append(r.batches, batch)
	return nil
}

var _ = Describe("Importer", func() {
	var (
		ctx     context.Context
		fetcher *stubFetcher
		rec     *recorder
	)

	BeforeEach(func() {
		ctx = context.Background()
		fetcher = &stubFetcher{n: 151}
		rec = &recorder{}
	})

	// Given a catalog of 151 entries and a batch size of 25
	// When we import
	// Then 7 batches should be persisted, 6 of 25 and 1 of 1, in catalog order
	It("should split the page into bounded batches", func() {
		// Arrange
		imp := importer.New(fetcher, importer.WithBatchSize(25))

		// Act
		total, err := imp.Import(ctx, rec.persist)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(151))
		Expect(rec.batches).To(HaveLen(7))
		for i := 0; i < 6; i++ {
			Expect(rec.batches[i]).To(HaveLen(25))
		}
		Expect(rec.batches[6]).To(HaveLen(1))

		expected := 1
		for _, batch := range rec.batches {
			for _, c := range batch {
				Expect(c.CatalogID).To(Equal(expected))
				Expect(c.Tags).To(Equal([]string{"normal"}))
				expected++
			}
		}
		Expect(fetcher.maxFlight.Load()).To(BeNumerically("<=", 25))
	})

	It("should use the default page and batch size", func() {
		total, err := importer.New(fetcher).Import(ctx, rec.persist)

		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(151))
		Expect(rec.batches).To(HaveLen(8))
		Expect(rec.batches[7]).To(HaveLen(11))
	})

	It("should honour the offset and page size", func() {
		total, err := importer.New(fetcher, importer.WithOffset(150), importer.WithPageSize(10)).Import(ctx, rec.persist)

		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(1))
		Expect(rec.batches[0][0].CatalogID).To(Equal(151))
	})

	// Given a detail request failing inside the third batch
	// When we import
	// Then the first two batches should stay persisted and no later batch should run
	It("should abort on a fetch failure", func() {
		// Arrange
		fetcher.failRef = "/pokemon/60/"
		imp := importer.New(fetcher, importer.WithBatchSize(25))

		// Act
		total, err := imp.Import(ctx, rec.persist)

		// Assert
		Expect(srvErrors.IsRemoteUnavailableError(err)).To(BeTrue())
		Expect(total).To(Equal(50))
		Expect(rec.batches).To(HaveLen(2))
	})

	It("should abort when the catalog answers without a record", func() {
		fetcher.emptyRef = "/pokemon/30/"

		total, err := importer.New(fetcher, importer.WithBatchSize(25)).Import(ctx, rec.persist)

		Expect(err).To(MatchError(ContainSubstring(`no details for "c30"`)))
		Expect(total).To(Equal(25))
		Expect(rec.batches).To(HaveLen(1))
	})

	It("should abort on a persist failure", func() {
		rec.failAt = 2

		total, err := importer.New(fetcher, importer.WithBatchSize(25)).Import(ctx, rec.persist)

		Expect(err).To(MatchError(ContainSubstring("disk full")))
		Expect(total).To(Equal(25))
		Expect(rec.batches).To(HaveLen(1))
	})

	It("should fail when the page cannot be fetched", func() {
		fetcher.pageErr = srvErrors.NewRemoteUnreachableError("http://catalog", context.DeadlineExceeded)

		total, err := importer.New(fetcher).Import(ctx, rec.persist)

		Expect(srvErrors.IsRemoteUnreachableError(err)).To(BeTrue())
		Expect(total).To(BeZero())
		Expect(rec.batches).To(BeEmpty())
	})

	It("should stop before the next batch once the context is cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		persist := func(ctx context.Context, batch []models.Creature) error {
			cancel()
			return rec.persist(ctx, batch)
		}

		total, err := importer.New(fetcher, importer.WithBatchSize(25)).Import(cctx, persist)

		Expect(err).To(MatchError(context.Canceled))
		Expect(total).To(Equal(25))
		Expect(rec.batches).To(HaveLen(1))
	})

	DescribeTable("should reject invalid options",
		func(opts []importer.Option, persist importer.PersistFunc) {
			_, err := importer.New(fetcher, opts...).Import(ctx, persist)

			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		},
		Entry("zero batch size", []importer.Option{importer.WithBatchSize(0)}, importer.PersistFunc(func(context.Context, []models.Creature) error { return nil })),
		Entry("negative page size", []importer.Option{importer.WithPageSize(-1)}, importer.PersistFunc(func(context.Context, []models.Creature) error { return nil })),
		Entry("negative offset", []importer.Option{importer.WithOffset(-5)}, importer.PersistFunc(func(context.Context, []models.Creature) error { return nil })),
		Entry("nil persist", nil, nil),
	)

	It("should count batches and records", func() {
		reg := prometheus.NewRegistry()
		m := metrics.New(reg)

		_, err := importer.New(fetcher, importer.WithBatchSize(50), importer.WithMetrics(m)).Import(ctx, rec.persist)

		Expect(err).NotTo(HaveOccurred())
		Expect(testutil.ToFloat64(m.ImportBatches)).To(Equal(4.0))
		Expect(testutil.ToFloat64(m.ImportedRecords)).To(Equal(151.0))
		Expect(testutil.ToFloat64(m.ImportRuns.WithLabelValues("success"))).To(Equal(1.0))
	})

	Context("with the store", func() {
		var db *sql.DB

		AfterEach(func() {
			db.Close()
		})

		// Given a migrated store
		// When we import the same catalog twice
		// Then the record count should not change and catalog ids should stay unique
		It("should be idempotent", func() {
			// Arrange
			var err error
			db, err = store.NewDB(":memory:")
			Expect(err).NotTo(HaveOccurred())
			Expect(migrations.Run(ctx, db)).To(Succeed())
			st := store.NewStore(db)
			persist := func(ctx context.Context, batch []models.Creature) error {
				_, err := st.Creature().UpsertBatch(ctx, batch)
				return err
			}
			imp := importer.New(fetcher, importer.WithBatchSize(25))

			// Act
			first, err := imp.Import(ctx, persist)
			Expect(err).NotTo(HaveOccurred())
			second, err := imp.Import(ctx, persist)
			Expect(err).NotTo(HaveOccurred())

			// Assert
			Expect(first).To(Equal(second))
			count, err := st.Creature().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(151))

			var distinct int
			Expect(db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT catalog_id) FROM creatures`).Scan(&distinct)).To(Succeed())
			Expect(distinct).To(Equal(151))
		})
	})
})
