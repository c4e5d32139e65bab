package handlers_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
	"github.com/kubev2v/dexkeeper/internal/handlers"
	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/server/middlewares"
	"github.com/kubev2v/dexkeeper/internal/services"
	"github.com/kubev2v/dexkeeper/internal/store"
	"github.com/kubev2v/dexkeeper/internal/store/migrations"
	"github.com/kubev2v/dexkeeper/pkg/scheduler"
)

type seederFunc func(ctx context.Context) (*models.SeedReport, error)

func (f seederFunc) Run(ctx context.Context) (*models.SeedReport, error) {
	return f(ctx)
}

func creatureBody(catalogID int, name string, tags ...string) map[string]any {
	return map[string]any{
		"catalogId": catalogID,
		"name":      name,
		"imageRef":  fmt.Sprintf("https://img.example/%d.png", catalogID),
		"tags":      tags,
		"baseStats": []map[string]any{{"name": "hp", "value": 40}},
	}
}

var _ = Describe("Handler", func() {
	var (
		ctx    context.Context
		db     *sql.DB
		sched  *scheduler.Scheduler
		router *gin.Engine
		seeder seederFunc
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())
		st := store.NewStore(db)

		seeder = func(ctx context.Context) (*models.SeedReport, error) {
			return &models.SeedReport{RunID: "run-1", Creatures: 151, Attempts: 1}, nil
		}
		sched = scheduler.NewScheduler(1)

		h := handlers.New(
			services.NewCreatureService(st),
			services.NewTrainerService(st),
			services.NewTagService(st),
			services.NewRosterService(st, services.DefaultMaxCatalogID),
			services.NewInsightsService(st),
			services.NewImportJobService(sched, seederFunc(func(ctx context.Context) (*models.SeedReport, error) {
				return seeder(ctx)
			})),
		)

		router = gin.New()
		h.Register(router.Group("/api/v1"))
	})

	AfterEach(func() {
		sched.Close()
		if db != nil {
			db.Close()
		}
	})

	upsert := func(catalogID int, name string, tags ...string) {
		w := doRequest(router, http.MethodPost, "/api/v1/creatures", creatureBody(catalogID, name, tags...))
		Expect(w.Code).To(Equal(http.StatusCreated), w.Body.String())
	}

	Describe("creatures", func() {
		It("should upsert and fetch a creature", func() {
			w := doRequest(router, http.MethodPost, "/api/v1/creatures", creatureBody(1, " Bulbasaur ", "Grass", "poison"))

			Expect(w.Code).To(Equal(http.StatusCreated))
			created := decodeData[v1.Creature](w)
			Expect(created.Name).To(Equal("Bulbasaur"))
			Expect(created.Tags).To(Equal([]string{"grass", "poison"}))
			Expect(created.StatTotal).To(Equal(40))

			w = doRequest(router, http.MethodGet, "/api/v1/creatures/1", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeData[v1.Creature](w).CatalogId).To(Equal(1))
		})

		It("should reject an invalid record with 400", func() {
			body := creatureBody(1, "bulbasaur")

			w := doRequest(router, http.MethodPost, "/api/v1/creatures", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w)).To(ContainSubstring("tags"))
		})

		It("should reject a malformed body with 400", func() {
			w := doRequest(router, http.MethodPost, "/api/v1/creatures", "not an object")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 404 for a missing creature", func() {
			w := doRequest(router, http.MethodGet, "/api/v1/creatures/42", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric catalog id", func() {
			w := doRequest(router, http.MethodGet, "/api/v1/creatures/pikachu", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w)).To(ContainSubstring("catalogId"))
		})

		It("should return 400 for a non-positive catalog id", func() {
			w := doRequest(router, http.MethodDelete, "/api/v1/creatures/0", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w)).To(Equal("catalogId must be a positive integer"))
		})

		Context("list", func() {
			BeforeEach(func() {
				upsert(1, "bulbasaur", "grass", "poison")
				upsert(4, "charmander", "fire")
				upsert(6, "charizard", "fire", "flying")
			})

			DescribeTable("should filter the catalog",
				func(query string, expected []int, total int) {
					w := doRequest(router, http.MethodGet, "/api/v1/creatures"+query, nil)

					Expect(w.Code).To(Equal(http.StatusOK))
					list := decodeData[v1.CreatureList](w)
					ids := []int{}
					for _, c := range list.Creatures {
						ids = append(ids, c.CatalogId)
					}
					Expect(ids).To(Equal(expected))
					Expect(list.Total).To(Equal(total))
				},
				Entry("no filter", "", []int{1, 4, 6}, 3),
				Entry("single type", "?type=fire", []int{4, 6}, 2),
				Entry("comma separated types", "?types=fire,flying", []int{6}, 1),
				Entry("type and types together", "?type=FIRE&types=flying", []int{6}, 1),
				Entry("search", "?search=CHAR", []int{4, 6}, 2),
				Entry("pagination keeps the total", "?limit=1&offset=1", []int{4}, 3),
			)

			DescribeTable("should reject invalid query parameters",
				func(query string) {
					w := doRequest(router, http.MethodGet, "/api/v1/creatures"+query, nil)
					Expect(w.Code).To(Equal(http.StatusBadRequest))
				},
				Entry("zero limit", "?limit=0"),
				Entry("negative offset", "?offset=-1"),
				Entry("invalid owner", "?owner=ash"),
				Entry("non-positive owner", "?owner=0"),
				Entry("repeated types", "?types=fire&types=flying"),
			)
		})

		It("should merge fields on update", func() {
			upsert(25, "pikachu", "electric")

			w := doRequest(router, http.MethodPut, "/api/v1/creatures/25", map[string]any{"name": "raichu"})

			Expect(w.Code).To(Equal(http.StatusOK))
			updated := decodeData[v1.Creature](w)
			Expect(updated.Name).To(Equal("raichu"))
			Expect(updated.Tags).To(Equal([]string{"electric"}))
		})

		It("should delete a creature with 204", func() {
			upsert(25, "pikachu", "electric")

			w := doRequest(router, http.MethodDelete, "/api/v1/creatures/25", nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = doRequest(router, http.MethodDelete, "/api/v1/creatures/25", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("trainers", func() {
		It("should create a trainer and list its creatures", func() {
			w := doRequest(router, http.MethodPost, "/api/v1/trainers", map[string]any{"name": "Misty", "badgeCount": 12})
			Expect(w.Code).To(Equal(http.StatusCreated))
			trainer := decodeData[v1.Trainer](w)
			Expect(trainer.BadgeCount).To(Equal(8))

			body := creatureBody(120, "staryu", "water")
			body["ownerRef"] = trainer.Id
			w = doRequest(router, http.MethodPost, "/api/v1/creatures", body)
			Expect(w.Code).To(Equal(http.StatusCreated))

			w = doRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/trainers/%d/creatures", trainer.Id), nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			owned := decodeData[[]v1.Creature](w)
			Expect(owned).To(HaveLen(1))
			Expect(owned[0].CatalogId).To(Equal(120))
		})

		It("should return 409 for a duplicate name", func() {
			w := doRequest(router, http.MethodPost, "/api/v1/trainers", map[string]any{"name": "Brock"})
			Expect(w.Code).To(Equal(http.StatusCreated))

			w = doRequest(router, http.MethodPost, "/api/v1/trainers", map[string]any{"name": "Brock"})
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("should return 404 for the creatures of a missing trainer", func() {
			w := doRequest(router, http.MethodGet, "/api/v1/trainers/9/creatures", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("tags", func() {
		It("should create and delete a tag", func() {
			w := doRequest(router, http.MethodPost, "/api/v1/tags", map[string]any{"name": "Fire", "color": "#F08030"})
			Expect(w.Code).To(Equal(http.StatusCreated))
			tag := decodeData[v1.Tag](w)
			Expect(tag.Name).To(Equal("fire"))

			w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/tags/%d", tag.Id), nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("should reject an invalid color", func() {
			w := doRequest(router, http.MethodPost, "/api/v1/tags", map[string]any{"name": "fire", "color": "red"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("roster", func() {
		BeforeEach(func() {
			for i := 1; i <= 7; i++ {
				upsert(i, fmt.Sprintf("creature-%d", i), "normal")
			}
		})

		It("should add slots until the roster is full", func() {
			for i := 1; i <= models.RosterCapacity; i++ {
				w := doRequest(router, http.MethodPost, "/api/v1/roster", map[string]any{"catalogId": i})
				Expect(w.Code).To(Equal(http.StatusCreated))
			}

			w := doRequest(router, http.MethodPost, "/api/v1/roster", map[string]any{"catalogId": 7})

			Expect(w.Code).To(Equal(http.StatusConflict))
			w = doRequest(router, http.MethodGet, "/api/v1/roster", nil)
			Expect(decodeData[[]v1.RosterSlot](w)).To(HaveLen(models.RosterCapacity))
		})

		DescribeTable("should reject unknown creatures with 400",
			func(catalogID int) {
				w := doRequest(router, http.MethodPost, "/api/v1/roster", map[string]any{"catalogId": catalogID})
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("not in the local catalog", 42),
			Entry("beyond the supported range", 152),
			Entry("not positive", 0),
		)

		It("should update and remove a slot", func() {
			w := doRequest(router, http.MethodPost, "/api/v1/roster", map[string]any{"catalogId": 1, "nickname": "Buddy"})
			Expect(w.Code).To(Equal(http.StatusCreated))
			slot := decodeData[v1.RosterSlot](w)
			Expect(slot.Creature).NotTo(BeNil())
			Expect(slot.Creature.Name).To(Equal("creature-1"))

			w = doRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/roster/%d", slot.Id), map[string]any{"role": "lead"})
			Expect(w.Code).To(Equal(http.StatusOK))
			updated := decodeData[v1.RosterSlot](w)
			Expect(*updated.Role).To(Equal("lead"))
			Expect(*updated.Nickname).To(Equal("Buddy"))

			w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/roster/%d", slot.Id), nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})

	Describe("insights", func() {
		It("should summarize tags", func() {
			upsert(4, "charmander", "fire")
			upsert(6, "charizard", "fire", "flying")

			w := doRequest(router, http.MethodGet, "/api/v1/insights/tags", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			insights := decodeData[v1.TagInsights](w)
			Expect(insights.Total).To(Equal(2))
			Expect(insights.Tags[0].Tag).To(Equal("fire"))
			Expect(insights.Tags[0].Creatures).To(Equal(2))
		})
	})

	Describe("import", func() {
		It("should report idle before any run", func() {
			w := doRequest(router, http.MethodGet, "/api/v1/import", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeData[v1.ImportJob](w).State).To(Equal(v1.ImportJobStateIdle))
		})

		It("should run an import in the background", func() {
			w := doRequest(router, http.MethodPost, "/api/v1/import", nil)
			Expect(w.Code).To(Equal(http.StatusAccepted))

			Eventually(func() v1.ImportJobState {
				return decodeData[v1.ImportJob](doRequest(router, http.MethodGet, "/api/v1/import", nil)).State
			}).Should(Equal(v1.ImportJobStateCompleted))

			job := decodeData[v1.ImportJob](doRequest(router, http.MethodGet, "/api/v1/import", nil))
			Expect(job.Report).NotTo(BeNil())
			Expect(job.Report.Creatures).To(Equal(151))
		})

		// Given a running import
		// When a second import is requested and then the running one is cancelled
		// Then the second request should conflict and the job should end in error
		It("should refuse a second run and cancel the running one", func() {
			// Arrange
			seeder = func(ctx context.Context) (*models.SeedReport, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			w := doRequest(router, http.MethodPost, "/api/v1/import", nil)
			Expect(w.Code).To(Equal(http.StatusAccepted))

			// Act
			w = doRequest(router, http.MethodPost, "/api/v1/import", nil)
			Expect(w.Code).To(Equal(http.StatusConflict))

			w = doRequest(router, http.MethodDelete, "/api/v1/import", nil)

			// Assert
			Expect(w.Code).To(Equal(http.StatusOK))
			job := decodeData[v1.ImportJob](w)
			Expect(job.State).To(Equal(v1.ImportJobStateError))
			Expect(job.Error).NotTo(BeNil())
			Expect(*job.Error).To(ContainSubstring(context.Canceled.Error()))
		})

		It("should report a failed run", func() {
			seeder = func(ctx context.Context) (*models.SeedReport, error) {
				return nil, errors.New("catalog down")
			}

			doRequest(router, http.MethodPost, "/api/v1/import", nil)

			Eventually(func() v1.ImportJobState {
				return decodeData[v1.ImportJob](doRequest(router, http.MethodGet, "/api/v1/import", nil)).State
			}, time.Second).Should(Equal(v1.ImportJobStateError))
		})
	})

	Describe("guards", func() {
		var guarded *gin.Engine

		BeforeEach(func() {
			st := store.NewStore(db)
			h := handlers.New(
				services.NewCreatureService(st),
				services.NewTrainerService(st),
				services.NewTagService(st),
				services.NewRosterService(st, services.DefaultMaxCatalogID),
				services.NewInsightsService(st),
				services.NewImportJobService(sched, seeder),
			)

			guarded = gin.New()
			h.Register(guarded.Group("/api/v1"), middlewares.BearerScoped(middlewares.Auth("s3cret")))
		})

		It("should leave read routes open", func() {
			w := doRequest(guarded, http.MethodGet, "/api/v1/creatures", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		DescribeTable("should guard mutating routes",
			func(method, path string) {
				w := doRequest(guarded, method, path, map[string]any{})

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeError(w)).To(Equal("missing bearer token"))
			},
			Entry("upsert creature", http.MethodPost, "/api/v1/creatures"),
			Entry("update creature", http.MethodPut, "/api/v1/creatures/1"),
			Entry("delete trainer", http.MethodDelete, "/api/v1/trainers/1"),
			Entry("add roster slot", http.MethodPost, "/api/v1/roster"),
			Entry("start import", http.MethodPost, "/api/v1/import"),
		)
	})
})
