package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/store"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

var _ = Describe("RosterStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newMigratedStore(ctx)

		for i := 1; i <= 8; i++ {
			_, err := s.Creature().Upsert(ctx, newCreature(i, "creature", "normal"))
			Expect(err).NotTo(HaveOccurred())
		}
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Add", func() {
		It("should add a slot joined with its creature", func() {
			slot, err := s.Roster().Add(ctx, models.RosterSlot{
				CatalogID: 1,
				Nickname:  ptr("Bulby"),
				Role:      ptr("tank"),
			}, models.RosterCapacity)

			Expect(err).NotTo(HaveOccurred())
			Expect(slot.ID).To(BeNumerically(">", 0))
			Expect(*slot.Nickname).To(Equal("Bulby"))
			Expect(slot.Notes).To(BeNil())
			Expect(slot.Creature).NotTo(BeNil())
			Expect(slot.Creature.Name).To(Equal("creature"))
			Expect(slot.Creature.Tags).To(Equal([]string{"normal"}))
		})

		// Given a roster holding six slots
		// When we add a seventh
		// Then it should fail with CapacityExceeded and leave the roster unchanged
		It("should refuse slots beyond capacity", func() {
			// Arrange
			for i := 1; i <= models.RosterCapacity; i++ {
				_, err := s.Roster().Add(ctx, models.RosterSlot{CatalogID: i}, models.RosterCapacity)
				Expect(err).NotTo(HaveOccurred())
			}

			// Act
			_, err := s.Roster().Add(ctx, models.RosterSlot{CatalogID: 7}, models.RosterCapacity)

			// Assert
			Expect(srvErrors.IsCapacityExceededError(err)).To(BeTrue())
			count, err := s.Roster().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(models.RosterCapacity))
		})

		It("should allow the same creature twice", func() {
			_, err := s.Roster().Add(ctx, models.RosterSlot{CatalogID: 1}, models.RosterCapacity)
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Roster().Add(ctx, models.RosterSlot{CatalogID: 1}, models.RosterCapacity)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return UnknownCreature for a creature that is not in the catalog", func() {
			_, err := s.Roster().Add(ctx, models.RosterSlot{CatalogID: 99}, models.RosterCapacity)
			Expect(srvErrors.IsUnknownCreatureError(err)).To(BeTrue())
		})
	})

	Context("List", func() {
		It("should keep insertion order", func() {
			for _, id := range []int{5, 2, 7} {
				_, err := s.Roster().Add(ctx, models.RosterSlot{CatalogID: id}, models.RosterCapacity)
				Expect(err).NotTo(HaveOccurred())
			}

			slots, err := s.Roster().List(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(slots).To(HaveLen(3))
			Expect(slots[0].CatalogID).To(Equal(5))
			Expect(slots[1].CatalogID).To(Equal(2))
			Expect(slots[2].CatalogID).To(Equal(7))
		})
	})

	Context("Update", func() {
		It("should update the slot fields", func() {
			slot, err := s.Roster().Add(ctx, models.RosterSlot{CatalogID: 1}, models.RosterCapacity)
			Expect(err).NotTo(HaveOccurred())

			slot.CatalogID = 2
			slot.Notes = ptr("leads")
			updated, err := s.Roster().Update(ctx, *slot)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.CatalogID).To(Equal(2))
			Expect(*updated.Notes).To(Equal("leads"))
		})

		It("should return UnknownCreature when pointing to a missing creature", func() {
			slot, err := s.Roster().Add(ctx, models.RosterSlot{CatalogID: 1}, models.RosterCapacity)
			Expect(err).NotTo(HaveOccurred())

			slot.CatalogID = 99
			_, err = s.Roster().Update(ctx, *slot)

			Expect(srvErrors.IsUnknownCreatureError(err)).To(BeTrue())
		})

		It("should return RosterSlotNotFound for a missing slot", func() {
			_, err := s.Roster().Update(ctx, models.RosterSlot{ID: 42, CatalogID: 1})
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Remove", func() {
		It("should remove a slot", func() {
			slot, err := s.Roster().Add(ctx, models.RosterSlot{CatalogID: 1}, models.RosterCapacity)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Roster().Remove(ctx, slot.ID)).To(Succeed())

			_, err = s.Roster().Get(ctx, slot.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return RosterSlotNotFound for a missing slot", func() {
			err := s.Roster().Remove(ctx, 42)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})
