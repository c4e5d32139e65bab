package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/dexkeeper/internal/services"
	"github.com/kubev2v/dexkeeper/internal/store"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

var _ = Describe("TagService", func() {
	var (
		ctx context.Context
		db  *sql.DB
		srv *services.TagService
	)

	BeforeEach(func() {
		ctx = context.Background()
		var st *store.Store
		st, db = newTestStore(ctx)
		srv = services.NewTagService(st)
	})

	AfterEach(func() {
		db.Close()
	})

	It("should lowercase the name", func() {
		t, err := srv.Create(ctx, services.TagInput{Name: ptr(" Fire "), Color: ptr("#EE8130")})

		Expect(err).NotTo(HaveOccurred())
		Expect(t.Name).To(Equal("fire"))
		Expect(*t.Color).To(Equal("#EE8130"))
	})

	It("should reject a color that is not hex", func() {
		_, err := srv.Create(ctx, services.TagInput{Name: ptr("fire"), Color: ptr("orange")})

		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})

	It("should require a name", func() {
		_, err := srv.Create(ctx, services.TagInput{Color: ptr("#fff")})

		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})

	It("should reject duplicate names regardless of case", func() {
		_, err := srv.Create(ctx, services.TagInput{Name: ptr("water")})
		Expect(err).NotTo(HaveOccurred())

		_, err = srv.Create(ctx, services.TagInput{Name: ptr("WATER")})

		Expect(srvErrors.IsConflictError(err)).To(BeTrue())
	})

	It("should clear the description with a blank value", func() {
		t, err := srv.Create(ctx, services.TagInput{Name: ptr("ice"), Description: ptr("cold")})
		Expect(err).NotTo(HaveOccurred())

		updated, err := srv.Update(ctx, t.ID, services.TagInput{Description: ptr(" ")})

		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Name).To(Equal("ice"))
		Expect(updated.Description).To(BeNil())
	})

	It("should return not found for a missing tag", func() {
		_, err := srv.Update(ctx, 404, services.TagInput{Name: ptr("ghost")})

		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})
})
