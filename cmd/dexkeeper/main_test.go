package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/kubev2v/dexkeeper/internal/export"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

var _ = Describe("dexkeeper", func() {
	var dbPath string

	BeforeEach(func() {
		dbPath = filepath.Join(GinkgoT().TempDir(), "dex.db")
	})

	It("should migrate forward and report the status", func() {
		out, err := execute("migrate", "--db-path", dbPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("migrations completed (forward)"))

		out, err = execute("migrate", "status", "--db-path", dbPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("006_create_roster_slots_table"))
		Expect(out).NotTo(ContainSubstring("pending"))
	})

	It("should revert with the down alias", func() {
		_, err := execute("migrate", "up", "--db-path", dbPath)
		Expect(err).NotTo(HaveOccurred())

		_, err = execute("migrate", "down", "--db-path", dbPath)
		Expect(err).NotTo(HaveOccurred())

		out, err := execute("migrate", "status", "--db-path", dbPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).NotTo(ContainSubstring("applied"))
	})

	It("should read the database path from the environment", func() {
		GinkgoT().Setenv("DEXKEEPER_DATABASE_PATH", dbPath)

		_, err := execute("migrate")
		Expect(err).NotTo(HaveOccurred())

		out, err := execute("migrate", "status", "--db-path", dbPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).NotTo(ContainSubstring("pending"))
	})

	It("should reject an unknown direction", func() {
		_, err := execute("migrate", "sideways", "--db-path", dbPath)
		Expect(err).To(MatchError(ContainSubstring("invalid direction")))
	})

	It("should reject an invalid configuration", func() {
		_, err := execute("migrate", "--db-path", dbPath, "--log-format", "xml")
		Expect(err).To(MatchError(ContainSubstring("log format")))
	})

	It("should export an empty catalog", func() {
		output := filepath.Join(GinkgoT().TempDir(), "dex.xlsx")
		_, err := execute("migrate", "--db-path", dbPath)
		Expect(err).NotTo(HaveOccurred())

		out, err := execute("export", "--db-path", dbPath, "--output", output)

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("exported 0 creatures"))
		data, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		f, err := excelize.OpenReader(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		Expect(f.GetSheetList()).To(ContainElement(export.RosterSheet))
	})
})
