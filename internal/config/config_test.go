package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-extras/cobraflags"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/kubev2v/dexkeeper/internal/config"
)

var _ = Describe("Configuration", func() {
	Context("NewConfigurationWithOptionsAndDefaults", func() {
		// Given no explicit settings
		// When we build the configuration
		// Then every default tag should be applied
		It("should apply the default values", func() {
			// Act
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			// Assert
			Expect(cfg.Server.ServerMode).To(Equal("dev"))
			Expect(cfg.Server.HTTPPort).To(Equal(8000))
			Expect(cfg.Catalog.Timeout).To(Equal(15 * time.Second))
			Expect(cfg.Importer.PageSize).To(Equal(151))
			Expect(cfg.Importer.BatchSize).To(Equal(20))
			Expect(cfg.Roster.MaxCatalogID).To(Equal(151))
			Expect(cfg.LogFormat).To(Equal("console"))
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Context("Load", func() {
		var (
			cfg *config.Configuration
			cmd *cobra.Command
		)

		parse := func(args ...string) {
			Expect(cmd.ParseFlags(args)).To(Succeed())
		}

		BeforeEach(func() {
			cfg = config.NewConfigurationWithOptionsAndDefaults()
			cmd = &cobra.Command{Use: "test"}
			cobraflags.Register(cmd, config.Flags(cfg)...)
		})

		// Given an environment variable with the DEXKEEPER prefix
		// When we load the configuration
		// Then the environment value should override the default
		It("should read prefixed environment variables", func() {
			// Arrange
			GinkgoT().Setenv("DEXKEEPER_IMPORT_BATCH_SIZE", "25")
			GinkgoT().Setenv("DEXKEEPER_CATALOG_TIMEOUT", "2s")
			parse()

			// Act
			err := config.Load(cfg, cmd.Flags(), "")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Importer.BatchSize).To(Equal(25))
			Expect(cfg.Catalog.Timeout).To(Equal(2 * time.Second))
		})

		// Given both an environment variable and an explicit flag
		// When we load the configuration
		// Then the flag should win
		It("should prefer explicit flags over the environment", func() {
			// Arrange
			GinkgoT().Setenv("DEXKEEPER_SERVER_HTTP_PORT", "9000")
			parse("--http-port=9100")

			// Act
			err := config.Load(cfg, cmd.Flags(), "")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.HTTPPort).To(Equal(9100))
		})

		// Given a yaml config file
		// When we load the configuration with that file
		// Then the file values should be applied
		It("should read a config file", func() {
			// Arrange
			path := filepath.Join(GinkgoT().TempDir(), "dexkeeper.yaml")
			content := "database:\n  path: /tmp/dex.db\n  auto-migrate: true\nroster:\n  max-catalog-id: 251\n"
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
			parse()

			// Act
			err := config.Load(cfg, cmd.Flags(), path)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Database.Path).To(Equal("/tmp/dex.db"))
			Expect(cfg.Database.AutoMigrate).To(BeTrue())
			Expect(cfg.Roster.MaxCatalogID).To(Equal(251))
			Expect(cfg.Importer.PageSize).To(Equal(151))
		})

		// Given a config file and an environment variable for the same key
		// When we load the configuration
		// Then the environment should win over the file
		It("should prefer the environment over the config file", func() {
			// Arrange
			path := filepath.Join(GinkgoT().TempDir(), "dexkeeper.yaml")
			Expect(os.WriteFile(path, []byte("catalog:\n  rate-limit: 5\n"), 0o600)).To(Succeed())
			GinkgoT().Setenv("DEXKEEPER_CATALOG_RATE_LIMIT", "2.5")
			parse()

			// Act
			err := config.Load(cfg, cmd.Flags(), path)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Catalog.RateLimit).To(Equal(2.5))
		})

		It("should decode string flags into durations and floats", func() {
			parse("--catalog-timeout=750ms", "--catalog-rate-limit=0.5", "--auto-seed")

			err := config.Load(cfg, cmd.Flags(), "")

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Catalog.Timeout).To(Equal(750 * time.Millisecond))
			Expect(cfg.Catalog.RateLimit).To(Equal(0.5))
			Expect(cfg.Database.AutoSeed).To(BeTrue())
		})

		It("should leave options without a registered flag untouched", func() {
			cfg.LogLevel = "debug"

			err := config.Load(cfg, (&cobra.Command{Use: "bare"}).Flags(), "")

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.LogLevel).To(Equal("debug"))
		})

		It("should fail on a missing config file", func() {
			parse()

			err := config.Load(cfg, cmd.Flags(), filepath.Join(GinkgoT().TempDir(), "missing.yaml"))

			Expect(err).To(HaveOccurred())
		})
	})

	Context("Validate", func() {
		// Given auth enabled without a secret and a bad batch size
		// When we validate the configuration
		// Then both problems should be reported
		It("should report every invalid option", func() {
			// Arrange
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Auth.Enabled = true
			cfg.Importer.BatchSize = 0

			// Act
			err := cfg.Validate()

			// Assert
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("auth secret is required"))
			Expect(err.Error()).To(ContainSubstring("batch size must be positive"))
		})

		It("should reject a relative catalog url", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Catalog.URL = "pokeapi.co"

			Expect(cfg.Validate()).To(MatchError(ContainSubstring("catalog url")))
		})

		It("should keep the auth secret out of the debug map", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Auth.Secret = "s3cret"
			cfg.Auth.Enabled = true

			debug := cfg.Auth.DebugMap()

			Expect(debug).To(HaveKeyWithValue("Enabled", true))
			Expect(debug).NotTo(HaveKey("Secret"))
		})

		It("should build sections from options", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithServer(*config.NewServerWithOptionsAndDefaults(config.WithHTTPPort(9001))),
				config.WithLogLevel("debug"),
			)

			Expect(cfg.Server.HTTPPort).To(Equal(9001))
			Expect(cfg.Server.ServerMode).To(Equal("dev"))
			Expect(cfg.LogLevel).To(Equal("debug"))
			Expect(cfg.Importer.BatchSize).To(Equal(20))
		})
	})
})
