package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Database Catalog Importer Roster Auth Log

const (
	EnvPrefix = "DEXKEEPER"

	ServerModeDev  = "dev"
	ServerModeProd = "prod"

	// cobraflags stores the ViperKey of every registered flag under this annotation.
	viperKeyAnnotation = "viper-key"
)

type Configuration struct {
	Server    Server   `mapstructure:"server" debugmap:"visible"`
	Database  Database `mapstructure:"database" debugmap:"visible"`
	Catalog   Catalog  `mapstructure:"catalog" debugmap:"visible"`
	Importer  Importer `mapstructure:"import" debugmap:"visible"`
	Roster    Roster   `mapstructure:"roster" debugmap:"visible"`
	Auth      Auth     `mapstructure:"auth" debugmap:"visible"`
	Log       Log      `mapstructure:"log" debugmap:"visible"`
	LogFormat string   `mapstructure:"log-format" default:"console" debugmap:"visible"`
	LogLevel  string   `mapstructure:"log-level" default:"info" debugmap:"visible"`
}

type Server struct {
	ServerMode string `mapstructure:"mode" default:"dev" debugmap:"visible"`
	HTTPPort   int    `mapstructure:"http-port" default:"8000" debugmap:"visible"`
}

type Database struct {
	Path        string `mapstructure:"path" default:"dexkeeper.db" debugmap:"visible"`
	AutoMigrate bool   `mapstructure:"auto-migrate" default:"false" debugmap:"visible"`
	AutoSeed    bool   `mapstructure:"auto-seed" default:"false" debugmap:"visible"`
}

type Catalog struct {
	URL       string        `mapstructure:"url" default:"https://pokeapi.co/api/v2" debugmap:"visible"`
	Timeout   time.Duration `mapstructure:"timeout" default:"15s" debugmap:"visible"`
	RateLimit float64       `mapstructure:"rate-limit" default:"20" debugmap:"visible"`
	Burst     int           `mapstructure:"burst" default:"20" debugmap:"visible"`
}

type Importer struct {
	PageSize    int `mapstructure:"page-size" default:"151" debugmap:"visible"`
	BatchSize   int `mapstructure:"batch-size" default:"20" debugmap:"visible"`
	MaxAttempts int `mapstructure:"max-attempts" default:"3" debugmap:"visible"`
}

type Roster struct {
	MaxCatalogID int `mapstructure:"max-catalog-id" default:"151" debugmap:"visible"`
}

type Auth struct {
	Enabled bool   `mapstructure:"enabled" default:"false" debugmap:"visible"`
	Secret  string `mapstructure:"secret" debugmap:"hidden"`
}

type Log struct {
	File       string `mapstructure:"file" debugmap:"visible"`
	MaxSize    int    `mapstructure:"max-size" default:"100" debugmap:"visible"`
	MaxBackups int    `mapstructure:"max-backups" default:"5" debugmap:"visible"`
	MaxAge     int    `mapstructure:"max-age" default:"28" debugmap:"visible"`
}

// Flags declares one persistent flag per option, defaulting to the values of
// cfg. ViperKey is the option's key in config files and, upper-cased with the
// DEXKEEPER_ prefix and dots and dashes turned into underscores, in the
// environment.
func Flags(cfg *Configuration) []cobraflags.Flag {
	return []cobraflags.Flag{
		&cobraflags.StringFlag{Name: "server-mode", ViperKey: "server.mode", Persistent: true, Value: cfg.Server.ServerMode, Usage: "server mode: dev or prod"},
		&cobraflags.IntFlag{Name: "http-port", ViperKey: "server.http-port", Persistent: true, Value: cfg.Server.HTTPPort, Usage: "http listen port"},

		&cobraflags.StringFlag{Name: "db-path", ViperKey: "database.path", Persistent: true, Value: cfg.Database.Path, Usage: "path of the sqlite database, :memory: for an in-memory store"},
		&cobraflags.BoolFlag{Name: "auto-migrate", ViperKey: "database.auto-migrate", Persistent: true, Value: cfg.Database.AutoMigrate, Usage: "run the forward migrations before serving"},
		&cobraflags.BoolFlag{Name: "auto-seed", ViperKey: "database.auto-seed", Persistent: true, Value: cfg.Database.AutoSeed, Usage: "seed the store before serving"},

		&cobraflags.StringFlag{Name: "catalog-url", ViperKey: "catalog.url", Persistent: true, Value: cfg.Catalog.URL, Usage: "base url of the remote catalog"},
		&cobraflags.StringFlag{Name: "catalog-timeout", ViperKey: "catalog.timeout", Persistent: true, Value: cfg.Catalog.Timeout.String(), Usage: "timeout of a single catalog request", ValidateFunc: validDuration},
		&cobraflags.StringFlag{Name: "catalog-rate-limit", ViperKey: "catalog.rate-limit", Persistent: true, Value: strconv.FormatFloat(cfg.Catalog.RateLimit, 'f', -1, 64), Usage: "max catalog requests per second, 0 disables limiting", ValidateFunc: validFloat},
		&cobraflags.IntFlag{Name: "catalog-burst", ViperKey: "catalog.burst", Persistent: true, Value: cfg.Catalog.Burst, Usage: "catalog rate limiter burst"},

		&cobraflags.IntFlag{Name: "import-page-size", ViperKey: "import.page-size", Persistent: true, Value: cfg.Importer.PageSize, Usage: "number of catalog entries to import"},
		&cobraflags.IntFlag{Name: "import-batch-size", ViperKey: "import.batch-size", Persistent: true, Value: cfg.Importer.BatchSize, Usage: "records per persisted batch and concurrent detail requests"},
		&cobraflags.IntFlag{Name: "import-max-attempts", ViperKey: "import.max-attempts", Persistent: true, Value: cfg.Importer.MaxAttempts, Usage: "attempts of a seed import on transient remote errors"},

		&cobraflags.IntFlag{Name: "max-catalog-id", ViperKey: "roster.max-catalog-id", Persistent: true, Value: cfg.Roster.MaxCatalogID, Usage: "highest catalog id accepted in the roster"},

		&cobraflags.BoolFlag{Name: "auth-enabled", ViperKey: "auth.enabled", Persistent: true, Value: cfg.Auth.Enabled, Usage: "require a bearer jwt on mutating routes"},
		&cobraflags.StringFlag{Name: "auth-secret", ViperKey: "auth.secret", Persistent: true, Value: cfg.Auth.Secret, Usage: "hmac secret used to verify bearer tokens"},

		&cobraflags.StringFlag{Name: "log-format", ViperKey: "log-format", Persistent: true, Value: cfg.LogFormat, Usage: "log format: console or json"},
		&cobraflags.StringFlag{Name: "log-level", ViperKey: "log-level", Persistent: true, Value: cfg.LogLevel, Usage: "log level"},
		&cobraflags.StringFlag{Name: "log-file", ViperKey: "log.file", Persistent: true, Value: cfg.Log.File, Usage: "write logs to this file with rotation instead of stderr"},
		&cobraflags.IntFlag{Name: "log-max-size", ViperKey: "log.max-size", Persistent: true, Value: cfg.Log.MaxSize, Usage: "max size in megabytes of a log file before rotation"},
		&cobraflags.IntFlag{Name: "log-max-backups", ViperKey: "log.max-backups", Persistent: true, Value: cfg.Log.MaxBackups, Usage: "rotated log files to keep"},
		&cobraflags.IntFlag{Name: "log-max-age", ViperKey: "log.max-age", Persistent: true, Value: cfg.Log.MaxAge, Usage: "days to keep rotated log files"},
	}
}

func validDuration(s string) error {
	_, err := time.ParseDuration(s)
	return err
}

func validFloat(s string) error {
	_, err := strconv.ParseFloat(s, 64)
	return err
}

// Load fills cfg from, in increasing precedence: the flag defaults, an
// optional config file, DEXKEEPER_* environment variables (a .env file in the
// working directory is loaded first) and explicitly set flags. Only flags
// declared by Flags take part.
func Load(cfg *Configuration, fs *pflag.FlagSet, configFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			keys := f.Annotations[viperKeyAnnotation]
			if len(keys) == 0 || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(keys[0], f)
		})
		if bindErr != nil {
			return fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	return nil
}

// Validate reports every invalid option at once.
func (c *Configuration) Validate() error {
	var errs []error

	if c.Server.ServerMode != ServerModeDev && c.Server.ServerMode != ServerModeProd {
		errs = append(errs, fmt.Errorf("server mode must be %q or %q, got %q", ServerModeDev, ServerModeProd, c.Server.ServerMode))
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("http port %d is out of range", c.Server.HTTPPort))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if u, err := url.Parse(c.Catalog.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("catalog url %q must be an absolute http(s) url", c.Catalog.URL))
	}
	if c.Catalog.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("catalog timeout must be positive, got %s", c.Catalog.Timeout))
	}
	if c.Catalog.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("catalog rate limit must not be negative, got %v", c.Catalog.RateLimit))
	}
	if c.Importer.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("import page size must be positive, got %d", c.Importer.PageSize))
	}
	if c.Importer.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("import batch size must be positive, got %d", c.Importer.BatchSize))
	}
	if c.Importer.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("import max attempts must be positive, got %d", c.Importer.MaxAttempts))
	}
	if c.Roster.MaxCatalogID <= 0 {
		errs = append(errs, fmt.Errorf("max catalog id must be positive, got %d", c.Roster.MaxCatalogID))
	}
	if c.Auth.Enabled && c.Auth.Secret == "" {
		errs = append(errs, errors.New("auth secret is required when auth is enabled"))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log format must be console or json, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}
