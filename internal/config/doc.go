// Package config defines the configuration of dexkeeper.
//
// # Configuration Structure
//
//	Configuration
//	├── Server     - HTTP server settings
//	├── Database   - SQLite store and bootstrap switches
//	├── Catalog    - Remote catalog client
//	├── Importer   - Batch importer sizing
//	├── Roster     - Roster rules
//	├── Auth       - Bearer token verification
//	├── Log        - Log file rotation
//	├── LogFormat  - console or json
//	└── LogLevel   - zap level name
//
// # Sources
//
// Load merges, from lowest to highest precedence:
//
//	┌───────────────────┬──────────────────────────────────────────────┐
//	│ Source            │ Notes                                        │
//	├───────────────────┼──────────────────────────────────────────────┤
//	│ flag defaults     │ default tags, see NewConfigurationWith...    │
//	│ config file       │ any format viper reads, when --config is set │
//	│ environment       │ DEXKEEPER_<SECTION>_<KEY>, .env loaded first │
//	│ command flags     │ only flags set on the command line           │
//	└───────────────────┴──────────────────────────────────────────────┘
//
// Every option has a cobraflags flag whose ViperKey is the option's key in the
// config file. Environment keys replace dots and dashes with underscores, so
// catalog.rate-limit is read from DEXKEEPER_CATALOG_RATE_LIMIT.
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────┐
//	│ Field            │ Default │ Description                        │
//	├──────────────────┼─────────┼────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ "prod" switches gin to release     │
//	│ HTTPPort         │ 8000    │ HTTP listen port                   │
//	└──────────────────┴─────────┴────────────────────────────────────┘
//
// # Database Configuration
//
//	┌──────────────┬────────────────┬──────────────────────────────────────┐
//	│ Field        │ Default        │ Description                          │
//	├──────────────┼────────────────┼──────────────────────────────────────┤
//	│ Path         │ "dexkeeper.db" │ SQLite file, ":memory:" for tests    │
//	│ AutoMigrate  │ false          │ serve runs forward migrations first  │
//	│ AutoSeed     │ false          │ serve seeds tags, trainers, catalog  │
//	└──────────────┴────────────────┴──────────────────────────────────────┘
//
// # Catalog and Import Configuration
//
//	┌───────────────────┬────────────────────────────┬──────────────────────────────┐
//	│ Field             │ Default                    │ Description                  │
//	├───────────────────┼────────────────────────────┼──────────────────────────────┤
//	│ Catalog.URL       │ https://pokeapi.co/api/v2  │ remote catalog base url      │
//	│ Catalog.Timeout   │ 15s                        │ per request timeout          │
//	│ Catalog.RateLimit │ 20                         │ requests per second, 0 = off │
//	│ Catalog.Burst     │ 20                         │ limiter burst                │
//	│ Importer.PageSize │ 151                        │ entries fetched in one page  │
//	│ Importer.BatchSize│ 20                         │ records per persisted batch  │
//	│ Importer.MaxAttem.│ 3                          │ seed retries on 5xx/timeouts │
//	└───────────────────┴────────────────────────────┴──────────────────────────────┘
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Database Catalog Importer Roster Auth Log
//
// Every field carries a debugmap tag. Auth.Secret is `debugmap:"hidden"` and
// never shows up in DebugMap.
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults()
//	cobraflags.Register(cmd, config.Flags(cfg)...)
//	cobraflags.CobraOnInitialize(config.EnvPrefix, cmd)
//	// after flag parsing
//	if err := config.Load(cfg, cmd.Flags(), configFile); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// Sections are logged through their generated DebugMap:
//
//	zap.S().Infow("configuration loaded", "catalog", cfg.Catalog.DebugMap())
package config
