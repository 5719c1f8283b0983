package config

import "time"

// Defaults applied when a value is absent from every configuration source.
const (
	defaultAPIAddress     = "localhost:8000"
	defaultRequestTimeout = 15 * time.Second
	defaultSessionTTL     = time.Hour
	defaultStatusInterval = 5 * time.Minute
	defaultDBDriver       = "pgx"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling in defaults
// where a value is optional.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.APIAddress == "" {
		cfg.Server.APIAddress = defaultAPIAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.SessionTTL == 0 {
		cfg.Server.SessionTTL = defaultSessionTTL
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.APIBaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.StatusInterval == 0 {
		cfg.Workers.StatusInterval = defaultStatusInterval
	}

	return nil
}
