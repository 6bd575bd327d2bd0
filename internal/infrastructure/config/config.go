// Package config loads tabstash configuration from TOML and the environment.
package config

import "time"

// Config is the full tabstash configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database" jsonschema:"description=Tab group storage"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Notify   NotifyConfig   `mapstructure:"notify" toml:"notify" json:"notify"`
	Host     HostConfig     `mapstructure:"host" toml:"host" json:"host" jsonschema:"description=Native messaging host"`
	HTTP     HTTPConfig     `mapstructure:"http" toml:"http" json:"http" jsonschema:"description=Local HTTP API"`
	Suspend  SuspendConfig  `mapstructure:"suspend" toml:"suspend" json:"suspend"`
}

// DatabaseDriver selects the storage backend.
type DatabaseDriver string

const (
	DriverSQLite   DatabaseDriver = "sqlite"
	DriverPostgres DatabaseDriver = "postgres"
	DriverJSONFile DatabaseDriver = "jsonfile"
	DriverMemory   DatabaseDriver = "memory"
)

// DatabaseConfig configures the tab group store.
type DatabaseConfig struct {
	Driver DatabaseDriver `mapstructure:"driver" toml:"driver" json:"driver" jsonschema:"enum=sqlite,enum=postgres,enum=jsonfile,enum=memory,default=sqlite"`
	// Path is the SQLite file, or the JSON document for the jsonfile driver.
	Path        string `mapstructure:"path" toml:"path" json:"path,omitempty"`
	PostgresDSN string `mapstructure:"postgres_dsn" toml:"postgres_dsn" json:"postgres_dsn,omitempty"`
}

// LoggingConfig configures zerolog output and optional file rotation.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format     string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	File       string `mapstructure:"file" toml:"file" json:"file,omitempty" jsonschema:"description=Rotated log file. Empty disables file logging"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
}

// NotifyConfig configures cross-process change signals.
type NotifyConfig struct {
	SignalFile string `mapstructure:"signal_file" toml:"signal_file" json:"signal_file,omitempty"`
	Disabled   bool   `mapstructure:"disabled" toml:"disabled" json:"disabled"`
}

// HostConfig configures the native messaging host.
type HostConfig struct {
	Browser        string        `mapstructure:"browser" toml:"browser" json:"browser" jsonschema:"description=Browser name used to pick window options (chromium or firefox family)"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" toml:"request_timeout" json:"request_timeout" jsonschema:"type=string,default=10s"`
}

// HTTPConfig configures the local HTTP API.
type HTTPConfig struct {
	Addr           string   `mapstructure:"addr" toml:"addr" json:"addr" jsonschema:"default=127.0.0.1:7878"`
	AllowedOrigins []string `mapstructure:"allowed_origins" toml:"allowed_origins" json:"allowed_origins"`
}

// SuspendConfig configures suspend and restore.
type SuspendConfig struct {
	NameFormat         string `mapstructure:"name_format" toml:"name_format" json:"name_format" jsonschema:"description=Placeholders {count} and {date}"`
	RemoveAfterRestore bool   `mapstructure:"remove_after_restore" toml:"remove_after_restore" json:"remove_after_restore"`
}
