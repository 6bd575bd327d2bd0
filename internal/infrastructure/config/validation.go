package config

import (
	"fmt"
	"net"
	"strings"
)

// validateConfig collects every problem into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateHost(config)...)
	validationErrors = append(validationErrors, validateHTTP(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDatabase(config *Config) []string {
	var validationErrors []string
	switch config.Database.Driver {
	case DriverSQLite, DriverJSONFile:
		if config.Database.Path == "" {
			validationErrors = append(validationErrors, "database.path must not be empty")
		}
	case DriverPostgres:
		if strings.TrimSpace(config.Database.PostgresDSN) == "" {
			validationErrors = append(validationErrors, "database.postgres_dsn is required for the postgres driver")
		}
	case DriverMemory:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("database.driver must be one of sqlite, postgres, jsonfile, memory (got %q)", config.Database.Driver))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}

	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateHost(config *Config) []string {
	if config.Host.RequestTimeout < 0 {
		return []string{"host.request_timeout must be positive"}
	}
	return nil
}

func validateHTTP(config *Config) []string {
	if _, _, err := net.SplitHostPort(config.HTTP.Addr); err != nil {
		return []string{fmt.Sprintf("http.addr must be host:port (got %q)", config.HTTP.Addr)}
	}
	return nil
}
