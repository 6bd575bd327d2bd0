package config

import "time"

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultLogMaxSizeMB   = 10
	defaultLogMaxBackups  = 3
	defaultLogMaxAgeDays  = 14
	defaultBrowser        = "chromium"
	defaultRequestTimeout = 10 * time.Second
	defaultHTTPAddr       = "127.0.0.1:7878"
	defaultNameFormat     = "{count} tabs — {date}"
)

// DefaultConfig returns the configuration used when no file overrides it.
// Paths are left empty and resolved against XDG directories on load.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
		Host: HostConfig{
			Browser:        defaultBrowser,
			RequestTimeout: defaultRequestTimeout,
		},
		HTTP: HTTPConfig{
			Addr:           defaultHTTPAddr,
			AllowedOrigins: []string{"moz-extension://*", "chrome-extension://*"},
		},
		Suspend: SuspendConfig{
			NameFormat: defaultNameFormat,
		},
	}
}
