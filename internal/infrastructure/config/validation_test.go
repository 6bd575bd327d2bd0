package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/tabstash.sqlite"
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "memory needs no path", mutate: func(c *Config) {
			c.Database.Driver = DriverMemory
			c.Database.Path = ""
		}},
		{name: "postgres with dsn", mutate: func(c *Config) {
			c.Database.Driver = DriverPostgres
			c.Database.PostgresDSN = "postgres://localhost/tabstash"
		}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mongo" }, wantMsg: "database.driver"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Database.Path = "" }, wantMsg: "database.path"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Database.Driver = DriverPostgres }, wantMsg: "database.postgres_dsn"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantMsg: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantMsg: "logging.format"},
		{name: "zero log size", mutate: func(c *Config) { c.Logging.MaxSizeMB = 0 }, wantMsg: "logging.max_size_mb"},
		{name: "negative timeout", mutate: func(c *Config) { c.Host.RequestTimeout = -1 }, wantMsg: "host.request_timeout"},
		{name: "bad addr", mutate: func(c *Config) { c.HTTP.Addr = "localhost" }, wantMsg: "http.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_CollectsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.HTTP.Addr = ""

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "http.addr")
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"postgres_dsn"`)
	assert.Contains(t, s, `"remove_after_restore"`)
	assert.Contains(t, s, "tabstash configuration")
}
