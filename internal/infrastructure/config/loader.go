package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// created is set when Load wrote a fresh default file.
	created string
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// TABSTASH_DATABASE_DRIVER, TABSTASH_HTTP_ADDR, ...
	v.SetEnvPrefix("TABSTASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TABSTASH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSTASH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABSTASH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSTASH_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload unmarshals, resolves paths, normalizes and validates.
// Must be called with m.mu held for write.
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// resolvePaths fills empty file locations from the XDG directories.
func resolvePaths(config *Config) error {
	dataDir, err := GetDataDir()
	if err != nil {
		return fmt.Errorf("failed to get data directory: %w", err)
	}

	if config.Database.Path == "" {
		switch config.Database.Driver {
		case DriverJSONFile:
			config.Database.Path = filepath.Join(dataDir, documentName)
		default:
			config.Database.Path = filepath.Join(dataDir, databaseName)
		}
	}
	if config.Notify.SignalFile == "" {
		stateDir, err := GetStateDir()
		if err != nil {
			return fmt.Errorf("failed to get state directory: %w", err)
		}
		config.Notify.SignalFile = filepath.Join(stateDir, signalName)
	}
	return nil
}

func normalizeConfig(config *Config) {
	switch DatabaseDriver(strings.ToLower(string(config.Database.Driver))) {
	case "", DriverSQLite:
		config.Database.Driver = DriverSQLite
	case DriverPostgres:
		config.Database.Driver = DriverPostgres
	case DriverJSONFile:
		config.Database.Driver = DriverJSONFile
	case DriverMemory:
		config.Database.Driver = DriverMemory
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	if strings.TrimSpace(config.Suspend.NameFormat) == "" {
		config.Suspend.NameFormat = defaultNameFormat
	}
	if config.Host.RequestTimeout == 0 {
		config.Host.RequestTimeout = defaultRequestTimeout
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.HTTP.AllowedOrigins = append([]string(nil), m.config.HTTP.AllowedOrigins...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// CreatedConfigFile returns the path of a default file written during Load, if any.
func (m *Manager) CreatedConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// createDefaultConfig writes the defaults to the config file.
// Nothing is printed: stdout may be a native messaging pipe.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	// Written from a clean instance so environment overrides stay out of the file.
	defaults := &Manager{viper: viper.New()}
	defaults.setDefaults()
	defaults.viper.SetConfigType("toml")
	if err := defaults.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(configFile, filePerm); err != nil {
		return err
	}

	m.created = configFile
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Paths are resolved in reload(), no defaults needed
	m.setDatabaseDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setNotifyDefaults(defaults)
	m.setHostDefaults(defaults)
	m.setHTTPDefaults(defaults)
	m.setSuspendDefaults(defaults)
}

func (m *Manager) setDatabaseDefaults(defaults *Config) {
	m.viper.SetDefault("database.driver", string(defaults.Database.Driver))
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("database.postgres_dsn", "")
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

func (m *Manager) setNotifyDefaults(defaults *Config) {
	m.viper.SetDefault("notify.signal_file", defaults.Notify.SignalFile)
	m.viper.SetDefault("notify.disabled", defaults.Notify.Disabled)
}

func (m *Manager) setHostDefaults(defaults *Config) {
	m.viper.SetDefault("host.browser", defaults.Host.Browser)
	m.viper.SetDefault("host.request_timeout", defaults.Host.RequestTimeout.String())
}

func (m *Manager) setHTTPDefaults(defaults *Config) {
	m.viper.SetDefault("http.addr", defaults.HTTP.Addr)
	m.viper.SetDefault("http.allowed_origins", defaults.HTTP.AllowedOrigins)
}

func (m *Manager) setSuspendDefaults(defaults *Config) {
	m.viper.SetDefault("suspend.name_format", defaults.Suspend.NameFormat)
	m.viper.SetDefault("suspend.remove_after_restore", defaults.Suspend.RemoveAfterRestore)
}

var (
	globalManager *Manager
	globalMu      sync.RWMutex
)

// Init initializes the global configuration manager.
func Init() error {
	manager, err := NewManager()
	if err != nil {
		return err
	}
	if err := manager.Load(); err != nil {
		return err
	}

	globalMu.Lock()
	globalManager = manager
	globalMu.Unlock()
	return nil
}

// Get returns the current global configuration, or defaults before Init.
func Get() *Config {
	globalMu.RLock()
	manager := globalManager
	globalMu.RUnlock()

	if manager == nil {
		return DefaultConfig()
	}
	return manager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalManager
}
