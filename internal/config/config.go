package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Graph     GraphConfig     `yaml:"graph"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// GraphConfig contains Microsoft identity and workbook settings
type GraphConfig struct {
	TenantID     string `yaml:"tenant_id"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	SiteID       string `yaml:"site_id"`
	ItemID       string `yaml:"item_id"`
	SheetName    string `yaml:"sheet_name"`
	RangeAddress string `yaml:"range_address"`
	// TimeoutSeconds bounds every outbound identity/Graph call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// RetryMax sets transport-level retries for 429/5xx responses. 0 disables.
	RetryMax int `yaml:"retry_max"`
}

// CacheConfig contains worksheet snapshot cache settings
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	// WarmRefresh is a cron spec (with seconds) for background snapshot
	// refreshes. Empty disables the scheduler; lookups then refresh lazily.
	WarmRefresh string `yaml:"warm_refresh"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Microsoft identity credentials
	if val := os.Getenv("TENANT_ID"); val != "" {
		c.Graph.TenantID = val
	}
	if val := os.Getenv("CLIENT_ID"); val != "" {
		c.Graph.ClientID = val
	}
	if val := os.Getenv("CLIENT_SECRET"); val != "" {
		c.Graph.ClientSecret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Cache
	if val := os.Getenv("CACHE_TTL_SECONDS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Cache.TTLSeconds)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Graph validation
	if c.Graph.TenantID == "" {
		return fmt.Errorf("graph tenant_id is required")
	}
	if c.Graph.ClientID == "" {
		return fmt.Errorf("graph client_id is required")
	}
	if c.Graph.ClientSecret == "" {
		return fmt.Errorf("graph client_secret is required")
	}
	if c.Graph.SiteID == "" {
		return fmt.Errorf("graph site_id is required")
	}
	if c.Graph.ItemID == "" {
		return fmt.Errorf("graph item_id is required")
	}
	if c.Graph.SheetName == "" {
		return fmt.Errorf("graph sheet_name is required")
	}
	if c.Graph.RangeAddress == "" {
		return fmt.Errorf("graph range_address is required")
	}

	// Graph defaults
	if c.Graph.TimeoutSeconds <= 0 {
		c.Graph.TimeoutSeconds = 20
	}
	if c.Graph.RetryMax < 0 {
		c.Graph.RetryMax = 0
	}

	// Cache defaults
	if c.Cache.TTLSeconds <= 0 {
		c.Cache.TTLSeconds = 120
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
