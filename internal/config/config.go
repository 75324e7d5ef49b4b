package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultJWTSecret is only accepted outside production mode
const DefaultJWTSecret = "akademik-development-secret"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Server          string `yaml:"server" env:"DB_SERVER"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		Name            string `yaml:"name" env:"DB_NAME"`
		Schema          string `yaml:"schema" env:"DB_SCHEMA"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		Encrypt         string `yaml:"encrypt" env:"DB_ENCRYPT"`
		TrustServerCert bool   `yaml:"trust_server_certificate" env:"DB_TRUST_SERVER_CERTIFICATE"`
		FoldIdentifiers bool   `yaml:"fold_identifiers" env:"DB_FOLD_IDENTIFIERS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		ConnMaxIdleTime string `yaml:"conn_max_idle_time" env:"DB_CONN_MAX_IDLE_TIME"`
		VerifyProcs     bool   `yaml:"verify_procedures" env:"VERIFY_PROCEDURES"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret" env:"JWT_SECRET"`
		Expiration string `yaml:"expiration" env:"JWT_EXPIRATION"`
		Issuer     string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Auth struct {
		EnforceRoles bool `yaml:"enforce_roles" env:"AUTH_ENFORCE_ROLES"`
	} `yaml:"auth"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Path    string `yaml:"path" env:"METRICS_PATH"`
	} `yaml:"metrics"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored and existing variables are never overridden.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
		}
	}
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if config.Database.Port == "" {
		config.Database.Port = defaultPort(config.Database.Driver)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "5000"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.Driver = "sqlserver"
	config.Database.Server = "localhost"
	config.Database.User = "sa"
	config.Database.Name = "AkademikDB"
	config.Database.Schema = "dbo"
	config.Database.SSLMode = "disable"
	config.Database.Encrypt = "disable"
	config.Database.TrustServerCert = true
	config.Database.MaxOpenConns = 10
	config.Database.MaxIdleConns = 0
	config.Database.ConnMaxIdleTime = "30s"
	config.Database.VerifyProcs = true

	// JWT defaults
	config.JWT.Secret = DefaultJWTSecret
	config.JWT.Expiration = "24h"
	config.JWT.Issuer = "akademik"

	// Metrics defaults
	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

func defaultPort(driver string) string {
	switch strings.ToLower(driver) {
	case "mysql", "mariadb":
		return "3306"
	case "postgres", "postgresql", "pgx":
		return "5432"
	default:
		return "1433"
	}
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return applyEnv(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Database.Driver) {
	case "sqlserver", "mssql", "postgres", "postgresql", "pgx", "mysql", "mariadb":
	case "":
		return fmt.Errorf("database driver is required")
	default:
		return fmt.Errorf("unsupported database driver: %s", config.Database.Driver)
	}

	if config.Database.Server == "" {
		return fmt.Errorf("database server is required")
	}

	if config.Database.MaxOpenConns < 0 || config.Database.MaxIdleConns < 0 {
		return fmt.Errorf("pool sizes must not be negative")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxIdleTime); err != nil {
		return fmt.Errorf("invalid connection idle time format: %w", err)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Server.Mode == "production" && config.JWT.Secret == DefaultJWTSecret {
		return fmt.Errorf("JWT secret must be set in production mode")
	}

	// Validate JWT expiration format
	if _, err := time.ParseDuration(config.JWT.Expiration); err != nil {
		return fmt.Errorf("invalid JWT expiration format: %w", err)
	}

	return nil
}

// GetSQLServerConnectionString returns a go-mssqldb sqlserver:// URL
func (c *Config) GetSQLServerConnectionString() string {
	encrypt := c.Database.Encrypt
	if encrypt == "" {
		encrypt = "disable"
	}

	query := url.Values{}
	query.Set("database", c.Database.Name)
	query.Set("encrypt", encrypt)
	query.Set("TrustServerCertificate", strconv.FormatBool(c.Database.TrustServerCert))
	query.Set("app name", "akademik")

	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Server, c.Database.Port),
		RawQuery: query.Encode(),
	}
	return u.String()
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Server, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// GetMySQLConnectionString returns a go-sql-driver/mysql DSN
func (c *Config) GetMySQLConnectionString() string {
	cfg := mysql.NewConfig()
	cfg.User = c.Database.User
	cfg.Passwd = c.Database.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Database.Server, c.Database.Port)
	cfg.DBName = c.Database.Name
	cfg.ParseTime = true
	cfg.MultiStatements = false
	return cfg.FormatDSN()
}

// GetConnectionString returns the DSN for the configured driver
func (c *Config) GetConnectionString() string {
	switch strings.ToLower(c.Database.Driver) {
	case "mysql", "mariadb":
		return c.GetMySQLConnectionString()
	case "postgres", "postgresql", "pgx":
		return c.GetPostgresConnectionString()
	default:
		return c.GetSQLServerConnectionString()
	}
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
