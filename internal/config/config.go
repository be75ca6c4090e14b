package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/pkg/validator"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Directory   DirectoryConfig
	Cache       CacheConfig
	JWT         JWTConfig
	Maintenance MaintenanceConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port            int
	Env             string
	LogLevel        string
	BaseURL         string
	SiteName        string
	SiteDescription string
	CORSOrigins     []string
	// Seed loads the sample listings on startup.
	Seed bool
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DirectoryConfig holds the company page settings.
type DirectoryConfig struct {
	RouteSegment         string
	HideFilledPositions  bool
	PrettyPermalinks     bool
	IncludeEmptyIndustry bool
	TitleSeparator       string
}

// CacheConfig holds Redis settings. An empty Addr disables caching.
type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret          string
	AdminExpiration string
}

type MaintenanceConfig struct {
	// SlugBackfillInterval of zero disables the periodic backfill.
	SlugBackfillInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	seed, err := getEnvBool("APP_SEED", false)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Port:            appPort,
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		BaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		SiteName:        getEnv("APP_SITE_NAME", ""),
		SiteDescription: getEnv("APP_SITE_DESCRIPTION", ""),
		CORSOrigins:     getEnvSlice("APP_CORS_ORIGINS", []string{"http://localhost:3000"}),
		Seed:            seed,
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       dbPort,
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "company_profiles"),
		SSLMode:    getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("DB_SQLITE_PATH", "company_profiles.db"),
	}

	// Directory configuration
	config.Directory = DirectoryConfig{
		RouteSegment:   getEnv("COMPANY_ROUTE_SEGMENT", "company"),
		TitleSeparator: getEnv("TITLE_SEPARATOR", "-"),
	}
	if config.Directory.HideFilledPositions, err = getEnvBool("HIDE_FILLED_POSITIONS", false); err != nil {
		return nil, err
	}
	if config.Directory.PrettyPermalinks, err = getEnvBool("PRETTY_PERMALINKS", true); err != nil {
		return nil, err
	}
	if config.Directory.IncludeEmptyIndustry, err = getEnvBool("INCLUDE_EMPTY_INDUSTRY", true); err != nil {
		return nil, err
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	config.Cache = CacheConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
		TTL:      cacheTTL,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:          getEnv("JWT_SECRET_KEY", ""),
		AdminExpiration: getEnv("JWT_ADMIN_EXPIRATION_TIME", "1h"),
	}

	backfillInterval, err := time.ParseDuration(getEnv("SLUG_BACKFILL_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SLUG_BACKFILL_INTERVAL: %w", err)
	}
	config.Maintenance = MaintenanceConfig{SlugBackfillInterval: backfillInterval}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AdminExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ADMIN_EXPIRATION_TIME: %w", err)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: must be %s or %s", c.Database.Driver, DriverPostgres, DriverSQLite)
	}

	if !validator.IsValidRouteSegment(c.Directory.RouteSegment) {
		return fmt.Errorf("invalid COMPANY_ROUTE_SEGMENT %q: must be a single lowercase path segment", c.Directory.RouteSegment)
	}
	if !validator.IsValidBaseURL(c.App.BaseURL) {
		return fmt.Errorf("invalid APP_BASE_URL %q", c.App.BaseURL)
	}
	if c.Maintenance.SlugBackfillInterval < 0 {
		return fmt.Errorf("SLUG_BACKFILL_INTERVAL must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
