package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Media     MediaConfig     `mapstructure:"media"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port       int    `mapstructure:"port"`
	CORSOrigin string `mapstructure:"cors_origin"`
}

// DatabaseConfig contains connection options for PostgreSQL.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig contains connection options for the Redis instance backing rate limits.
type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// MediaConfig contains connection options for the S3-compatible media host
// that serves uploaded images, plus the optional clamd scanner address.
type MediaConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	PublicEndpoint  string `mapstructure:"public_endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
	ClamdAddr       string `mapstructure:"clamd_addr"`
}

// AuthConfig describes the external OIDC provider that issues admin tokens.
type AuthConfig struct {
	IssuerURL       string `mapstructure:"issuer_url"`
	Audience        string `mapstructure:"audience"`
	JWKSURL         string `mapstructure:"jwks_url"`
	AdminPermission string `mapstructure:"admin_permission"`
}

// RateLimitConfig carries the public write thresholds. These are deployment
// policy, not part of the API contract.
type RateLimitConfig struct {
	MessageLimit      int           `mapstructure:"message_limit"`
	MessageWindow     time.Duration `mapstructure:"message_window"`
	TestimonialLimit  int           `mapstructure:"testimonial_limit"`
	TestimonialWindow time.Duration `mapstructure:"testimonial_window"`
}

// DSN builds a lib/pq compatible connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// Addr returns the host:port address of the Redis instance.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWKSEndpoint returns the configured JWKS URL, defaulting to the provider's
// well-known location under the issuer.
func (a AuthConfig) JWKSEndpoint() string {
	if a.JWKSURL != "" {
		return a.JWKSURL
	}
	return strings.TrimSuffix(a.IssuerURL, "/") + "/.well-known/jwks.json"
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 4000)
	v.SetDefault("api.cors_origin", "http://localhost:3000")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "portfolio")
	v.SetDefault("database.user", "portfolio")
	v.SetDefault("database.password", "portfolio")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("media.endpoint", "localhost:9000")
	v.SetDefault("media.use_ssl", false)
	v.SetDefault("media.bucket", "portfolio")
	v.SetDefault("auth.admin_permission", "admin:full")
	v.SetDefault("ratelimit.message_limit", 10)
	v.SetDefault("ratelimit.message_window", time.Hour)
	v.SetDefault("ratelimit.testimonial_limit", 5)
	v.SetDefault("ratelimit.testimonial_window", 10*time.Minute)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                     "API_PORT",
		"api.cors_origin":              "CORS_ORIGIN",
		"database.host":                "DATABASE_HOST",
		"database.port":                "DATABASE_PORT",
		"database.name":                "POSTGRES_DB",
		"database.user":                "POSTGRES_USER",
		"database.password":            "POSTGRES_PASSWORD",
		"database.sslmode":             "DATABASE_SSLMODE",
		"redis.host":                   "REDIS_HOST",
		"redis.port":                   "REDIS_PORT",
		"media.endpoint":               "MEDIA_ENDPOINT",
		"media.public_endpoint":        "MEDIA_PUBLIC_ENDPOINT",
		"media.access_key_id":          "MEDIA_ACCESS_KEY_ID",
		"media.secret_access_key":      "MEDIA_SECRET_ACCESS_KEY",
		"media.use_ssl":                "MEDIA_USE_SSL",
		"media.bucket":                 "MEDIA_BUCKET",
		"media.clamd_addr":             "CLAMD_ADDR",
		"auth.issuer_url":              "AUTH_ISSUER_BASE_URL",
		"auth.audience":                "AUTH_AUDIENCE",
		"auth.jwks_url":                "AUTH_JWKS_URL",
		"auth.admin_permission":        "ADMIN_PERMISSION",
		"ratelimit.message_limit":      "RATELIMIT_MESSAGE_LIMIT",
		"ratelimit.message_window":     "RATELIMIT_MESSAGE_WINDOW",
		"ratelimit.testimonial_limit":  "RATELIMIT_TESTIMONIAL_LIMIT",
		"ratelimit.testimonial_window": "RATELIMIT_TESTIMONIAL_WINDOW",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.Database.Host == "" {
		return errors.New("database host is required")
	}
	if cfg.Auth.IssuerURL == "" {
		return errors.New("auth issuer url is required")
	}
	if cfg.Auth.Audience == "" {
		return errors.New("auth audience is required")
	}
	if cfg.Auth.AdminPermission == "" {
		return errors.New("admin permission is required")
	}
	return nil
}
