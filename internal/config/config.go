package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Mohib75/study-syncer-server/internal/configs/env"
)

const productionEnv = "production"

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://study-syncer-8735c.web.app",
	"https://study-syncer-8735c.firebaseapp.com",
}

// Config holds all configuration for the application
type Config struct {
	// MongoDB
	MongoURI    string
	MongoDBName string

	// Redis (optional, caches estimated counts)
	RedisHost     string
	RedisPassword string
	CountCacheTTL time.Duration

	// Session token
	AccessTokenSecret string

	// Payments
	StripeSecretKey string
	PaymentCurrency string

	// HTTP
	Environment    string
	AllowedOrigins []string
	ServerPort     string
	MetricsPort    string

	// Tracing
	OTLPEndpoint string
	OTLPInsecure bool

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{}

	// MongoDB
	cfg.MongoURI = env.GetEnv("MONGO_URI", "")
	if cfg.MongoURI == "" {
		cfg.MongoURI = atlasURI(
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASS", ""),
			env.GetEnv("DB_CLUSTER", ""),
		)
	}
	cfg.MongoDBName = env.GetEnv("MONGO_DB_NAME", "assignmentDB")

	// Redis
	cfg.RedisHost = env.GetEnv("REDIS_HOST", "")
	cfg.RedisPassword = env.GetEnv("REDIS_PASSWORD", "")
	cfg.CountCacheTTL = time.Duration(env.GetEnvInt("COUNT_CACHE_TTL_SECONDS", 30)) * time.Second

	// Session token
	cfg.AccessTokenSecret = env.GetEnv("ACCESS_TOKEN_SECRET", "")

	// Payments
	cfg.StripeSecretKey = env.GetEnv("STRIPE_SECRET_KEY", "")
	cfg.PaymentCurrency = env.GetEnv("PAYMENT_CURRENCY", "usd")

	// HTTP
	cfg.Environment = env.GetEnv("NODE_ENV", "development")
	cfg.AllowedOrigins = env.GetEnvList("ALLOWED_ORIGINS", defaultAllowedOrigins)
	cfg.ServerPort = env.GetEnv("PORT", "5000")
	cfg.MetricsPort = env.GetEnv("METRICS_PORT", "2112")

	// Tracing
	cfg.OTLPEndpoint = env.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	cfg.OTLPInsecure = env.GetEnvBool("OTEL_EXPORTER_OTLP_INSECURE", false)

	// Logging
	cfg.LogLevel = env.GetEnv("LOG_LEVEL", "info")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI or DB_USER/DB_PASS/DB_CLUSTER is required")
	}
	if c.MongoDBName == "" {
		return fmt.Errorf("MONGO_DB_NAME is required")
	}
	if c.AccessTokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if c.StripeSecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if c.PaymentCurrency == "" {
		return fmt.Errorf("PAYMENT_CURRENCY is required")
	}
	if c.ServerPort == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must not be empty")
	}
	if c.RedisHost != "" && c.CountCacheTTL <= 0 {
		return fmt.Errorf("COUNT_CACHE_TTL_SECONDS must be greater than 0")
	}
	return nil
}

// IsProduction reports whether cookies must be cross-site and secure.
func (c *Config) IsProduction() bool {
	return c.Environment == productionEnv
}

func atlasURI(user, pass, cluster string) string {
	if user == "" || pass == "" || cluster == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), cluster)
}
