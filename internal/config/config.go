package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Privy    PrivyConfig
	Alpaca   AlpacaConfig
	Cron     CronConfig
	Sync     SyncConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// PrivyConfig holds identity provider (Privy) configuration
type PrivyConfig struct {
	AppID             string
	AppSecret         string
	APIBase           string
	KYCProvider       string
	WebhookSigningKey string
	// VerificationKey is the PEM-encoded ES256 public key used to verify
	// access tokens issued by Privy.
	VerificationKey string
}

// AlpacaConfig holds market data provider configuration
type AlpacaConfig struct {
	APIKey    string
	APISecret string
	DataBase  string
	Timeout   time.Duration
}

// CronConfig holds shared-secret configuration for system routes
type CronConfig struct {
	Secret string
}

// SyncConfig holds the in-process price sync job configuration
type SyncConfig struct {
	Enabled  bool
	Interval time.Duration
	PriceTTL time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "fantera"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Privy: PrivyConfig{
			AppID:             getEnv("PRIVY_APP_ID", ""),
			AppSecret:         getEnv("PRIVY_APP_SECRET", ""),
			APIBase:           getEnv("PRIVY_API_BASE", "https://auth.privy.io/api/v1"),
			KYCProvider:       getEnv("PRIVY_KYC_PROVIDER", "bridge-sandbox"),
			WebhookSigningKey: getEnv("PRIVY_WEBHOOK_SIGNING_KEY", ""),
			VerificationKey:   getEnv("PRIVY_VERIFICATION_KEY", ""),
		},
		Alpaca: AlpacaConfig{
			APIKey:    getEnv("ALPACA_API_KEY", ""),
			APISecret: getEnv("ALPACA_API_SECRET", ""),
			DataBase:  getEnv("ALPACA_DATA_BASE", "https://data.alpaca.markets"),
			Timeout:   getEnvAsDuration("ALPACA_TIMEOUT", 15*time.Second),
		},
		Cron: CronConfig{
			Secret: getEnv("CRON_SECRET", ""),
		},
		Sync: SyncConfig{
			Enabled:  getEnvAsBool("PRICE_SYNC_ENABLED", false),
			Interval: getEnvAsDuration("PRICE_SYNC_INTERVAL", 60*time.Second),
			PriceTTL: getEnvAsDuration("PRICE_STALE_THRESHOLD", 120*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
