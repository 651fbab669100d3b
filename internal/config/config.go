package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	MongoDB    MongoDBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Media      MediaConfig
	Reconciler ReconcilerConfig
	LogLevel   string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedHosts   []string
	MaxUploadBytes int64
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// MediaConfig holds media hosting configuration
type MediaConfig struct {
	BaseURL       string
	CloudName     string
	UploadPreset  string
	APIKey        string
	APISecret     string
	Folder        string
	MockAPI       bool
	Timeout       time.Duration
	MaxFileSize   int64
	StagingTTL    time.Duration
	SweepInterval time.Duration
}

// ReconcilerConfig holds configuration of the brand link reconciler
type ReconcilerConfig struct {
	Interval    time.Duration
	BatchSize   int
	MaxRetries  int // retries within one pass
	MaxAttempts int // failed passes before a link is left for manual repair
	Backoff     time.Duration
}

// SessionTTL returns the configured session lifetime
func (c JWTConfig) SessionTTL() time.Duration {
	return time.Duration(c.ExpiresIn) * time.Second
}

// Configured reports whether credentials for the real media host are present.
func (c MediaConfig) Configured() bool {
	if c.MockAPI {
		return true
	}
	return c.CloudName != "" && c.UploadPreset != ""
}

// Load loads configuration from a .env file, config.yaml and environment variables.
// Environment variables use upper-case keys with "_" as separator, e.g. MONGODB_URI.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(path + "/config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedHosts", []string{"http://localhost:3000"})
	v.SetDefault("Server.MaxUploadBytes", 256<<20)
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "brandhub")
	v.SetDefault("MongoDB.Timeout", 10*time.Second)
	v.SetDefault("Redis.URL", "redis://localhost:6379/0")
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 7*24*60*60) // 7 days, same as the old auth cookie
	v.SetDefault("Media.BaseURL", "https://api.cloudinary.com")
	v.SetDefault("Media.CloudName", "")
	v.SetDefault("Media.UploadPreset", "")
	v.SetDefault("Media.APIKey", "")
	v.SetDefault("Media.APISecret", "")
	v.SetDefault("Media.Folder", "campaigns")
	v.SetDefault("Media.MockAPI", false)
	v.SetDefault("Media.Timeout", 2*time.Minute)
	v.SetDefault("Media.MaxFileSize", 50<<20)
	v.SetDefault("Media.StagingTTL", 6*time.Hour)
	v.SetDefault("Media.SweepInterval", 30*time.Minute)
	v.SetDefault("Reconciler.Interval", time.Minute)
	v.SetDefault("Reconciler.BatchSize", 50)
	v.SetDefault("Reconciler.MaxRetries", 3)
	v.SetDefault("Reconciler.MaxAttempts", 10)
	v.SetDefault("Reconciler.Backoff", 500*time.Millisecond)
	v.SetDefault("LogLevel", "info")
}

// Validate reports settings the service cannot start without
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is not configured")
	}
	if c.JWT.ExpiresIn <= 0 {
		return errors.New("JWT_EXPIRESIN must be positive")
	}
	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI is not configured")
	}
	return nil
}
