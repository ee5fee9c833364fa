package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Geocoding GeocodingConfig
	Redis     RedisConfig
	Cache     CacheConfig
	History   HistoryConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

// GeocodingConfig - параметры удалённого сервиса геокодирования
type GeocodingConfig struct {
	BaseURL        string
	APIToken       string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
}

type HistoryConfig struct {
	DefaultLimit int
}

type LogConfig struct {
	Level string
}

// Load reads ./.env (if present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads the given env file (if present); environment variables win.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Geocoding: GeocodingConfig{
			BaseURL:        strings.TrimRight(v.GetString("GEOCODING_BASE_URL"), "/"),
			APIToken:       strings.TrimSpace(v.GetString("GEOCODING_API_TOKEN")),
			RequestTimeout: time.Duration(v.GetInt("GEOCODING_REQUEST_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(v.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		History: HistoryConfig{
			DefaultLimit: v.GetInt("HISTORY_LIMIT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("GEOCODING_BASE_URL", "https://geocoding.openapi.it")
	v.SetDefault("GEOCODING_REQUEST_TIMEOUT", 10)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("GEOCODE_CACHE_TTL", 86400)
	v.SetDefault("HISTORY_LIMIT", 50)
	v.SetDefault("LOG_LEVEL", "info")
}

// validate rejects values that would make the service misbehave. A missing
// geocoding token is not rejected here: the client reports it per call.
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT: %d", c.Server.Port)
	}
	if c.Geocoding.BaseURL == "" {
		return fmt.Errorf("GEOCODING_BASE_URL must not be empty")
	}
	if c.Geocoding.RequestTimeout <= 0 {
		return fmt.Errorf("invalid GEOCODING_REQUEST_TIMEOUT: %s", c.Geocoding.RequestTimeout)
	}
	if c.History.DefaultLimit <= 0 {
		c.History.DefaultLimit = 50
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
