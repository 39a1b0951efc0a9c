package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all catalog requests.
const DefaultUserAgent = "ShowSearch/1.0 (+https://github.com/Belphemur/ShowSearch)"

// DefaultCatalogURL is the TVMaze API root. It must end with a slash.
const DefaultCatalogURL = "https://api.tvmaze.com/"

// DefaultImage is shown on a show card when the catalog has no poster for the show.
const DefaultImage = "https://www.clipartkey.com/mpngs/m/152-1520367_user-profile-default-image-png-clipart-png-download.png"

type Config struct {
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1m"
	UserAgent             string `mapstructure:"user_agent"`
	Catalog               struct {
		BaseURL      string `mapstructure:"base_url"`
		DefaultImage string `mapstructure:"default_image"`
	} `mapstructure:"catalog"`
	Retry struct {
		MaxRetries int    `mapstructure:"max_retries"`
		Backoff    string `mapstructure:"backoff"`
		MaxBackoff string `mapstructure:"max_backoff"`
	} `mapstructure:"retry"`
	Server struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	LogLevel string `mapstructure:"log_level"`
	Cache    struct {
		Provider string `mapstructure:"provider"` // "memory", "redis" or "none"
		Size     int    `mapstructure:"size"`     // Maximum number of entries in the LRU cache
		TTL      string `mapstructure:"ttl"`      // Go duration string like "10m", "1h"
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	SetLogLevel(config.LogLevel)
	globalConfig = config
	logger.Debug().Msg("Configuration loaded successfully")
}

// SetLogLevel parses level and applies it globally. Invalid or empty levels fall back to info.
func SetLogLevel(levelName string) {
	level := zerolog.InfoLevel
	if levelName != "" {
		if parsedLevel, err := zerolog.ParseLevel(levelName); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", levelName).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.normalize()
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("catalog.base_url", DefaultCatalogURL)
	viper.SetDefault("catalog.default_image", DefaultImage)
	viper.SetDefault("client_timeout", "30s")
	viper.SetDefault("user_agent", DefaultUserAgent)
	viper.SetDefault("proxy_connection_string", "")
	viper.SetDefault("retry.max_retries", 2)
	viper.SetDefault("retry.backoff", "200ms")
	viper.SetDefault("retry.max_backoff", "2s")
	viper.SetDefault("server.address", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.port", 9090)
	viper.SetDefault("cache.provider", "memory")
	viper.SetDefault("cache.size", 500)
	viper.SetDefault("cache.ttl", "10m")
	viper.SetDefault("cache.redis.address", "localhost:6379")
	viper.SetDefault("sentry.environment", "production")
	viper.SetDefault("log_level", "info")
}

// normalize fills the values every consumer relies on, so that a Config built by hand
// (as tests do) behaves the same as one loaded through viper.
func (c *Config) normalize() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = DefaultCatalogURL
	}
	if !strings.HasSuffix(c.Catalog.BaseURL, "/") {
		c.Catalog.BaseURL += "/"
	}
	if c.Catalog.DefaultImage == "" {
		c.Catalog.DefaultImage = DefaultImage
	}
}

// Normalized returns a copy of c with defaults applied to empty catalog fields.
func (c *Config) Normalized() *Config {
	out := *c
	out.normalize()
	return &out
}

// ParseDuration parses value, returning fallback (and logging a warning) when it is empty or invalid.
func ParseDuration(name, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str(name, value).Dur("fallback", fallback).Msg("Invalid duration, using default")
		return fallback
	}
	return d
}

func GetConfig() *Config {
	return globalConfig
}

func GetLogger() zerolog.Logger {
	return logger
}
