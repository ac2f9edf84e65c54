// Package config loads storeview settings from viper into a validated struct.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults for the store API and icon CDN.
const (
	DefaultBaseURL       = "http://store.steampowered.com"
	DefaultLanguage      = "en"
	DefaultUserAgent     = "storeview/1.0 (+https://github.com/lepinkainen/storeview)"
	DefaultTimeout       = 30 * time.Second
	DefaultRatePerSecond = 1.0
	DefaultIconBaseURL   = "https://steamstore-a.akamaihd.net/public/images/v6/ico"
	DefaultCacheDBFile   = "./cache.db"
	DefaultCacheTTL      = 24 * time.Hour
	DefaultServerAddr    = ":8080"
)

// Config holds all runtime settings.
type Config struct {
	Store  StoreConfig
	Cache  CacheConfig
	Server ServerConfig
	Icons  IconsConfig
}

// StoreConfig configures the appdetails fetcher.
type StoreConfig struct {
	BaseURL       string        `validate:"required,url"`
	Language      string        `validate:"required,alpha,max=16"`
	UserAgent     string        `validate:"required"`
	Timeout       time.Duration `validate:"gt=0"`
	RatePerSecond float64       `validate:"gte=0"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	Enabled bool
	DBFile  string        `validate:"required_if=Enabled true"`
	TTL     time.Duration `validate:"gte=0"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `validate:"required,hostname_port|startswith=:"`
}

// IconsConfig configures the category icon CDN.
type IconsConfig struct {
	BaseURL string `validate:"required,url"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// SetDefaults registers the default value of every key with viper.
func SetDefaults() {
	viper.SetDefault("store.base_url", DefaultBaseURL)
	viper.SetDefault("store.language", DefaultLanguage)
	viper.SetDefault("store.user_agent", DefaultUserAgent)
	viper.SetDefault("store.timeout", DefaultTimeout.String())
	viper.SetDefault("store.rate_per_second", DefaultRatePerSecond)

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.dbfile", DefaultCacheDBFile)
	viper.SetDefault("cache.ttl", DefaultCacheTTL.String())

	viper.SetDefault("server.addr", DefaultServerAddr)
	viper.SetDefault("icons.base_url", DefaultIconBaseURL)
}

// Load reads the current viper state into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Store: StoreConfig{
			BaseURL:       viper.GetString("store.base_url"),
			Language:      viper.GetString("store.language"),
			UserAgent:     viper.GetString("store.user_agent"),
			Timeout:       viper.GetDuration("store.timeout"),
			RatePerSecond: viper.GetFloat64("store.rate_per_second"),
		},
		Cache: CacheConfig{
			Enabled: viper.GetBool("cache.enabled"),
			DBFile:  viper.GetString("cache.dbfile"),
			TTL:     viper.GetDuration("cache.ttl"),
		},
		Server: ServerConfig{
			Addr: viper.GetString("server.addr"),
		},
		Icons: IconsConfig{
			BaseURL: viper.GetString("icons.base_url"),
		},
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
