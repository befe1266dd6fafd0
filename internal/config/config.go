// Package config loads storefront settings from defaults, an optional
// storefront.yaml, an optional .env file and STOREFRONT_* environment
// variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

const (
	keyHTTPAddr        = "http.addr"
	keyCatalogBaseURL  = "catalog.base_url"
	keyCatalogTimeout  = "catalog.timeout"
	keyStorageDriver   = "storage.driver"
	keyStorageDSN      = "storage.dsn"
	keyStorageDir      = "storage.dir"
	keyStorageKey      = "storage.key"
	keySessionSecret   = "session.secret"
	keySessionTTL      = "session.ttl"
	keyLogLevel        = "log.level"
	keyLogDevelopment  = "log.development"
	defaultConfigName  = "storefront"
	envPrefix          = "STOREFRONT"
	defaultStorageKey  = "denine-cart"
	defaultCatalogHost = "http://localhost:8001"
)

var (
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrMissingDSN      = errors.New("storage dsn is required for this driver")
	ErrMissingSecret   = errors.New("session secret must not be empty")
	ErrInvalidTimeout  = errors.New("catalog timeout must be positive")
	ErrInvalidTTL      = errors.New("session ttl must be positive")
	ErrMissingCatalog  = errors.New("catalog base url is required")
	ErrMissingStoreKey = errors.New("storage key must not be empty")
)

type Config struct {
	HTTP    HTTPConfig
	Catalog CatalogConfig
	Storage StorageConfig
	Session SessionConfig
	Log     LogConfig
}

type HTTPConfig struct {
	Addr string
}

type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	Driver string
	DSN    string
	Dir    string
	Key    string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type LogConfig struct {
	Level       string
	Development bool
}

// Load reads configuration. configFile may be empty, in which case
// storefront.yaml is looked up in the working directory; a missing file is
// not an error, an unreadable one is.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTPConfig{Addr: v.GetString(keyHTTPAddr)},
		Catalog: CatalogConfig{
			BaseURL: v.GetString(keyCatalogBaseURL),
			Timeout: v.GetDuration(keyCatalogTimeout),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString(keyStorageDriver)),
			DSN:    v.GetString(keyStorageDSN),
			Dir:    v.GetString(keyStorageDir),
			Key:    v.GetString(keyStorageKey),
		},
		Session: SessionConfig{
			Secret: v.GetString(keySessionSecret),
			TTL:    v.GetDuration(keySessionTTL),
		},
		Log: LogConfig{
			Level:       v.GetString(keyLogLevel),
			Development: v.GetBool(keyLogDevelopment),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyHTTPAddr, ":8080")
	v.SetDefault(keyCatalogBaseURL, defaultCatalogHost)
	v.SetDefault(keyCatalogTimeout, 10*time.Second)
	v.SetDefault(keyStorageDriver, DriverSQLite)
	v.SetDefault(keyStorageDSN, "")
	v.SetDefault(keyStorageDir, ".storefront-data")
	v.SetDefault(keyStorageKey, defaultStorageKey)
	v.SetDefault(keySessionSecret, "")
	v.SetDefault(keySessionTTL, 30*24*time.Hour)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogDevelopment, false)
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverFile, DriverSQLite:
	case DriverMySQL, DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("%w: %s", ErrMissingDSN, c.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return ErrMissingStoreKey
	}
	if c.Catalog.BaseURL == "" {
		return ErrMissingCatalog
	}
	if c.Catalog.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Session.Secret == "" {
		return ErrMissingSecret
	}
	if c.Session.TTL <= 0 {
		return ErrInvalidTTL
	}
	return nil
}
