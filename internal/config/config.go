// Package config loads service configuration from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dinequickly/costco-programatic/internal/domain/availability"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/upstream"
)

// EnvPrefix namespaces service-specific environment variables (COSTCO_*).
const EnvPrefix = "COSTCO"

// DefaultPort is used when neither --port nor PORT is given.
const DefaultPort = 3000

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig          `mapstructure:"server"`
	Log      LogConfig             `mapstructure:"log"`
	HTTP     HTTPConfig            `mapstructure:"http"`
	Upstream UpstreamConfig        `mapstructure:"upstream"`
	Defaults availability.Defaults `mapstructure:"defaults"`
}

// ServerConfig controls the listener and shutdown.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	PortAttempts    int           `mapstructure:"port_attempts"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Gzip            bool          `mapstructure:"gzip"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// HTTPConfig controls façade behavior.
type HTTPConfig struct {
	// DifferentiateStatus maps failures to 400/404/502 instead of a flat 500.
	DifferentiateStatus bool `mapstructure:"differentiate_status"`
}

// UpstreamConfig holds the remote endpoints and credentials.
type UpstreamConfig struct {
	GeocodeURL       string        `mapstructure:"geocode_url"`
	LocatorURL       string        `mapstructure:"locator_url"`
	SearchURL        string        `mapstructure:"search_url"`
	Referer          string        `mapstructure:"referer"`
	ClientIdentifier string        `mapstructure:"client_identifier"`
	APIKey           string        `mapstructure:"api_key"`
	UserAgent        string        `mapstructure:"user_agent"`
	Timeout          time.Duration `mapstructure:"timeout"`
	Locale           string        `mapstructure:"locale"`
	SearchFilter     string        `mapstructure:"search_filter"`
}

// Client returns the upstream client configuration.
func (u UpstreamConfig) Client() upstream.Config {
	return upstream.Config{
		GeocodeURL:       u.GeocodeURL,
		LocatorURL:       u.LocatorURL,
		SearchURL:        u.SearchURL,
		Referer:          u.Referer,
		ClientIdentifier: u.ClientIdentifier,
		APIKey:           u.APIKey,
		UserAgent:        u.UserAgent,
		Timeout:          u.Timeout,
		Locale:           u.Locale,
		SearchFilter:     u.SearchFilter,
	}
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.port_attempts", 10)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.gzip", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("http.differentiate_status", false)

	v.SetDefault("upstream.geocode_url", "https://geocodeservice.costco.com/Locations")
	v.SetDefault("upstream.locator_url", "https://ecom-api.costco.com/core/warehouse-locator/v1/salesLocations.json")
	v.SetDefault("upstream.search_url", "https://search.costco.com/api/apps/www_costco_com/query/www_costco_com_search")
	v.SetDefault("upstream.referer", "https://www.costco.com/")
	v.SetDefault("upstream.client_identifier", "")
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.user_agent", "costco-item-availability/1.0")
	v.SetDefault("upstream.timeout", upstream.DefaultTimeout)
	v.SetDefault("upstream.locale", upstream.DefaultLocale)
	v.SetDefault("upstream.search_filter", upstream.DefaultSearchFilter)

	v.SetDefault("defaults.keyword", "")
	v.SetDefault("defaults.zipcode", "")
	v.SetDefault("defaults.limit", availability.DefaultLimit)
	v.SetDefault("defaults.warehouseid", "")
}

// New returns a viper instance with defaults and environment binding.
// COSTCO_SERVER_PORT style variables override any key; PORT, LOG_LEVEL and
// APP_ENV are honored unprefixed.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("defaults.zipcode", EnvPrefix+"_DEFAULTS_ZIPCODE", EnvPrefix+"_DEFAULT_ZIP_CODE")
	_ = v.BindEnv("defaults.warehouseid", EnvPrefix+"_DEFAULTS_WAREHOUSEID", EnvPrefix+"_DEFAULT_WAREHOUSE_ID")
	_ = v.BindEnv("defaults.keyword", EnvPrefix+"_DEFAULTS_KEYWORD", EnvPrefix+"_DEFAULT_KEYWORD")
	_ = v.BindEnv("defaults.limit", EnvPrefix+"_DEFAULTS_LIMIT", EnvPrefix+"_DEFAULT_LIMIT")
	_ = v.BindEnv("upstream.client_identifier", EnvPrefix+"_UPSTREAM_CLIENT_IDENTIFIER", EnvPrefix+"_CLIENT_IDENTIFIER")
	_ = v.BindEnv("upstream.api_key", EnvPrefix+"_UPSTREAM_API_KEY", EnvPrefix+"_API_KEY")
	return v
}

// Load reads the optional config file (if path is set) and unmarshals v into Config.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// APP_ENV=development switches the logger to console output.
	if strings.EqualFold(strings.TrimSpace(os.Getenv("APP_ENV")), "development") {
		v.Set("log.development", true)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return &Error{Field: "server.port", Message: fmt.Sprintf("out of range: %d", c.Server.Port)}
	}
	if c.Server.PortAttempts < 1 {
		return &Error{Field: "server.port_attempts", Message: "must be at least 1"}
	}
	if c.Upstream.Timeout <= 0 {
		return &Error{Field: "upstream.timeout", Message: "must be positive"}
	}
	for field, u := range map[string]string{
		"upstream.geocode_url": c.Upstream.GeocodeURL,
		"upstream.locator_url": c.Upstream.LocatorURL,
		"upstream.search_url":  c.Upstream.SearchURL,
	} {
		if u == "" {
			return &Error{Field: field, Message: "must be set"}
		}
	}
	return nil
}

// Error represents a configuration error
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}
