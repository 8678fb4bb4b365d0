package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/portfolio-backend/")
	v.AddConfigPath("$HOME/.portfolio-backend")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The deployment configures the pipeline through these unprefixed
	// variable names, so bind them explicitly alongside the prefixed form.
	bindEnvAliases(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	bindEnvAliases(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.listen_address", "0.0.0.0:8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_body_size", 64*1024)
	v.SetDefault("server.rate_limit_rps", 1.0)
	v.SetDefault("server.rate_limit_burst", 5)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	// Storage defaults
	v.SetDefault("storage.type", "mongodb")
	v.SetDefault("storage.mongodb_uri", "")
	v.SetDefault("storage.database", "portfolio")
	v.SetDefault("storage.collection", "contacts")
	v.SetDefault("storage.connect_timeout", "10s")
	v.SetDefault("storage.max_pool_size", 100)

	// SMTP defaults
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from_name", "Portfolio Contact Form")

	// Notification defaults
	v.SetDefault("notify.email", "")
	v.SetDefault("notify.auto_reply", false)
	v.SetDefault("notify.template_path", "email-templates/contact-form-submission.html")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// bindEnvAliases binds the environment variable names used by existing
// deployments to their config keys. AutomaticEnv only resolves the
// PORTFOLIO_-prefixed form, so these need explicit bindings.
func bindEnvAliases(v *viper.Viper) {
	aliases := map[string]string{
		"storage.mongodb_uri": "MONGODB_URI",
		"smtp.host":           "SMTP_HOST",
		"smtp.port":           "SMTP_PORT",
		"smtp.secure":         "SMTP_SECURE",
		"smtp.user":           "SMTP_USER",
		"smtp.password":       "SMTP_PASS",
		"notify.email":        "NOTIFICATION_EMAIL",
		"notify.auto_reply":   "SEND_AUTO_REPLY",
	}
	for key, env := range aliases {
		// BindEnv only errors on an empty key
		_ = v.BindEnv(key, env)
	}
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// IsSet reports whether the key was set explicitly (config file or
// environment) rather than falling through to a default.
func (c *Config) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
