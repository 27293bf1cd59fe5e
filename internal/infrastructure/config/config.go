package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shoppy/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	Business BusinessConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name    string
	Env     string
	Version string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// BusinessConfig holds the store's business constants.
// It is read-only after Load; components receive it by value.
type BusinessConfig struct {
	Currency              string
	CurrencySymbol        string
	TaxRate               float64
	ShippingRate          float64
	FreeShippingThreshold float64
	ItemsPerPage          int
}

// PricingRules converts the business constants into pricing engine rules
func (b BusinessConfig) PricingRules() pricing.Rules {
	return pricing.Rules{
		TaxRate:               decimal.NewFromFloat(b.TaxRate),
		ShippingRate:          decimal.NewFromFloat(b.ShippingRate),
		FreeShippingThreshold: decimal.NewFromFloat(b.FreeShippingThreshold),
	}
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SHOPPY_ prefix (e.g., SHOPPY_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SHOPPY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Env:     v.GetString("app.env"),
			Version: v.GetString("app.version"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Business: BusinessConfig{
			Currency:              v.GetString("business.currency"),
			CurrencySymbol:        v.GetString("business.currency_symbol"),
			TaxRate:               v.GetFloat64("business.tax_rate"),
			ShippingRate:          v.GetFloat64("business.shipping_rate"),
			FreeShippingThreshold: v.GetFloat64("business.free_shipping_threshold"),
			ItemsPerPage:          v.GetInt("business.items_per_page"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "shoppy-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "shoppy"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Business.Currency == "" {
		cfg.Business.Currency = "USD"
	}
	if cfg.Business.CurrencySymbol == "" {
		cfg.Business.CurrencySymbol = "$"
	}
	if cfg.Business.TaxRate == 0 {
		cfg.Business.TaxRate = 0.08
	}
	if cfg.Business.ShippingRate == 0 {
		cfg.Business.ShippingRate = 5.00
	}
	if cfg.Business.FreeShippingThreshold == 0 {
		cfg.Business.FreeShippingThreshold = 100.00
	}
	if cfg.Business.ItemsPerPage == 0 {
		cfg.Business.ItemsPerPage = 20
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.Business.TaxRate < 0 || c.Business.TaxRate >= 1 {
		return fmt.Errorf("business.tax_rate must be in [0, 1), got %f", c.Business.TaxRate)
	}
	if c.Business.ShippingRate < 0 {
		return fmt.Errorf("business.shipping_rate cannot be negative")
	}
	if c.Business.FreeShippingThreshold < 0 {
		return fmt.Errorf("business.free_shipping_threshold cannot be negative")
	}
	if c.Business.ItemsPerPage <= 0 {
		return fmt.Errorf("business.items_per_page must be positive")
	}

	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
