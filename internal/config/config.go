package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultAddress        = ":4001"
	defaultDriver         = "mysql"
	defaultCommissionRate = 0.10
	defaultHandlerTimeout = 5 * time.Second
	defaultAccessTTL      = 20 * time.Hour
	defaultRefreshTTL     = 30 * 24 * time.Hour
)

var knownDrivers = map[string]struct{}{
	"mysql":  {},
	"pgx":    {},
	"memory": {},
}

type Config struct {
	Server struct {
		Address               string   `yaml:"address"`
		HandlerTimeoutSeconds int      `yaml:"handler_timeout_seconds"`
		AllowedOrigins        []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Auth struct {
		JWTSecret           string `yaml:"jwt_secret"`
		AccessTTLMinutes    int    `yaml:"access_ttl_minutes"`
		RefreshTTLHours     int    `yaml:"refresh_ttl_hours"`
		FirebaseCredentials string `yaml:"firebase_credentials"`
	} `yaml:"auth"`
	Pricing struct {
		CommissionRate *float64 `yaml:"commission_rate"`
	} `yaml:"pricing"`
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and defaults, and validates the result.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config data: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		if !strings.HasPrefix(v, ":") {
			v = ":" + v
		}
		c.Server.Address = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS"); v != "" {
		c.Auth.FirebaseCredentials = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, o)
			}
		}
	}
	if v := os.Getenv("COMMISSION_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse COMMISSION_RATE: %w", err)
		}
		c.Pricing.CommissionRate = &rate
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = defaultAddress
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = defaultDriver
	}
	if c.Pricing.CommissionRate == nil {
		rate := defaultCommissionRate
		c.Pricing.CommissionRate = &rate
	}
}

func (c Config) Validate() error {
	if _, ok := knownDrivers[c.Database.Driver]; !ok {
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.Database.Driver != "memory" && c.Database.URL == "" {
		return errors.New("database url is required")
	}
	if rate := c.CommissionRate(); rate < 0 || rate > 1 {
		return fmt.Errorf("commission rate %v must be within [0,1]", rate)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Server.HandlerTimeoutSeconds < 0 {
		return errors.New("handler timeout must not be negative")
	}
	return nil
}

func (c Config) CommissionRate() float64 {
	if c.Pricing.CommissionRate == nil {
		return defaultCommissionRate
	}
	return *c.Pricing.CommissionRate
}

func (c Config) HandlerTimeout() time.Duration {
	if c.Server.HandlerTimeoutSeconds == 0 {
		return defaultHandlerTimeout
	}
	return time.Duration(c.Server.HandlerTimeoutSeconds) * time.Second
}

func (c Config) AccessTTL() time.Duration {
	if c.Auth.AccessTTLMinutes == 0 {
		return defaultAccessTTL
	}
	return time.Duration(c.Auth.AccessTTLMinutes) * time.Minute
}

func (c Config) RefreshTTL() time.Duration {
	if c.Auth.RefreshTTLHours == 0 {
		return defaultRefreshTTL
	}
	return time.Duration(c.Auth.RefreshTTLHours) * time.Hour
}
