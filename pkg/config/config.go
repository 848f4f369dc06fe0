package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		SlowRequest     time.Duration `yaml:"slow_request" default:"2s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Market struct {
		BaseURL        string        `yaml:"base_url" default:"https://query1.finance.yahoo.com"`
		UserAgent      string        `yaml:"user_agent" default:"Mozilla/5.0"`
		Timeout        time.Duration `yaml:"timeout" default:"15s"`
		RequestsPerSec int           `yaml:"requests_per_sec" default:"2"`
	} `yaml:"market"`
	FX struct {
		BaseURL string        `yaml:"base_url" default:"https://api.frankfurter.app"`
		From    string        `yaml:"from" default:"USD"`
		To      string        `yaml:"to" default:"INR"`
		Timeout time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"fx"`
	Cache struct {
		Backend    string        `yaml:"backend" default:"memory"`
		MaxEntries int           `yaml:"max_entries" default:"256"`
		TTL        time.Duration `yaml:"ttl"`
		Redis      struct {
			Host     string `yaml:"host" default:"localhost"`
			Port     int    `yaml:"port" default:"6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"finadvisor"`
			// TTL bounds L2 entries written without cache.ttl.
			TTL time.Duration `yaml:"ttl" default:"24h"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Dashboard struct {
		TailRows      int      `yaml:"tail_rows" default:"5"`
		IndianTickers []string `yaml:"indian_tickers" default:"[\"RELIANCE.NS\",\"TCS.NS\",\"INFY.NS\",\"HDFC.NS\",\"BAJFINANCE.NS\",\"ICICIBANK.NS\"]"`
	} `yaml:"dashboard"`
	RateLimit struct {
		Burst  int     `yaml:"burst" default:"10"`
		PerSec float64 `yaml:"per_sec" default:"2"`
	} `yaml:"rate_limit"`
}

// Load reads and parses a YAML configuration file on top of the tag defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(b) > 0 {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("FINADVISOR_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("FINADVISOR_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("FINADVISOR_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("MARKET_BASE_URL"); v != "" {
		c.Market.BaseURL = v
	}
	if v := os.Getenv("FX_BASE_URL"); v != "" {
		c.FX.BaseURL = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}
	if v := os.Getenv("INDIAN_TICKERS"); v != "" {
		c.Dashboard.IndianTickers = strings.Split(v, ",")
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Market.BaseURL == "" {
		return fmt.Errorf("market.base_url is required")
	}
	if c.FX.BaseURL == "" {
		return fmt.Errorf("fx.base_url is required")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "layered" {
		return fmt.Errorf("cache.backend must be 'memory' or 'layered', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Backend == "layered" && c.Cache.TTL <= 0 && c.Cache.Redis.TTL <= 0 {
		return fmt.Errorf("cache.redis.ttl must be positive for the layered backend")
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive")
	}
	if c.Dashboard.TailRows <= 0 {
		return fmt.Errorf("dashboard.tail_rows must be positive")
	}
	return nil
}
