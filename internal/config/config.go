package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort     = 8000
	defaultEnv      = "development"
	defaultSiteName = "Blog"
	defaultDSN      = "root:password@tcp(127.0.0.1:3306)/my_website?charset=utf8mb4&parseTime=True&loc=Local"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port     int    `yaml:"port"`
	DSN      string `yaml:"dsn"` // MySQL DSN, or a sqlite file/:memory: DSN
	RedisURL string `yaml:"redis_url"`
	Env      string `yaml:"env"` // "development" | "production"
	SiteName string `yaml:"site_name"`

	// SessionSecret signs the auth cookie. SessionTTLHours defaults to 30 days.
	SessionSecret   string `yaml:"session_secret"`
	SessionTTLHours int    `yaml:"session_ttl_hours"`
}

// Load reads the YAML config from path and applies defaults. A missing file
// is not an error; the defaults describe a local development setup.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the built-in development configuration.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if strings.TrimSpace(c.DSN) == "" {
		c.DSN = defaultDSN
	}
	if strings.TrimSpace(c.Env) == "" {
		c.Env = defaultEnv
	}
	if strings.TrimSpace(c.SiteName) == "" {
		c.SiteName = defaultSiteName
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = 30 * 24
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}
