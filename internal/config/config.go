package config

import (
	"errors"
	"fmt"
	"os"

	"oceandesk/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Session    SessionConfig    `yaml:"session"`
	Redis      RedisConfig      `yaml:"redis"`
	UI         UIConfig         `yaml:"ui"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// ServerConfig points at the reservation server this client talks to.
type ServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SessionConfig selects the durable store for the session token.
// Store is one of: sqlite (default), redis, memory.
type SessionConfig struct {
	Store string `yaml:"store"`
	Slot  string `yaml:"slot"`
	Path  string `yaml:"path"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type UIConfig struct {
	ToastWindowMs int `yaml:"toast_window_ms"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

func Load(configPath string) (*Config, error) {
	// .env файл опционален
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Предварительная замена переменных окружения в YAML
	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return errors.New("server base_url is required")
	}

	switch c.Session.Store {
	case "sqlite":
		if c.Session.Path == "" {
			return errors.New("session path is required for the sqlite store")
		}
	case "redis":
		if c.Redis.Address == "" {
			return errors.New("redis address is required for the redis store")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}

	return nil
}

// ValidateRooms rejects empty and duplicate room type declarations.
func ValidateRooms(rooms []models.Room) error {
	seen := make(map[string]bool)
	for _, room := range rooms {
		if room.Type == "" {
			return errors.New("room with empty type")
		}
		if seen[room.Type] {
			return fmt.Errorf("duplicate room type found: %s", room.Type)
		}
		seen[room.Type] = true
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.TimeoutSeconds == 0 {
		c.Server.TimeoutSeconds = models.DefaultRequestTimeout
	}
	if c.Session.Store == "" {
		c.Session.Store = "sqlite"
	}
	if c.Session.Slot == "" {
		c.Session.Slot = models.DefaultTokenSlot
	}
	if c.Session.Store == "sqlite" && c.Session.Path == "" {
		c.Session.Path = "data/session.db"
	}
	if c.UI.ToastWindowMs == 0 {
		c.UI.ToastWindowMs = models.DefaultToastWindowMs
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
}
