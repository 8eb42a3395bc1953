package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var config *Config

type UpstreamConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // 超时时间（毫秒）
}

type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// RateLimitConfig configures the per-client quota. Backend selects the
// limiter implementation: "memory" for a single process, "redis" for a
// multi-process deployment sharing one quota.
type RateLimitConfig struct {
	Backend  string      `yaml:"backend"`
	Requests int         `yaml:"requests"`
	Window   int         `yaml:"window"` // 时间窗口（秒）
	Redis    RedisConfig `yaml:"redis"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type Config struct {
	Port      int             `yaml:"port"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
}

func defaultConfig() *Config {
	return &Config{
		Port: 8080,
		Upstream: UpstreamConfig{
			BaseURL: "https://api.binance.com",
			Timeout: 10000,
		},
		RateLimit: RateLimitConfig{
			Backend:  "memory",
			Requests: 60,
			Window:   60,
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "binance_relay:rate:",
			},
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// NewConfig loads the configuration, starting from defaults and overlaying
// the yaml file named by CONFIG_PATH when set.
func NewConfig() (*Config, error) {
	c := defaultConfig()

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		configData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(configData, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	config = c
	return c, nil
}

func GetConfig() *Config {
	if config == nil {
		config = defaultConfig()
	}
	return config
}
