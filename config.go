package main

import (
	"errors"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr       string `json:"server_addr" mapstructure:"server_addr"`
	AiDepth          int    `json:"ai_depth" mapstructure:"ai_depth"`
	AiLogSearchStats bool   `json:"ai_log_search_stats" mapstructure:"ai_log_search_stats"`
	TickIntervalMs   int    `json:"tick_interval_ms" mapstructure:"tick_interval_ms"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		ServerAddr:       ":8080",
		AiDepth:          4,
		AiLogSearchStats: false,
		TickIntervalMs:   50,
	}
}

// LoadConfig reads overrides from an optional config file and the
// environment on top of the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("server_addr", defaults.ServerAddr)
	v.SetDefault("ai_depth", defaults.AiDepth)
	v.SetDefault("ai_log_search_stats", defaults.AiLogSearchStats)
	v.SetDefault("tick_interval_ms", defaults.TickIntervalMs)
	v.SetEnvPrefix("ATAXX")
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return defaults, err
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, err
	}
	if cfg.AiDepth < 1 {
		cfg.AiDepth = defaults.AiDepth
	}
	if cfg.TickIntervalMs < 1 {
		cfg.TickIntervalMs = defaults.TickIntervalMs
	}
	return cfg, nil
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
