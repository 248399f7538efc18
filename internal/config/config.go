// Package config is used to load the daemon configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultPort       = 3888
	defaultCORSOrigin = "http://localhost:3777"
)

// Config is the configuration struct
type Config struct {
	Host       string `json:"host" mapstructure:"host"`
	Port       int    `json:"port" mapstructure:"port"`
	CORSOrigin string `json:"cors_origin" mapstructure:"cors_origin"`
	DataDir    string `json:"database_dir" mapstructure:"database_dir"`
	Debug      bool   `json:"debug" mapstructure:"debug"`
}

func (c *Config) verify() error {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if c.CORSOrigin == "" {
		c.CORSOrigin = defaultCORSOrigin
	}
	if c.DataDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("config: failed to get working directory: %v", err)
		}
		c.DataDir = filepath.Join(cwd, "data")
	}
	return nil
}

// LoadConfig loads the configuration from viper (flags, env, config file)
func LoadConfig() (*Config, error) {
	var c *Config

	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %v", err)
	}
	if c == nil {
		c = &Config{}
	}

	if err := c.verify(); err != nil {
		return nil, fmt.Errorf("config: failed to verify: %v", err)
	}

	return c, nil
}
