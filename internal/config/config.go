// Package config loads service settings from configs/config.yml with
// DASHBOARD_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "DASHBOARD"

type Config struct {
	Port  string      `mapstructure:"port"`
	Log   LogConfig   `mapstructure:"log"`
	Clock ClockConfig `mapstructure:"clock"`
	Pages PageConfig  `mapstructure:"pages"`
	HTTP  HTTPConfig  `mapstructure:"client"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ClockConfig names the factory time zone, e.g. "Asia/Jakarta". Empty or
// "Local" uses the host's zone.
type ClockConfig struct {
	Location string `mapstructure:"location"`
}

type PageConfig struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("clock.location", "Local")
	v.SetDefault("pages.idle_ttl", 30*time.Minute)
	v.SetDefault("pages.sweep_interval", time.Minute)
	v.SetDefault("client.timeout", 5*time.Second)
}

// Load reads config.yml from the given directories. A missing file is not an
// error: defaults and environment variables still apply.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Load resolves the configured factory time zone.
func (c ClockConfig) Load() (*time.Location, error) {
	switch c.Location {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("load clock location %q: %w", c.Location, err)
	}
	return loc, nil
}
