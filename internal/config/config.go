package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. TASKTAGGER_SERVER_PORT.
const EnvPrefix = "TASKTAGGER"

type Config struct {
	Server struct {
		Addr            string        `mapstructure:"addr"`
		Port            int           `mapstructure:"port"`
		Mode            string        `mapstructure:"mode"` // gin mode: debug, release or test
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // text or json
	} `mapstructure:"log"`

	// Client settings are used by the categorize --remote and doctor commands.
	Client struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"client"`
}

// ListenAddr returns host:port for the HTTP server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Addr, c.Server.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("client.url", "http://localhost:8000")
	v.SetDefault("client.timeout", 5*time.Second)
}

// LoadConfig reads config.yaml from the current directory (optional) and
// applies environment overrides on top of the defaults.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.New(), ".")
}

// LoadConfigFrom is LoadConfig with an explicit viper instance and search path.
func LoadConfigFrom(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The web frontend points at the classifier through ML_URL.
	if err := v.BindEnv("client.url", EnvPrefix+"_CLIENT_URL", "ML_URL"); err != nil {
		return nil, fmt.Errorf("bind ML_URL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &config, nil
}
