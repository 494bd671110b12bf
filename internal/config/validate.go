package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (c *Config) Validate() error {
	// Server config
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port (%d) must be between 1 and 65535", c.Server.Port)
	}
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("server.mode %q must be one of debug, release, test", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}

	// Log config
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format %q must be text or json", c.Log.Format)
	}

	// Client config
	u, err := url.Parse(c.Client.URL)
	if err != nil {
		return fmt.Errorf("client.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("client.url %q must use http or https", c.Client.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("client.url %q has no host", c.Client.URL)
	}
	if c.Client.Timeout <= 0 {
		return errors.New("client.timeout must be positive")
	}

	return nil
}
