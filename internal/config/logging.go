package config

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies log.level and log.format to the standard logrus logger.
func (c *Config) ConfigureLogging(out io.Writer) error {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(level)
	if out != nil {
		log.SetOutput(out)
	}
	if c.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
