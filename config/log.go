package config

import (
	"fmt"
	"os"

	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
)

// SetupLogging applies level and output of the standard logrus logger.
func SetupLogging(c Config) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if c.LogFile == "" {
		log.SetOutput(os.Stderr)
		return nil
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	})
	return nil
}
