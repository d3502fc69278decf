package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds every setting of the game binaries.
type Config struct {
	TurnInterval time.Duration `mapstructure:"turn_interval"` // cadence of turn steps
	StepInterval time.Duration `mapstructure:"step_interval"` // cadence of single cell moves
	Seed         int64         `mapstructure:"seed"`          // die seed, 0 picks one from the clock
	BoardFile    string        `mapstructure:"board_file"`    // board text, empty for the built in one
	Addr         string        `mapstructure:"addr"`          // listen address of cmd/server
	SpectateAddr string        `mapstructure:"spectate_addr"` // spectator feed of the desktop game, empty disables
	LogLevel     string        `mapstructure:"log_level"`
	LogFile      string        `mapstructure:"log_file"` // rotated log file, empty logs to stderr
	Scale        float64       `mapstructure:"scale"`    // window scale of the desktop game
}

var defaults = map[string]interface{}{
	"turn_interval": "1s",
	"step_interval": "500ms",
	"seed":          0,
	"board_file":    "",
	"addr":          ":8080",
	"spectate_addr": "",
	"log_level":     "info",
	"log_file":      "",
	"scale":         1.0,
}

// Load reads an optional .env file, the optional file named by LUDO_CONFIG
// and LUDO_* environment variables, in increasing priority over the defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Debugf("config .env not loaded: %v", err)
	}

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix("LUDO")
	v.AutomaticEnv()

	if file := os.Getenv("LUDO_CONFIG"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.TurnInterval <= 0 || c.StepInterval <= 0 {
		return Config{}, fmt.Errorf("intervals must be positive, got turn=%v step=%v", c.TurnInterval, c.StepInterval)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	return c, nil
}

// DieSeed returns the configured seed or one taken from the clock.
func (c Config) DieSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
