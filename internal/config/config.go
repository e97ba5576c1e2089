package config

import (
	"dicepoker-server/internal/util"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the dice poker odds server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
		// DisableAccessLogs turns off the combined access log
		DisableAccessLogs bool `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	WebSocket struct {
		// PongWait is how many seconds to wait for a pong before the connection is dropped
		PongWait int `yaml:"pongWait" envconfig:"pong_wait"`
	} `yaml:"webSocket"`
}

var config Config

// DefaultConfig returns the configuration used when nothing else is provided
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.WebSocket.PongWait = 60

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are read from the defaults, then the YAML file, then the environment
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("DPO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		// an empty file has no overrides
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("dpo", &cfg); err != nil {
		return err
	}

	if cfg.WebSocket.PongWait <= 0 {
		return fmt.Errorf("webSocket.pongWait must be greater than zero, received %d", cfg.WebSocket.PongWait)
	}

	cfg.loaded = true
	config = cfg
	return nil
}
