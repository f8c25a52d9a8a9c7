package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the FormCoach server.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Upload  UploadConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type StorageConfig struct {
	DataDir   string
	UploadDir string
}

type UploadConfig struct {
	MaxBytes int64
}

const defaultMaxUploadBytes = 500 << 20 // 500 MiB

var validEnvs = map[string]bool{
	"development": true,
	"production":  true,
	"test":        true,
}

// Load reads configuration from environment variables and returns a validated
// Config. Every value has a default; Load only fails on invalid input.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("FORMCOACH_PORT", 8080),
			Env:  envString("FORMCOACH_ENV", "development"),
		},
		Storage: StorageConfig{
			DataDir:   envString("FORMCOACH_DATA_DIR", "data"),
			UploadDir: envString("FORMCOACH_UPLOAD_DIR", "uploads"),
		},
		Upload: UploadConfig{
			MaxBytes: envInt64("FORMCOACH_MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("FORMCOACH_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if !validEnvs[c.Server.Env] {
		return fmt.Errorf("FORMCOACH_ENV must be one of development, production, test; got %q", c.Server.Env)
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("FORMCOACH_DATA_DIR must not be empty")
	}
	if c.Storage.UploadDir == "" {
		return fmt.Errorf("FORMCOACH_UPLOAD_DIR must not be empty")
	}
	if c.Storage.DataDir == c.Storage.UploadDir {
		return fmt.Errorf("data and upload directories must differ, both are %q", c.Storage.DataDir)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("FORMCOACH_MAX_UPLOAD_BYTES must be positive, got %d", c.Upload.MaxBytes)
	}
	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}
