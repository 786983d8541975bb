package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadConfig loads configuration with priority:
// CLI flags > environment (.env) > Config file > Defaults
func LoadConfig() (*Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. Check if -config flag was provided (quick parse to extract it)
	configPath := ""
	for i, arg := range os.Args {
		if arg == "-config" && i+1 < len(os.Args) {
			configPath = os.Args[i+1]
			break
		}
	}

	// If no config flag, try to find config file in standard locations
	if configPath == "" {
		configPath = FindConfigFile()
	}

	// Load config file if found
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg = fileCfg
	}

	// 3. Merge environment overrides (a missing .env file is fine)
	_ = godotenv.Load()
	cfg.mergeFromEnv()

	// 4. Merge CLI flags (highest priority, overwrites everything)
	if err := cfg.MergeFromFlags(); err != nil {
		return nil, err
	}

	// Auto-detect workers if set to 0
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	// Validate final configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeFromEnv overrides config values from COMPOSITOR_* environment
// variables, typically supplied via a .env file.
func (c *Config) mergeFromEnv() {
	if v := os.Getenv("COMPOSITOR_SPEC"); v != "" {
		c.Spec = v
	}
	if v := os.Getenv("COMPOSITOR_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("COMPOSITOR_BATCH"); v != "" {
		c.Batch = v
	}
	if v := os.Getenv("COMPOSITOR_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Workers = n
		}
	}
	if v := os.Getenv("COMPOSITOR_VIDEO_CODEC"); v != "" {
		c.Video.Codec = v
	}
	if v := os.Getenv("COMPOSITOR_AUDIO_CODEC"); v != "" {
		c.Audio.Codec = v
	}
	if v := os.Getenv("COMPOSITOR_AUDIO_BITRATE"); v != "" {
		c.Audio.Bitrate = v
	}
}
