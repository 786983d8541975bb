package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"compositor/models"
)

// LoadConfigFile loads configuration from a YAML file
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for config file in standard locations
// Returns empty string if not found (non-fatal)
func FindConfigFile() string {
	locations := []string{
		"./compositor.yaml",
		"./compositor.yml",
		filepath.Join(os.Getenv("HOME"), ".compositor", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".compositor", "config.yml"),
		"/etc/compositor/config.yaml",
		"/etc/compositor/config.yml",
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// SaveConfigFile saves configuration to a YAML file
func SaveConfigFile(cfg *Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadRequestFile loads an export request (the timeline description)
// from a YAML spec file. The request is validated by the compiler, not
// here, so a loaded file can be inspected even when incomplete.
func LoadRequestFile(path string) (*models.ExportRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export spec: %w", err)
	}

	var req models.ExportRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse export spec: %w", err)
	}

	// Tracks default to unit volume unless the file sets one. Zero is
	// a meaningful volume (muted track), so absence has to be
	// distinguished from an explicit zero.
	var probe struct {
		Audio []map[string]interface{} `yaml:"audio"`
	}
	_ = yaml.Unmarshal(data, &probe)
	for i := range req.Audio {
		if i < len(probe.Audio) {
			if _, ok := probe.Audio[i]["volume"]; ok {
				continue
			}
		}
		if req.Audio[i].Volume == 0 {
			req.Audio[i].Volume = models.DefaultVolume
		}
	}

	return &req, nil
}
