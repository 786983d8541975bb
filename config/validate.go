package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Either a single spec or a batch directory is required
	if c.Spec == "" && c.Batch == "" {
		errors = append(errors, "an export spec file (-spec) or batch directory (-batch) is required")
	}
	if c.Spec != "" && c.Batch != "" {
		errors = append(errors, "-spec and -batch are mutually exclusive")
	}

	if c.Spec != "" {
		if _, err := os.Stat(c.Spec); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("export spec does not exist: %s", c.Spec))
		}
		if c.Output == "" {
			errors = append(errors, "output file is required")
		}
	}

	if c.Batch != "" {
		if info, err := os.Stat(c.Batch); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("batch directory does not exist: %s", c.Batch))
		} else if err == nil && !info.IsDir() {
			errors = append(errors, fmt.Sprintf("batch path is not a directory: %s", c.Batch))
		}
	}

	// Validate workers (0 is valid, means auto-detect)
	if c.Workers < 0 {
		errors = append(errors, "workers cannot be negative (use 0 for auto-detect)")
	}

	if err := c.Audio.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("audio config: %v", err))
	}

	if err := c.Video.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("video config: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Validate checks if audio configuration is valid
func (ac *AudioConfig) Validate() error {
	var errors []string

	if ac.Codec == "" {
		errors = append(errors, "codec is required")
	}

	if ac.Bitrate == "" {
		errors = append(errors, "bitrate is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// Validate checks if video configuration is valid
func (vc *VideoConfig) Validate() error {
	var errors []string

	if vc.Codec == "" {
		errors = append(errors, "codec is required")
	}

	if vc.CRF < 0 || vc.CRF > 51 {
		errors = append(errors, "CRF must be between 0 and 51")
	}

	if vc.Preset == "" {
		errors = append(errors, "preset is required")
	}

	if vc.PixelFormat == "" {
		errors = append(errors, "pixel format is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}
