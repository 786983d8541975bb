package config

import (
	"os"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Check defaults
	if cfg.Workers != 0 {
		t.Errorf("Expected workers 0 (auto-detect), got %d", cfg.Workers)
	}
	if cfg.Audio.Codec != "aac" {
		t.Errorf("Expected audio codec 'aac', got %s", cfg.Audio.Codec)
	}
	if cfg.Audio.Bitrate != "192k" {
		t.Errorf("Expected audio bitrate '192k', got %s", cfg.Audio.Bitrate)
	}
	if cfg.Video.Codec != "libx264" {
		t.Errorf("Expected video codec 'libx264', got %s", cfg.Video.Codec)
	}
	if cfg.Video.CRF != 23 {
		t.Errorf("Expected CRF 23, got %d", cfg.Video.CRF)
	}
	if !cfg.PadAudio {
		t.Error("Expected pad audio to be true")
	}
	if cfg.DryRun {
		t.Error("Expected dry run to be false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      func() *Config
		expectError bool
		errorText   string
	}{
		{
			name: "valid config",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Spec = createTempFile(t)
				cfg.Output = "/tmp/output.mp4"
				return cfg
			},
			expectError: false,
		},
		{
			name: "missing spec and batch",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Output = "/tmp/output.mp4"
				return cfg
			},
			expectError: true,
			errorText:   "export spec file",
		},
		{
			name: "spec and batch together",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Spec = createTempFile(t)
				cfg.Output = "/tmp/output.mp4"
				cfg.Batch = t.TempDir()
				return cfg
			},
			expectError: true,
			errorText:   "mutually exclusive",
		},
		{
			name: "missing output",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Spec = createTempFile(t)
				return cfg
			},
			expectError: true,
			errorText:   "output file is required",
		},
		{
			name: "nonexistent spec",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Spec = "/nonexistent/timeline.yaml"
				cfg.Output = "/tmp/output.mp4"
				return cfg
			},
			expectError: true,
			errorText:   "does not exist",
		},
		{
			name: "batch path is a file",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Batch = createTempFile(t)
				return cfg
			},
			expectError: true,
			errorText:   "not a directory",
		},
		{
			name: "valid batch directory",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Batch = t.TempDir()
				return cfg
			},
			expectError: false,
		},
		{
			name: "negative workers",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Spec = createTempFile(t)
				cfg.Output = "/tmp/output.mp4"
				cfg.Workers = -1
				return cfg
			},
			expectError: true,
			errorText:   "workers cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config()
			err := cfg.Validate()

			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.expectError && err != nil && tt.errorText != "" {
				if !strings.Contains(err.Error(), tt.errorText) {
					t.Errorf("Expected error to contain '%s', got '%s'", tt.errorText, err.Error())
				}
			}
		})
	}
}

func TestAudioConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      AudioConfig
		expectError bool
	}{
		{
			name:        "valid",
			config:      AudioConfig{Codec: "aac", Bitrate: "192k"},
			expectError: false,
		},
		{
			name:        "missing codec",
			config:      AudioConfig{Bitrate: "192k"},
			expectError: true,
		},
		{
			name:        "missing bitrate",
			config:      AudioConfig{Codec: "aac"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestVideoConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      VideoConfig
		expectError bool
	}{
		{
			name:        "valid",
			config:      VideoConfig{Codec: "libx264", CRF: 23, Preset: "medium", PixelFormat: "yuv420p"},
			expectError: false,
		},
		{
			name:        "invalid CRF",
			config:      VideoConfig{Codec: "libx264", CRF: 60, Preset: "medium", PixelFormat: "yuv420p"},
			expectError: true,
		},
		{
			name:        "missing pixel format",
			config:      VideoConfig{Codec: "libx264", CRF: 23, Preset: "medium"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestConfigCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spec = "timeline.yaml"
	cfg.Workers = 8

	copy := cfg.Copy()

	// Modify original
	cfg.Spec = "modified.yaml"
	cfg.Workers = 16
	cfg.Video.CRF = 18

	// Copy should be unchanged
	if copy.Spec != "timeline.yaml" {
		t.Errorf("Copy spec was modified: expected 'timeline.yaml', got '%s'", copy.Spec)
	}
	if copy.Workers != 8 {
		t.Errorf("Copy workers was modified: expected 8, got %d", copy.Workers)
	}
	if copy.Video.CRF != 23 {
		t.Errorf("Copy CRF was modified: expected 23, got %d", copy.Video.CRF)
	}
}

func TestEncodeArgs(t *testing.T) {
	cfg := DefaultConfig()
	args := strings.Join(cfg.EncodeArgs(), " ")

	if !strings.Contains(args, "-c:v libx264") {
		t.Errorf("Expected video codec in %q", args)
	}
	if !strings.Contains(args, "-crf 23") {
		t.Errorf("Expected CRF in %q", args)
	}
	if !strings.Contains(args, "-c:a aac") {
		t.Errorf("Expected audio codec in %q", args)
	}
	if !strings.Contains(args, "-b:a 192k") {
		t.Errorf("Expected audio bitrate in %q", args)
	}
}

// Helper functions

func createTempFile(t *testing.T) string {
	f, err := os.CreateTemp("", "test-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}
