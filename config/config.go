package config

import "strconv"

// Config holds all compositor configuration options
type Config struct {
	// Required fields
	Spec   string `yaml:"spec"`   // export request file (YAML timeline description)
	Output string `yaml:"output"` // rendered output file

	// Batch mode: directory of export request files, rendered concurrently
	Batch   string `yaml:"batch"`
	Workers int    `yaml:"workers"` // 0 = auto-detect

	// Audio encode settings
	Audio AudioConfig `yaml:"audio"`

	// Video encode settings
	Video VideoConfig `yaml:"video"`

	// Compilation behavior
	PadAudio bool `yaml:"pad_audio"` // pad mixed audio with silence to project duration

	// Behavioral flags
	Verbose bool `yaml:"verbose"` // Show detailed logs
	DryRun  bool `yaml:"dry_run"` // Print the engine command without running it
}

// AudioConfig holds audio encode settings for the final output
type AudioConfig struct {
	Codec   string `yaml:"codec"`   // e.g., "aac", "libopus"
	Bitrate string `yaml:"bitrate"` // e.g., "128k", "192k"
}

// VideoConfig holds video encode settings for the final output
type VideoConfig struct {
	Codec       string `yaml:"codec"`        // e.g., "libx264", "libx265"
	CRF         int    `yaml:"crf"`          // Constant Rate Factor (0-51, lower = better quality)
	Preset      string `yaml:"preset"`       // e.g., "ultrafast", "medium", "slow"
	PixelFormat string `yaml:"pixel_format"` // e.g., "yuv420p"
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		Spec:   "",
		Output: "",

		Batch:   "",
		Workers: 0, // Auto-detect CPU count

		// Audio defaults (AAC: broad container compatibility)
		Audio: AudioConfig{
			Codec:   "aac",
			Bitrate: "192k",
		},

		// Video defaults (H.264: broad player compatibility)
		Video: VideoConfig{
			Codec:       "libx264",
			CRF:         23,
			Preset:      "medium",
			PixelFormat: "yuv420p",
		},

		PadAudio: true,

		Verbose: false,
		DryRun:  false,
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	copy.Audio = c.Audio
	copy.Video = c.Video
	return &copy
}

// EncodeArgs returns the output encode arguments appended after the
// compiler's instruction list.
func (c *Config) EncodeArgs() []string {
	return []string{
		"-c:v", c.Video.Codec,
		"-crf", strconv.Itoa(c.Video.CRF),
		"-preset", c.Video.Preset,
		"-pix_fmt", c.Video.PixelFormat,
		"-c:a", c.Audio.Codec,
		"-b:a", c.Audio.Bitrate,
	}
}
