package config

import (
	"flag"
	"fmt"
	"os"
)

// MergeFromFlags parses command-line flags and overrides config values
func (c *Config) MergeFromFlags() error {
	fs := flag.NewFlagSet("compositor", flag.ContinueOnError)
	fs.Usage = printUsage

	// Required fields
	spec := fs.String("spec", "", "Export request file (YAML timeline description)")
	output := fs.String("output", "", "Output file path (required)")

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Batch mode
	batch := fs.String("batch", "", "Directory of export request files, rendered concurrently")
	workers := fs.Int("workers", -1, "Number of parallel batch workers (0 = auto-detect, default: from config)")

	// Audio settings
	audioCodec := fs.String("audio-codec", "", "Audio codec (default: from config)")
	audioBitrate := fs.String("audio-bitrate", "", "Audio bitrate, e.g., 192k (default: from config)")

	// Video settings
	videoCodec := fs.String("video-codec", "", "Video codec (default: from config)")
	videoCRF := fs.Int("video-crf", -1, "Video CRF (0-51, lower = better quality) (default: from config)")
	videoPreset := fs.String("video-preset", "", "Video preset: ultrafast, fast, medium, slow, veryslow (default: from config)")
	pixelFormat := fs.String("pixel-format", "", "Output pixel format, e.g., yuv420p (default: from config)")

	// Compilation behavior
	padAudio := fs.Bool("pad-audio", false, "Pad mixed audio with silence to project duration")
	noPadAudio := fs.Bool("no-pad-audio", false, "Do not pad mixed audio")

	// Behavioral flags
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	dryRun := fs.Bool("dry-run", false, "Print the engine command without running it")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Override with flag values (only if explicitly set)
	if *spec != "" {
		c.Spec = *spec
	}
	if *output != "" {
		c.Output = *output
	}
	if *batch != "" {
		c.Batch = *batch
	}
	if *workers >= 0 {
		c.Workers = *workers
	}

	if *audioCodec != "" {
		c.Audio.Codec = *audioCodec
	}
	if *audioBitrate != "" {
		c.Audio.Bitrate = *audioBitrate
	}

	if *videoCodec != "" {
		c.Video.Codec = *videoCodec
	}
	if *videoCRF >= 0 {
		c.Video.CRF = *videoCRF
	}
	if *videoPreset != "" {
		c.Video.Preset = *videoPreset
	}
	if *pixelFormat != "" {
		c.Video.PixelFormat = *pixelFormat
	}

	if *padAudio {
		c.PadAudio = true
	}
	if *noPadAudio {
		c.PadAudio = false
	}
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `compositor - compile a timeline description into one engine invocation

USAGE:
  compositor -spec FILE -output FILE [OPTIONS]
  compositor -batch DIR [OPTIONS]

REQUIRED FLAGS:
  -spec string
        Export request file (YAML timeline description)
  -output string
        Output file path

CONFIGURATION:
  -config string
        Path to config file (default: search ./compositor.yaml, ~/.compositor/config.yaml, /etc/compositor/config.yaml)

BATCH MODE:
  -batch string
        Directory of export request files, rendered concurrently
  -workers int
        Number of parallel batch workers (0 = auto-detect CPU count)

AUDIO SETTINGS:
  -audio-codec string
        Audio codec (default: aac)
  -audio-bitrate string
        Audio bitrate, e.g., 128k, 192k (default: 192k)

VIDEO SETTINGS:
  -video-codec string
        Video codec (default: libx264)
  -video-crf int
        Video CRF: 0-51, lower = better quality (default: 23)
  -video-preset string
        Video preset: ultrafast, fast, medium, slow, veryslow (default: medium)
  -pixel-format string
        Output pixel format (default: yuv420p)

COMPILATION:
  --pad-audio
        Pad mixed audio with silence to project duration (default: true)
  --no-pad-audio
        Do not pad mixed audio

BEHAVIORAL FLAGS:
  --verbose
        Enable verbose logging
  --dry-run
        Print the engine command without running it

EXAMPLES:
  # Render a timeline
  compositor -spec project.yaml -output final.mp4

  # Inspect the generated command
  compositor -spec project.yaml -output final.mp4 --dry-run

  # Render every spec in a directory with 4 workers
  compositor -batch ./exports -workers 4

CONFIGURATION FILES:
  Config files are searched in order:
    1. ./compositor.yaml
    2. ~/.compositor/config.yaml
    3. /etc/compositor/config.yaml

  Priority: CLI flags > environment (.env) > Config file > Defaults

`)
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Spec:           %s\n", c.Spec)
	fmt.Printf("Output:         %s\n", c.Output)
	if c.Batch != "" {
		fmt.Printf("Batch:          %s\n", c.Batch)
		fmt.Printf("Workers:        %d\n", c.Workers)
	}

	fmt.Println("\nAudio Settings:")
	fmt.Printf("  Codec:        %s\n", c.Audio.Codec)
	fmt.Printf("  Bitrate:      %s\n", c.Audio.Bitrate)

	fmt.Println("\nVideo Settings:")
	fmt.Printf("  Codec:        %s\n", c.Video.Codec)
	fmt.Printf("  CRF:          %d\n", c.Video.CRF)
	fmt.Printf("  Preset:       %s\n", c.Video.Preset)
	fmt.Printf("  Pixel Format: %s\n", c.Video.PixelFormat)

	fmt.Println("\nBehavioral Flags:")
	fmt.Printf("  Pad Audio:    %v\n", c.PadAudio)
	fmt.Printf("  Verbose:      %v\n", c.Verbose)
	fmt.Println("═══════════════════════════════════════════════════════════")
}
