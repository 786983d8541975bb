// Package models provides the timeline element types the compiler
// consumes and the progress/result types the export pipeline produces.
package models

import (
	"fmt"
	"strings"
)

// EffectKind is the closed set of whole-frame video effects.
type EffectKind string

const (
	EffectScale   EffectKind = "scale"
	EffectRotate  EffectKind = "rotate"
	EffectOpacity EffectKind = "opacity"
)

// Effect is one whole-frame video effect in author-specified order.
// Only the fields relevant to Kind are read.
type Effect struct {
	Kind EffectKind `yaml:"kind"`

	// Scale
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`

	// Rotate, in degrees
	Degrees float64 `yaml:"degrees,omitempty"`

	// Opacity, 0..1
	Alpha float64 `yaml:"alpha,omitempty"`
}

// Validate checks the effect parameters for its kind.
func (e *Effect) Validate() error {
	switch e.Kind {
	case EffectScale:
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("scale effect requires positive width and height, got %dx%d", e.Width, e.Height)
		}
	case EffectRotate:
		// Any angle is valid, including negative.
	case EffectOpacity:
		if e.Alpha < 0 || e.Alpha > 1 {
			return fmt.Errorf("opacity alpha must be between 0 and 1, got %g", e.Alpha)
		}
	default:
		return fmt.Errorf("unknown effect kind %q", e.Kind)
	}
	return nil
}

// OverlayElement is one image/sticker composited on top of the video
// stream. Elements are ordered by ZOrder; equal z-orders keep timeline
// order (a data-quality condition, not an error).
type OverlayElement struct {
	SourcePath string  `yaml:"source"`
	ZOrder     int     `yaml:"z_order"`
	X          int     `yaml:"x"`
	Y          int     `yaml:"y"`
	Start      float64 `yaml:"start"`
	Duration   float64 `yaml:"duration"`
}

// Validate checks overlay fields. Zero duration or an out-of-range
// start is allowed: it compiles to an always-false visibility window.
func (o *OverlayElement) Validate() error {
	if strings.TrimSpace(o.SourcePath) == "" {
		return fmt.Errorf("overlay source path cannot be empty")
	}
	if o.Start < 0 {
		return fmt.Errorf("overlay start cannot be negative, got %g", o.Start)
	}
	if o.Duration < 0 {
		return fmt.Errorf("overlay duration cannot be negative, got %g", o.Duration)
	}
	return nil
}

// TextElement is one text overlay with its style and visibility window.
type TextElement struct {
	Content   string  `yaml:"content"`
	FontFile  string  `yaml:"font_file,omitempty"`
	FontSize  int     `yaml:"font_size,omitempty"`
	FontColor string  `yaml:"font_color,omitempty"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Start     float64 `yaml:"start"`
	Duration  float64 `yaml:"duration"`
}

// Validate checks text element fields. Empty content is allowed (the
// node still compiles); negative timing is not.
func (t *TextElement) Validate() error {
	if t.Start < 0 {
		return fmt.Errorf("text start cannot be negative, got %g", t.Start)
	}
	if t.Duration < 0 {
		return fmt.Errorf("text duration cannot be negative, got %g", t.Duration)
	}
	return nil
}

// AudioTrack is one audio file with its start offset and volume.
//
// StartOffset uses float64 seconds; the compiler rounds it to whole
// milliseconds (half-up) when emitting delay nodes.
type AudioTrack struct {
	SourcePath  string  `yaml:"source"`
	StartOffset float64 `yaml:"start_offset"`
	Volume      float64 `yaml:"volume"`
}

// DefaultVolume is the volume multiplier that means "unchanged".
const DefaultVolume = 1.0

// Validate checks audio track fields. Zero volume is a data-quality
// condition and compiles to a volume=0 node, but negative values are
// rejected.
func (a *AudioTrack) Validate() error {
	if strings.TrimSpace(a.SourcePath) == "" {
		return fmt.Errorf("audio source path cannot be empty")
	}
	if a.StartOffset < 0 {
		return fmt.Errorf("audio start offset cannot be negative, got %g", a.StartOffset)
	}
	if a.Volume < 0 {
		return fmt.Errorf("audio volume cannot be negative, got %g", a.Volume)
	}
	return nil
}
