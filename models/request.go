package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ExportRequest is one export of a project timeline: the base video,
// the project duration, and the resolved visual/audio elements in the
// order the timeline collaborator hands them over.
//
// A request is consumed by exactly one compilation and owns its data;
// there is no state shared between requests.
type ExportRequest struct {
	ID        string  `yaml:"id,omitempty"`
	VideoPath string  `yaml:"video"`
	Duration  float64 `yaml:"duration"`

	Effects  []Effect         `yaml:"effects,omitempty"`
	Overlays []OverlayElement `yaml:"overlays,omitempty"`
	Texts    []TextElement    `yaml:"texts,omitempty"`
	Audio    []AudioTrack     `yaml:"audio,omitempty"`
}

// NewExportRequest creates a request with a generated identifier and
// the given base video. Elements are appended by the caller before
// compilation.
func NewExportRequest(videoPath string, duration float64) *ExportRequest {
	return &ExportRequest{
		ID:        uuid.New().String(),
		VideoPath: videoPath,
		Duration:  duration,
	}
}

// Validate checks the request and every element it carries. All
// problems are collected so the caller sees the full list at once.
func (r *ExportRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.VideoPath) == "" {
		errs = append(errs, "video path is required")
	}
	if r.Duration < 0 {
		errs = append(errs, fmt.Sprintf("duration cannot be negative, got %g", r.Duration))
	}

	for i := range r.Effects {
		if err := r.Effects[i].Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("effect %d: %v", i, err))
		}
	}
	for i := range r.Overlays {
		if err := r.Overlays[i].Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("overlay %d: %v", i, err))
		}
	}
	for i := range r.Texts {
		if err := r.Texts[i].Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("text %d: %v", i, err))
		}
	}
	for i := range r.Audio {
		if err := r.Audio[i].Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("audio track %d: %v", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid export request:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// OverlaysByZOrder returns the overlays sorted by z-order, lowest
// first. The sort is stable so duplicate z-orders keep timeline order.
func (r *ExportRequest) OverlaysByZOrder() []OverlayElement {
	out := make([]OverlayElement, len(r.Overlays))
	copy(out, r.Overlays)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZOrder < out[j].ZOrder
	})
	return out
}
