package models

import (
	"fmt"
	"time"
)

// ExportProgress represents real-time render metrics reported by the
// engine while an export runs.
type ExportProgress struct {
	// Current position in the output
	Frame       int64   // Current frame number
	FPS         float64 // Frames per second being processed
	CurrentTime string  // Current timestamp (HH:MM:SS.MS)

	// Performance metrics
	Bitrate string  // Current bitrate (e.g., "128.0kbits/s")
	Speed   float64 // Render speed multiplier (e.g., 2.34 means 2.34x realtime)

	// Size information
	Size string // Current output file size (e.g., "1024kB")

	// Progress calculation
	TotalDuration float64 // Project duration in seconds (for percentage calculation)
	Progress      float64 // Percentage complete (0-100)

	// Metadata
	State     ProgressState // Current state of the export
	StartTime time.Time     // When the export started
	UpdatedAt time.Time     // Last update timestamp
}

// ProgressState represents the current state of an export.
type ProgressState string

const (
	ProgressStateQueued    ProgressState = "queued"    // Waiting in queue
	ProgressStateStarting  ProgressState = "starting"  // Initializing
	ProgressStateRendering ProgressState = "rendering" // Engine actively rendering
	ProgressStateCompleted ProgressState = "completed" // Successfully finished
	ProgressStateFailed    ProgressState = "failed"    // Encountered an error
	ProgressStateCancelled ProgressState = "cancelled" // User cancelled
)

// ProgressCallback receives progress updates during an export.
type ProgressCallback func(progress *ExportProgress)

// NewExportProgress creates a progress tracker for a project of the
// given duration.
func NewExportProgress(totalDuration float64) *ExportProgress {
	return &ExportProgress{
		TotalDuration: totalDuration,
		State:         ProgressStateQueued,
		StartTime:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// CalculateProgress updates the percentage based on the engine's
// current output timestamp.
func (ep *ExportProgress) CalculateProgress(currentSeconds float64) {
	if ep.TotalDuration > 0 {
		ep.Progress = (currentSeconds / ep.TotalDuration) * 100
		if ep.Progress > 100 {
			ep.Progress = 100
		}
	}
	ep.UpdatedAt = time.Now()
}

// EstimatedTimeRemaining calculates ETA based on elapsed time and
// current progress.
func (ep *ExportProgress) EstimatedTimeRemaining() time.Duration {
	if ep.Speed <= 0 || ep.Progress <= 0 {
		return 0
	}

	elapsed := time.Since(ep.StartTime)
	totalEstimated := time.Duration(float64(elapsed) / (ep.Progress / 100))
	remaining := totalEstimated - elapsed

	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatSummary returns a human-readable one-line summary.
func (ep *ExportProgress) FormatSummary() string {
	eta := ep.EstimatedTimeRemaining()
	return fmt.Sprintf(
		"Progress: %.1f%% | Speed: %.2fx | Bitrate: %s | Size: %s | ETA: %s",
		ep.Progress,
		ep.Speed,
		ep.Bitrate,
		ep.Size,
		formatDuration(eta),
	)
}

// formatDuration converts a duration to a human-readable string.
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "calculating..."
	}

	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	seconds = seconds % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}
