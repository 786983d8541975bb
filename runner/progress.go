package runner

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"compositor/models"
)

// ProgressParser parses engine stderr output for render metrics
type ProgressParser struct {
	frameRegex   *regexp.Regexp
	fpsRegex     *regexp.Regexp
	sizeRegex    *regexp.Regexp
	timeRegex    *regexp.Regexp
	bitrateRegex *regexp.Regexp
	speedRegex   *regexp.Regexp
}

// NewProgressParser creates a new parser for engine progress output
func NewProgressParser() *ProgressParser {
	return &ProgressParser{
		// Match both "frame=123" and "frame= 123" formats
		frameRegex:   regexp.MustCompile(`^frame=\s*(\d+)`),
		fpsRegex:     regexp.MustCompile(`^fps=\s*([0-9.]+)`),
		sizeRegex:    regexp.MustCompile(`^(?:out_time_)?size=\s*([0-9]+)`),
		timeRegex:    regexp.MustCompile(`^(?:out_time_)?time=\s*([0-9:\.]+)`),
		bitrateRegex: regexp.MustCompile(`^bitrate=\s*([0-9.]+)`),
		// Match speed in both formats: "^speed=X.Xx" (multi-line) and "speed=X.Xx" (embedded in stats line)
		speedRegex: regexp.MustCompile(`(?:^|\s)speed=\s*([0-9.]+)x?`),
	}
}

// ParseLine parses a single line of engine stderr output and updates
// the progress. Handles both -stats format (all data on one line) and
// -progress format (key=value per line)
func (pp *ProgressParser) ParseLine(line string, progress *models.ExportProgress) bool {
	line = strings.TrimSpace(line)
	if line == "" || line == "progress=continue" || line == "progress=end" {
		return false
	}

	updated := false

	if matches := pp.frameRegex.FindStringSubmatch(line); len(matches) > 1 {
		if frame, err := strconv.ParseInt(matches[1], 10, 64); err == nil {
			progress.Frame = frame
			updated = true
		}
	}

	if matches := pp.fpsRegex.FindStringSubmatch(line); len(matches) > 1 {
		if fps, err := strconv.ParseFloat(matches[1], 64); err == nil {
			progress.FPS = fps
			updated = true
		}
	}

	if matches := pp.sizeRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.Size = matches[1] + "kB"
		updated = true
	}

	if matches := pp.timeRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.CurrentTime = matches[1]
		if seconds := pp.timeToSeconds(matches[1]); seconds > 0 {
			progress.CalculateProgress(seconds)
		}
		updated = true
	}

	if matches := pp.bitrateRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.Bitrate = matches[1] + "kbits/s"
		updated = true
	}

	if matches := pp.speedRegex.FindStringSubmatch(line); len(matches) > 1 {
		if speed, err := strconv.ParseFloat(matches[1], 64); err == nil {
			progress.Speed = speed
			updated = true
		}
	}

	return updated
}

// StreamProgress reads engine stderr and continuously updates progress
func (pp *ProgressParser) StreamProgress(reader io.Reader, progress *models.ExportProgress, callback models.ProgressCallback) error {
	scanner := bufio.NewScanner(reader)

	// The engine overwrites its stats line with \r; captured output
	// usually arrives as separate lines, but give the scanner room.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lastLine string

	for scanner.Scan() {
		line := scanner.Text()

		if pp.ParseLine(line, progress) {
			progress.State = models.ProgressStateRendering
			if callback != nil {
				callback(progress)
			}
			lastLine = line
		} else if strings.Contains(line, "error") || strings.Contains(line, "Error") {
			lastLine = line
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading engine output: %w", err)
	}

	if lastLine == "" {
		return fmt.Errorf("no progress output captured from engine")
	}

	return nil
}

// timeToSeconds converts engine time format (HH:MM:SS.MS) to seconds
func (pp *ProgressParser) timeToSeconds(timeStr string) float64 {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, err1 := strconv.ParseFloat(parts[0], 64)
	minutes, err2 := strconv.ParseFloat(parts[1], 64)
	seconds, err3 := strconv.ParseFloat(parts[2], 64)

	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}

	return hours*3600 + minutes*60 + seconds
}
