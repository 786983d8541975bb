// Package runner is the process-spawning collaborator: it hands a
// compiled instruction list to the external engine and tracks render
// progress from its stderr. The compiler core never spawns processes.
package runner

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"compositor/models"
)

// engineBinary is the external filter-graph-driven media engine.
const engineBinary = "ffmpeg"

// Runner executes one compiled export.
type Runner struct {
	args             []string
	encodeArgs       []string
	outputPath       string
	totalDuration    float64
	progressCallback models.ProgressCallback
}

// NewRunner creates a runner for a compiled instruction list.
// encodeArgs (codecs, quality) are appended after the compiled args,
// before the output path.
func NewRunner(args, encodeArgs []string, outputPath string, totalDuration float64) *Runner {
	return &Runner{
		args:          args,
		encodeArgs:    encodeArgs,
		outputPath:    outputPath,
		totalDuration: totalDuration,
	}
}

// SetProgressCallback sets the callback function for progress updates
func (r *Runner) SetProgressCallback(callback models.ProgressCallback) *Runner {
	r.progressCallback = callback
	return r
}

// BuildArgs returns the full engine argument list: compiled
// instructions, encode settings, then the overwrite flag and output.
func (r *Runner) BuildArgs() []string {
	args := make([]string, 0, len(r.args)+len(r.encodeArgs)+2)
	args = append(args, r.args...)
	args = append(args, r.encodeArgs...)
	args = append(args, "-y", r.outputPath)
	return args
}

// DryRun returns the engine command without executing it.
func (r *Runner) DryRun() string {
	return fmt.Sprintf("%s %s", engineBinary, strings.Join(r.BuildArgs(), " "))
}

// Run executes the engine command. It blocks until completion.
func (r *Runner) Run() error {
	args := r.BuildArgs()
	cmd := exec.Command(engineBinary, args...)

	// If no progress callback, use simple execution
	if r.progressCallback == nil {
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("engine command failed: %w (output: %s)", err, string(output))
		}
		return nil
	}

	return r.runWithProgress(cmd)
}

// runWithProgress executes the engine and streams progress updates via
// callback
func (r *Runner) runWithProgress(cmd *exec.Cmd) error {
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to get stderr pipe: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start engine: %w", err)
	}

	progress := models.NewExportProgress(r.totalDuration)
	progress.State = models.ProgressStateStarting
	r.progressCallback(progress)

	parser := NewProgressParser()
	errChan := make(chan error, 1)

	go func() {
		errChan <- parser.StreamProgress(stderr, progress, r.progressCallback)
	}()

	// Capture stdout (usually empty for the engine, but might have warnings)
	stdoutData, _ := io.ReadAll(stdout)

	cmdErr := cmd.Wait()
	parseErr := <-errChan

	if cmdErr != nil {
		progress.State = models.ProgressStateFailed
		r.progressCallback(progress)
		return fmt.Errorf("engine command failed: %w (output: %s)", cmdErr, string(stdoutData))
	}

	if parseErr != nil {
		// Progress parsing failed, but the render succeeded.
		fmt.Printf("Warning: progress parsing error: %v\n", parseErr)
	}

	progress.State = models.ProgressStateCompleted
	progress.Progress = 100
	r.progressCallback(progress)

	return nil
}

// GetOutputPath returns the output file path.
func (r *Runner) GetOutputPath() string {
	return r.outputPath
}
