package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"compositor/compiler"
	"compositor/config"
	"compositor/ffprobe"
	"compositor/internal/timeutil"
	"compositor/models"
	"compositor/orchestrator"
	"compositor/runner"
)

func main() {
	// Step 1: Load configuration (CLI flags > env > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbose {
		cfg.PrintConfig()
	}

	// Step 2: Run single or batch mode
	if cfg.Batch != "" {
		if err := runBatch(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "\n❌ Batch error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runSingle(cfg, cfg.Spec, cfg.Output); err != nil {
			fmt.Fprintf(os.Stderr, "\n❌ Export error: %v\n", err)
			os.Exit(1)
		}
	}
}

// runSingle compiles one export spec and renders it (or prints the
// engine command in dry-run mode).
func runSingle(cfg *config.Config, specPath, outputPath string) error {
	req, r, err := prepare(cfg, specPath, outputPath)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Println(r.DryRun())
		return nil
	}

	fmt.Printf("Rendering %s -> %s (duration %s)\n",
		specPath, outputPath, timeutil.FormatSeconds(req.Duration))

	r.SetProgressCallback(func(p *models.ExportProgress) {
		if cfg.Verbose {
			fmt.Printf("\r%s", p.FormatSummary())
		}
	})

	start := time.Now()
	if err := r.Run(); err != nil {
		return err
	}

	fmt.Printf("\n✅ Export completed in %s: %s\n", time.Since(start).Round(time.Second), outputPath)
	return nil
}

// runBatch renders every export spec in the batch directory through a
// worker pool.
func runBatch(cfg *config.Config) error {
	jobs, err := collectJobs(cfg.Batch)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no export specs (*.yaml, *.yml) found in %s", cfg.Batch)
	}

	fmt.Printf("Rendering %d exports with %d workers\n", len(jobs), cfg.Workers)

	pool := orchestrator.NewPool(cfg.Workers).
		SetProgressFunc(func(completed, total int, result *models.ExportResult) {
			status := "✅"
			if !result.Success {
				status = "❌"
			}
			fmt.Printf("%s [%d/%d] %s\n", status, completed, total, result.RequestID)
		})

	results := pool.Run(jobs, func(job orchestrator.ExportJob) (*models.ExportResult, error) {
		start := time.Now()
		if err := runExport(cfg, job.SpecPath, job.Output); err != nil {
			return nil, fmt.Errorf("%s: %w", job.SpecPath, err)
		}
		return models.NewExportResultSuccess(job.ID, job.Output, time.Since(start))
	})

	failures := 0
	for _, result := range results {
		if !result.Success {
			failures++
			fmt.Fprintf(os.Stderr, "  failed: %s: %v\n", result.RequestID, result.Error)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d exports failed", failures, len(results))
	}
	return nil
}

// runExport is the batch worker body: compile and render one spec.
func runExport(cfg *config.Config, specPath, outputPath string) error {
	_, r, err := prepare(cfg, specPath, outputPath)
	if err != nil {
		return err
	}
	if cfg.DryRun {
		fmt.Println(r.DryRun())
		return nil
	}
	return r.Run()
}

// prepare loads a spec, resolves its duration, compiles it, and builds
// the runner for it.
func prepare(cfg *config.Config, specPath, outputPath string) (*models.ExportRequest, *runner.Runner, error) {
	req, err := config.LoadRequestFile(specPath)
	if err != nil {
		return nil, nil, err
	}

	// A spec may omit the project duration; fall back to the base
	// video's container duration.
	if req.Duration == 0 && req.VideoPath != "" {
		probe, err := ffprobe.Probe(req.VideoPath)
		if err != nil {
			return nil, nil, fmt.Errorf("spec omits duration and probing failed: %w", err)
		}
		req.Duration, err = probe.GetDuration()
		if err != nil {
			return nil, nil, err
		}
	}

	result, err := compiler.CompileWithOptions(req, compiler.Options{PadAudio: cfg.PadAudio})
	if err != nil {
		return nil, nil, err
	}

	r := runner.NewRunner(result.Args, cfg.EncodeArgs(), outputPath, req.Duration)
	return req, r, nil
}

// collectJobs lists the export specs in a batch directory. Output
// files land next to their specs with the spec's base name.
func collectJobs(dir string) ([]orchestrator.ExportJob, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch directory: %w", err)
	}

	var jobs []orchestrator.ExportJob
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		base := strings.TrimSuffix(name, ext)
		jobs = append(jobs, orchestrator.ExportJob{
			ID:       base,
			SpecPath: filepath.Join(dir, name),
			Output:   filepath.Join(dir, base+".mp4"),
		})
	}
	return jobs, nil
}
