package models

import (
	"fmt"
	"strings"
	"time"
)

// ExportResult represents the outcome of one export request.
//
// It enforces logical consistency: successful results must have an
// output path and no error, while failed results must have an error
// and no output path.
//
// Use NewExportResultSuccess or NewExportResultFailure to create
// validated instances.
type ExportResult struct {
	RequestID  string        `json:"request_id"`
	OutputPath string        `json:"output_path"`
	Success    bool          `json:"success"`
	Error      error         `json:"error"`
	Elapsed    time.Duration `json:"elapsed"`
}

// NewExportResultSuccess creates a successful ExportResult with
// validation. Returns an error if outputPath is empty.
func NewExportResultSuccess(requestID, outputPath string, elapsed time.Duration) (*ExportResult, error) {
	er := &ExportResult{
		RequestID:  requestID,
		OutputPath: outputPath,
		Success:    true,
		Elapsed:    elapsed,
	}
	if err := er.Validate(); err != nil {
		return nil, fmt.Errorf("invalid export result: %w", err)
	}
	return er, nil
}

// NewExportResultFailure creates a failed ExportResult. The error
// parameter must not be nil.
func NewExportResultFailure(requestID string, expError error, elapsed time.Duration) (*ExportResult, error) {
	if expError == nil {
		return nil, fmt.Errorf("invalid export result: error cannot be nil for failed result")
	}
	return &ExportResult{
		RequestID: requestID,
		Success:   false,
		Error:     expError,
		Elapsed:   elapsed,
	}, nil
}

// Validate checks if the ExportResult has consistent state.
func (er *ExportResult) Validate() error {
	if er.Success && er.Error != nil {
		return fmt.Errorf("inconsistent state: Success is true but Error is not nil")
	}

	if !er.Success && er.Error == nil {
		return fmt.Errorf("failed result must have an error")
	}

	if er.Success && strings.TrimSpace(er.OutputPath) == "" {
		return fmt.Errorf("output_path cannot be empty for successful result")
	}

	if !er.Success && strings.TrimSpace(er.OutputPath) != "" {
		return fmt.Errorf("failed result should not have output_path")
	}

	return nil
}
