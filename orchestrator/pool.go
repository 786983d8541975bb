// Package orchestrator runs independent export jobs through a worker
// pool. Compilations share no state, so the pool needs no coordination
// beyond distributing jobs and collecting results.
package orchestrator

import (
	"sync"

	"compositor/models"
)

// ExportJob identifies one export: the request spec to compile and the
// output file to render.
type ExportJob struct {
	ID       string
	SpecPath string
	Output   string
}

// ExecFunc compiles and renders one job. Implementations must be safe
// for concurrent use; the standard one wires compiler + runner.
type ExecFunc func(job ExportJob) (*models.ExportResult, error)

// Pool distributes export jobs across a fixed number of workers.
type Pool struct {
	workers    int
	onProgress func(completed, total int, result *models.ExportResult)
}

// NewPool creates a pool with the given worker count. Counts below 1
// are clamped to 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// SetProgressFunc sets a callback invoked after each completed job.
func (p *Pool) SetProgressFunc(fn func(completed, total int, result *models.ExportResult)) *Pool {
	p.onProgress = fn
	return p
}

// Run executes all jobs and returns their results in completion order.
// A job whose ExecFunc returns an error is recorded as a failed
// ExportResult; Run itself never fails partway.
func (p *Pool) Run(jobs []ExportJob, exec ExecFunc) []*models.ExportResult {
	jobCh := make(chan ExportJob)
	resultCh := make(chan *models.ExportResult)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resultCh <- p.runJob(job, exec)
			}
		}()
	}

	go func() {
		for _, job := range jobs {
			jobCh <- job
		}
		close(jobCh)
		wg.Wait()
		close(resultCh)
	}()

	results := make([]*models.ExportResult, 0, len(jobs))
	completed := 0
	for result := range resultCh {
		completed++
		if p.onProgress != nil {
			p.onProgress(completed, len(jobs), result)
		}
		results = append(results, result)
	}
	return results
}

// runJob executes one job, normalizing errors into failed results.
func (p *Pool) runJob(job ExportJob, exec ExecFunc) *models.ExportResult {
	result, err := exec(job)
	if err != nil {
		// Construction only fails for a nil error, which cannot happen here.
		failed, _ := models.NewExportResultFailure(job.ID, err, 0)
		return failed
	}
	return result
}
