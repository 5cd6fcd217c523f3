package scanner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aleister1102/polisnap/internal/common/urlhandler"
	"github.com/aleister1102/polisnap/internal/datastore"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Acquirer runs the pipeline for one URL
type Acquirer interface {
	Acquire(ctx context.Context, url string) (*models.Outcome, error)
}

// LedgerWriter persists the outcomes of a run
type LedgerWriter interface {
	Write(ctx context.Context, runID string, records []models.LedgerRecord) (*datastore.LedgerWriteResult, error)
}

// RunnerOptions configures a Runner
type RunnerOptions struct {
	Workers int
	// RunID identifies the run in logs and the ledger. Empty generates one.
	RunID string
	// Ledger is optional.
	Ledger LedgerWriter
}

// Runner dispatches URLs to a fixed number of workers
type Runner struct {
	acquirer Acquirer
	workers  int
	runID    string
	ledger   LedgerWriter
	logger   zerolog.Logger
}

// NewRunner creates a runner over acquirer
func NewRunner(acquirer Acquirer, opts RunnerOptions, logger zerolog.Logger) *Runner {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Runner{
		acquirer: acquirer,
		workers:  workers,
		runID:    runID,
		ledger:   opts.Ledger,
		logger:   logger.With().Str("component", "Runner").Str("run_id", runID).Logger(),
	}
}

// RunID returns the identifier of the runner's batch
func (r *Runner) RunID() string {
	return r.runID
}

// Run acquires every distinct URL. A failing URL never stops the others.
// Cancelling ctx stops dispatching; URLs already started finish.
func (r *Runner) Run(ctx context.Context, urls []string) *Summary {
	targets := urlhandler.DedupeTargets(urls)
	summary := &Summary{
		RunID:     r.runID,
		Total:     len(targets),
		StartTime: time.Now(),
	}

	r.logger.Info().Int("urls", len(targets)).Int("workers", r.workers).Msg("Starting acquisition run")

	jobs := make(chan string)
	results := make(chan Result)
	var completed atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range jobs {
				result := r.acquire(ctx, url)
				done := completed.Add(1)
				r.logger.Info().
					Str("url", url).
					Str("status", string(result.Outcome.Status)).
					Str("reason", string(result.Outcome.Reason)).
					Int64("completed", done).
					Int("total", len(targets)).
					Msg("Policy processed")
				results <- result
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, url := range targets {
			select {
			case <-ctx.Done():
				return
			case jobs <- url:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		summary.add(result)
	}
	summary.Duration = time.Since(summary.StartTime)

	if ctx.Err() != nil && len(summary.Results) < summary.Total {
		r.logger.Warn().Int("processed", len(summary.Results)).Int("total", summary.Total).Msg("Run cancelled before all URLs were dispatched")
	}

	r.writeLedger(ctx, summary)

	r.logger.Info().
		Int("total", summary.Total).
		Int("saved", summary.Saved).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Dur("duration", summary.Duration).
		Msg("Acquisition run finished")

	return summary
}

func (r *Runner) acquire(ctx context.Context, url string) Result {
	start := time.Now()
	outcome, err := r.acquirer.Acquire(ctx, url)
	if outcome == nil {
		outcome = &models.Outcome{URL: url, Status: models.StatusFailed, Err: err}
	}
	if err != nil {
		r.logger.Error().Err(err).Str("url", url).Msg("Policy acquisition failed")
	}
	return Result{
		Outcome:     outcome,
		Duration:    time.Since(start),
		CompletedAt: time.Now(),
	}
}

func (r *Runner) writeLedger(ctx context.Context, summary *Summary) {
	if r.ledger == nil {
		return
	}
	// the ledger is still written for a cancelled run
	written, err := r.ledger.Write(context.WithoutCancel(ctx), r.runID, summary.LedgerRecords())
	if err != nil {
		summary.LedgerErr = err
		r.logger.Error().Err(err).Msg("Failed to write run ledger")
		return
	}
	summary.LedgerPath = written.FilePath
}
