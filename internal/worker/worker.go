// Package worker drives import jobs from PENDING to a terminal state. Exactly one
// drain loop runs at a time per process; overlapping triggers are dropped rather
// than queued, and jobs abandoned by a crashed run are requeued by the staleness
// sweep.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/voteraction/voter-ingest/internal/entity"
	"github.com/voteraction/voter-ingest/internal/importer"
	"github.com/voteraction/voter-ingest/internal/repository"
)

// Progress checkpoints. Extraction owns 10..40, the upsert loop 50..90.
const (
	claimPct     = 5
	parseDonePct = 45
	upsertBase   = 50
	upsertSpan   = 40
	houseSyncPct = 95
)

const missingFileMsg = "PDF file not found on server"

type Config struct {
	PollInterval time.Duration // queue poll cadence, default 10s
	StaleAfter   time.Duration // PROCESSING older than this is requeued, default 30m
}

type Worker struct {
	jobs     repository.ImportJobRepository
	importer *importer.Importer
	source   RecordSource
	cfg      Config
	log      *slog.Logger

	mu sync.Mutex // held while a drain loop runs
}

func New(jobs repository.ImportJobRepository, imp *importer.Importer, source RecordSource, cfg Config, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10 * time.Second
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = 30 * time.Minute
	}
	return &Worker{jobs: jobs, importer: imp, source: source, cfg: cfg, log: logger}
}

// Run polls the queue until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.log.Info("worker started",
		"poll_interval", w.cfg.PollInterval, "stale_after", w.cfg.StaleAfter)
	w.sweep(ctx)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Info("worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep requeues abandoned jobs and drains the queue once.
func (w *Worker) sweep(ctx context.Context) {
	if _, err := w.jobs.ResetStale(ctx, w.cfg.StaleAfter); err != nil {
		w.log.Error("stale reset failed", "err", err)
	}
	w.ProcessPending(ctx)
}

// ProcessPending drains the queue, oldest job first. If a drain loop is already
// running the call is a no-op: the running loop will pick up whatever was queued.
func (w *Worker) ProcessPending(ctx context.Context) {
	if !w.mu.TryLock() {
		w.log.Debug("drain already in progress")
		return
	}
	defer w.mu.Unlock()

	for {
		if ctx.Err() != nil {
			return
		}
		job, err := w.jobs.NextPending(ctx)
		if err != nil {
			w.log.Error("queue poll failed", "err", err)
			return
		}
		if job == nil {
			return
		}
		if err := w.process(ctx, job); err != nil {
			// the job is still PENDING; retrying in a tight loop would hammer
			// the same row, so leave it for the next sweep
			w.log.Error("job claim failed", "job_id", job.ID, "err", err)
			return
		}
	}
}

// process runs one job to a terminal state. It returns an error only when the job
// could not be claimed; pipeline failures are recorded on the job itself.
func (w *Worker) process(ctx context.Context, job *entity.ImportJob) error {
	log := w.log.With("job_id", job.ID, "file", job.FileName)
	log.Info("job started")

	if err := w.jobs.MarkProcessing(ctx, job.ID); err != nil {
		return err
	}
	if _, err := os.Stat(job.FilePath); err != nil {
		// nothing was extracted and there is no file to clean up; progress stays put
		w.fail(ctx, job, missingFileMsg, false)
		return nil
	}

	progress := w.progressFn(ctx, job)
	progress(claimPct)

	recs, err := w.source.Records(ctx, job, progress)
	if err != nil {
		w.fail(ctx, job, err.Error(), true)
		return nil
	}
	if len(recs) == 0 {
		w.fail(ctx, job, "no voter records recognized in document", true)
		return nil
	}
	progress(parseDonePct)
	_ = w.jobs.AppendLog(ctx, job.ID, fmt.Sprintf("Parsed %d records.", len(recs)))

	opt := importer.Options{
		AssemblyID: job.AssemblyID,
		JobID:      job.ID,
		Progress: func(done, total int) {
			progress(int32(upsertBase + done*upsertSpan/total))
		},
	}
	if job.BoothNumber != nil {
		opt.BoothNumber = *job.BoothNumber
	}
	res, err := w.importer.ImportBatch(ctx, recs, opt)
	if err != nil {
		w.fail(ctx, job, err.Error(), true)
		return nil
	}

	if err := w.importer.SyncHouseholds(ctx, job.AssemblyID, res.Houses); err != nil {
		w.fail(ctx, job, fmt.Sprintf("household sync failed: %v", err), true)
		return nil
	}
	progress(houseSyncPct)

	if job.ExpectedCount != nil && res.Total() != *job.ExpectedCount {
		_ = w.jobs.AppendLog(ctx, job.ID, fmt.Sprintf(
			"Expected %d voters, imported %d.", *job.ExpectedCount, res.Total()))
	}

	summary := fmt.Sprintf("Success. Created: %d, Updated: %d.", res.Created, res.Updated)
	if err := w.jobs.MarkCompleted(ctx, job.ID, res.Total(), summary); err != nil {
		return nil
	}
	w.removeSource(job)
	log.Info("job completed",
		"created", res.Created, "updated", res.Updated, "skipped", res.Skipped)
	return nil
}

// fail moves the job to FAILED and, when the source file exists, removes it so a
// bad PDF is not retried forever.
func (w *Worker) fail(ctx context.Context, job *entity.ImportJob, msg string, removeFile bool) {
	w.log.Warn("job failed", "job_id", job.ID, "error", msg)
	if err := w.jobs.MarkFailed(ctx, job.ID, msg); err != nil {
		w.log.Error("failed to record job failure", "job_id", job.ID, "err", err)
	}
	if removeFile {
		w.removeSource(job)
	}
}

func (w *Worker) removeSource(job *entity.ImportJob) {
	if err := os.Remove(job.FilePath); err != nil && !os.IsNotExist(err) {
		w.log.Warn("source file cleanup failed", "path", job.FilePath, "err", err)
	}
}

// progressFn returns a monotonic writer: a stage may only move the bar forward, so
// interleaved callbacks from coarse and fine stages never make it jump backwards.
func (w *Worker) progressFn(ctx context.Context, job *entity.ImportJob) func(int32) {
	last := int32(0)
	return func(pct int32) {
		if pct <= last {
			return
		}
		if pct > 100 {
			pct = 100
		}
		last = pct
		if err := w.jobs.SetProgress(ctx, job.ID, int(pct)); err != nil {
			w.log.Debug("progress write failed", "job_id", job.ID, "err", err)
		}
	}
}
