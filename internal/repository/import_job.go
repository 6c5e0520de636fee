package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voteraction/voter-ingest/constants"
	"github.com/voteraction/voter-ingest/gen/ent"
	"github.com/voteraction/voter-ingest/gen/ent/importjob"
	"github.com/voteraction/voter-ingest/internal/entity"
)

// ImportJobFilter narrows List; zero values mean no constraint.
type ImportJobFilter struct {
	AssemblyID uuid.UUID
	Status     constants.JobStatus
	Limit      int
}

type ImportJobRepository interface {
	Create(ctx context.Context, job *entity.ImportJob) (*entity.ImportJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportJob, error)
	List(ctx context.Context, f ImportJobFilter) ([]*entity.ImportJob, error)

	// NextPending returns the oldest queued job, or nil when the queue is empty.
	NextPending(ctx context.Context) (*entity.ImportJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	SetProgress(ctx context.Context, id uuid.UUID, pct int) error
	AppendLog(ctx context.Context, id uuid.UUID, line string) error
	MarkCompleted(ctx context.Context, id uuid.UUID, totalVoters int, summary string) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error

	// ResetStale requeues PROCESSING jobs untouched for longer than olderThan.
	// Safe to run at any time; a processing job always bumps updated_at well within
	// the threshold.
	ResetStale(ctx context.Context, olderThan time.Duration) (int, error)
}

type importJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewImportJobRepository(entc *ent.Client, log *slog.Logger) ImportJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &importJobRepo{ent: entc, log: log}
}

func (r *importJobRepo) Create(ctx context.Context, job *entity.ImportJob) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.Create().
		SetAssemblyID(job.AssemblyID).
		SetFileName(job.FileName).
		SetFilePath(job.FilePath).
		SetNillableBoothNumber(job.BoothNumber).
		SetNillableBoothName(job.BoothName).
		SetNillableCommonAddress(job.CommonAddress).
		SetNillableExpectedCount(job.ExpectedCount).
		SetNillableStartPage(job.StartPage).
		SetNillableEndPage(job.EndPage).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job create failed", "file", job.FileName, "err", err)
		return nil, err
	}
	r.log.Info("import_job queued", "job_id", row.ID, "file", row.FileName)
	return toImportJob(row), nil
}

func (r *importJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toImportJob(row), nil
}

func (r *importJobRepo) List(ctx context.Context, f ImportJobFilter) ([]*entity.ImportJob, error) {
	q := r.ent.ImportJob.Query()
	if f.AssemblyID != uuid.Nil {
		q = q.Where(importjob.AssemblyIDEQ(f.AssemblyID))
	}
	if f.Status != "" {
		q = q.Where(importjob.StatusEQ(string(f.Status)))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	rows, err := q.Order(ent.Desc(importjob.FieldAddedAt)).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ImportJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, toImportJob(row))
	}
	return out, nil
}

func (r *importJobRepo) NextPending(ctx context.Context) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.Query().
		Where(importjob.StatusEQ(string(constants.JobStatusPending))).
		Order(ent.Asc(importjob.FieldAddedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toImportJob(row), nil
}

func (r *importJobRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.ImportJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job mark processing failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("import_job processing", "job_id", id)
	return nil
}

func (r *importJobRepo) SetProgress(ctx context.Context, id uuid.UUID, pct int) error {
	_, err := r.ent.ImportJob.UpdateOneID(id).
		SetProgress(pct).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job progress update failed", "job_id", id, "pct", pct, "err", err)
	}
	return err
}

func (r *importJobRepo) AppendLog(ctx context.Context, id uuid.UUID, line string) error {
	row, err := r.ent.ImportJob.Get(ctx, id)
	if err != nil {
		return err
	}
	logs := line
	if row.Logs != nil && *row.Logs != "" {
		logs = *row.Logs + "\n" + line
	}
	_, err = row.Update().SetLogs(logs).Save(ctx)
	return err
}

func (r *importJobRepo) MarkCompleted(ctx context.Context, id uuid.UUID, totalVoters int, summary string) error {
	row, err := r.ent.ImportJob.Get(ctx, id)
	if err != nil {
		return err
	}
	logs := summary
	if row.Logs != nil && *row.Logs != "" {
		logs = *row.Logs + "\n" + summary
	}
	_, err = row.Update().
		SetStatus(string(constants.JobStatusCompleted)).
		SetProgress(100).
		SetTotalVoters(totalVoters).
		SetLogs(logs).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job mark completed failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("import_job completed", "job_id", id, "total_voters", totalVoters)
	return nil
}

func (r *importJobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.ImportJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job mark failed failed", "job_id", id, "err", err)
		return err
	}
	r.log.Warn("import_job failed", "job_id", id, "error", message)
	return nil
}

func (r *importJobRepo) ResetStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := r.ent.ImportJob.Update().
		Where(
			importjob.StatusEQ(string(constants.JobStatusProcessing)),
			importjob.UpdatedAtLT(cutoff),
		).
		SetStatus(string(constants.JobStatusPending)).
		SetProgress(0).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job stale reset failed", "err", err)
		return 0, err
	}
	if n > 0 {
		r.log.Warn("requeued stale processing jobs", "count", n, "older_than", olderThan)
	}
	return n, nil
}

func toImportJob(row *ent.ImportJob) *entity.ImportJob {
	return &entity.ImportJob{
		ID:            row.ID,
		AssemblyID:    row.AssemblyID,
		FileName:      row.FileName,
		FilePath:      row.FilePath,
		BoothNumber:   row.BoothNumber,
		BoothName:     row.BoothName,
		CommonAddress: row.CommonAddress,
		ExpectedCount: row.ExpectedCount,
		StartPage:     row.StartPage,
		EndPage:       row.EndPage,
		Status:        row.Status,
		Progress:      row.Progress,
		TotalVoters:   row.TotalVoters,
		Logs:          row.Logs,
		ErrorMessage:  row.ErrorMessage,
		AddedAt:       row.AddedAt,
		UpdatedAt:     row.UpdatedAt,
		CompletedAt:   row.CompletedAt,
	}
}
