// Package server exposes the ingestion pipeline over gRPC. The web layer submits
// uploaded PDFs here and polls job status; processing itself happens in the worker.
package server

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voteraction/voter-ingest/constants"
	v1 "github.com/voteraction/voter-ingest/gen/proto/voters/v1"
	"github.com/voteraction/voter-ingest/internal/common"
	"github.com/voteraction/voter-ingest/internal/entity"
	"github.com/voteraction/voter-ingest/internal/export"
	"github.com/voteraction/voter-ingest/internal/repository"
)

type ImportServer struct {
	v1.UnimplementedImportServiceServer
	assemblies repository.AssemblyRepository
	jobs       repository.ImportJobRepository
	exporter   *export.Service
	logger     *slog.Logger

	// wake, when set, nudges the worker after a job is queued so the poll
	// interval does not delay pickup.
	wake func()
}

func NewImportServer(
	assemblies repository.AssemblyRepository,
	jobs repository.ImportJobRepository,
	exporter *export.Service,
	wake func(),
	logger *slog.Logger,
) *ImportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportServer{
		assemblies: assemblies,
		jobs:       jobs,
		exporter:   exporter,
		wake:       wake,
		logger:     logger,
	}
}

func (s *ImportServer) CreateImportJob(ctx context.Context, req *v1.CreateImportJobRequest) (*v1.CreateImportJobResponse, error) {
	path := strings.TrimSpace(req.GetFilePath())
	if path == "" {
		return nil, common.InvalidArgumentError("file_path is required")
	}
	if req.GetAssemblyNumber() <= 0 {
		return nil, common.InvalidArgumentError("assembly_number must be positive")
	}

	asm, err := s.assemblies.GetByNumber(ctx, int(req.GetAssemblyNumber()))
	if err != nil {
		s.logger.Error("assembly lookup failed", "number", req.GetAssemblyNumber(), "err", err)
		return nil, common.InternalError("assembly lookup failed")
	}
	if asm == nil {
		name := strings.TrimSpace(req.GetAssemblyName())
		if name == "" {
			return nil, common.InvalidArgumentError("assembly_name is required for a new assembly")
		}
		asm, err = s.assemblies.Create(ctx, name, int(req.GetAssemblyNumber()), nil)
		if err != nil {
			s.logger.Error("assembly create failed", "number", req.GetAssemblyNumber(), "err", err)
			return nil, common.InternalError("assembly create failed")
		}
	}

	job := &entity.ImportJob{
		AssemblyID: asm.ID,
		FileName:   filepath.Base(path),
		FilePath:   path,
	}
	if v := int(req.GetBoothNumber()); v > 0 {
		job.BoothNumber = &v
	}
	if v := strings.TrimSpace(req.GetBoothName()); v != "" {
		job.BoothName = &v
	}
	if v := strings.TrimSpace(req.GetCommonAddress()); v != "" {
		job.CommonAddress = &v
	}
	if v := int(req.GetExpectedCount()); v > 0 {
		job.ExpectedCount = &v
	}
	if v := int(req.GetStartPage()); v > 0 {
		job.StartPage = &v
	}
	if v := int(req.GetEndPage()); v > 0 {
		job.EndPage = &v
	}
	if job.StartPage != nil && job.EndPage != nil && *job.EndPage < *job.StartPage {
		return nil, common.InvalidArgumentError("end_page must not precede start_page")
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, common.InternalError("queueing import job failed")
	}
	if s.wake != nil {
		s.wake()
	}
	return &v1.CreateImportJobResponse{Job: toProtoJob(created)}, nil
}

func (s *ImportServer) GetImportJob(ctx context.Context, req *v1.GetImportJobRequest) (*v1.GetImportJobResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, common.InternalError("job lookup failed")
	}
	if job == nil {
		return nil, common.NotFoundError("import job not found")
	}
	return &v1.GetImportJobResponse{Job: toProtoJob(job)}, nil
}

func (s *ImportServer) ListImportJobs(ctx context.Context, req *v1.ListImportJobsRequest) (*v1.ListImportJobsResponse, error) {
	var f repository.ImportJobFilter
	if raw := strings.TrimSpace(req.GetAssemblyId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentError("assembly_id must be a UUID")
		}
		f.AssemblyID = id
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		status := constants.JobStatus(st)
		if !status.Valid() {
			return nil, common.InvalidArgumentErrorf("unknown status %q", st)
		}
		f.Status = status
	}
	f.Limit = int(req.GetLimit())

	jobs, err := s.jobs.List(ctx, f)
	if err != nil {
		return nil, common.InternalError("job list failed")
	}
	out := make([]*v1.ImportJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toProtoJob(j))
	}
	return &v1.ListImportJobsResponse{Jobs: out}, nil
}

func (s *ImportServer) ExportVoters(ctx context.Context, req *v1.ExportVotersRequest) (*v1.ExportVotersResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetAssemblyId()))
	if err != nil {
		return nil, common.InvalidArgumentError("assembly_id must be a UUID")
	}
	xlsx, err := s.exporter.ExportVotersXLSX(ctx, id, repository.VoterFilter{
		Village:     strings.TrimSpace(req.GetVillage()),
		BoothNumber: int(req.GetBoothNumber()),
	})
	if err != nil {
		s.logger.Error("export.xlsx.failed", "assembly_id", id, "err", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportVotersResponse{Xlsx: xlsx}, nil
}

func toProtoJob(j *entity.ImportJob) *v1.ImportJob {
	out := &v1.ImportJob{
		Id:          j.ID.String(),
		AssemblyId:  j.AssemblyID.String(),
		FileName:    j.FileName,
		FilePath:    j.FilePath,
		Status:      j.Status,
		Progress:    int32(j.Progress),
		TotalVoters: int32(j.TotalVoters),
		AddedAt:     j.AddedAt.Format(time.RFC3339Nano),
		UpdatedAt:   j.UpdatedAt.Format(time.RFC3339Nano),
	}
	if j.BoothNumber != nil {
		out.BoothNumber = int32(*j.BoothNumber)
	}
	if j.BoothName != nil {
		out.BoothName = *j.BoothName
	}
	if j.CommonAddress != nil {
		out.CommonAddress = *j.CommonAddress
	}
	if j.ExpectedCount != nil {
		out.ExpectedCount = int32(*j.ExpectedCount)
	}
	if j.StartPage != nil {
		out.StartPage = int32(*j.StartPage)
	}
	if j.EndPage != nil {
		out.EndPage = int32(*j.EndPage)
	}
	if j.Logs != nil {
		out.Logs = *j.Logs
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	if j.CompletedAt != nil {
		out.CompletedAt = j.CompletedAt.Format(time.RFC3339Nano)
	}
	return out
}
