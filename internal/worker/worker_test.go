package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/voteraction/voter-ingest/constants"
	"github.com/voteraction/voter-ingest/internal/entity"
	"github.com/voteraction/voter-ingest/internal/importer"
	"github.com/voteraction/voter-ingest/internal/ocr"
	"github.com/voteraction/voter-ingest/internal/parser"
	"github.com/voteraction/voter-ingest/internal/repository"
)

// memJobs is an in-memory ImportJobRepository that records progress history.
type memJobs struct {
	jobs     map[uuid.UUID]*entity.ImportJob
	order    []uuid.UUID
	progress map[uuid.UUID][]int

	nextCalls  int
	resetCalls int
	claimErr   error
}

func newMemJobs() *memJobs {
	return &memJobs{
		jobs:     make(map[uuid.UUID]*entity.ImportJob),
		progress: make(map[uuid.UUID][]int),
	}
}

func (m *memJobs) Create(_ context.Context, job *entity.ImportJob) (*entity.ImportJob, error) {
	cp := *job
	cp.ID = uuid.New()
	cp.Status = string(constants.JobStatusPending)
	m.jobs[cp.ID] = &cp
	m.order = append(m.order, cp.ID)
	return &cp, nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.ImportJob, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (m *memJobs) List(_ context.Context, _ repository.ImportJobFilter) ([]*entity.ImportJob, error) {
	out := make([]*entity.ImportJob, 0, len(m.jobs))
	for _, id := range m.order {
		cp := *m.jobs[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memJobs) NextPending(_ context.Context) (*entity.ImportJob, error) {
	m.nextCalls++
	for _, id := range m.order {
		if m.jobs[id].Status == string(constants.JobStatusPending) {
			cp := *m.jobs[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memJobs) MarkProcessing(_ context.Context, id uuid.UUID) error {
	if m.claimErr != nil {
		return m.claimErr
	}
	m.jobs[id].Status = string(constants.JobStatusProcessing)
	return nil
}

func (m *memJobs) SetProgress(_ context.Context, id uuid.UUID, pct int) error {
	m.jobs[id].Progress = pct
	m.progress[id] = append(m.progress[id], pct)
	return nil
}

func (m *memJobs) AppendLog(_ context.Context, id uuid.UUID, line string) error {
	j := m.jobs[id]
	if j.Logs == nil {
		j.Logs = &line
		return nil
	}
	joined := *j.Logs + "\n" + line
	j.Logs = &joined
	return nil
}

func (m *memJobs) MarkCompleted(ctx context.Context, id uuid.UUID, totalVoters int, summary string) error {
	_ = m.AppendLog(ctx, id, summary)
	j := m.jobs[id]
	j.Status = string(constants.JobStatusCompleted)
	j.Progress = 100
	j.TotalVoters = totalVoters
	m.progress[id] = append(m.progress[id], 100)
	now := time.Now()
	j.CompletedAt = &now
	return nil
}

func (m *memJobs) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	j := m.jobs[id]
	j.Status = string(constants.JobStatusFailed)
	j.ErrorMessage = &message
	now := time.Now()
	j.CompletedAt = &now
	return nil
}

func (m *memJobs) ResetStale(_ context.Context, _ time.Duration) (int, error) {
	m.resetCalls++
	return 0, nil
}

// memVoters is a minimal in-memory VoterRepository for the import path.
type memVoters struct {
	byEpic map[string]*entity.Voter
}

func newMemVoters() *memVoters { return &memVoters{byEpic: make(map[string]*entity.Voter)} }

func (m *memVoters) GetByEPIC(_ context.Context, epic string) (*entity.Voter, error) {
	v, ok := m.byEpic[epic]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *memVoters) Create(_ context.Context, v *entity.Voter) (*entity.Voter, error) {
	cp := *v
	cp.ID = uuid.New()
	m.byEpic[v.EPIC] = &cp
	return &cp, nil
}

func (m *memVoters) Update(_ context.Context, v *entity.Voter) (*entity.Voter, error) {
	cp := *v
	m.byEpic[v.EPIC] = &cp
	return &cp, nil
}

func (m *memVoters) ListByAssembly(_ context.Context, _ uuid.UUID, _ repository.VoterFilter) ([]*entity.Voter, error) {
	return nil, nil
}

func (m *memVoters) CountHousehold(_ context.Context, _ uuid.UUID, village, house string) (int, error) {
	n := 0
	for _, v := range m.byEpic {
		if v.Village == village && v.HouseNumber == house {
			n++
		}
	}
	return n, nil
}

func (m *memVoters) SetHouseholdSize(_ context.Context, _ uuid.UUID, village, house string, size int) error {
	for _, v := range m.byEpic {
		if v.Village == village && v.HouseNumber == house {
			v.FamilySize = size
		}
	}
	return nil
}

// fakeSource replays canned records and progress marks.
type fakeSource struct {
	recs  []parser.Record
	err   error
	marks []int32
}

func (s *fakeSource) Records(_ context.Context, _ *entity.ImportJob, progress ocr.ProgressFunc) ([]parser.Record, error) {
	for _, p := range s.marks {
		progress(p)
	}
	return s.recs, s.err
}

func testRecords() []parser.Record {
	return []parser.Record{
		{EPIC: "ABC1234567", Name: "Ram Kumar", RelationType: constants.RelationFather,
			Gender: constants.GenderMale, HouseNumber: "12", Village: "Rampur"},
		{EPIC: "DEF7654321", Name: "Sita Devi", RelationType: constants.RelationHusband,
			Gender: constants.GenderFemale, HouseNumber: "12", Village: "Rampur"},
	}
}

func newTestWorker(jobs *memJobs, src RecordSource) *Worker {
	imp := importer.New(newMemVoters(), nil)
	return New(jobs, imp, src, Config{PollInterval: time.Hour, StaleAfter: time.Hour}, nil)
}

func queueJob(t *testing.T, jobs *memJobs, path string) *entity.ImportJob {
	t.Helper()
	job, err := jobs.Create(context.Background(), &entity.ImportJob{
		AssemblyID: uuid.New(), FileName: filepath.Base(path), FilePath: path,
	})
	if err != nil {
		t.Fatal(err)
	}
	return job
}

func tempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roll.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessPendingCompletesJob(t *testing.T) {
	jobs := newMemJobs()
	path := tempPDF(t)
	job := queueJob(t, jobs, path)

	w := newTestWorker(jobs, &fakeSource{recs: testRecords(), marks: []int32{10, 25, 40}})
	w.ProcessPending(context.Background())

	got := jobs.jobs[job.ID]
	if got.Status != string(constants.JobStatusCompleted) {
		t.Fatalf("status = %q, want COMPLETED (err=%v)", got.Status, got.ErrorMessage)
	}
	if got.Progress != 100 || got.TotalVoters != 2 {
		t.Errorf("progress/total = %d/%d, want 100/2", got.Progress, got.TotalVoters)
	}
	if got.Logs == nil || !strings.Contains(*got.Logs, "Success. Created: 2, Updated: 0.") {
		t.Errorf("logs = %v, want success summary", got.Logs)
	}
	if got.Logs != nil && !strings.Contains(*got.Logs, "Parsed 2 records.") {
		t.Errorf("logs = %v, want parse line", got.Logs)
	}

	hist := jobs.progress[job.ID]
	if len(hist) == 0 || hist[len(hist)-1] != 100 {
		t.Fatalf("progress history = %v, want terminal 100", hist)
	}
	for i := 1; i < len(hist); i++ {
		if hist[i] < hist[i-1] {
			t.Errorf("progress went backwards at %d: %v", i, hist)
		}
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("source file not removed after success")
	}
}

func TestProcessMissingFileFailsWithoutProgress(t *testing.T) {
	jobs := newMemJobs()
	job := queueJob(t, jobs, filepath.Join(t.TempDir(), "gone.pdf"))

	w := newTestWorker(jobs, &fakeSource{recs: testRecords()})
	w.ProcessPending(context.Background())

	got := jobs.jobs[job.ID]
	if got.Status != string(constants.JobStatusFailed) {
		t.Fatalf("status = %q, want FAILED", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "PDF file not found on server" {
		t.Errorf("error = %v", got.ErrorMessage)
	}
	if len(jobs.progress[job.ID]) != 0 {
		t.Errorf("progress touched for a job that never started: %v", jobs.progress[job.ID])
	}
}

func TestProcessZeroYieldFails(t *testing.T) {
	jobs := newMemJobs()
	path := tempPDF(t)
	job := queueJob(t, jobs, path)

	w := newTestWorker(jobs, &fakeSource{recs: nil})
	w.ProcessPending(context.Background())

	got := jobs.jobs[job.ID]
	if got.Status != string(constants.JobStatusFailed) {
		t.Fatalf("status = %q, want FAILED", got.Status)
	}
	if got.ErrorMessage == nil || !strings.Contains(*got.ErrorMessage, "no voter records") {
		t.Errorf("error = %v", got.ErrorMessage)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("unparseable source file should still be removed")
	}
}

func TestProcessSourceErrorFails(t *testing.T) {
	jobs := newMemJobs()
	path := tempPDF(t)
	job := queueJob(t, jobs, path)

	w := newTestWorker(jobs, &fakeSource{err: errors.New("pdftotext exploded")})
	w.ProcessPending(context.Background())

	got := jobs.jobs[job.ID]
	if got.Status != string(constants.JobStatusFailed) {
		t.Fatalf("status = %q, want FAILED", got.Status)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("source file should be removed on failure")
	}
}

func TestProcessPendingDrainsWholeQueue(t *testing.T) {
	jobs := newMemJobs()
	j1 := queueJob(t, jobs, tempPDF(t))
	j2 := queueJob(t, jobs, tempPDF(t))

	w := newTestWorker(jobs, &fakeSource{recs: testRecords()})
	w.ProcessPending(context.Background())

	for _, id := range []uuid.UUID{j1.ID, j2.ID} {
		if s := jobs.jobs[id].Status; s != string(constants.JobStatusCompleted) {
			t.Errorf("job %s = %q, want COMPLETED", id, s)
		}
	}
}

func TestProcessPendingSingleFlight(t *testing.T) {
	jobs := newMemJobs()
	queueJob(t, jobs, tempPDF(t))

	w := newTestWorker(jobs, &fakeSource{recs: testRecords()})
	w.mu.Lock()
	w.ProcessPending(context.Background())
	w.mu.Unlock()

	if jobs.nextCalls != 0 {
		t.Fatalf("overlapping drain polled the queue %d times, want 0", jobs.nextCalls)
	}
}

func TestProcessPendingStopsWhenClaimFails(t *testing.T) {
	jobs := newMemJobs()
	job := queueJob(t, jobs, tempPDF(t))
	jobs.claimErr = errors.New("connection reset")

	w := newTestWorker(jobs, &fakeSource{recs: testRecords()})
	w.ProcessPending(context.Background())

	if jobs.nextCalls != 1 {
		t.Fatalf("queue polled %d times, want 1 (no retry loop on claim failure)", jobs.nextCalls)
	}
	if s := jobs.jobs[job.ID].Status; s != string(constants.JobStatusPending) {
		t.Errorf("status = %q, want PENDING left for the next sweep", s)
	}
}

func TestSweepRunsStaleReset(t *testing.T) {
	jobs := newMemJobs()
	w := newTestWorker(jobs, &fakeSource{})
	w.sweep(context.Background())
	if jobs.resetCalls != 1 {
		t.Fatalf("reset calls = %d, want 1", jobs.resetCalls)
	}
}

func TestJobDefaultsCombineBoothAndAddress(t *testing.T) {
	booth := "Rampur Primary School"
	addr := "Ward 4, Tehsil Sadar"
	d := jobDefaults(&entity.ImportJob{BoothName: &booth, CommonAddress: &addr})

	if d.Village != booth {
		t.Errorf("Village = %q, want booth name", d.Village)
	}
	if want := booth + ", " + addr; d.Area != want {
		t.Errorf("Area = %q, want %q", d.Area, want)
	}

	d = jobDefaults(&entity.ImportJob{CommonAddress: &addr})
	if d.Area != addr {
		t.Errorf("Area without booth = %q, want %q", d.Area, addr)
	}
	if d.Village != "" {
		t.Errorf("Village without booth = %q, want empty", d.Village)
	}
}
