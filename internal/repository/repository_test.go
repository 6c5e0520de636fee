package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/voteraction/voter-ingest/constants"
	"github.com/voteraction/voter-ingest/gen/ent"
	"github.com/voteraction/voter-ingest/internal/entity"
)

// newTestClient opens an in-memory sqlite Ent client with the schema migrated.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:ent?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("schema create: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedAssembly(t *testing.T, client *ent.Client) *entity.Assembly {
	t.Helper()
	a, err := NewAssemblyRepository(client, nil).Create(context.Background(), "Test Sadar", 101, nil)
	if err != nil {
		t.Fatalf("seed assembly: %v", err)
	}
	return a
}

func TestImportJobQueueLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	asm := seedAssembly(t, client)
	repo := NewImportJobRepository(client, nil)

	job1, err := repo.Create(ctx, &entity.ImportJob{
		AssemblyID: asm.ID, FileName: "roll-1.pdf", FilePath: "/uploads/roll-1.pdf",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job1.Status != string(constants.JobStatusPending) || job1.Progress != 0 {
		t.Fatalf("new job = %q/%d, want PENDING/0", job1.Status, job1.Progress)
	}

	time.Sleep(10 * time.Millisecond) // ensure distinct added_at ordering
	job2, err := repo.Create(ctx, &entity.ImportJob{
		AssemblyID: asm.ID, FileName: "roll-2.pdf", FilePath: "/uploads/roll-2.pdf",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	next, err := repo.NextPending(ctx)
	if err != nil {
		t.Fatalf("next pending: %v", err)
	}
	if next == nil || next.ID != job1.ID {
		t.Fatalf("next pending = %v, want oldest job %s", next, job1.ID)
	}

	if err := repo.MarkProcessing(ctx, job1.ID); err != nil {
		t.Fatalf("mark processing: %v", err)
	}
	next, err = repo.NextPending(ctx)
	if err != nil {
		t.Fatalf("next pending: %v", err)
	}
	if next == nil || next.ID != job2.ID {
		t.Fatalf("next pending after claim = %v, want %s", next, job2.ID)
	}

	if err := repo.SetProgress(ctx, job1.ID, 45); err != nil {
		t.Fatalf("set progress: %v", err)
	}
	if err := repo.AppendLog(ctx, job1.ID, "parsed 120 records"); err != nil {
		t.Fatalf("append log: %v", err)
	}
	if err := repo.MarkCompleted(ctx, job1.ID, 120, "Success. Created: 100, Updated: 20."); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	got, err := repo.GetByID(ctx, job1.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != string(constants.JobStatusCompleted) || got.Progress != 100 || got.TotalVoters != 120 {
		t.Errorf("completed job = %q/%d/%d", got.Status, got.Progress, got.TotalVoters)
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not stamped")
	}
	if got.Logs == nil || *got.Logs != "parsed 120 records\nSuccess. Created: 100, Updated: 20." {
		t.Errorf("logs = %v", got.Logs)
	}

	if err := repo.MarkFailed(ctx, job2.ID, "PDF file not found on server"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	got, err = repo.GetByID(ctx, job2.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != string(constants.JobStatusFailed) {
		t.Errorf("status = %q, want FAILED", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "PDF file not found on server" {
		t.Errorf("error_message = %v", got.ErrorMessage)
	}

	if next, err = repo.NextPending(ctx); err != nil || next != nil {
		t.Fatalf("queue not drained: %v %v", next, err)
	}

	jobs, err := repo.List(ctx, ImportJobFilter{AssemblyID: asm.ID, Status: constants.JobStatusFailed})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != job2.ID {
		t.Errorf("filtered list = %v", jobs)
	}
}

func TestResetStaleRequeuesAbandonedJobs(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	asm := seedAssembly(t, client)
	repo := NewImportJobRepository(client, nil)

	job, err := repo.Create(ctx, &entity.ImportJob{
		AssemblyID: asm.ID, FileName: "roll.pdf", FilePath: "/uploads/roll.pdf",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.MarkProcessing(ctx, job.ID); err != nil {
		t.Fatalf("mark processing: %v", err)
	}
	if err := repo.SetProgress(ctx, job.ID, 45); err != nil {
		t.Fatalf("set progress: %v", err)
	}

	// a healthy threshold touches nothing
	n, err := repo.ResetStale(ctx, time.Hour)
	if err != nil || n != 0 {
		t.Fatalf("reset stale = %d, %v; want 0", n, err)
	}

	time.Sleep(10 * time.Millisecond)
	n, err = repo.ResetStale(ctx, time.Millisecond)
	if err != nil {
		t.Fatalf("reset stale: %v", err)
	}
	if n != 1 {
		t.Fatalf("reset stale = %d, want 1", n)
	}
	got, err := repo.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != string(constants.JobStatusPending) || got.Progress != 0 {
		t.Errorf("requeued job = %q/%d, want PENDING/0", got.Status, got.Progress)
	}
}

func TestVoterUpsertAndHousehold(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	asm := seedAssembly(t, client)
	repo := NewVoterRepository(client, nil)

	if v, err := repo.GetByEPIC(ctx, "ABC1234567"); err != nil || v != nil {
		t.Fatalf("missing epic = %v, %v; want nil, nil", v, err)
	}

	v1, err := repo.Create(ctx, &entity.Voter{
		EPIC: "ABC1234567", AssemblyID: asm.ID,
		Name: "Ram Kumar", RelationType: constants.RelationFather,
		Age: 45, Gender: constants.GenderMale,
		HouseNumber: "12", Village: "Rampur",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, &entity.Voter{
		EPIC: "DEF7654321", AssemblyID: asm.ID,
		Name: "Sita Devi", RelationType: constants.RelationHusband,
		Age: 40, Gender: constants.GenderFemale,
		HouseNumber: "12", Village: "Rampur",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	v1.Age = 46
	v1.Name = "Ram Kumar Sharma"
	if _, err := repo.Update(ctx, v1); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetByEPIC(ctx, "ABC1234567")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Age != 46 || got.Name != "Ram Kumar Sharma" {
		t.Errorf("updated voter = %q/%d", got.Name, got.Age)
	}
	if got.ID != v1.ID {
		t.Errorf("update changed identity: %s -> %s", v1.ID, got.ID)
	}

	n, err := repo.CountHousehold(ctx, asm.ID, "Rampur", "12")
	if err != nil || n != 2 {
		t.Fatalf("household count = %d, %v; want 2", n, err)
	}
	if err := repo.SetHouseholdSize(ctx, asm.ID, "Rampur", "12", n); err != nil {
		t.Fatalf("set household size: %v", err)
	}
	voters, err := repo.ListByAssembly(ctx, asm.ID, VoterFilter{Village: "Rampur"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(voters) != 2 {
		t.Fatalf("list = %d voters, want 2", len(voters))
	}
	for _, v := range voters {
		if v.FamilySize != 2 {
			t.Errorf("family_size for %s = %d, want 2", v.EPIC, v.FamilySize)
		}
	}
}
