package importer

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/voteraction/voter-ingest/constants"
	"github.com/voteraction/voter-ingest/internal/entity"
	"github.com/voteraction/voter-ingest/internal/parser"
	"github.com/voteraction/voter-ingest/internal/repository"
)

// memVoters is an in-memory VoterRepository keyed by EPIC.
type memVoters struct {
	byEpic map[string]*entity.Voter
}

func newMemVoters() *memVoters {
	return &memVoters{byEpic: make(map[string]*entity.Voter)}
}

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
	out := make([]*entity.Voter, 0, len(m.byEpic))
	for _, v := range m.byEpic {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
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

func age(n int) *int { return &n }

func rec(epic, name, house string) parser.Record {
	return parser.Record{
		EPIC: epic, Name: name,
		RelationType: constants.RelationFather,
		Gender:       constants.GenderMale,
		HouseNumber:  house,
		Village:      "Rampur",
	}
}

func TestImportBatchUpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemVoters()
	im := New(store, nil)
	opt := Options{AssemblyID: uuid.New(), JobID: uuid.New()}

	batch := []parser.Record{
		rec("ABC1234567", "Ram Kumar", "12"),
		rec("DEF7654321", "Sita Devi", "12"),
	}
	res, err := im.ImportBatch(ctx, batch, opt)
	if err != nil {
		t.Fatalf("ImportBatch: %v", err)
	}
	if res.Created != 2 || res.Updated != 0 || res.Skipped != 0 {
		t.Fatalf("first pass = %+v, want 2 created", res)
	}

	res, err = im.ImportBatch(ctx, batch, opt)
	if err != nil {
		t.Fatalf("ImportBatch: %v", err)
	}
	if res.Created != 0 || res.Updated != 2 {
		t.Fatalf("second pass = %+v, want 2 updated", res)
	}
	if len(store.byEpic) != 2 {
		t.Errorf("store holds %d voters, want 2", len(store.byEpic))
	}
}

func TestImportBatchSkipsNoiseAndDuplicates(t *testing.T) {
	ctx := context.Background()
	im := New(newMemVoters(), nil)

	batch := []parser.Record{
		rec("ABC1234567", "Ram Kumar", "12"),
		rec("ABC1234567", "Ram Kumar Again", "12"), // same identifier inside one batch
		rec("AB12", "Ghost", "9"),                  // too short to be real
	}
	res, err := im.ImportBatch(ctx, batch, Options{AssemblyID: uuid.New()})
	if err != nil {
		t.Fatalf("ImportBatch: %v", err)
	}
	if res.Created != 1 || res.Skipped != 2 {
		t.Fatalf("result = %+v, want 1 created 2 skipped", res)
	}
}

func TestImportBatchMergeKeepsKnownValues(t *testing.T) {
	ctx := context.Background()
	store := newMemVoters()
	im := New(store, nil)
	opt := Options{AssemblyID: uuid.New()}

	first := rec("ABC1234567", "Ram Kumar", "12")
	first.Age = age(45)
	if _, err := im.ImportBatch(ctx, []parser.Record{first}, opt); err != nil {
		t.Fatal(err)
	}

	// a later OCR pass lost the name and age
	second := rec("ABC1234567", constants.UnknownName, "")
	res, err := im.ImportBatch(ctx, []parser.Record{second}, opt)
	if err != nil {
		t.Fatal(err)
	}
	if res.Updated != 1 {
		t.Fatalf("result = %+v, want 1 updated", res)
	}
	got := store.byEpic["ABC1234567"]
	if got.Name != "Ram Kumar" {
		t.Errorf("name = %q, placeholder clobbered the stored value", got.Name)
	}
	if got.Age != 45 {
		t.Errorf("age = %d, want 45 kept", got.Age)
	}
	if got.HouseNumber != "12" {
		t.Errorf("house = %q, want 12 kept", got.HouseNumber)
	}
}

func TestSyncHouseholdsRecomputesFamilySize(t *testing.T) {
	ctx := context.Background()
	store := newMemVoters()
	im := New(store, nil)
	asm := uuid.New()
	opt := Options{AssemblyID: asm}

	res, err := im.ImportBatch(ctx, []parser.Record{
		rec("ABC1234567", "Ram Kumar", "12"),
		rec("DEF7654321", "Sita Devi", "12"),
	}, opt)
	if err != nil {
		t.Fatal(err)
	}
	if err := im.SyncHouseholds(ctx, asm, res.Houses); err != nil {
		t.Fatal(err)
	}
	if got := store.byEpic["ABC1234567"].FamilySize; got != 2 {
		t.Fatalf("family_size = %d, want 2", got)
	}

	// a third member arrives in a later roll
	res, err = im.ImportBatch(ctx, []parser.Record{
		rec("GHI1112223", "Mohan Lal", "12"),
	}, opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Houses) != 1 {
		t.Fatalf("touched houses = %d, want 1", len(res.Houses))
	}
	if err := im.SyncHouseholds(ctx, asm, res.Houses); err != nil {
		t.Fatal(err)
	}
	for _, epic := range []string{"ABC1234567", "DEF7654321", "GHI1112223"} {
		if got := store.byEpic[epic].FamilySize; got != 3 {
			t.Errorf("family_size for %s = %d, want 3", epic, got)
		}
	}
}

func TestImportBatchReportsProgress(t *testing.T) {
	ctx := context.Background()
	var last, total int
	opt := Options{
		AssemblyID: uuid.New(),
		Progress:   func(d, t int) { last, total = d, t },
	}
	_, err := New(newMemVoters(), nil).ImportBatch(ctx, []parser.Record{
		rec("ABC1234567", "Ram Kumar", "12"),
		rec("DEF7654321", "Sita Devi", "14"),
	}, opt)
	if err != nil {
		t.Fatal(err)
	}
	if last != 2 || total != 2 {
		t.Errorf("progress = %d/%d, want 2/2", last, total)
	}
}
