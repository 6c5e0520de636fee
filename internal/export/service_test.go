package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/voteraction/voter-ingest/internal/entity"
	"github.com/voteraction/voter-ingest/internal/repository"
)

type stubVoters struct {
	rows []*entity.Voter
}

func (s *stubVoters) GetByEPIC(context.Context, string) (*entity.Voter, error) { return nil, nil }
func (s *stubVoters) Create(_ context.Context, v *entity.Voter) (*entity.Voter, error) {
	return v, nil
}
func (s *stubVoters) Update(_ context.Context, v *entity.Voter) (*entity.Voter, error) {
	return v, nil
}
func (s *stubVoters) ListByAssembly(context.Context, uuid.UUID, repository.VoterFilter) ([]*entity.Voter, error) {
	return s.rows, nil
}
func (s *stubVoters) CountHousehold(context.Context, uuid.UUID, string, string) (int, error) {
	return 0, nil
}
func (s *stubVoters) SetHouseholdSize(context.Context, uuid.UUID, string, string, int) error {
	return nil
}

func TestExportVotersXLSX(t *testing.T) {
	voters := &stubVoters{rows: []*entity.Voter{
		{EPIC: "ABC1234567", Name: "Ram Kumar", RelativeName: "Shyam Lal",
			RelationType: "Father", Age: 45, Gender: "M",
			HouseNumber: "12", FamilySize: 2, Village: "Rampur"},
		{EPIC: "DEF7654321", Name: "Sita Devi", RelationType: "Husband",
			Gender: "F", HouseNumber: "12", FamilySize: 2, Village: "Rampur"},
	}}

	data, err := NewService(voters, nil).ExportVotersXLSX(context.Background(), uuid.New(), repository.VoterFilter{})
	if err != nil {
		t.Fatalf("ExportVotersXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	if got, _ := wb.GetCellValue("Voters", "A1"); got != "EPIC" {
		t.Errorf("A1 = %q, want header", got)
	}
	if got, _ := wb.GetCellValue("Voters", "B2"); got != "Ram Kumar" {
		t.Errorf("B2 = %q", got)
	}
	if got, _ := wb.GetCellValue("Voters", "E3"); got != "" {
		t.Errorf("E3 = %q, want empty for unknown age", got)
	}
	if got, _ := wb.GetCellValue("Voters", "H3"); got != "2" {
		t.Errorf("H3 = %q, want family size 2", got)
	}
}
