package export

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/voteraction/voter-ingest/internal/repository"
)

// Service is a tiny façade over the voter repository that produces XLSX bytes for
// exports.
type Service struct {
	voters repository.VoterRepository
	logger *slog.Logger
}

func NewService(voters repository.VoterRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{voters: voters, logger: logger}
}

// ExportVotersXLSX returns an XLSX workbook (as bytes) with the assembly's voters,
// optionally narrowed to one village or booth. Rows come back ordered by village,
// house and name, so households sit together in the sheet.
func (s *Service) ExportVotersXLSX(ctx context.Context, assemblyID uuid.UUID, f repository.VoterFilter) ([]byte, error) {
	start := time.Now()

	voters, err := s.voters.ListByAssembly(ctx, assemblyID, f)
	if err != nil {
		return nil, fmt.Errorf("query voters: %w", err)
	}

	wb := excelize.NewFile()
	const sheet = "Voters"
	if index, _ := wb.GetSheetIndex(sheet); index == -1 {
		if _, err := wb.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := wb.GetSheetIndex(sheet)
	wb.SetActiveSheet(activeIndex)

	headers := []string{
		"EPIC",
		"Name",
		"Guardian",
		"Relation",
		"Age",
		"Gender",
		"House No",
		"Family Size",
		"Village",
		"Area",
		"Booth",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = wb.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, v := range voters {
		write := func(col int, val any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = wb.SetCellValue(sheet, cell, val)
		}

		write(1, v.EPIC)
		write(2, v.Name)
		write(3, v.RelativeName)
		write(4, v.RelationType)
		if v.Age > 0 {
			write(5, v.Age)
		} else {
			write(5, "")
		}
		write(6, v.Gender)
		write(7, v.HouseNumber)
		write(8, v.FamilySize)
		write(9, v.Village)
		write(10, v.Area)
		if v.BoothNumber > 0 {
			write(11, strconv.Itoa(v.BoothNumber))
		} else {
			write(11, "")
		}
		row++
	}

	_ = wb.SetColWidth(sheet, "A", "A", 14) // epic
	_ = wb.SetColWidth(sheet, "B", "C", 26) // names
	_ = wb.SetColWidth(sheet, "D", "F", 10)
	_ = wb.SetColWidth(sheet, "G", "H", 12)
	_ = wb.SetColWidth(sheet, "I", "J", 24) // village/area

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"assembly_id", assemblyID.String(),
		"rows", len(voters),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
