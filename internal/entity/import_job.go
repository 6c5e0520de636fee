package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportJob represents an import job for data transfer between layers.
type ImportJob struct {
	ID            uuid.UUID  `json:"id"`
	AssemblyID    uuid.UUID  `json:"assembly_id"`
	FileName      string     `json:"file_name"`
	FilePath      string     `json:"file_path"`
	BoothNumber   *int       `json:"booth_number,omitempty"`
	BoothName     *string    `json:"booth_name,omitempty"`
	CommonAddress *string    `json:"common_address,omitempty"`
	ExpectedCount *int       `json:"expected_count,omitempty"`
	StartPage     *int       `json:"start_page,omitempty"`
	EndPage       *int       `json:"end_page,omitempty"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	TotalVoters   int        `json:"total_voters"`
	Logs          *string    `json:"logs,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	AddedAt       time.Time  `json:"added_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}
