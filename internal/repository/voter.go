package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voteraction/voter-ingest/gen/ent"
	"github.com/voteraction/voter-ingest/gen/ent/voter"
	"github.com/voteraction/voter-ingest/internal/entity"
)

// VoterFilter narrows ListByAssembly; zero values mean no constraint.
type VoterFilter struct {
	Village     string
	BoothNumber int
}

type VoterRepository interface {
	// GetByEPIC returns nil when no voter carries the identifier.
	GetByEPIC(ctx context.Context, epic string) (*entity.Voter, error)
	Create(ctx context.Context, v *entity.Voter) (*entity.Voter, error)
	Update(ctx context.Context, v *entity.Voter) (*entity.Voter, error)
	ListByAssembly(ctx context.Context, assemblyID uuid.UUID, f VoterFilter) ([]*entity.Voter, error)

	// CountHousehold counts voters sharing an (assembly, village, house) key.
	CountHousehold(ctx context.Context, assemblyID uuid.UUID, village, houseNumber string) (int, error)
	// SetHouseholdSize stamps family_size on every member of the household.
	SetHouseholdSize(ctx context.Context, assemblyID uuid.UUID, village, houseNumber string, size int) error
}

type voterRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewVoterRepository(entc *ent.Client, log *slog.Logger) VoterRepository {
	if log == nil {
		log = slog.Default()
	}
	return &voterRepo{ent: entc, log: log}
}

func (r *voterRepo) GetByEPIC(ctx context.Context, epic string) (*entity.Voter, error) {
	row, err := r.ent.Voter.Query().
		Where(voter.EpicEQ(epic)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toVoter(row), nil
}

func (r *voterRepo) Create(ctx context.Context, v *entity.Voter) (*entity.Voter, error) {
	row, err := r.ent.Voter.Create().
		SetEpic(v.EPIC).
		SetAssemblyID(v.AssemblyID).
		SetNillableImportJobID(v.ImportJobID).
		SetName(v.Name).
		SetRelativeName(v.RelativeName).
		SetRelationType(v.RelationType).
		SetAge(v.Age).
		SetGender(v.Gender).
		SetHouseNumber(v.HouseNumber).
		SetBoothNumber(v.BoothNumber).
		SetVillage(v.Village).
		SetArea(v.Area).
		Save(ctx)
	if err != nil {
		r.log.Error("voter create failed", "epic", v.EPIC, "err", err)
		return nil, err
	}
	return toVoter(row), nil
}

func (r *voterRepo) Update(ctx context.Context, v *entity.Voter) (*entity.Voter, error) {
	row, err := r.ent.Voter.UpdateOneID(v.ID).
		SetNillableImportJobID(v.ImportJobID).
		SetName(v.Name).
		SetRelativeName(v.RelativeName).
		SetRelationType(v.RelationType).
		SetAge(v.Age).
		SetGender(v.Gender).
		SetHouseNumber(v.HouseNumber).
		SetBoothNumber(v.BoothNumber).
		SetVillage(v.Village).
		SetArea(v.Area).
		Save(ctx)
	if err != nil {
		r.log.Error("voter update failed", "epic", v.EPIC, "err", err)
		return nil, err
	}
	return toVoter(row), nil
}

func (r *voterRepo) ListByAssembly(ctx context.Context, assemblyID uuid.UUID, f VoterFilter) ([]*entity.Voter, error) {
	q := r.ent.Voter.Query().
		Where(voter.AssemblyIDEQ(assemblyID))
	if f.Village != "" {
		q = q.Where(voter.VillageEQ(f.Village))
	}
	if f.BoothNumber > 0 {
		q = q.Where(voter.BoothNumberEQ(f.BoothNumber))
	}
	rows, err := q.Order(
		ent.Asc(voter.FieldVillage),
		ent.Asc(voter.FieldHouseNumber),
		ent.Asc(voter.FieldName),
	).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Voter, 0, len(rows))
	for _, row := range rows {
		out = append(out, toVoter(row))
	}
	return out, nil
}

func (r *voterRepo) CountHousehold(ctx context.Context, assemblyID uuid.UUID, village, houseNumber string) (int, error) {
	return r.ent.Voter.Query().
		Where(
			voter.AssemblyIDEQ(assemblyID),
			voter.VillageEQ(village),
			voter.HouseNumberEQ(houseNumber),
		).
		Count(ctx)
}

func (r *voterRepo) SetHouseholdSize(ctx context.Context, assemblyID uuid.UUID, village, houseNumber string, size int) error {
	_, err := r.ent.Voter.Update().
		Where(
			voter.AssemblyIDEQ(assemblyID),
			voter.VillageEQ(village),
			voter.HouseNumberEQ(houseNumber),
		).
		SetFamilySize(size).
		Save(ctx)
	if err != nil {
		r.log.Error("household size update failed",
			"village", village, "house", houseNumber, "err", err)
	}
	return err
}

func toVoter(row *ent.Voter) *entity.Voter {
	return &entity.Voter{
		ID:           row.ID,
		EPIC:         row.Epic,
		AssemblyID:   row.AssemblyID,
		ImportJobID:  row.ImportJobID,
		Name:         row.Name,
		RelativeName: row.RelativeName,
		RelationType: row.RelationType,
		Age:          row.Age,
		Gender:       row.Gender,
		HouseNumber:  row.HouseNumber,
		BoothNumber:  row.BoothNumber,
		Village:      row.Village,
		Area:         row.Area,
		FamilySize:   row.FamilySize,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
