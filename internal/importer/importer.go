// Package importer persists parsed roll records. The EPIC string is the sole
// identity: a record whose identifier already exists updates that voter in place,
// anything else inserts. Touched households are collected so family sizes can be
// recomputed once per house after the batch.
package importer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voteraction/voter-ingest/constants"
	"github.com/voteraction/voter-ingest/internal/entity"
	"github.com/voteraction/voter-ingest/internal/parser"
	"github.com/voteraction/voter-ingest/internal/repository"
)

// HouseKey identifies one household within an assembly.
type HouseKey struct {
	Village string
	House   string
}

// Result summarizes a batch import.
type Result struct {
	Created int
	Updated int
	Skipped int
	Houses  map[HouseKey]struct{}
}

// Total is the number of voters written.
func (r Result) Total() int { return r.Created + r.Updated }

// Options carry job-level context stamped onto every imported voter.
type Options struct {
	AssemblyID  uuid.UUID
	JobID       uuid.UUID
	BoothNumber int

	// Progress, when set, is called after each record with (done, total).
	Progress func(done, total int)
}

type Importer struct {
	voters repository.VoterRepository
	log    *slog.Logger
}

func New(voters repository.VoterRepository, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{voters: voters, log: logger}
}

// ImportBatch upserts the records one by one. A record-level failure skips that
// record and continues; only context cancellation aborts the batch.
func (im *Importer) ImportBatch(ctx context.Context, recs []parser.Record, opt Options) (Result, error) {
	res := Result{Houses: make(map[HouseKey]struct{})}
	seen := make(map[string]struct{}, len(recs))
	total := len(recs)

	for i, rec := range recs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if len(rec.EPIC) < parser.MinEPICLength {
			res.Skipped++
			continue
		}
		if _, dup := seen[rec.EPIC]; dup {
			res.Skipped++
			continue
		}
		seen[rec.EPIC] = struct{}{}

		existing, err := im.voters.GetByEPIC(ctx, rec.EPIC)
		if err != nil {
			im.log.Error("voter lookup failed", "epic", rec.EPIC, "err", err)
			res.Skipped++
			continue
		}

		if existing == nil {
			if _, err := im.voters.Create(ctx, im.fromRecord(rec, opt)); err != nil {
				res.Skipped++
				continue
			}
			res.Created++
		} else {
			merge(existing, rec, opt)
			if _, err := im.voters.Update(ctx, existing); err != nil {
				res.Skipped++
				continue
			}
			res.Updated++
		}

		if rec.HouseNumber != "" {
			res.Houses[HouseKey{Village: rec.Village, House: rec.HouseNumber}] = struct{}{}
		}
		if opt.Progress != nil {
			opt.Progress(i+1, total)
		}
	}

	im.log.Info("batch imported",
		"created", res.Created, "updated", res.Updated, "skipped", res.Skipped,
		"households", len(res.Houses))
	return res, nil
}

// SyncHouseholds recomputes family_size for every touched household. Each house is
// counted once regardless of how many of its members the batch carried.
func (im *Importer) SyncHouseholds(ctx context.Context, assemblyID uuid.UUID, houses map[HouseKey]struct{}) error {
	var lastErr error
	for key := range houses {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := im.voters.CountHousehold(ctx, assemblyID, key.Village, key.House)
		if err != nil {
			lastErr = err
			continue
		}
		if err := im.voters.SetHouseholdSize(ctx, assemblyID, key.Village, key.House, n); err != nil {
			lastErr = err
		}
	}
	if lastErr != nil {
		im.log.Error("household sync incomplete", "err", lastErr)
	}
	return lastErr
}

func (im *Importer) fromRecord(rec parser.Record, opt Options) *entity.Voter {
	v := &entity.Voter{
		EPIC:         rec.EPIC,
		AssemblyID:   opt.AssemblyID,
		Name:         rec.Name,
		RelativeName: rec.RelativeName,
		RelationType: rec.RelationType,
		Gender:       rec.Gender,
		HouseNumber:  rec.HouseNumber,
		Village:      rec.Village,
		Area:         rec.Area,
		BoothNumber:  opt.BoothNumber,
	}
	if opt.JobID != uuid.Nil {
		id := opt.JobID
		v.ImportJobID = &id
	}
	if v.Name == "" {
		v.Name = constants.UnknownName
	}
	if v.RelationType == "" {
		v.RelationType = constants.RelationFather
	}
	if v.Gender == "" {
		v.Gender = constants.GenderMale
	}
	if rec.Age != nil {
		v.Age = *rec.Age
	}
	if rec.BoothNumber != nil {
		v.BoothNumber = *rec.BoothNumber
	}
	return v
}

// merge folds a re-imported record into the stored voter. Incoming values win only
// when they carry information; a placeholder never clobbers a real value.
func merge(v *entity.Voter, rec parser.Record, opt Options) {
	if rec.Name != "" && rec.Name != constants.UnknownName {
		v.Name = rec.Name
	}
	if rec.RelativeName != "" {
		v.RelativeName = rec.RelativeName
	}
	if rec.RelationType != "" {
		v.RelationType = rec.RelationType
	}
	if rec.Age != nil {
		v.Age = *rec.Age
	}
	if rec.Gender != "" {
		v.Gender = rec.Gender
	}
	if rec.HouseNumber != "" {
		v.HouseNumber = rec.HouseNumber
	}
	if rec.Village != "" {
		v.Village = rec.Village
	}
	if rec.Area != "" {
		v.Area = rec.Area
	}
	if rec.BoothNumber != nil {
		v.BoothNumber = *rec.BoothNumber
	} else if opt.BoothNumber > 0 {
		v.BoothNumber = opt.BoothNumber
	}
	if opt.JobID != uuid.Nil {
		id := opt.JobID
		v.ImportJobID = &id
	}
}
