package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voteraction/voter-ingest/gen/ent"
	"github.com/voteraction/voter-ingest/gen/ent/assembly"
	"github.com/voteraction/voter-ingest/internal/entity"
)

type AssemblyRepository interface {
	Create(ctx context.Context, name string, number int, state *string) (*entity.Assembly, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Assembly, error)
	GetByNumber(ctx context.Context, number int) (*entity.Assembly, error)
	List(ctx context.Context) ([]*entity.Assembly, error)
}

type assemblyRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAssemblyRepository(entc *ent.Client, log *slog.Logger) AssemblyRepository {
	if log == nil {
		log = slog.Default()
	}
	return &assemblyRepo{ent: entc, log: log}
}

func (r *assemblyRepo) Create(ctx context.Context, name string, number int, state *string) (*entity.Assembly, error) {
	create := r.ent.Assembly.Create().
		SetName(name).
		SetNumber(number).
		SetNillableState(state)
	a, err := create.Save(ctx)
	if err != nil {
		r.log.Error("assembly create failed", "name", name, "number", number, "err", err)
		return nil, err
	}
	r.log.Info("assembly created", "assembly_id", a.ID, "name", name, "number", number)
	return toAssembly(a), nil
}

func (r *assemblyRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Assembly, error) {
	a, err := r.ent.Assembly.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toAssembly(a), nil
}

func (r *assemblyRepo) GetByNumber(ctx context.Context, number int) (*entity.Assembly, error) {
	a, err := r.ent.Assembly.Query().
		Where(assembly.NumberEQ(number)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toAssembly(a), nil
}

func (r *assemblyRepo) List(ctx context.Context) ([]*entity.Assembly, error) {
	rows, err := r.ent.Assembly.Query().
		Order(ent.Asc(assembly.FieldNumber)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Assembly, 0, len(rows))
	for _, a := range rows {
		out = append(out, toAssembly(a))
	}
	return out, nil
}

func toAssembly(a *ent.Assembly) *entity.Assembly {
	return &entity.Assembly{
		ID:     a.ID,
		Name:   a.Name,
		Number: a.Number,
		State:  a.State,
	}
}
