// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/gen/ent/assembly"
	"github.com/voteraction/voter-ingest/gen/ent/importjob"
	"github.com/voteraction/voter-ingest/gen/ent/voter"
)

// ImportJobCreate is the builder for creating a ImportJob entity.
type ImportJobCreate struct {
	config
	mutation *ImportJobMutation
	hooks    []Hook
}

// SetAssemblyID sets the "assembly_id" field.
func (_c *ImportJobCreate) SetAssemblyID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetAssemblyID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ImportJobCreate) SetFileName(v string) *ImportJobCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ImportJobCreate) SetFilePath(v string) *ImportJobCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetBoothNumber sets the "booth_number" field.
func (_c *ImportJobCreate) SetBoothNumber(v int) *ImportJobCreate {
	_c.mutation.SetBoothNumber(v)
	return _c
}

// SetNillableBoothNumber sets the "booth_number" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableBoothNumber(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetBoothNumber(*v)
	}
	return _c
}

// SetBoothName sets the "booth_name" field.
func (_c *ImportJobCreate) SetBoothName(v string) *ImportJobCreate {
	_c.mutation.SetBoothName(v)
	return _c
}

// SetNillableBoothName sets the "booth_name" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableBoothName(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetBoothName(*v)
	}
	return _c
}

// SetCommonAddress sets the "common_address" field.
func (_c *ImportJobCreate) SetCommonAddress(v string) *ImportJobCreate {
	_c.mutation.SetCommonAddress(v)
	return _c
}

// SetNillableCommonAddress sets the "common_address" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableCommonAddress(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetCommonAddress(*v)
	}
	return _c
}

// SetExpectedCount sets the "expected_count" field.
func (_c *ImportJobCreate) SetExpectedCount(v int) *ImportJobCreate {
	_c.mutation.SetExpectedCount(v)
	return _c
}

// SetNillableExpectedCount sets the "expected_count" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableExpectedCount(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetExpectedCount(*v)
	}
	return _c
}

// SetStartPage sets the "start_page" field.
func (_c *ImportJobCreate) SetStartPage(v int) *ImportJobCreate {
	_c.mutation.SetStartPage(v)
	return _c
}

// SetNillableStartPage sets the "start_page" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStartPage(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetStartPage(*v)
	}
	return _c
}

// SetEndPage sets the "end_page" field.
func (_c *ImportJobCreate) SetEndPage(v int) *ImportJobCreate {
	_c.mutation.SetEndPage(v)
	return _c
}

// SetNillableEndPage sets the "end_page" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableEndPage(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetEndPage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportJobCreate) SetStatus(v string) *ImportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStatus(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *ImportJobCreate) SetProgress(v int) *ImportJobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableProgress(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetTotalVoters sets the "total_voters" field.
func (_c *ImportJobCreate) SetTotalVoters(v int) *ImportJobCreate {
	_c.mutation.SetTotalVoters(v)
	return _c
}

// SetNillableTotalVoters sets the "total_voters" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableTotalVoters(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetTotalVoters(*v)
	}
	return _c
}

// SetLogs sets the "logs" field.
func (_c *ImportJobCreate) SetLogs(v string) *ImportJobCreate {
	_c.mutation.SetLogs(v)
	return _c
}

// SetNillableLogs sets the "logs" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableLogs(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetLogs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportJobCreate) SetErrorMessage(v string) *ImportJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableErrorMessage(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAddedAt sets the "added_at" field.
func (_c *ImportJobCreate) SetAddedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetAddedAt(v)
	return _c
}

// SetNillableAddedAt sets the "added_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableAddedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetAddedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ImportJobCreate) SetUpdatedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableUpdatedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ImportJobCreate) SetCompletedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableCompletedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportJobCreate) SetID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableID(v *uuid.UUID) *ImportJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAssembly sets the "assembly" edge to the Assembly entity.
func (_c *ImportJobCreate) SetAssembly(v *Assembly) *ImportJobCreate {
	return _c.SetAssemblyID(v.ID)
}

// AddVoterIDs adds the "voters" edge to the Voter entity by IDs.
func (_c *ImportJobCreate) AddVoterIDs(ids ...uuid.UUID) *ImportJobCreate {
	_c.mutation.AddVoterIDs(ids...)
	return _c
}

// AddVoters adds the "voters" edges to the Voter entity.
func (_c *ImportJobCreate) AddVoters(v ...*Voter) *ImportJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVoterIDs(ids...)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_c *ImportJobCreate) Mutation() *ImportJobMutation {
	return _c.mutation
}

// Save creates the ImportJob in the database.
func (_c *ImportJobCreate) Save(ctx context.Context) (*ImportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportJobCreate) SaveX(ctx context.Context) *ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := importjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := importjob.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.TotalVoters(); !ok {
		v := importjob.DefaultTotalVoters
		_c.mutation.SetTotalVoters(v)
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		v := importjob.DefaultAddedAt()
		_c.mutation.SetAddedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := importjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportJobCreate) check() error {
	if _, ok := _c.mutation.AssemblyID(); !ok {
		return &ValidationError{Name: "assembly_id", err: errors.New(`ent: missing required field "ImportJob.assembly_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ImportJob.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := importjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "ImportJob.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := importjob.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "ImportJob.progress"`)}
	}
	if _, ok := _c.mutation.TotalVoters(); !ok {
		return &ValidationError{Name: "total_voters", err: errors.New(`ent: missing required field "ImportJob.total_voters"`)}
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		return &ValidationError{Name: "added_at", err: errors.New(`ent: missing required field "ImportJob.added_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ImportJob.updated_at"`)}
	}
	if len(_c.mutation.AssemblyIDs()) == 0 {
		return &ValidationError{Name: "assembly", err: errors.New(`ent: missing required edge "ImportJob.assembly"`)}
	}
	return nil
}

func (_c *ImportJobCreate) sqlSave(ctx context.Context) (*ImportJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportJobCreate) createSpec() (*ImportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importjob.Table, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(importjob.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(importjob.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.BoothNumber(); ok {
		_spec.SetField(importjob.FieldBoothNumber, field.TypeInt, value)
		_node.BoothNumber = &value
	}
	if value, ok := _c.mutation.BoothName(); ok {
		_spec.SetField(importjob.FieldBoothName, field.TypeString, value)
		_node.BoothName = &value
	}
	if value, ok := _c.mutation.CommonAddress(); ok {
		_spec.SetField(importjob.FieldCommonAddress, field.TypeString, value)
		_node.CommonAddress = &value
	}
	if value, ok := _c.mutation.ExpectedCount(); ok {
		_spec.SetField(importjob.FieldExpectedCount, field.TypeInt, value)
		_node.ExpectedCount = &value
	}
	if value, ok := _c.mutation.StartPage(); ok {
		_spec.SetField(importjob.FieldStartPage, field.TypeInt, value)
		_node.StartPage = &value
	}
	if value, ok := _c.mutation.EndPage(); ok {
		_spec.SetField(importjob.FieldEndPage, field.TypeInt, value)
		_node.EndPage = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(importjob.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.TotalVoters(); ok {
		_spec.SetField(importjob.FieldTotalVoters, field.TypeInt, value)
		_node.TotalVoters = value
	}
	if value, ok := _c.mutation.Logs(); ok {
		_spec.SetField(importjob.FieldLogs, field.TypeString, value)
		_node.Logs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.AddedAt(); ok {
		_spec.SetField(importjob.FieldAddedAt, field.TypeTime, value)
		_node.AddedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(importjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(importjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.AssemblyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importjob.AssemblyTable,
			Columns: []string{importjob.AssemblyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assembly.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssemblyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VotersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importjob.VotersTable,
			Columns: []string{importjob.VotersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(voter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ImportJobCreateBulk is the builder for creating many ImportJob entities in bulk.
type ImportJobCreateBulk struct {
	config
	err      error
	builders []*ImportJobCreate
}

// Save creates the ImportJob entities in the database.
func (_c *ImportJobCreateBulk) Save(ctx context.Context) ([]*ImportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ImportJobCreateBulk) SaveX(ctx context.Context) []*ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
