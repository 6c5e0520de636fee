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

// AssemblyCreate is the builder for creating a Assembly entity.
type AssemblyCreate struct {
	config
	mutation *AssemblyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AssemblyCreate) SetName(v string) *AssemblyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNumber sets the "number" field.
func (_c *AssemblyCreate) SetNumber(v int) *AssemblyCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_c *AssemblyCreate) SetNillableNumber(v *int) *AssemblyCreate {
	if v != nil {
		_c.SetNumber(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *AssemblyCreate) SetState(v string) *AssemblyCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AssemblyCreate) SetNillableState(v *string) *AssemblyCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssemblyCreate) SetCreatedAt(v time.Time) *AssemblyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssemblyCreate) SetNillableCreatedAt(v *time.Time) *AssemblyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssemblyCreate) SetID(v uuid.UUID) *AssemblyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AssemblyCreate) SetNillableID(v *uuid.UUID) *AssemblyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVoterIDs adds the "voters" edge to the Voter entity by IDs.
func (_c *AssemblyCreate) AddVoterIDs(ids ...uuid.UUID) *AssemblyCreate {
	_c.mutation.AddVoterIDs(ids...)
	return _c
}

// AddVoters adds the "voters" edges to the Voter entity.
func (_c *AssemblyCreate) AddVoters(v ...*Voter) *AssemblyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVoterIDs(ids...)
}

// AddImportJobIDs adds the "import_jobs" edge to the ImportJob entity by IDs.
func (_c *AssemblyCreate) AddImportJobIDs(ids ...uuid.UUID) *AssemblyCreate {
	_c.mutation.AddImportJobIDs(ids...)
	return _c
}

// AddImportJobs adds the "import_jobs" edges to the ImportJob entity.
func (_c *AssemblyCreate) AddImportJobs(v ...*ImportJob) *AssemblyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImportJobIDs(ids...)
}

// Mutation returns the AssemblyMutation object of the builder.
func (_c *AssemblyCreate) Mutation() *AssemblyMutation {
	return _c.mutation
}

// Save creates the Assembly in the database.
func (_c *AssemblyCreate) Save(ctx context.Context) (*Assembly, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssemblyCreate) SaveX(ctx context.Context) *Assembly {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssemblyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssemblyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssemblyCreate) defaults() {
	if _, ok := _c.mutation.Number(); !ok {
		v := assembly.DefaultNumber
		_c.mutation.SetNumber(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assembly.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := assembly.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssemblyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Assembly.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := assembly.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Assembly.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "Assembly.number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assembly.created_at"`)}
	}
	return nil
}

func (_c *AssemblyCreate) sqlSave(ctx context.Context) (*Assembly, error) {
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

func (_c *AssemblyCreate) createSpec() (*Assembly, *sqlgraph.CreateSpec) {
	var (
		_node = &Assembly{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assembly.Table, sqlgraph.NewFieldSpec(assembly.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(assembly.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(assembly.FieldNumber, field.TypeInt, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(assembly.FieldState, field.TypeString, value)
		_node.State = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assembly.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.VotersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assembly.VotersTable,
			Columns: []string{assembly.VotersColumn},
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
	if nodes := _c.mutation.ImportJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assembly.ImportJobsTable,
			Columns: []string{assembly.ImportJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssemblyCreateBulk is the builder for creating many Assembly entities in bulk.
type AssemblyCreateBulk struct {
	config
	err      error
	builders []*AssemblyCreate
}

// Save creates the Assembly entities in the database.
func (_c *AssemblyCreateBulk) Save(ctx context.Context) ([]*Assembly, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assembly, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssemblyMutation)
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
func (_c *AssemblyCreateBulk) SaveX(ctx context.Context) []*Assembly {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssemblyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssemblyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
