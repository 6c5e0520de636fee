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

// VoterCreate is the builder for creating a Voter entity.
type VoterCreate struct {
	config
	mutation *VoterMutation
	hooks    []Hook
}

// SetEpic sets the "epic" field.
func (_c *VoterCreate) SetEpic(v string) *VoterCreate {
	_c.mutation.SetEpic(v)
	return _c
}

// SetAssemblyID sets the "assembly_id" field.
func (_c *VoterCreate) SetAssemblyID(v uuid.UUID) *VoterCreate {
	_c.mutation.SetAssemblyID(v)
	return _c
}

// SetImportJobID sets the "import_job_id" field.
func (_c *VoterCreate) SetImportJobID(v uuid.UUID) *VoterCreate {
	_c.mutation.SetImportJobID(v)
	return _c
}

// SetNillableImportJobID sets the "import_job_id" field if the given value is not nil.
func (_c *VoterCreate) SetNillableImportJobID(v *uuid.UUID) *VoterCreate {
	if v != nil {
		_c.SetImportJobID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *VoterCreate) SetName(v string) *VoterCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *VoterCreate) SetNillableName(v *string) *VoterCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetRelativeName sets the "relative_name" field.
func (_c *VoterCreate) SetRelativeName(v string) *VoterCreate {
	_c.mutation.SetRelativeName(v)
	return _c
}

// SetNillableRelativeName sets the "relative_name" field if the given value is not nil.
func (_c *VoterCreate) SetNillableRelativeName(v *string) *VoterCreate {
	if v != nil {
		_c.SetRelativeName(*v)
	}
	return _c
}

// SetRelationType sets the "relation_type" field.
func (_c *VoterCreate) SetRelationType(v string) *VoterCreate {
	_c.mutation.SetRelationType(v)
	return _c
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_c *VoterCreate) SetNillableRelationType(v *string) *VoterCreate {
	if v != nil {
		_c.SetRelationType(*v)
	}
	return _c
}

// SetAge sets the "age" field.
func (_c *VoterCreate) SetAge(v int) *VoterCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_c *VoterCreate) SetNillableAge(v *int) *VoterCreate {
	if v != nil {
		_c.SetAge(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *VoterCreate) SetGender(v string) *VoterCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *VoterCreate) SetNillableGender(v *string) *VoterCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetHouseNumber sets the "house_number" field.
func (_c *VoterCreate) SetHouseNumber(v string) *VoterCreate {
	_c.mutation.SetHouseNumber(v)
	return _c
}

// SetNillableHouseNumber sets the "house_number" field if the given value is not nil.
func (_c *VoterCreate) SetNillableHouseNumber(v *string) *VoterCreate {
	if v != nil {
		_c.SetHouseNumber(*v)
	}
	return _c
}

// SetBoothNumber sets the "booth_number" field.
func (_c *VoterCreate) SetBoothNumber(v int) *VoterCreate {
	_c.mutation.SetBoothNumber(v)
	return _c
}

// SetNillableBoothNumber sets the "booth_number" field if the given value is not nil.
func (_c *VoterCreate) SetNillableBoothNumber(v *int) *VoterCreate {
	if v != nil {
		_c.SetBoothNumber(*v)
	}
	return _c
}

// SetVillage sets the "village" field.
func (_c *VoterCreate) SetVillage(v string) *VoterCreate {
	_c.mutation.SetVillage(v)
	return _c
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_c *VoterCreate) SetNillableVillage(v *string) *VoterCreate {
	if v != nil {
		_c.SetVillage(*v)
	}
	return _c
}

// SetArea sets the "area" field.
func (_c *VoterCreate) SetArea(v string) *VoterCreate {
	_c.mutation.SetArea(v)
	return _c
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_c *VoterCreate) SetNillableArea(v *string) *VoterCreate {
	if v != nil {
		_c.SetArea(*v)
	}
	return _c
}

// SetFamilySize sets the "family_size" field.
func (_c *VoterCreate) SetFamilySize(v int) *VoterCreate {
	_c.mutation.SetFamilySize(v)
	return _c
}

// SetNillableFamilySize sets the "family_size" field if the given value is not nil.
func (_c *VoterCreate) SetNillableFamilySize(v *int) *VoterCreate {
	if v != nil {
		_c.SetFamilySize(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VoterCreate) SetCreatedAt(v time.Time) *VoterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VoterCreate) SetNillableCreatedAt(v *time.Time) *VoterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VoterCreate) SetUpdatedAt(v time.Time) *VoterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VoterCreate) SetNillableUpdatedAt(v *time.Time) *VoterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VoterCreate) SetID(v uuid.UUID) *VoterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VoterCreate) SetNillableID(v *uuid.UUID) *VoterCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAssembly sets the "assembly" edge to the Assembly entity.
func (_c *VoterCreate) SetAssembly(v *Assembly) *VoterCreate {
	return _c.SetAssemblyID(v.ID)
}

// SetImportJob sets the "import_job" edge to the ImportJob entity.
func (_c *VoterCreate) SetImportJob(v *ImportJob) *VoterCreate {
	return _c.SetImportJobID(v.ID)
}

// Mutation returns the VoterMutation object of the builder.
func (_c *VoterCreate) Mutation() *VoterMutation {
	return _c.mutation
}

// Save creates the Voter in the database.
func (_c *VoterCreate) Save(ctx context.Context) (*Voter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VoterCreate) SaveX(ctx context.Context) *Voter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VoterCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := voter.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.RelativeName(); !ok {
		v := voter.DefaultRelativeName
		_c.mutation.SetRelativeName(v)
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		v := voter.DefaultRelationType
		_c.mutation.SetRelationType(v)
	}
	if _, ok := _c.mutation.Age(); !ok {
		v := voter.DefaultAge
		_c.mutation.SetAge(v)
	}
	if _, ok := _c.mutation.Gender(); !ok {
		v := voter.DefaultGender
		_c.mutation.SetGender(v)
	}
	if _, ok := _c.mutation.HouseNumber(); !ok {
		v := voter.DefaultHouseNumber
		_c.mutation.SetHouseNumber(v)
	}
	if _, ok := _c.mutation.BoothNumber(); !ok {
		v := voter.DefaultBoothNumber
		_c.mutation.SetBoothNumber(v)
	}
	if _, ok := _c.mutation.Village(); !ok {
		v := voter.DefaultVillage
		_c.mutation.SetVillage(v)
	}
	if _, ok := _c.mutation.Area(); !ok {
		v := voter.DefaultArea
		_c.mutation.SetArea(v)
	}
	if _, ok := _c.mutation.FamilySize(); !ok {
		v := voter.DefaultFamilySize
		_c.mutation.SetFamilySize(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := voter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := voter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := voter.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VoterCreate) check() error {
	if _, ok := _c.mutation.Epic(); !ok {
		return &ValidationError{Name: "epic", err: errors.New(`ent: missing required field "Voter.epic"`)}
	}
	if v, ok := _c.mutation.Epic(); ok {
		if err := voter.EpicValidator(v); err != nil {
			return &ValidationError{Name: "epic", err: fmt.Errorf(`ent: validator failed for field "Voter.epic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssemblyID(); !ok {
		return &ValidationError{Name: "assembly_id", err: errors.New(`ent: missing required field "Voter.assembly_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Voter.name"`)}
	}
	if _, ok := _c.mutation.RelativeName(); !ok {
		return &ValidationError{Name: "relative_name", err: errors.New(`ent: missing required field "Voter.relative_name"`)}
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "Voter.relation_type"`)}
	}
	if v, ok := _c.mutation.RelationType(); ok {
		if err := voter.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "Voter.relation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Age(); !ok {
		return &ValidationError{Name: "age", err: errors.New(`ent: missing required field "Voter.age"`)}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`ent: missing required field "Voter.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := voter.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Voter.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HouseNumber(); !ok {
		return &ValidationError{Name: "house_number", err: errors.New(`ent: missing required field "Voter.house_number"`)}
	}
	if _, ok := _c.mutation.BoothNumber(); !ok {
		return &ValidationError{Name: "booth_number", err: errors.New(`ent: missing required field "Voter.booth_number"`)}
	}
	if _, ok := _c.mutation.Village(); !ok {
		return &ValidationError{Name: "village", err: errors.New(`ent: missing required field "Voter.village"`)}
	}
	if _, ok := _c.mutation.Area(); !ok {
		return &ValidationError{Name: "area", err: errors.New(`ent: missing required field "Voter.area"`)}
	}
	if _, ok := _c.mutation.FamilySize(); !ok {
		return &ValidationError{Name: "family_size", err: errors.New(`ent: missing required field "Voter.family_size"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Voter.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Voter.updated_at"`)}
	}
	if len(_c.mutation.AssemblyIDs()) == 0 {
		return &ValidationError{Name: "assembly", err: errors.New(`ent: missing required edge "Voter.assembly"`)}
	}
	return nil
}

func (_c *VoterCreate) sqlSave(ctx context.Context) (*Voter, error) {
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

func (_c *VoterCreate) createSpec() (*Voter, *sqlgraph.CreateSpec) {
	var (
		_node = &Voter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(voter.Table, sqlgraph.NewFieldSpec(voter.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Epic(); ok {
		_spec.SetField(voter.FieldEpic, field.TypeString, value)
		_node.Epic = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(voter.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RelativeName(); ok {
		_spec.SetField(voter.FieldRelativeName, field.TypeString, value)
		_node.RelativeName = value
	}
	if value, ok := _c.mutation.RelationType(); ok {
		_spec.SetField(voter.FieldRelationType, field.TypeString, value)
		_node.RelationType = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(voter.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(voter.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.HouseNumber(); ok {
		_spec.SetField(voter.FieldHouseNumber, field.TypeString, value)
		_node.HouseNumber = value
	}
	if value, ok := _c.mutation.BoothNumber(); ok {
		_spec.SetField(voter.FieldBoothNumber, field.TypeInt, value)
		_node.BoothNumber = value
	}
	if value, ok := _c.mutation.Village(); ok {
		_spec.SetField(voter.FieldVillage, field.TypeString, value)
		_node.Village = value
	}
	if value, ok := _c.mutation.Area(); ok {
		_spec.SetField(voter.FieldArea, field.TypeString, value)
		_node.Area = value
	}
	if value, ok := _c.mutation.FamilySize(); ok {
		_spec.SetField(voter.FieldFamilySize, field.TypeInt, value)
		_node.FamilySize = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(voter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(voter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AssemblyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   voter.AssemblyTable,
			Columns: []string{voter.AssemblyColumn},
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
	if nodes := _c.mutation.ImportJobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   voter.ImportJobTable,
			Columns: []string{voter.ImportJobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ImportJobID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VoterCreateBulk is the builder for creating many Voter entities in bulk.
type VoterCreateBulk struct {
	config
	err      error
	builders []*VoterCreate
}

// Save creates the Voter entities in the database.
func (_c *VoterCreateBulk) Save(ctx context.Context) ([]*Voter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Voter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VoterMutation)
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
func (_c *VoterCreateBulk) SaveX(ctx context.Context) []*Voter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
