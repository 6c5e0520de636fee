// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/gen/ent/assembly"
	"github.com/voteraction/voter-ingest/gen/ent/importjob"
	"github.com/voteraction/voter-ingest/gen/ent/predicate"
	"github.com/voteraction/voter-ingest/gen/ent/voter"
)

// VoterUpdate is the builder for updating Voter entities.
type VoterUpdate struct {
	config
	hooks    []Hook
	mutation *VoterMutation
}

// Where appends a list predicates to the VoterUpdate builder.
func (_u *VoterUpdate) Where(ps ...predicate.Voter) *VoterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEpic sets the "epic" field.
func (_u *VoterUpdate) SetEpic(v string) *VoterUpdate {
	_u.mutation.SetEpic(v)
	return _u
}

// SetNillableEpic sets the "epic" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableEpic(v *string) *VoterUpdate {
	if v != nil {
		_u.SetEpic(*v)
	}
	return _u
}

// SetAssemblyID sets the "assembly_id" field.
func (_u *VoterUpdate) SetAssemblyID(v uuid.UUID) *VoterUpdate {
	_u.mutation.SetAssemblyID(v)
	return _u
}

// SetNillableAssemblyID sets the "assembly_id" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableAssemblyID(v *uuid.UUID) *VoterUpdate {
	if v != nil {
		_u.SetAssemblyID(*v)
	}
	return _u
}

// SetImportJobID sets the "import_job_id" field.
func (_u *VoterUpdate) SetImportJobID(v uuid.UUID) *VoterUpdate {
	_u.mutation.SetImportJobID(v)
	return _u
}

// SetNillableImportJobID sets the "import_job_id" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableImportJobID(v *uuid.UUID) *VoterUpdate {
	if v != nil {
		_u.SetImportJobID(*v)
	}
	return _u
}

// ClearImportJobID clears the value of the "import_job_id" field.
func (_u *VoterUpdate) ClearImportJobID() *VoterUpdate {
	_u.mutation.ClearImportJobID()
	return _u
}

// SetName sets the "name" field.
func (_u *VoterUpdate) SetName(v string) *VoterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableName(v *string) *VoterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRelativeName sets the "relative_name" field.
func (_u *VoterUpdate) SetRelativeName(v string) *VoterUpdate {
	_u.mutation.SetRelativeName(v)
	return _u
}

// SetNillableRelativeName sets the "relative_name" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableRelativeName(v *string) *VoterUpdate {
	if v != nil {
		_u.SetRelativeName(*v)
	}
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *VoterUpdate) SetRelationType(v string) *VoterUpdate {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableRelationType(v *string) *VoterUpdate {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *VoterUpdate) SetAge(v int) *VoterUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableAge(v *int) *VoterUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *VoterUpdate) AddAge(v int) *VoterUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetGender sets the "gender" field.
func (_u *VoterUpdate) SetGender(v string) *VoterUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableGender(v *string) *VoterUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetHouseNumber sets the "house_number" field.
func (_u *VoterUpdate) SetHouseNumber(v string) *VoterUpdate {
	_u.mutation.SetHouseNumber(v)
	return _u
}

// SetNillableHouseNumber sets the "house_number" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableHouseNumber(v *string) *VoterUpdate {
	if v != nil {
		_u.SetHouseNumber(*v)
	}
	return _u
}

// SetBoothNumber sets the "booth_number" field.
func (_u *VoterUpdate) SetBoothNumber(v int) *VoterUpdate {
	_u.mutation.ResetBoothNumber()
	_u.mutation.SetBoothNumber(v)
	return _u
}

// SetNillableBoothNumber sets the "booth_number" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableBoothNumber(v *int) *VoterUpdate {
	if v != nil {
		_u.SetBoothNumber(*v)
	}
	return _u
}

// AddBoothNumber adds value to the "booth_number" field.
func (_u *VoterUpdate) AddBoothNumber(v int) *VoterUpdate {
	_u.mutation.AddBoothNumber(v)
	return _u
}

// SetVillage sets the "village" field.
func (_u *VoterUpdate) SetVillage(v string) *VoterUpdate {
	_u.mutation.SetVillage(v)
	return _u
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableVillage(v *string) *VoterUpdate {
	if v != nil {
		_u.SetVillage(*v)
	}
	return _u
}

// SetArea sets the "area" field.
func (_u *VoterUpdate) SetArea(v string) *VoterUpdate {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableArea(v *string) *VoterUpdate {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// SetFamilySize sets the "family_size" field.
func (_u *VoterUpdate) SetFamilySize(v int) *VoterUpdate {
	_u.mutation.ResetFamilySize()
	_u.mutation.SetFamilySize(v)
	return _u
}

// SetNillableFamilySize sets the "family_size" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableFamilySize(v *int) *VoterUpdate {
	if v != nil {
		_u.SetFamilySize(*v)
	}
	return _u
}

// AddFamilySize adds value to the "family_size" field.
func (_u *VoterUpdate) AddFamilySize(v int) *VoterUpdate {
	_u.mutation.AddFamilySize(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VoterUpdate) SetCreatedAt(v time.Time) *VoterUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VoterUpdate) SetNillableCreatedAt(v *time.Time) *VoterUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VoterUpdate) SetUpdatedAt(v time.Time) *VoterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssembly sets the "assembly" edge to the Assembly entity.
func (_u *VoterUpdate) SetAssembly(v *Assembly) *VoterUpdate {
	return _u.SetAssemblyID(v.ID)
}

// SetImportJob sets the "import_job" edge to the ImportJob entity.
func (_u *VoterUpdate) SetImportJob(v *ImportJob) *VoterUpdate {
	return _u.SetImportJobID(v.ID)
}

// Mutation returns the VoterMutation object of the builder.
func (_u *VoterUpdate) Mutation() *VoterMutation {
	return _u.mutation
}

// ClearAssembly clears the "assembly" edge to the Assembly entity.
func (_u *VoterUpdate) ClearAssembly() *VoterUpdate {
	_u.mutation.ClearAssembly()
	return _u
}

// ClearImportJob clears the "import_job" edge to the ImportJob entity.
func (_u *VoterUpdate) ClearImportJob() *VoterUpdate {
	_u.mutation.ClearImportJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VoterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := voter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoterUpdate) check() error {
	if v, ok := _u.mutation.Epic(); ok {
		if err := voter.EpicValidator(v); err != nil {
			return &ValidationError{Name: "epic", err: fmt.Errorf(`ent: validator failed for field "Voter.epic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelationType(); ok {
		if err := voter.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "Voter.relation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := voter.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Voter.gender": %w`, err)}
		}
	}
	if _u.mutation.AssemblyCleared() && len(_u.mutation.AssemblyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Voter.assembly"`)
	}
	return nil
}

func (_u *VoterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(voter.Table, voter.Columns, sqlgraph.NewFieldSpec(voter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Epic(); ok {
		_spec.SetField(voter.FieldEpic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(voter.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelativeName(); ok {
		_spec.SetField(voter.FieldRelativeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(voter.FieldRelationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(voter.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(voter.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(voter.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.HouseNumber(); ok {
		_spec.SetField(voter.FieldHouseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoothNumber(); ok {
		_spec.SetField(voter.FieldBoothNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoothNumber(); ok {
		_spec.AddField(voter.FieldBoothNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Village(); ok {
		_spec.SetField(voter.FieldVillage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(voter.FieldArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.FamilySize(); ok {
		_spec.SetField(voter.FieldFamilySize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFamilySize(); ok {
		_spec.AddField(voter.FieldFamilySize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(voter.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(voter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssemblyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssemblyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportJobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportJobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoterUpdateOne is the builder for updating a single Voter entity.
type VoterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoterMutation
}

// SetEpic sets the "epic" field.
func (_u *VoterUpdateOne) SetEpic(v string) *VoterUpdateOne {
	_u.mutation.SetEpic(v)
	return _u
}

// SetNillableEpic sets the "epic" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableEpic(v *string) *VoterUpdateOne {
	if v != nil {
		_u.SetEpic(*v)
	}
	return _u
}

// SetAssemblyID sets the "assembly_id" field.
func (_u *VoterUpdateOne) SetAssemblyID(v uuid.UUID) *VoterUpdateOne {
	_u.mutation.SetAssemblyID(v)
	return _u
}

// SetNillableAssemblyID sets the "assembly_id" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableAssemblyID(v *uuid.UUID) *VoterUpdateOne {
	if v != nil {
		_u.SetAssemblyID(*v)
	}
	return _u
}

// SetImportJobID sets the "import_job_id" field.
func (_u *VoterUpdateOne) SetImportJobID(v uuid.UUID) *VoterUpdateOne {
	_u.mutation.SetImportJobID(v)
	return _u
}

// SetNillableImportJobID sets the "import_job_id" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableImportJobID(v *uuid.UUID) *VoterUpdateOne {
	if v != nil {
		_u.SetImportJobID(*v)
	}
	return _u
}

// ClearImportJobID clears the value of the "import_job_id" field.
func (_u *VoterUpdateOne) ClearImportJobID() *VoterUpdateOne {
	_u.mutation.ClearImportJobID()
	return _u
}

// SetName sets the "name" field.
func (_u *VoterUpdateOne) SetName(v string) *VoterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableName(v *string) *VoterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRelativeName sets the "relative_name" field.
func (_u *VoterUpdateOne) SetRelativeName(v string) *VoterUpdateOne {
	_u.mutation.SetRelativeName(v)
	return _u
}

// SetNillableRelativeName sets the "relative_name" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableRelativeName(v *string) *VoterUpdateOne {
	if v != nil {
		_u.SetRelativeName(*v)
	}
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *VoterUpdateOne) SetRelationType(v string) *VoterUpdateOne {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableRelationType(v *string) *VoterUpdateOne {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *VoterUpdateOne) SetAge(v int) *VoterUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableAge(v *int) *VoterUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *VoterUpdateOne) AddAge(v int) *VoterUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetGender sets the "gender" field.
func (_u *VoterUpdateOne) SetGender(v string) *VoterUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableGender(v *string) *VoterUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetHouseNumber sets the "house_number" field.
func (_u *VoterUpdateOne) SetHouseNumber(v string) *VoterUpdateOne {
	_u.mutation.SetHouseNumber(v)
	return _u
}

// SetNillableHouseNumber sets the "house_number" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableHouseNumber(v *string) *VoterUpdateOne {
	if v != nil {
		_u.SetHouseNumber(*v)
	}
	return _u
}

// SetBoothNumber sets the "booth_number" field.
func (_u *VoterUpdateOne) SetBoothNumber(v int) *VoterUpdateOne {
	_u.mutation.ResetBoothNumber()
	_u.mutation.SetBoothNumber(v)
	return _u
}

// SetNillableBoothNumber sets the "booth_number" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableBoothNumber(v *int) *VoterUpdateOne {
	if v != nil {
		_u.SetBoothNumber(*v)
	}
	return _u
}

// AddBoothNumber adds value to the "booth_number" field.
func (_u *VoterUpdateOne) AddBoothNumber(v int) *VoterUpdateOne {
	_u.mutation.AddBoothNumber(v)
	return _u
}

// SetVillage sets the "village" field.
func (_u *VoterUpdateOne) SetVillage(v string) *VoterUpdateOne {
	_u.mutation.SetVillage(v)
	return _u
}

// SetNillableVillage sets the "village" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableVillage(v *string) *VoterUpdateOne {
	if v != nil {
		_u.SetVillage(*v)
	}
	return _u
}

// SetArea sets the "area" field.
func (_u *VoterUpdateOne) SetArea(v string) *VoterUpdateOne {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableArea(v *string) *VoterUpdateOne {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// SetFamilySize sets the "family_size" field.
func (_u *VoterUpdateOne) SetFamilySize(v int) *VoterUpdateOne {
	_u.mutation.ResetFamilySize()
	_u.mutation.SetFamilySize(v)
	return _u
}

// SetNillableFamilySize sets the "family_size" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableFamilySize(v *int) *VoterUpdateOne {
	if v != nil {
		_u.SetFamilySize(*v)
	}
	return _u
}

// AddFamilySize adds value to the "family_size" field.
func (_u *VoterUpdateOne) AddFamilySize(v int) *VoterUpdateOne {
	_u.mutation.AddFamilySize(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VoterUpdateOne) SetCreatedAt(v time.Time) *VoterUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VoterUpdateOne) SetNillableCreatedAt(v *time.Time) *VoterUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VoterUpdateOne) SetUpdatedAt(v time.Time) *VoterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssembly sets the "assembly" edge to the Assembly entity.
func (_u *VoterUpdateOne) SetAssembly(v *Assembly) *VoterUpdateOne {
	return _u.SetAssemblyID(v.ID)
}

// SetImportJob sets the "import_job" edge to the ImportJob entity.
func (_u *VoterUpdateOne) SetImportJob(v *ImportJob) *VoterUpdateOne {
	return _u.SetImportJobID(v.ID)
}

// Mutation returns the VoterMutation object of the builder.
func (_u *VoterUpdateOne) Mutation() *VoterMutation {
	return _u.mutation
}

// ClearAssembly clears the "assembly" edge to the Assembly entity.
func (_u *VoterUpdateOne) ClearAssembly() *VoterUpdateOne {
	_u.mutation.ClearAssembly()
	return _u
}

// ClearImportJob clears the "import_job" edge to the ImportJob entity.
func (_u *VoterUpdateOne) ClearImportJob() *VoterUpdateOne {
	_u.mutation.ClearImportJob()
	return _u
}

// Where appends a list predicates to the VoterUpdate builder.
func (_u *VoterUpdateOne) Where(ps ...predicate.Voter) *VoterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoterUpdateOne) Select(field string, fields ...string) *VoterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Voter entity.
func (_u *VoterUpdateOne) Save(ctx context.Context) (*Voter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoterUpdateOne) SaveX(ctx context.Context) *Voter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VoterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := voter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoterUpdateOne) check() error {
	if v, ok := _u.mutation.Epic(); ok {
		if err := voter.EpicValidator(v); err != nil {
			return &ValidationError{Name: "epic", err: fmt.Errorf(`ent: validator failed for field "Voter.epic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelationType(); ok {
		if err := voter.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "Voter.relation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := voter.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Voter.gender": %w`, err)}
		}
	}
	if _u.mutation.AssemblyCleared() && len(_u.mutation.AssemblyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Voter.assembly"`)
	}
	return nil
}

func (_u *VoterUpdateOne) sqlSave(ctx context.Context) (_node *Voter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(voter.Table, voter.Columns, sqlgraph.NewFieldSpec(voter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Voter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, voter.FieldID)
		for _, f := range fields {
			if !voter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != voter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Epic(); ok {
		_spec.SetField(voter.FieldEpic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(voter.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelativeName(); ok {
		_spec.SetField(voter.FieldRelativeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(voter.FieldRelationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(voter.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(voter.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(voter.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.HouseNumber(); ok {
		_spec.SetField(voter.FieldHouseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoothNumber(); ok {
		_spec.SetField(voter.FieldBoothNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoothNumber(); ok {
		_spec.AddField(voter.FieldBoothNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Village(); ok {
		_spec.SetField(voter.FieldVillage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(voter.FieldArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.FamilySize(); ok {
		_spec.SetField(voter.FieldFamilySize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFamilySize(); ok {
		_spec.AddField(voter.FieldFamilySize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(voter.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(voter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssemblyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssemblyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportJobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportJobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Voter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
