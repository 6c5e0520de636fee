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

// ImportJobUpdate is the builder for updating ImportJob entities.
type ImportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ImportJobMutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdate) Where(ps ...predicate.ImportJob) *ImportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssemblyID sets the "assembly_id" field.
func (_u *ImportJobUpdate) SetAssemblyID(v uuid.UUID) *ImportJobUpdate {
	_u.mutation.SetAssemblyID(v)
	return _u
}

// SetNillableAssemblyID sets the "assembly_id" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableAssemblyID(v *uuid.UUID) *ImportJobUpdate {
	if v != nil {
		_u.SetAssemblyID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ImportJobUpdate) SetFileName(v string) *ImportJobUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFileName(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ImportJobUpdate) SetFilePath(v string) *ImportJobUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFilePath(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetBoothNumber sets the "booth_number" field.
func (_u *ImportJobUpdate) SetBoothNumber(v int) *ImportJobUpdate {
	_u.mutation.ResetBoothNumber()
	_u.mutation.SetBoothNumber(v)
	return _u
}

// SetNillableBoothNumber sets the "booth_number" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableBoothNumber(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetBoothNumber(*v)
	}
	return _u
}

// AddBoothNumber adds value to the "booth_number" field.
func (_u *ImportJobUpdate) AddBoothNumber(v int) *ImportJobUpdate {
	_u.mutation.AddBoothNumber(v)
	return _u
}

// ClearBoothNumber clears the value of the "booth_number" field.
func (_u *ImportJobUpdate) ClearBoothNumber() *ImportJobUpdate {
	_u.mutation.ClearBoothNumber()
	return _u
}

// SetBoothName sets the "booth_name" field.
func (_u *ImportJobUpdate) SetBoothName(v string) *ImportJobUpdate {
	_u.mutation.SetBoothName(v)
	return _u
}

// SetNillableBoothName sets the "booth_name" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableBoothName(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetBoothName(*v)
	}
	return _u
}

// ClearBoothName clears the value of the "booth_name" field.
func (_u *ImportJobUpdate) ClearBoothName() *ImportJobUpdate {
	_u.mutation.ClearBoothName()
	return _u
}

// SetCommonAddress sets the "common_address" field.
func (_u *ImportJobUpdate) SetCommonAddress(v string) *ImportJobUpdate {
	_u.mutation.SetCommonAddress(v)
	return _u
}

// SetNillableCommonAddress sets the "common_address" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableCommonAddress(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetCommonAddress(*v)
	}
	return _u
}

// ClearCommonAddress clears the value of the "common_address" field.
func (_u *ImportJobUpdate) ClearCommonAddress() *ImportJobUpdate {
	_u.mutation.ClearCommonAddress()
	return _u
}

// SetExpectedCount sets the "expected_count" field.
func (_u *ImportJobUpdate) SetExpectedCount(v int) *ImportJobUpdate {
	_u.mutation.ResetExpectedCount()
	_u.mutation.SetExpectedCount(v)
	return _u
}

// SetNillableExpectedCount sets the "expected_count" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableExpectedCount(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetExpectedCount(*v)
	}
	return _u
}

// AddExpectedCount adds value to the "expected_count" field.
func (_u *ImportJobUpdate) AddExpectedCount(v int) *ImportJobUpdate {
	_u.mutation.AddExpectedCount(v)
	return _u
}

// ClearExpectedCount clears the value of the "expected_count" field.
func (_u *ImportJobUpdate) ClearExpectedCount() *ImportJobUpdate {
	_u.mutation.ClearExpectedCount()
	return _u
}

// SetStartPage sets the "start_page" field.
func (_u *ImportJobUpdate) SetStartPage(v int) *ImportJobUpdate {
	_u.mutation.ResetStartPage()
	_u.mutation.SetStartPage(v)
	return _u
}

// SetNillableStartPage sets the "start_page" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStartPage(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetStartPage(*v)
	}
	return _u
}

// AddStartPage adds value to the "start_page" field.
func (_u *ImportJobUpdate) AddStartPage(v int) *ImportJobUpdate {
	_u.mutation.AddStartPage(v)
	return _u
}

// ClearStartPage clears the value of the "start_page" field.
func (_u *ImportJobUpdate) ClearStartPage() *ImportJobUpdate {
	_u.mutation.ClearStartPage()
	return _u
}

// SetEndPage sets the "end_page" field.
func (_u *ImportJobUpdate) SetEndPage(v int) *ImportJobUpdate {
	_u.mutation.ResetEndPage()
	_u.mutation.SetEndPage(v)
	return _u
}

// SetNillableEndPage sets the "end_page" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableEndPage(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetEndPage(*v)
	}
	return _u
}

// AddEndPage adds value to the "end_page" field.
func (_u *ImportJobUpdate) AddEndPage(v int) *ImportJobUpdate {
	_u.mutation.AddEndPage(v)
	return _u
}

// ClearEndPage clears the value of the "end_page" field.
func (_u *ImportJobUpdate) ClearEndPage() *ImportJobUpdate {
	_u.mutation.ClearEndPage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdate) SetStatus(v string) *ImportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStatus(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ImportJobUpdate) SetProgress(v int) *ImportJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableProgress(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ImportJobUpdate) AddProgress(v int) *ImportJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetTotalVoters sets the "total_voters" field.
func (_u *ImportJobUpdate) SetTotalVoters(v int) *ImportJobUpdate {
	_u.mutation.ResetTotalVoters()
	_u.mutation.SetTotalVoters(v)
	return _u
}

// SetNillableTotalVoters sets the "total_voters" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableTotalVoters(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetTotalVoters(*v)
	}
	return _u
}

// AddTotalVoters adds value to the "total_voters" field.
func (_u *ImportJobUpdate) AddTotalVoters(v int) *ImportJobUpdate {
	_u.mutation.AddTotalVoters(v)
	return _u
}

// SetLogs sets the "logs" field.
func (_u *ImportJobUpdate) SetLogs(v string) *ImportJobUpdate {
	_u.mutation.SetLogs(v)
	return _u
}

// SetNillableLogs sets the "logs" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableLogs(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetLogs(*v)
	}
	return _u
}

// ClearLogs clears the value of the "logs" field.
func (_u *ImportJobUpdate) ClearLogs() *ImportJobUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdate) SetErrorMessage(v string) *ImportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableErrorMessage(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdate) ClearErrorMessage() *ImportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportJobUpdate) SetUpdatedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ImportJobUpdate) SetCompletedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableCompletedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ImportJobUpdate) ClearCompletedAt() *ImportJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAssembly sets the "assembly" edge to the Assembly entity.
func (_u *ImportJobUpdate) SetAssembly(v *Assembly) *ImportJobUpdate {
	return _u.SetAssemblyID(v.ID)
}

// AddVoterIDs adds the "voters" edge to the Voter entity by IDs.
func (_u *ImportJobUpdate) AddVoterIDs(ids ...uuid.UUID) *ImportJobUpdate {
	_u.mutation.AddVoterIDs(ids...)
	return _u
}

// AddVoters adds the "voters" edges to the Voter entity.
func (_u *ImportJobUpdate) AddVoters(v ...*Voter) *ImportJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoterIDs(ids...)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdate) Mutation() *ImportJobMutation {
	return _u.mutation
}

// ClearAssembly clears the "assembly" edge to the Assembly entity.
func (_u *ImportJobUpdate) ClearAssembly() *ImportJobUpdate {
	_u.mutation.ClearAssembly()
	return _u
}

// ClearVoters clears all "voters" edges to the Voter entity.
func (_u *ImportJobUpdate) ClearVoters() *ImportJobUpdate {
	_u.mutation.ClearVoters()
	return _u
}

// RemoveVoterIDs removes the "voters" edge to Voter entities by IDs.
func (_u *ImportJobUpdate) RemoveVoterIDs(ids ...uuid.UUID) *ImportJobUpdate {
	_u.mutation.RemoveVoterIDs(ids...)
	return _u
}

// RemoveVoters removes "voters" edges to Voter entities.
func (_u *ImportJobUpdate) RemoveVoters(v ...*Voter) *ImportJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoterIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := importjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := importjob.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if _u.mutation.AssemblyCleared() && len(_u.mutation.AssemblyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportJob.assembly"`)
	}
	return nil
}

func (_u *ImportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(importjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(importjob.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoothNumber(); ok {
		_spec.SetField(importjob.FieldBoothNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoothNumber(); ok {
		_spec.AddField(importjob.FieldBoothNumber, field.TypeInt, value)
	}
	if _u.mutation.BoothNumberCleared() {
		_spec.ClearField(importjob.FieldBoothNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.BoothName(); ok {
		_spec.SetField(importjob.FieldBoothName, field.TypeString, value)
	}
	if _u.mutation.BoothNameCleared() {
		_spec.ClearField(importjob.FieldBoothName, field.TypeString)
	}
	if value, ok := _u.mutation.CommonAddress(); ok {
		_spec.SetField(importjob.FieldCommonAddress, field.TypeString, value)
	}
	if _u.mutation.CommonAddressCleared() {
		_spec.ClearField(importjob.FieldCommonAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedCount(); ok {
		_spec.SetField(importjob.FieldExpectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedCount(); ok {
		_spec.AddField(importjob.FieldExpectedCount, field.TypeInt, value)
	}
	if _u.mutation.ExpectedCountCleared() {
		_spec.ClearField(importjob.FieldExpectedCount, field.TypeInt)
	}
	if value, ok := _u.mutation.StartPage(); ok {
		_spec.SetField(importjob.FieldStartPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartPage(); ok {
		_spec.AddField(importjob.FieldStartPage, field.TypeInt, value)
	}
	if _u.mutation.StartPageCleared() {
		_spec.ClearField(importjob.FieldStartPage, field.TypeInt)
	}
	if value, ok := _u.mutation.EndPage(); ok {
		_spec.SetField(importjob.FieldEndPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndPage(); ok {
		_spec.AddField(importjob.FieldEndPage, field.TypeInt, value)
	}
	if _u.mutation.EndPageCleared() {
		_spec.ClearField(importjob.FieldEndPage, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(importjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(importjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalVoters(); ok {
		_spec.SetField(importjob.FieldTotalVoters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalVoters(); ok {
		_spec.AddField(importjob.FieldTotalVoters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Logs(); ok {
		_spec.SetField(importjob.FieldLogs, field.TypeString, value)
	}
	if _u.mutation.LogsCleared() {
		_spec.ClearField(importjob.FieldLogs, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(importjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(importjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AssemblyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssemblyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VotersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotersIDs(); len(nodes) > 0 && !_u.mutation.VotersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportJobUpdateOne is the builder for updating a single ImportJob entity.
type ImportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportJobMutation
}

// SetAssemblyID sets the "assembly_id" field.
func (_u *ImportJobUpdateOne) SetAssemblyID(v uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.SetAssemblyID(v)
	return _u
}

// SetNillableAssemblyID sets the "assembly_id" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableAssemblyID(v *uuid.UUID) *ImportJobUpdateOne {
	if v != nil {
		_u.SetAssemblyID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ImportJobUpdateOne) SetFileName(v string) *ImportJobUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFileName(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ImportJobUpdateOne) SetFilePath(v string) *ImportJobUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFilePath(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetBoothNumber sets the "booth_number" field.
func (_u *ImportJobUpdateOne) SetBoothNumber(v int) *ImportJobUpdateOne {
	_u.mutation.ResetBoothNumber()
	_u.mutation.SetBoothNumber(v)
	return _u
}

// SetNillableBoothNumber sets the "booth_number" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableBoothNumber(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetBoothNumber(*v)
	}
	return _u
}

// AddBoothNumber adds value to the "booth_number" field.
func (_u *ImportJobUpdateOne) AddBoothNumber(v int) *ImportJobUpdateOne {
	_u.mutation.AddBoothNumber(v)
	return _u
}

// ClearBoothNumber clears the value of the "booth_number" field.
func (_u *ImportJobUpdateOne) ClearBoothNumber() *ImportJobUpdateOne {
	_u.mutation.ClearBoothNumber()
	return _u
}

// SetBoothName sets the "booth_name" field.
func (_u *ImportJobUpdateOne) SetBoothName(v string) *ImportJobUpdateOne {
	_u.mutation.SetBoothName(v)
	return _u
}

// SetNillableBoothName sets the "booth_name" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableBoothName(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetBoothName(*v)
	}
	return _u
}

// ClearBoothName clears the value of the "booth_name" field.
func (_u *ImportJobUpdateOne) ClearBoothName() *ImportJobUpdateOne {
	_u.mutation.ClearBoothName()
	return _u
}

// SetCommonAddress sets the "common_address" field.
func (_u *ImportJobUpdateOne) SetCommonAddress(v string) *ImportJobUpdateOne {
	_u.mutation.SetCommonAddress(v)
	return _u
}

// SetNillableCommonAddress sets the "common_address" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableCommonAddress(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetCommonAddress(*v)
	}
	return _u
}

// ClearCommonAddress clears the value of the "common_address" field.
func (_u *ImportJobUpdateOne) ClearCommonAddress() *ImportJobUpdateOne {
	_u.mutation.ClearCommonAddress()
	return _u
}

// SetExpectedCount sets the "expected_count" field.
func (_u *ImportJobUpdateOne) SetExpectedCount(v int) *ImportJobUpdateOne {
	_u.mutation.ResetExpectedCount()
	_u.mutation.SetExpectedCount(v)
	return _u
}

// SetNillableExpectedCount sets the "expected_count" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableExpectedCount(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetExpectedCount(*v)
	}
	return _u
}

// AddExpectedCount adds value to the "expected_count" field.
func (_u *ImportJobUpdateOne) AddExpectedCount(v int) *ImportJobUpdateOne {
	_u.mutation.AddExpectedCount(v)
	return _u
}

// ClearExpectedCount clears the value of the "expected_count" field.
func (_u *ImportJobUpdateOne) ClearExpectedCount() *ImportJobUpdateOne {
	_u.mutation.ClearExpectedCount()
	return _u
}

// SetStartPage sets the "start_page" field.
func (_u *ImportJobUpdateOne) SetStartPage(v int) *ImportJobUpdateOne {
	_u.mutation.ResetStartPage()
	_u.mutation.SetStartPage(v)
	return _u
}

// SetNillableStartPage sets the "start_page" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStartPage(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStartPage(*v)
	}
	return _u
}

// AddStartPage adds value to the "start_page" field.
func (_u *ImportJobUpdateOne) AddStartPage(v int) *ImportJobUpdateOne {
	_u.mutation.AddStartPage(v)
	return _u
}

// ClearStartPage clears the value of the "start_page" field.
func (_u *ImportJobUpdateOne) ClearStartPage() *ImportJobUpdateOne {
	_u.mutation.ClearStartPage()
	return _u
}

// SetEndPage sets the "end_page" field.
func (_u *ImportJobUpdateOne) SetEndPage(v int) *ImportJobUpdateOne {
	_u.mutation.ResetEndPage()
	_u.mutation.SetEndPage(v)
	return _u
}

// SetNillableEndPage sets the "end_page" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableEndPage(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetEndPage(*v)
	}
	return _u
}

// AddEndPage adds value to the "end_page" field.
func (_u *ImportJobUpdateOne) AddEndPage(v int) *ImportJobUpdateOne {
	_u.mutation.AddEndPage(v)
	return _u
}

// ClearEndPage clears the value of the "end_page" field.
func (_u *ImportJobUpdateOne) ClearEndPage() *ImportJobUpdateOne {
	_u.mutation.ClearEndPage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdateOne) SetStatus(v string) *ImportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStatus(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ImportJobUpdateOne) SetProgress(v int) *ImportJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableProgress(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ImportJobUpdateOne) AddProgress(v int) *ImportJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetTotalVoters sets the "total_voters" field.
func (_u *ImportJobUpdateOne) SetTotalVoters(v int) *ImportJobUpdateOne {
	_u.mutation.ResetTotalVoters()
	_u.mutation.SetTotalVoters(v)
	return _u
}

// SetNillableTotalVoters sets the "total_voters" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableTotalVoters(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetTotalVoters(*v)
	}
	return _u
}

// AddTotalVoters adds value to the "total_voters" field.
func (_u *ImportJobUpdateOne) AddTotalVoters(v int) *ImportJobUpdateOne {
	_u.mutation.AddTotalVoters(v)
	return _u
}

// SetLogs sets the "logs" field.
func (_u *ImportJobUpdateOne) SetLogs(v string) *ImportJobUpdateOne {
	_u.mutation.SetLogs(v)
	return _u
}

// SetNillableLogs sets the "logs" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableLogs(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetLogs(*v)
	}
	return _u
}

// ClearLogs clears the value of the "logs" field.
func (_u *ImportJobUpdateOne) ClearLogs() *ImportJobUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdateOne) SetErrorMessage(v string) *ImportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableErrorMessage(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdateOne) ClearErrorMessage() *ImportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportJobUpdateOne) SetUpdatedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ImportJobUpdateOne) SetCompletedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ImportJobUpdateOne) ClearCompletedAt() *ImportJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAssembly sets the "assembly" edge to the Assembly entity.
func (_u *ImportJobUpdateOne) SetAssembly(v *Assembly) *ImportJobUpdateOne {
	return _u.SetAssemblyID(v.ID)
}

// AddVoterIDs adds the "voters" edge to the Voter entity by IDs.
func (_u *ImportJobUpdateOne) AddVoterIDs(ids ...uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.AddVoterIDs(ids...)
	return _u
}

// AddVoters adds the "voters" edges to the Voter entity.
func (_u *ImportJobUpdateOne) AddVoters(v ...*Voter) *ImportJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoterIDs(ids...)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdateOne) Mutation() *ImportJobMutation {
	return _u.mutation
}

// ClearAssembly clears the "assembly" edge to the Assembly entity.
func (_u *ImportJobUpdateOne) ClearAssembly() *ImportJobUpdateOne {
	_u.mutation.ClearAssembly()
	return _u
}

// ClearVoters clears all "voters" edges to the Voter entity.
func (_u *ImportJobUpdateOne) ClearVoters() *ImportJobUpdateOne {
	_u.mutation.ClearVoters()
	return _u
}

// RemoveVoterIDs removes the "voters" edge to Voter entities by IDs.
func (_u *ImportJobUpdateOne) RemoveVoterIDs(ids ...uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.RemoveVoterIDs(ids...)
	return _u
}

// RemoveVoters removes "voters" edges to Voter entities.
func (_u *ImportJobUpdateOne) RemoveVoters(v ...*Voter) *ImportJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoterIDs(ids...)
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdateOne) Where(ps ...predicate.ImportJob) *ImportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportJobUpdateOne) Select(field string, fields ...string) *ImportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportJob entity.
func (_u *ImportJobUpdateOne) Save(ctx context.Context) (*ImportJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdateOne) SaveX(ctx context.Context) *ImportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := importjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := importjob.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if _u.mutation.AssemblyCleared() && len(_u.mutation.AssemblyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportJob.assembly"`)
	}
	return nil
}

func (_u *ImportJobUpdateOne) sqlSave(ctx context.Context) (_node *ImportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importjob.FieldID)
		for _, f := range fields {
			if !importjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importjob.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(importjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(importjob.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoothNumber(); ok {
		_spec.SetField(importjob.FieldBoothNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoothNumber(); ok {
		_spec.AddField(importjob.FieldBoothNumber, field.TypeInt, value)
	}
	if _u.mutation.BoothNumberCleared() {
		_spec.ClearField(importjob.FieldBoothNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.BoothName(); ok {
		_spec.SetField(importjob.FieldBoothName, field.TypeString, value)
	}
	if _u.mutation.BoothNameCleared() {
		_spec.ClearField(importjob.FieldBoothName, field.TypeString)
	}
	if value, ok := _u.mutation.CommonAddress(); ok {
		_spec.SetField(importjob.FieldCommonAddress, field.TypeString, value)
	}
	if _u.mutation.CommonAddressCleared() {
		_spec.ClearField(importjob.FieldCommonAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedCount(); ok {
		_spec.SetField(importjob.FieldExpectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedCount(); ok {
		_spec.AddField(importjob.FieldExpectedCount, field.TypeInt, value)
	}
	if _u.mutation.ExpectedCountCleared() {
		_spec.ClearField(importjob.FieldExpectedCount, field.TypeInt)
	}
	if value, ok := _u.mutation.StartPage(); ok {
		_spec.SetField(importjob.FieldStartPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartPage(); ok {
		_spec.AddField(importjob.FieldStartPage, field.TypeInt, value)
	}
	if _u.mutation.StartPageCleared() {
		_spec.ClearField(importjob.FieldStartPage, field.TypeInt)
	}
	if value, ok := _u.mutation.EndPage(); ok {
		_spec.SetField(importjob.FieldEndPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndPage(); ok {
		_spec.AddField(importjob.FieldEndPage, field.TypeInt, value)
	}
	if _u.mutation.EndPageCleared() {
		_spec.ClearField(importjob.FieldEndPage, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(importjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(importjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalVoters(); ok {
		_spec.SetField(importjob.FieldTotalVoters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalVoters(); ok {
		_spec.AddField(importjob.FieldTotalVoters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Logs(); ok {
		_spec.SetField(importjob.FieldLogs, field.TypeString, value)
	}
	if _u.mutation.LogsCleared() {
		_spec.ClearField(importjob.FieldLogs, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(importjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(importjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AssemblyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssemblyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VotersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotersIDs(); len(nodes) > 0 && !_u.mutation.VotersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ImportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
