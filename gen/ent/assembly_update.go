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

// AssemblyUpdate is the builder for updating Assembly entities.
type AssemblyUpdate struct {
	config
	hooks    []Hook
	mutation *AssemblyMutation
}

// Where appends a list predicates to the AssemblyUpdate builder.
func (_u *AssemblyUpdate) Where(ps ...predicate.Assembly) *AssemblyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AssemblyUpdate) SetName(v string) *AssemblyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AssemblyUpdate) SetNillableName(v *string) *AssemblyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *AssemblyUpdate) SetNumber(v int) *AssemblyUpdate {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *AssemblyUpdate) SetNillableNumber(v *int) *AssemblyUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *AssemblyUpdate) AddNumber(v int) *AssemblyUpdate {
	_u.mutation.AddNumber(v)
	return _u
}

// SetState sets the "state" field.
func (_u *AssemblyUpdate) SetState(v string) *AssemblyUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AssemblyUpdate) SetNillableState(v *string) *AssemblyUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *AssemblyUpdate) ClearState() *AssemblyUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AssemblyUpdate) SetCreatedAt(v time.Time) *AssemblyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AssemblyUpdate) SetNillableCreatedAt(v *time.Time) *AssemblyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddVoterIDs adds the "voters" edge to the Voter entity by IDs.
func (_u *AssemblyUpdate) AddVoterIDs(ids ...uuid.UUID) *AssemblyUpdate {
	_u.mutation.AddVoterIDs(ids...)
	return _u
}

// AddVoters adds the "voters" edges to the Voter entity.
func (_u *AssemblyUpdate) AddVoters(v ...*Voter) *AssemblyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoterIDs(ids...)
}

// AddImportJobIDs adds the "import_jobs" edge to the ImportJob entity by IDs.
func (_u *AssemblyUpdate) AddImportJobIDs(ids ...uuid.UUID) *AssemblyUpdate {
	_u.mutation.AddImportJobIDs(ids...)
	return _u
}

// AddImportJobs adds the "import_jobs" edges to the ImportJob entity.
func (_u *AssemblyUpdate) AddImportJobs(v ...*ImportJob) *AssemblyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportJobIDs(ids...)
}

// Mutation returns the AssemblyMutation object of the builder.
func (_u *AssemblyUpdate) Mutation() *AssemblyMutation {
	return _u.mutation
}

// ClearVoters clears all "voters" edges to the Voter entity.
func (_u *AssemblyUpdate) ClearVoters() *AssemblyUpdate {
	_u.mutation.ClearVoters()
	return _u
}

// RemoveVoterIDs removes the "voters" edge to Voter entities by IDs.
func (_u *AssemblyUpdate) RemoveVoterIDs(ids ...uuid.UUID) *AssemblyUpdate {
	_u.mutation.RemoveVoterIDs(ids...)
	return _u
}

// RemoveVoters removes "voters" edges to Voter entities.
func (_u *AssemblyUpdate) RemoveVoters(v ...*Voter) *AssemblyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoterIDs(ids...)
}

// ClearImportJobs clears all "import_jobs" edges to the ImportJob entity.
func (_u *AssemblyUpdate) ClearImportJobs() *AssemblyUpdate {
	_u.mutation.ClearImportJobs()
	return _u
}

// RemoveImportJobIDs removes the "import_jobs" edge to ImportJob entities by IDs.
func (_u *AssemblyUpdate) RemoveImportJobIDs(ids ...uuid.UUID) *AssemblyUpdate {
	_u.mutation.RemoveImportJobIDs(ids...)
	return _u
}

// RemoveImportJobs removes "import_jobs" edges to ImportJob entities.
func (_u *AssemblyUpdate) RemoveImportJobs(v ...*ImportJob) *AssemblyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssemblyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssemblyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssemblyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssemblyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssemblyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := assembly.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Assembly.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AssemblyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assembly.Table, assembly.Columns, sqlgraph.NewFieldSpec(assembly.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(assembly.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(assembly.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(assembly.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(assembly.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(assembly.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(assembly.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VotersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotersIDs(); len(nodes) > 0 && !_u.mutation.VotersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportJobsIDs(); len(nodes) > 0 && !_u.mutation.ImportJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assembly.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssemblyUpdateOne is the builder for updating a single Assembly entity.
type AssemblyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssemblyMutation
}

// SetName sets the "name" field.
func (_u *AssemblyUpdateOne) SetName(v string) *AssemblyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AssemblyUpdateOne) SetNillableName(v *string) *AssemblyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *AssemblyUpdateOne) SetNumber(v int) *AssemblyUpdateOne {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *AssemblyUpdateOne) SetNillableNumber(v *int) *AssemblyUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *AssemblyUpdateOne) AddNumber(v int) *AssemblyUpdateOne {
	_u.mutation.AddNumber(v)
	return _u
}

// SetState sets the "state" field.
func (_u *AssemblyUpdateOne) SetState(v string) *AssemblyUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AssemblyUpdateOne) SetNillableState(v *string) *AssemblyUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *AssemblyUpdateOne) ClearState() *AssemblyUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AssemblyUpdateOne) SetCreatedAt(v time.Time) *AssemblyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AssemblyUpdateOne) SetNillableCreatedAt(v *time.Time) *AssemblyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddVoterIDs adds the "voters" edge to the Voter entity by IDs.
func (_u *AssemblyUpdateOne) AddVoterIDs(ids ...uuid.UUID) *AssemblyUpdateOne {
	_u.mutation.AddVoterIDs(ids...)
	return _u
}

// AddVoters adds the "voters" edges to the Voter entity.
func (_u *AssemblyUpdateOne) AddVoters(v ...*Voter) *AssemblyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoterIDs(ids...)
}

// AddImportJobIDs adds the "import_jobs" edge to the ImportJob entity by IDs.
func (_u *AssemblyUpdateOne) AddImportJobIDs(ids ...uuid.UUID) *AssemblyUpdateOne {
	_u.mutation.AddImportJobIDs(ids...)
	return _u
}

// AddImportJobs adds the "import_jobs" edges to the ImportJob entity.
func (_u *AssemblyUpdateOne) AddImportJobs(v ...*ImportJob) *AssemblyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportJobIDs(ids...)
}

// Mutation returns the AssemblyMutation object of the builder.
func (_u *AssemblyUpdateOne) Mutation() *AssemblyMutation {
	return _u.mutation
}

// ClearVoters clears all "voters" edges to the Voter entity.
func (_u *AssemblyUpdateOne) ClearVoters() *AssemblyUpdateOne {
	_u.mutation.ClearVoters()
	return _u
}

// RemoveVoterIDs removes the "voters" edge to Voter entities by IDs.
func (_u *AssemblyUpdateOne) RemoveVoterIDs(ids ...uuid.UUID) *AssemblyUpdateOne {
	_u.mutation.RemoveVoterIDs(ids...)
	return _u
}

// RemoveVoters removes "voters" edges to Voter entities.
func (_u *AssemblyUpdateOne) RemoveVoters(v ...*Voter) *AssemblyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoterIDs(ids...)
}

// ClearImportJobs clears all "import_jobs" edges to the ImportJob entity.
func (_u *AssemblyUpdateOne) ClearImportJobs() *AssemblyUpdateOne {
	_u.mutation.ClearImportJobs()
	return _u
}

// RemoveImportJobIDs removes the "import_jobs" edge to ImportJob entities by IDs.
func (_u *AssemblyUpdateOne) RemoveImportJobIDs(ids ...uuid.UUID) *AssemblyUpdateOne {
	_u.mutation.RemoveImportJobIDs(ids...)
	return _u
}

// RemoveImportJobs removes "import_jobs" edges to ImportJob entities.
func (_u *AssemblyUpdateOne) RemoveImportJobs(v ...*ImportJob) *AssemblyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportJobIDs(ids...)
}

// Where appends a list predicates to the AssemblyUpdate builder.
func (_u *AssemblyUpdateOne) Where(ps ...predicate.Assembly) *AssemblyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssemblyUpdateOne) Select(field string, fields ...string) *AssemblyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assembly entity.
func (_u *AssemblyUpdateOne) Save(ctx context.Context) (*Assembly, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssemblyUpdateOne) SaveX(ctx context.Context) *Assembly {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssemblyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssemblyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssemblyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := assembly.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Assembly.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AssemblyUpdateOne) sqlSave(ctx context.Context) (_node *Assembly, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assembly.Table, assembly.Columns, sqlgraph.NewFieldSpec(assembly.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assembly.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assembly.FieldID)
		for _, f := range fields {
			if !assembly.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assembly.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(assembly.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(assembly.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(assembly.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(assembly.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(assembly.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(assembly.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VotersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotersIDs(); len(nodes) > 0 && !_u.mutation.VotersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportJobsIDs(); len(nodes) > 0 && !_u.mutation.ImportJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Assembly{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assembly.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
