// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/gen/ent/assembly"
	"github.com/voteraction/voter-ingest/gen/ent/importjob"
	"github.com/voteraction/voter-ingest/gen/ent/predicate"
	"github.com/voteraction/voter-ingest/gen/ent/voter"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssembly  = "Assembly"
	TypeImportJob = "ImportJob"
	TypeVoter     = "Voter"
)

// AssemblyMutation represents an operation that mutates the Assembly nodes in the graph.
type AssemblyMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	number             *int
	addnumber          *int
	state              *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	voters             map[uuid.UUID]struct{}
	removedvoters      map[uuid.UUID]struct{}
	clearedvoters      bool
	import_jobs        map[uuid.UUID]struct{}
	removedimport_jobs map[uuid.UUID]struct{}
	clearedimport_jobs bool
	done               bool
	oldValue           func(context.Context) (*Assembly, error)
	predicates         []predicate.Assembly
}

var _ ent.Mutation = (*AssemblyMutation)(nil)

// assemblyOption allows management of the mutation configuration using functional options.
type assemblyOption func(*AssemblyMutation)

// newAssemblyMutation creates new mutation for the Assembly entity.
func newAssemblyMutation(c config, op Op, opts ...assemblyOption) *AssemblyMutation {
	m := &AssemblyMutation{
		config:        c,
		op:            op,
		typ:           TypeAssembly,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssemblyID sets the ID field of the mutation.
func withAssemblyID(id uuid.UUID) assemblyOption {
	return func(m *AssemblyMutation) {
		var (
			err   error
			once  sync.Once
			value *Assembly
		)
		m.oldValue = func(ctx context.Context) (*Assembly, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assembly.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssembly sets the old Assembly of the mutation.
func withAssembly(node *Assembly) assemblyOption {
	return func(m *AssemblyMutation) {
		m.oldValue = func(context.Context) (*Assembly, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssemblyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssemblyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Assembly entities.
func (m *AssemblyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssemblyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssemblyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assembly.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AssemblyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AssemblyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Assembly entity.
// If the Assembly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssemblyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AssemblyMutation) ResetName() {
	m.name = nil
}

// SetNumber sets the "number" field.
func (m *AssemblyMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *AssemblyMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Assembly entity.
// If the Assembly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssemblyMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *AssemblyMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *AssemblyMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *AssemblyMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetState sets the "state" field.
func (m *AssemblyMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *AssemblyMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Assembly entity.
// If the Assembly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssemblyMutation) OldState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *AssemblyMutation) ClearState() {
	m.state = nil
	m.clearedFields[assembly.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *AssemblyMutation) StateCleared() bool {
	_, ok := m.clearedFields[assembly.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *AssemblyMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, assembly.FieldState)
}

// SetCreatedAt sets the "created_at" field.
func (m *AssemblyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssemblyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Assembly entity.
// If the Assembly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssemblyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssemblyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddVoterIDs adds the "voters" edge to the Voter entity by ids.
func (m *AssemblyMutation) AddVoterIDs(ids ...uuid.UUID) {
	if m.voters == nil {
		m.voters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.voters[ids[i]] = struct{}{}
	}
}

// ClearVoters clears the "voters" edge to the Voter entity.
func (m *AssemblyMutation) ClearVoters() {
	m.clearedvoters = true
}

// VotersCleared reports if the "voters" edge to the Voter entity was cleared.
func (m *AssemblyMutation) VotersCleared() bool {
	return m.clearedvoters
}

// RemoveVoterIDs removes the "voters" edge to the Voter entity by IDs.
func (m *AssemblyMutation) RemoveVoterIDs(ids ...uuid.UUID) {
	if m.removedvoters == nil {
		m.removedvoters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.voters, ids[i])
		m.removedvoters[ids[i]] = struct{}{}
	}
}

// RemovedVoters returns the removed IDs of the "voters" edge to the Voter entity.
func (m *AssemblyMutation) RemovedVotersIDs() (ids []uuid.UUID) {
	for id := range m.removedvoters {
		ids = append(ids, id)
	}
	return
}

// VotersIDs returns the "voters" edge IDs in the mutation.
func (m *AssemblyMutation) VotersIDs() (ids []uuid.UUID) {
	for id := range m.voters {
		ids = append(ids, id)
	}
	return
}

// ResetVoters resets all changes to the "voters" edge.
func (m *AssemblyMutation) ResetVoters() {
	m.voters = nil
	m.clearedvoters = false
	m.removedvoters = nil
}

// AddImportJobIDs adds the "import_jobs" edge to the ImportJob entity by ids.
func (m *AssemblyMutation) AddImportJobIDs(ids ...uuid.UUID) {
	if m.import_jobs == nil {
		m.import_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.import_jobs[ids[i]] = struct{}{}
	}
}

// ClearImportJobs clears the "import_jobs" edge to the ImportJob entity.
func (m *AssemblyMutation) ClearImportJobs() {
	m.clearedimport_jobs = true
}

// ImportJobsCleared reports if the "import_jobs" edge to the ImportJob entity was cleared.
func (m *AssemblyMutation) ImportJobsCleared() bool {
	return m.clearedimport_jobs
}

// RemoveImportJobIDs removes the "import_jobs" edge to the ImportJob entity by IDs.
func (m *AssemblyMutation) RemoveImportJobIDs(ids ...uuid.UUID) {
	if m.removedimport_jobs == nil {
		m.removedimport_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.import_jobs, ids[i])
		m.removedimport_jobs[ids[i]] = struct{}{}
	}
}

// RemovedImportJobs returns the removed IDs of the "import_jobs" edge to the ImportJob entity.
func (m *AssemblyMutation) RemovedImportJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedimport_jobs {
		ids = append(ids, id)
	}
	return
}

// ImportJobsIDs returns the "import_jobs" edge IDs in the mutation.
func (m *AssemblyMutation) ImportJobsIDs() (ids []uuid.UUID) {
	for id := range m.import_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetImportJobs resets all changes to the "import_jobs" edge.
func (m *AssemblyMutation) ResetImportJobs() {
	m.import_jobs = nil
	m.clearedimport_jobs = false
	m.removedimport_jobs = nil
}

// Where appends a list predicates to the AssemblyMutation builder.
func (m *AssemblyMutation) Where(ps ...predicate.Assembly) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssemblyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssemblyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assembly, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssemblyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssemblyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assembly).
func (m *AssemblyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssemblyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, assembly.FieldName)
	}
	if m.number != nil {
		fields = append(fields, assembly.FieldNumber)
	}
	if m.state != nil {
		fields = append(fields, assembly.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, assembly.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssemblyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assembly.FieldName:
		return m.Name()
	case assembly.FieldNumber:
		return m.Number()
	case assembly.FieldState:
		return m.State()
	case assembly.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssemblyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assembly.FieldName:
		return m.OldName(ctx)
	case assembly.FieldNumber:
		return m.OldNumber(ctx)
	case assembly.FieldState:
		return m.OldState(ctx)
	case assembly.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Assembly field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssemblyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assembly.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case assembly.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case assembly.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case assembly.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Assembly field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssemblyMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, assembly.FieldNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssemblyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assembly.FieldNumber:
		return m.AddedNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssemblyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assembly.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Assembly numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssemblyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assembly.FieldState) {
		fields = append(fields, assembly.FieldState)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssemblyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssemblyMutation) ClearField(name string) error {
	switch name {
	case assembly.FieldState:
		m.ClearState()
		return nil
	}
	return fmt.Errorf("unknown Assembly nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssemblyMutation) ResetField(name string) error {
	switch name {
	case assembly.FieldName:
		m.ResetName()
		return nil
	case assembly.FieldNumber:
		m.ResetNumber()
		return nil
	case assembly.FieldState:
		m.ResetState()
		return nil
	case assembly.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Assembly field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssemblyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.voters != nil {
		edges = append(edges, assembly.EdgeVoters)
	}
	if m.import_jobs != nil {
		edges = append(edges, assembly.EdgeImportJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssemblyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assembly.EdgeVoters:
		ids := make([]ent.Value, 0, len(m.voters))
		for id := range m.voters {
			ids = append(ids, id)
		}
		return ids
	case assembly.EdgeImportJobs:
		ids := make([]ent.Value, 0, len(m.import_jobs))
		for id := range m.import_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssemblyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvoters != nil {
		edges = append(edges, assembly.EdgeVoters)
	}
	if m.removedimport_jobs != nil {
		edges = append(edges, assembly.EdgeImportJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssemblyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case assembly.EdgeVoters:
		ids := make([]ent.Value, 0, len(m.removedvoters))
		for id := range m.removedvoters {
			ids = append(ids, id)
		}
		return ids
	case assembly.EdgeImportJobs:
		ids := make([]ent.Value, 0, len(m.removedimport_jobs))
		for id := range m.removedimport_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssemblyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedvoters {
		edges = append(edges, assembly.EdgeVoters)
	}
	if m.clearedimport_jobs {
		edges = append(edges, assembly.EdgeImportJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssemblyMutation) EdgeCleared(name string) bool {
	switch name {
	case assembly.EdgeVoters:
		return m.clearedvoters
	case assembly.EdgeImportJobs:
		return m.clearedimport_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssemblyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Assembly unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssemblyMutation) ResetEdge(name string) error {
	switch name {
	case assembly.EdgeVoters:
		m.ResetVoters()
		return nil
	case assembly.EdgeImportJobs:
		m.ResetImportJobs()
		return nil
	}
	return fmt.Errorf("unknown Assembly edge %s", name)
}

// ImportJobMutation represents an operation that mutates the ImportJob nodes in the graph.
type ImportJobMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	file_name         *string
	file_path         *string
	booth_number      *int
	addbooth_number   *int
	booth_name        *string
	common_address    *string
	expected_count    *int
	addexpected_count *int
	start_page        *int
	addstart_page     *int
	end_page          *int
	addend_page       *int
	status            *string
	progress          *int
	addprogress       *int
	total_voters      *int
	addtotal_voters   *int
	logs              *string
	error_message     *string
	added_at          *time.Time
	updated_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	assembly          *uuid.UUID
	clearedassembly   bool
	voters            map[uuid.UUID]struct{}
	removedvoters     map[uuid.UUID]struct{}
	clearedvoters     bool
	done              bool
	oldValue          func(context.Context) (*ImportJob, error)
	predicates        []predicate.ImportJob
}

var _ ent.Mutation = (*ImportJobMutation)(nil)

// importjobOption allows management of the mutation configuration using functional options.
type importjobOption func(*ImportJobMutation)

// newImportJobMutation creates new mutation for the ImportJob entity.
func newImportJobMutation(c config, op Op, opts ...importjobOption) *ImportJobMutation {
	m := &ImportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeImportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportJobID sets the ID field of the mutation.
func withImportJobID(id uuid.UUID) importjobOption {
	return func(m *ImportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportJob
		)
		m.oldValue = func(ctx context.Context) (*ImportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportJob sets the old ImportJob of the mutation.
func withImportJob(node *ImportJob) importjobOption {
	return func(m *ImportJobMutation) {
		m.oldValue = func(context.Context) (*ImportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportJob entities.
func (m *ImportJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAssemblyID sets the "assembly_id" field.
func (m *ImportJobMutation) SetAssemblyID(u uuid.UUID) {
	m.assembly = &u
}

// AssemblyID returns the value of the "assembly_id" field in the mutation.
func (m *ImportJobMutation) AssemblyID() (r uuid.UUID, exists bool) {
	v := m.assembly
	if v == nil {
		return
	}
	return *v, true
}

// OldAssemblyID returns the old "assembly_id" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldAssemblyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssemblyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssemblyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssemblyID: %w", err)
	}
	return oldValue.AssemblyID, nil
}

// ResetAssemblyID resets all changes to the "assembly_id" field.
func (m *ImportJobMutation) ResetAssemblyID() {
	m.assembly = nil
}

// SetFileName sets the "file_name" field.
func (m *ImportJobMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ImportJobMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ImportJobMutation) ResetFileName() {
	m.file_name = nil
}

// SetFilePath sets the "file_path" field.
func (m *ImportJobMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ImportJobMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ImportJobMutation) ResetFilePath() {
	m.file_path = nil
}

// SetBoothNumber sets the "booth_number" field.
func (m *ImportJobMutation) SetBoothNumber(i int) {
	m.booth_number = &i
	m.addbooth_number = nil
}

// BoothNumber returns the value of the "booth_number" field in the mutation.
func (m *ImportJobMutation) BoothNumber() (r int, exists bool) {
	v := m.booth_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBoothNumber returns the old "booth_number" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldBoothNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoothNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoothNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoothNumber: %w", err)
	}
	return oldValue.BoothNumber, nil
}

// AddBoothNumber adds i to the "booth_number" field.
func (m *ImportJobMutation) AddBoothNumber(i int) {
	if m.addbooth_number != nil {
		*m.addbooth_number += i
	} else {
		m.addbooth_number = &i
	}
}

// AddedBoothNumber returns the value that was added to the "booth_number" field in this mutation.
func (m *ImportJobMutation) AddedBoothNumber() (r int, exists bool) {
	v := m.addbooth_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearBoothNumber clears the value of the "booth_number" field.
func (m *ImportJobMutation) ClearBoothNumber() {
	m.booth_number = nil
	m.addbooth_number = nil
	m.clearedFields[importjob.FieldBoothNumber] = struct{}{}
}

// BoothNumberCleared returns if the "booth_number" field was cleared in this mutation.
func (m *ImportJobMutation) BoothNumberCleared() bool {
	_, ok := m.clearedFields[importjob.FieldBoothNumber]
	return ok
}

// ResetBoothNumber resets all changes to the "booth_number" field.
func (m *ImportJobMutation) ResetBoothNumber() {
	m.booth_number = nil
	m.addbooth_number = nil
	delete(m.clearedFields, importjob.FieldBoothNumber)
}

// SetBoothName sets the "booth_name" field.
func (m *ImportJobMutation) SetBoothName(s string) {
	m.booth_name = &s
}

// BoothName returns the value of the "booth_name" field in the mutation.
func (m *ImportJobMutation) BoothName() (r string, exists bool) {
	v := m.booth_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBoothName returns the old "booth_name" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldBoothName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoothName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoothName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoothName: %w", err)
	}
	return oldValue.BoothName, nil
}

// ClearBoothName clears the value of the "booth_name" field.
func (m *ImportJobMutation) ClearBoothName() {
	m.booth_name = nil
	m.clearedFields[importjob.FieldBoothName] = struct{}{}
}

// BoothNameCleared returns if the "booth_name" field was cleared in this mutation.
func (m *ImportJobMutation) BoothNameCleared() bool {
	_, ok := m.clearedFields[importjob.FieldBoothName]
	return ok
}

// ResetBoothName resets all changes to the "booth_name" field.
func (m *ImportJobMutation) ResetBoothName() {
	m.booth_name = nil
	delete(m.clearedFields, importjob.FieldBoothName)
}

// SetCommonAddress sets the "common_address" field.
func (m *ImportJobMutation) SetCommonAddress(s string) {
	m.common_address = &s
}

// CommonAddress returns the value of the "common_address" field in the mutation.
func (m *ImportJobMutation) CommonAddress() (r string, exists bool) {
	v := m.common_address
	if v == nil {
		return
	}
	return *v, true
}

// OldCommonAddress returns the old "common_address" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldCommonAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommonAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommonAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommonAddress: %w", err)
	}
	return oldValue.CommonAddress, nil
}

// ClearCommonAddress clears the value of the "common_address" field.
func (m *ImportJobMutation) ClearCommonAddress() {
	m.common_address = nil
	m.clearedFields[importjob.FieldCommonAddress] = struct{}{}
}

// CommonAddressCleared returns if the "common_address" field was cleared in this mutation.
func (m *ImportJobMutation) CommonAddressCleared() bool {
	_, ok := m.clearedFields[importjob.FieldCommonAddress]
	return ok
}

// ResetCommonAddress resets all changes to the "common_address" field.
func (m *ImportJobMutation) ResetCommonAddress() {
	m.common_address = nil
	delete(m.clearedFields, importjob.FieldCommonAddress)
}

// SetExpectedCount sets the "expected_count" field.
func (m *ImportJobMutation) SetExpectedCount(i int) {
	m.expected_count = &i
	m.addexpected_count = nil
}

// ExpectedCount returns the value of the "expected_count" field in the mutation.
func (m *ImportJobMutation) ExpectedCount() (r int, exists bool) {
	v := m.expected_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedCount returns the old "expected_count" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldExpectedCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedCount: %w", err)
	}
	return oldValue.ExpectedCount, nil
}

// AddExpectedCount adds i to the "expected_count" field.
func (m *ImportJobMutation) AddExpectedCount(i int) {
	if m.addexpected_count != nil {
		*m.addexpected_count += i
	} else {
		m.addexpected_count = &i
	}
}

// AddedExpectedCount returns the value that was added to the "expected_count" field in this mutation.
func (m *ImportJobMutation) AddedExpectedCount() (r int, exists bool) {
	v := m.addexpected_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearExpectedCount clears the value of the "expected_count" field.
func (m *ImportJobMutation) ClearExpectedCount() {
	m.expected_count = nil
	m.addexpected_count = nil
	m.clearedFields[importjob.FieldExpectedCount] = struct{}{}
}

// ExpectedCountCleared returns if the "expected_count" field was cleared in this mutation.
func (m *ImportJobMutation) ExpectedCountCleared() bool {
	_, ok := m.clearedFields[importjob.FieldExpectedCount]
	return ok
}

// ResetExpectedCount resets all changes to the "expected_count" field.
func (m *ImportJobMutation) ResetExpectedCount() {
	m.expected_count = nil
	m.addexpected_count = nil
	delete(m.clearedFields, importjob.FieldExpectedCount)
}

// SetStartPage sets the "start_page" field.
func (m *ImportJobMutation) SetStartPage(i int) {
	m.start_page = &i
	m.addstart_page = nil
}

// StartPage returns the value of the "start_page" field in the mutation.
func (m *ImportJobMutation) StartPage() (r int, exists bool) {
	v := m.start_page
	if v == nil {
		return
	}
	return *v, true
}

// OldStartPage returns the old "start_page" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStartPage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartPage: %w", err)
	}
	return oldValue.StartPage, nil
}

// AddStartPage adds i to the "start_page" field.
func (m *ImportJobMutation) AddStartPage(i int) {
	if m.addstart_page != nil {
		*m.addstart_page += i
	} else {
		m.addstart_page = &i
	}
}

// AddedStartPage returns the value that was added to the "start_page" field in this mutation.
func (m *ImportJobMutation) AddedStartPage() (r int, exists bool) {
	v := m.addstart_page
	if v == nil {
		return
	}
	return *v, true
}

// ClearStartPage clears the value of the "start_page" field.
func (m *ImportJobMutation) ClearStartPage() {
	m.start_page = nil
	m.addstart_page = nil
	m.clearedFields[importjob.FieldStartPage] = struct{}{}
}

// StartPageCleared returns if the "start_page" field was cleared in this mutation.
func (m *ImportJobMutation) StartPageCleared() bool {
	_, ok := m.clearedFields[importjob.FieldStartPage]
	return ok
}

// ResetStartPage resets all changes to the "start_page" field.
func (m *ImportJobMutation) ResetStartPage() {
	m.start_page = nil
	m.addstart_page = nil
	delete(m.clearedFields, importjob.FieldStartPage)
}

// SetEndPage sets the "end_page" field.
func (m *ImportJobMutation) SetEndPage(i int) {
	m.end_page = &i
	m.addend_page = nil
}

// EndPage returns the value of the "end_page" field in the mutation.
func (m *ImportJobMutation) EndPage() (r int, exists bool) {
	v := m.end_page
	if v == nil {
		return
	}
	return *v, true
}

// OldEndPage returns the old "end_page" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldEndPage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndPage: %w", err)
	}
	return oldValue.EndPage, nil
}

// AddEndPage adds i to the "end_page" field.
func (m *ImportJobMutation) AddEndPage(i int) {
	if m.addend_page != nil {
		*m.addend_page += i
	} else {
		m.addend_page = &i
	}
}

// AddedEndPage returns the value that was added to the "end_page" field in this mutation.
func (m *ImportJobMutation) AddedEndPage() (r int, exists bool) {
	v := m.addend_page
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndPage clears the value of the "end_page" field.
func (m *ImportJobMutation) ClearEndPage() {
	m.end_page = nil
	m.addend_page = nil
	m.clearedFields[importjob.FieldEndPage] = struct{}{}
}

// EndPageCleared returns if the "end_page" field was cleared in this mutation.
func (m *ImportJobMutation) EndPageCleared() bool {
	_, ok := m.clearedFields[importjob.FieldEndPage]
	return ok
}

// ResetEndPage resets all changes to the "end_page" field.
func (m *ImportJobMutation) ResetEndPage() {
	m.end_page = nil
	m.addend_page = nil
	delete(m.clearedFields, importjob.FieldEndPage)
}

// SetStatus sets the "status" field.
func (m *ImportJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportJobMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *ImportJobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *ImportJobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *ImportJobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *ImportJobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *ImportJobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetTotalVoters sets the "total_voters" field.
func (m *ImportJobMutation) SetTotalVoters(i int) {
	m.total_voters = &i
	m.addtotal_voters = nil
}

// TotalVoters returns the value of the "total_voters" field in the mutation.
func (m *ImportJobMutation) TotalVoters() (r int, exists bool) {
	v := m.total_voters
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalVoters returns the old "total_voters" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldTotalVoters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalVoters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalVoters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalVoters: %w", err)
	}
	return oldValue.TotalVoters, nil
}

// AddTotalVoters adds i to the "total_voters" field.
func (m *ImportJobMutation) AddTotalVoters(i int) {
	if m.addtotal_voters != nil {
		*m.addtotal_voters += i
	} else {
		m.addtotal_voters = &i
	}
}

// AddedTotalVoters returns the value that was added to the "total_voters" field in this mutation.
func (m *ImportJobMutation) AddedTotalVoters() (r int, exists bool) {
	v := m.addtotal_voters
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalVoters resets all changes to the "total_voters" field.
func (m *ImportJobMutation) ResetTotalVoters() {
	m.total_voters = nil
	m.addtotal_voters = nil
}

// SetLogs sets the "logs" field.
func (m *ImportJobMutation) SetLogs(s string) {
	m.logs = &s
}

// Logs returns the value of the "logs" field in the mutation.
func (m *ImportJobMutation) Logs() (r string, exists bool) {
	v := m.logs
	if v == nil {
		return
	}
	return *v, true
}

// OldLogs returns the old "logs" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldLogs(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogs: %w", err)
	}
	return oldValue.Logs, nil
}

// ClearLogs clears the value of the "logs" field.
func (m *ImportJobMutation) ClearLogs() {
	m.logs = nil
	m.clearedFields[importjob.FieldLogs] = struct{}{}
}

// LogsCleared returns if the "logs" field was cleared in this mutation.
func (m *ImportJobMutation) LogsCleared() bool {
	_, ok := m.clearedFields[importjob.FieldLogs]
	return ok
}

// ResetLogs resets all changes to the "logs" field.
func (m *ImportJobMutation) ResetLogs() {
	m.logs = nil
	delete(m.clearedFields, importjob.FieldLogs)
}

// SetErrorMessage sets the "error_message" field.
func (m *ImportJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ImportJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ImportJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[importjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ImportJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[importjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ImportJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, importjob.FieldErrorMessage)
}

// SetAddedAt sets the "added_at" field.
func (m *ImportJobMutation) SetAddedAt(t time.Time) {
	m.added_at = &t
}

// AddedAt returns the value of the "added_at" field in the mutation.
func (m *ImportJobMutation) AddedAt() (r time.Time, exists bool) {
	v := m.added_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedAt returns the old "added_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldAddedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedAt: %w", err)
	}
	return oldValue.AddedAt, nil
}

// ResetAddedAt resets all changes to the "added_at" field.
func (m *ImportJobMutation) ResetAddedAt() {
	m.added_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ImportJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ImportJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ImportJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ImportJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ImportJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ImportJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[importjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ImportJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ImportJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, importjob.FieldCompletedAt)
}

// ClearAssembly clears the "assembly" edge to the Assembly entity.
func (m *ImportJobMutation) ClearAssembly() {
	m.clearedassembly = true
	m.clearedFields[importjob.FieldAssemblyID] = struct{}{}
}

// AssemblyCleared reports if the "assembly" edge to the Assembly entity was cleared.
func (m *ImportJobMutation) AssemblyCleared() bool {
	return m.clearedassembly
}

// AssemblyIDs returns the "assembly" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssemblyID instead. It exists only for internal usage by the builders.
func (m *ImportJobMutation) AssemblyIDs() (ids []uuid.UUID) {
	if id := m.assembly; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssembly resets all changes to the "assembly" edge.
func (m *ImportJobMutation) ResetAssembly() {
	m.assembly = nil
	m.clearedassembly = false
}

// AddVoterIDs adds the "voters" edge to the Voter entity by ids.
func (m *ImportJobMutation) AddVoterIDs(ids ...uuid.UUID) {
	if m.voters == nil {
		m.voters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.voters[ids[i]] = struct{}{}
	}
}

// ClearVoters clears the "voters" edge to the Voter entity.
func (m *ImportJobMutation) ClearVoters() {
	m.clearedvoters = true
}

// VotersCleared reports if the "voters" edge to the Voter entity was cleared.
func (m *ImportJobMutation) VotersCleared() bool {
	return m.clearedvoters
}

// RemoveVoterIDs removes the "voters" edge to the Voter entity by IDs.
func (m *ImportJobMutation) RemoveVoterIDs(ids ...uuid.UUID) {
	if m.removedvoters == nil {
		m.removedvoters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.voters, ids[i])
		m.removedvoters[ids[i]] = struct{}{}
	}
}

// RemovedVoters returns the removed IDs of the "voters" edge to the Voter entity.
func (m *ImportJobMutation) RemovedVotersIDs() (ids []uuid.UUID) {
	for id := range m.removedvoters {
		ids = append(ids, id)
	}
	return
}

// VotersIDs returns the "voters" edge IDs in the mutation.
func (m *ImportJobMutation) VotersIDs() (ids []uuid.UUID) {
	for id := range m.voters {
		ids = append(ids, id)
	}
	return
}

// ResetVoters resets all changes to the "voters" edge.
func (m *ImportJobMutation) ResetVoters() {
	m.voters = nil
	m.clearedvoters = false
	m.removedvoters = nil
}

// Where appends a list predicates to the ImportJobMutation builder.
func (m *ImportJobMutation) Where(ps ...predicate.ImportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportJob).
func (m *ImportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportJobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.assembly != nil {
		fields = append(fields, importjob.FieldAssemblyID)
	}
	if m.file_name != nil {
		fields = append(fields, importjob.FieldFileName)
	}
	if m.file_path != nil {
		fields = append(fields, importjob.FieldFilePath)
	}
	if m.booth_number != nil {
		fields = append(fields, importjob.FieldBoothNumber)
	}
	if m.booth_name != nil {
		fields = append(fields, importjob.FieldBoothName)
	}
	if m.common_address != nil {
		fields = append(fields, importjob.FieldCommonAddress)
	}
	if m.expected_count != nil {
		fields = append(fields, importjob.FieldExpectedCount)
	}
	if m.start_page != nil {
		fields = append(fields, importjob.FieldStartPage)
	}
	if m.end_page != nil {
		fields = append(fields, importjob.FieldEndPage)
	}
	if m.status != nil {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, importjob.FieldProgress)
	}
	if m.total_voters != nil {
		fields = append(fields, importjob.FieldTotalVoters)
	}
	if m.logs != nil {
		fields = append(fields, importjob.FieldLogs)
	}
	if m.error_message != nil {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.added_at != nil {
		fields = append(fields, importjob.FieldAddedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, importjob.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, importjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldAssemblyID:
		return m.AssemblyID()
	case importjob.FieldFileName:
		return m.FileName()
	case importjob.FieldFilePath:
		return m.FilePath()
	case importjob.FieldBoothNumber:
		return m.BoothNumber()
	case importjob.FieldBoothName:
		return m.BoothName()
	case importjob.FieldCommonAddress:
		return m.CommonAddress()
	case importjob.FieldExpectedCount:
		return m.ExpectedCount()
	case importjob.FieldStartPage:
		return m.StartPage()
	case importjob.FieldEndPage:
		return m.EndPage()
	case importjob.FieldStatus:
		return m.Status()
	case importjob.FieldProgress:
		return m.Progress()
	case importjob.FieldTotalVoters:
		return m.TotalVoters()
	case importjob.FieldLogs:
		return m.Logs()
	case importjob.FieldErrorMessage:
		return m.ErrorMessage()
	case importjob.FieldAddedAt:
		return m.AddedAt()
	case importjob.FieldUpdatedAt:
		return m.UpdatedAt()
	case importjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importjob.FieldAssemblyID:
		return m.OldAssemblyID(ctx)
	case importjob.FieldFileName:
		return m.OldFileName(ctx)
	case importjob.FieldFilePath:
		return m.OldFilePath(ctx)
	case importjob.FieldBoothNumber:
		return m.OldBoothNumber(ctx)
	case importjob.FieldBoothName:
		return m.OldBoothName(ctx)
	case importjob.FieldCommonAddress:
		return m.OldCommonAddress(ctx)
	case importjob.FieldExpectedCount:
		return m.OldExpectedCount(ctx)
	case importjob.FieldStartPage:
		return m.OldStartPage(ctx)
	case importjob.FieldEndPage:
		return m.OldEndPage(ctx)
	case importjob.FieldStatus:
		return m.OldStatus(ctx)
	case importjob.FieldProgress:
		return m.OldProgress(ctx)
	case importjob.FieldTotalVoters:
		return m.OldTotalVoters(ctx)
	case importjob.FieldLogs:
		return m.OldLogs(ctx)
	case importjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case importjob.FieldAddedAt:
		return m.OldAddedAt(ctx)
	case importjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case importjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldAssemblyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssemblyID(v)
		return nil
	case importjob.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case importjob.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case importjob.FieldBoothNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoothNumber(v)
		return nil
	case importjob.FieldBoothName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoothName(v)
		return nil
	case importjob.FieldCommonAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommonAddress(v)
		return nil
	case importjob.FieldExpectedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedCount(v)
		return nil
	case importjob.FieldStartPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartPage(v)
		return nil
	case importjob.FieldEndPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndPage(v)
		return nil
	case importjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case importjob.FieldTotalVoters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalVoters(v)
		return nil
	case importjob.FieldLogs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogs(v)
		return nil
	case importjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case importjob.FieldAddedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedAt(v)
		return nil
	case importjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case importjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportJobMutation) AddedFields() []string {
	var fields []string
	if m.addbooth_number != nil {
		fields = append(fields, importjob.FieldBoothNumber)
	}
	if m.addexpected_count != nil {
		fields = append(fields, importjob.FieldExpectedCount)
	}
	if m.addstart_page != nil {
		fields = append(fields, importjob.FieldStartPage)
	}
	if m.addend_page != nil {
		fields = append(fields, importjob.FieldEndPage)
	}
	if m.addprogress != nil {
		fields = append(fields, importjob.FieldProgress)
	}
	if m.addtotal_voters != nil {
		fields = append(fields, importjob.FieldTotalVoters)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldBoothNumber:
		return m.AddedBoothNumber()
	case importjob.FieldExpectedCount:
		return m.AddedExpectedCount()
	case importjob.FieldStartPage:
		return m.AddedStartPage()
	case importjob.FieldEndPage:
		return m.AddedEndPage()
	case importjob.FieldProgress:
		return m.AddedProgress()
	case importjob.FieldTotalVoters:
		return m.AddedTotalVoters()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldBoothNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoothNumber(v)
		return nil
	case importjob.FieldExpectedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedCount(v)
		return nil
	case importjob.FieldStartPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartPage(v)
		return nil
	case importjob.FieldEndPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndPage(v)
		return nil
	case importjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case importjob.FieldTotalVoters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalVoters(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importjob.FieldBoothNumber) {
		fields = append(fields, importjob.FieldBoothNumber)
	}
	if m.FieldCleared(importjob.FieldBoothName) {
		fields = append(fields, importjob.FieldBoothName)
	}
	if m.FieldCleared(importjob.FieldCommonAddress) {
		fields = append(fields, importjob.FieldCommonAddress)
	}
	if m.FieldCleared(importjob.FieldExpectedCount) {
		fields = append(fields, importjob.FieldExpectedCount)
	}
	if m.FieldCleared(importjob.FieldStartPage) {
		fields = append(fields, importjob.FieldStartPage)
	}
	if m.FieldCleared(importjob.FieldEndPage) {
		fields = append(fields, importjob.FieldEndPage)
	}
	if m.FieldCleared(importjob.FieldLogs) {
		fields = append(fields, importjob.FieldLogs)
	}
	if m.FieldCleared(importjob.FieldErrorMessage) {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.FieldCleared(importjob.FieldCompletedAt) {
		fields = append(fields, importjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportJobMutation) ClearField(name string) error {
	switch name {
	case importjob.FieldBoothNumber:
		m.ClearBoothNumber()
		return nil
	case importjob.FieldBoothName:
		m.ClearBoothName()
		return nil
	case importjob.FieldCommonAddress:
		m.ClearCommonAddress()
		return nil
	case importjob.FieldExpectedCount:
		m.ClearExpectedCount()
		return nil
	case importjob.FieldStartPage:
		m.ClearStartPage()
		return nil
	case importjob.FieldEndPage:
		m.ClearEndPage()
		return nil
	case importjob.FieldLogs:
		m.ClearLogs()
		return nil
	case importjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case importjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportJobMutation) ResetField(name string) error {
	switch name {
	case importjob.FieldAssemblyID:
		m.ResetAssemblyID()
		return nil
	case importjob.FieldFileName:
		m.ResetFileName()
		return nil
	case importjob.FieldFilePath:
		m.ResetFilePath()
		return nil
	case importjob.FieldBoothNumber:
		m.ResetBoothNumber()
		return nil
	case importjob.FieldBoothName:
		m.ResetBoothName()
		return nil
	case importjob.FieldCommonAddress:
		m.ResetCommonAddress()
		return nil
	case importjob.FieldExpectedCount:
		m.ResetExpectedCount()
		return nil
	case importjob.FieldStartPage:
		m.ResetStartPage()
		return nil
	case importjob.FieldEndPage:
		m.ResetEndPage()
		return nil
	case importjob.FieldStatus:
		m.ResetStatus()
		return nil
	case importjob.FieldProgress:
		m.ResetProgress()
		return nil
	case importjob.FieldTotalVoters:
		m.ResetTotalVoters()
		return nil
	case importjob.FieldLogs:
		m.ResetLogs()
		return nil
	case importjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case importjob.FieldAddedAt:
		m.ResetAddedAt()
		return nil
	case importjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case importjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.assembly != nil {
		edges = append(edges, importjob.EdgeAssembly)
	}
	if m.voters != nil {
		edges = append(edges, importjob.EdgeVoters)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case importjob.EdgeAssembly:
		if id := m.assembly; id != nil {
			return []ent.Value{*id}
		}
	case importjob.EdgeVoters:
		ids := make([]ent.Value, 0, len(m.voters))
		for id := range m.voters {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvoters != nil {
		edges = append(edges, importjob.EdgeVoters)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case importjob.EdgeVoters:
		ids := make([]ent.Value, 0, len(m.removedvoters))
		for id := range m.removedvoters {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedassembly {
		edges = append(edges, importjob.EdgeAssembly)
	}
	if m.clearedvoters {
		edges = append(edges, importjob.EdgeVoters)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportJobMutation) EdgeCleared(name string) bool {
	switch name {
	case importjob.EdgeAssembly:
		return m.clearedassembly
	case importjob.EdgeVoters:
		return m.clearedvoters
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportJobMutation) ClearEdge(name string) error {
	switch name {
	case importjob.EdgeAssembly:
		m.ClearAssembly()
		return nil
	}
	return fmt.Errorf("unknown ImportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportJobMutation) ResetEdge(name string) error {
	switch name {
	case importjob.EdgeAssembly:
		m.ResetAssembly()
		return nil
	case importjob.EdgeVoters:
		m.ResetVoters()
		return nil
	}
	return fmt.Errorf("unknown ImportJob edge %s", name)
}

// VoterMutation represents an operation that mutates the Voter nodes in the graph.
type VoterMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	epic              *string
	name              *string
	relative_name     *string
	relation_type     *string
	age               *int
	addage            *int
	gender            *string
	house_number      *string
	booth_number      *int
	addbooth_number   *int
	village           *string
	area              *string
	family_size       *int
	addfamily_size    *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	assembly          *uuid.UUID
	clearedassembly   bool
	import_job        *uuid.UUID
	clearedimport_job bool
	done              bool
	oldValue          func(context.Context) (*Voter, error)
	predicates        []predicate.Voter
}

var _ ent.Mutation = (*VoterMutation)(nil)

// voterOption allows management of the mutation configuration using functional options.
type voterOption func(*VoterMutation)

// newVoterMutation creates new mutation for the Voter entity.
func newVoterMutation(c config, op Op, opts ...voterOption) *VoterMutation {
	m := &VoterMutation{
		config:        c,
		op:            op,
		typ:           TypeVoter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoterID sets the ID field of the mutation.
func withVoterID(id uuid.UUID) voterOption {
	return func(m *VoterMutation) {
		var (
			err   error
			once  sync.Once
			value *Voter
		)
		m.oldValue = func(ctx context.Context) (*Voter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Voter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVoter sets the old Voter of the mutation.
func withVoter(node *Voter) voterOption {
	return func(m *VoterMutation) {
		m.oldValue = func(context.Context) (*Voter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Voter entities.
func (m *VoterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Voter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEpic sets the "epic" field.
func (m *VoterMutation) SetEpic(s string) {
	m.epic = &s
}

// Epic returns the value of the "epic" field in the mutation.
func (m *VoterMutation) Epic() (r string, exists bool) {
	v := m.epic
	if v == nil {
		return
	}
	return *v, true
}

// OldEpic returns the old "epic" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldEpic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpic: %w", err)
	}
	return oldValue.Epic, nil
}

// ResetEpic resets all changes to the "epic" field.
func (m *VoterMutation) ResetEpic() {
	m.epic = nil
}

// SetAssemblyID sets the "assembly_id" field.
func (m *VoterMutation) SetAssemblyID(u uuid.UUID) {
	m.assembly = &u
}

// AssemblyID returns the value of the "assembly_id" field in the mutation.
func (m *VoterMutation) AssemblyID() (r uuid.UUID, exists bool) {
	v := m.assembly
	if v == nil {
		return
	}
	return *v, true
}

// OldAssemblyID returns the old "assembly_id" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldAssemblyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssemblyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssemblyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssemblyID: %w", err)
	}
	return oldValue.AssemblyID, nil
}

// ResetAssemblyID resets all changes to the "assembly_id" field.
func (m *VoterMutation) ResetAssemblyID() {
	m.assembly = nil
}

// SetImportJobID sets the "import_job_id" field.
func (m *VoterMutation) SetImportJobID(u uuid.UUID) {
	m.import_job = &u
}

// ImportJobID returns the value of the "import_job_id" field in the mutation.
func (m *VoterMutation) ImportJobID() (r uuid.UUID, exists bool) {
	v := m.import_job
	if v == nil {
		return
	}
	return *v, true
}

// OldImportJobID returns the old "import_job_id" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldImportJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportJobID: %w", err)
	}
	return oldValue.ImportJobID, nil
}

// ClearImportJobID clears the value of the "import_job_id" field.
func (m *VoterMutation) ClearImportJobID() {
	m.import_job = nil
	m.clearedFields[voter.FieldImportJobID] = struct{}{}
}

// ImportJobIDCleared returns if the "import_job_id" field was cleared in this mutation.
func (m *VoterMutation) ImportJobIDCleared() bool {
	_, ok := m.clearedFields[voter.FieldImportJobID]
	return ok
}

// ResetImportJobID resets all changes to the "import_job_id" field.
func (m *VoterMutation) ResetImportJobID() {
	m.import_job = nil
	delete(m.clearedFields, voter.FieldImportJobID)
}

// SetName sets the "name" field.
func (m *VoterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VoterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VoterMutation) ResetName() {
	m.name = nil
}

// SetRelativeName sets the "relative_name" field.
func (m *VoterMutation) SetRelativeName(s string) {
	m.relative_name = &s
}

// RelativeName returns the value of the "relative_name" field in the mutation.
func (m *VoterMutation) RelativeName() (r string, exists bool) {
	v := m.relative_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRelativeName returns the old "relative_name" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldRelativeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelativeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelativeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelativeName: %w", err)
	}
	return oldValue.RelativeName, nil
}

// ResetRelativeName resets all changes to the "relative_name" field.
func (m *VoterMutation) ResetRelativeName() {
	m.relative_name = nil
}

// SetRelationType sets the "relation_type" field.
func (m *VoterMutation) SetRelationType(s string) {
	m.relation_type = &s
}

// RelationType returns the value of the "relation_type" field in the mutation.
func (m *VoterMutation) RelationType() (r string, exists bool) {
	v := m.relation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationType returns the old "relation_type" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldRelationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationType: %w", err)
	}
	return oldValue.RelationType, nil
}

// ResetRelationType resets all changes to the "relation_type" field.
func (m *VoterMutation) ResetRelationType() {
	m.relation_type = nil
}

// SetAge sets the "age" field.
func (m *VoterMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *VoterMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *VoterMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *VoterMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ResetAge resets all changes to the "age" field.
func (m *VoterMutation) ResetAge() {
	m.age = nil
	m.addage = nil
}

// SetGender sets the "gender" field.
func (m *VoterMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *VoterMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *VoterMutation) ResetGender() {
	m.gender = nil
}

// SetHouseNumber sets the "house_number" field.
func (m *VoterMutation) SetHouseNumber(s string) {
	m.house_number = &s
}

// HouseNumber returns the value of the "house_number" field in the mutation.
func (m *VoterMutation) HouseNumber() (r string, exists bool) {
	v := m.house_number
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseNumber returns the old "house_number" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldHouseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseNumber: %w", err)
	}
	return oldValue.HouseNumber, nil
}

// ResetHouseNumber resets all changes to the "house_number" field.
func (m *VoterMutation) ResetHouseNumber() {
	m.house_number = nil
}

// SetBoothNumber sets the "booth_number" field.
func (m *VoterMutation) SetBoothNumber(i int) {
	m.booth_number = &i
	m.addbooth_number = nil
}

// BoothNumber returns the value of the "booth_number" field in the mutation.
func (m *VoterMutation) BoothNumber() (r int, exists bool) {
	v := m.booth_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBoothNumber returns the old "booth_number" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldBoothNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoothNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoothNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoothNumber: %w", err)
	}
	return oldValue.BoothNumber, nil
}

// AddBoothNumber adds i to the "booth_number" field.
func (m *VoterMutation) AddBoothNumber(i int) {
	if m.addbooth_number != nil {
		*m.addbooth_number += i
	} else {
		m.addbooth_number = &i
	}
}

// AddedBoothNumber returns the value that was added to the "booth_number" field in this mutation.
func (m *VoterMutation) AddedBoothNumber() (r int, exists bool) {
	v := m.addbooth_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetBoothNumber resets all changes to the "booth_number" field.
func (m *VoterMutation) ResetBoothNumber() {
	m.booth_number = nil
	m.addbooth_number = nil
}

// SetVillage sets the "village" field.
func (m *VoterMutation) SetVillage(s string) {
	m.village = &s
}

// Village returns the value of the "village" field in the mutation.
func (m *VoterMutation) Village() (r string, exists bool) {
	v := m.village
	if v == nil {
		return
	}
	return *v, true
}

// OldVillage returns the old "village" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldVillage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVillage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVillage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVillage: %w", err)
	}
	return oldValue.Village, nil
}

// ResetVillage resets all changes to the "village" field.
func (m *VoterMutation) ResetVillage() {
	m.village = nil
}

// SetArea sets the "area" field.
func (m *VoterMutation) SetArea(s string) {
	m.area = &s
}

// Area returns the value of the "area" field in the mutation.
func (m *VoterMutation) Area() (r string, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldArea returns the old "area" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldArea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArea: %w", err)
	}
	return oldValue.Area, nil
}

// ResetArea resets all changes to the "area" field.
func (m *VoterMutation) ResetArea() {
	m.area = nil
}

// SetFamilySize sets the "family_size" field.
func (m *VoterMutation) SetFamilySize(i int) {
	m.family_size = &i
	m.addfamily_size = nil
}

// FamilySize returns the value of the "family_size" field in the mutation.
func (m *VoterMutation) FamilySize() (r int, exists bool) {
	v := m.family_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFamilySize returns the old "family_size" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldFamilySize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFamilySize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFamilySize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFamilySize: %w", err)
	}
	return oldValue.FamilySize, nil
}

// AddFamilySize adds i to the "family_size" field.
func (m *VoterMutation) AddFamilySize(i int) {
	if m.addfamily_size != nil {
		*m.addfamily_size += i
	} else {
		m.addfamily_size = &i
	}
}

// AddedFamilySize returns the value that was added to the "family_size" field in this mutation.
func (m *VoterMutation) AddedFamilySize() (r int, exists bool) {
	v := m.addfamily_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFamilySize resets all changes to the "family_size" field.
func (m *VoterMutation) ResetFamilySize() {
	m.family_size = nil
	m.addfamily_size = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VoterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VoterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VoterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VoterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VoterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Voter entity.
// If the Voter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VoterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAssembly clears the "assembly" edge to the Assembly entity.
func (m *VoterMutation) ClearAssembly() {
	m.clearedassembly = true
	m.clearedFields[voter.FieldAssemblyID] = struct{}{}
}

// AssemblyCleared reports if the "assembly" edge to the Assembly entity was cleared.
func (m *VoterMutation) AssemblyCleared() bool {
	return m.clearedassembly
}

// AssemblyIDs returns the "assembly" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssemblyID instead. It exists only for internal usage by the builders.
func (m *VoterMutation) AssemblyIDs() (ids []uuid.UUID) {
	if id := m.assembly; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssembly resets all changes to the "assembly" edge.
func (m *VoterMutation) ResetAssembly() {
	m.assembly = nil
	m.clearedassembly = false
}

// ClearImportJob clears the "import_job" edge to the ImportJob entity.
func (m *VoterMutation) ClearImportJob() {
	m.clearedimport_job = true
	m.clearedFields[voter.FieldImportJobID] = struct{}{}
}

// ImportJobCleared reports if the "import_job" edge to the ImportJob entity was cleared.
func (m *VoterMutation) ImportJobCleared() bool {
	return m.ImportJobIDCleared() || m.clearedimport_job
}

// ImportJobIDs returns the "import_job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImportJobID instead. It exists only for internal usage by the builders.
func (m *VoterMutation) ImportJobIDs() (ids []uuid.UUID) {
	if id := m.import_job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImportJob resets all changes to the "import_job" edge.
func (m *VoterMutation) ResetImportJob() {
	m.import_job = nil
	m.clearedimport_job = false
}

// Where appends a list predicates to the VoterMutation builder.
func (m *VoterMutation) Where(ps ...predicate.Voter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Voter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Voter).
func (m *VoterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoterMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.epic != nil {
		fields = append(fields, voter.FieldEpic)
	}
	if m.assembly != nil {
		fields = append(fields, voter.FieldAssemblyID)
	}
	if m.import_job != nil {
		fields = append(fields, voter.FieldImportJobID)
	}
	if m.name != nil {
		fields = append(fields, voter.FieldName)
	}
	if m.relative_name != nil {
		fields = append(fields, voter.FieldRelativeName)
	}
	if m.relation_type != nil {
		fields = append(fields, voter.FieldRelationType)
	}
	if m.age != nil {
		fields = append(fields, voter.FieldAge)
	}
	if m.gender != nil {
		fields = append(fields, voter.FieldGender)
	}
	if m.house_number != nil {
		fields = append(fields, voter.FieldHouseNumber)
	}
	if m.booth_number != nil {
		fields = append(fields, voter.FieldBoothNumber)
	}
	if m.village != nil {
		fields = append(fields, voter.FieldVillage)
	}
	if m.area != nil {
		fields = append(fields, voter.FieldArea)
	}
	if m.family_size != nil {
		fields = append(fields, voter.FieldFamilySize)
	}
	if m.created_at != nil {
		fields = append(fields, voter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, voter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case voter.FieldEpic:
		return m.Epic()
	case voter.FieldAssemblyID:
		return m.AssemblyID()
	case voter.FieldImportJobID:
		return m.ImportJobID()
	case voter.FieldName:
		return m.Name()
	case voter.FieldRelativeName:
		return m.RelativeName()
	case voter.FieldRelationType:
		return m.RelationType()
	case voter.FieldAge:
		return m.Age()
	case voter.FieldGender:
		return m.Gender()
	case voter.FieldHouseNumber:
		return m.HouseNumber()
	case voter.FieldBoothNumber:
		return m.BoothNumber()
	case voter.FieldVillage:
		return m.Village()
	case voter.FieldArea:
		return m.Area()
	case voter.FieldFamilySize:
		return m.FamilySize()
	case voter.FieldCreatedAt:
		return m.CreatedAt()
	case voter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case voter.FieldEpic:
		return m.OldEpic(ctx)
	case voter.FieldAssemblyID:
		return m.OldAssemblyID(ctx)
	case voter.FieldImportJobID:
		return m.OldImportJobID(ctx)
	case voter.FieldName:
		return m.OldName(ctx)
	case voter.FieldRelativeName:
		return m.OldRelativeName(ctx)
	case voter.FieldRelationType:
		return m.OldRelationType(ctx)
	case voter.FieldAge:
		return m.OldAge(ctx)
	case voter.FieldGender:
		return m.OldGender(ctx)
	case voter.FieldHouseNumber:
		return m.OldHouseNumber(ctx)
	case voter.FieldBoothNumber:
		return m.OldBoothNumber(ctx)
	case voter.FieldVillage:
		return m.OldVillage(ctx)
	case voter.FieldArea:
		return m.OldArea(ctx)
	case voter.FieldFamilySize:
		return m.OldFamilySize(ctx)
	case voter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case voter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Voter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case voter.FieldEpic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpic(v)
		return nil
	case voter.FieldAssemblyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssemblyID(v)
		return nil
	case voter.FieldImportJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportJobID(v)
		return nil
	case voter.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case voter.FieldRelativeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelativeName(v)
		return nil
	case voter.FieldRelationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationType(v)
		return nil
	case voter.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case voter.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case voter.FieldHouseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseNumber(v)
		return nil
	case voter.FieldBoothNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoothNumber(v)
		return nil
	case voter.FieldVillage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVillage(v)
		return nil
	case voter.FieldArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArea(v)
		return nil
	case voter.FieldFamilySize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFamilySize(v)
		return nil
	case voter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case voter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Voter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoterMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, voter.FieldAge)
	}
	if m.addbooth_number != nil {
		fields = append(fields, voter.FieldBoothNumber)
	}
	if m.addfamily_size != nil {
		fields = append(fields, voter.FieldFamilySize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case voter.FieldAge:
		return m.AddedAge()
	case voter.FieldBoothNumber:
		return m.AddedBoothNumber()
	case voter.FieldFamilySize:
		return m.AddedFamilySize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case voter.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	case voter.FieldBoothNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoothNumber(v)
		return nil
	case voter.FieldFamilySize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFamilySize(v)
		return nil
	}
	return fmt.Errorf("unknown Voter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(voter.FieldImportJobID) {
		fields = append(fields, voter.FieldImportJobID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoterMutation) ClearField(name string) error {
	switch name {
	case voter.FieldImportJobID:
		m.ClearImportJobID()
		return nil
	}
	return fmt.Errorf("unknown Voter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoterMutation) ResetField(name string) error {
	switch name {
	case voter.FieldEpic:
		m.ResetEpic()
		return nil
	case voter.FieldAssemblyID:
		m.ResetAssemblyID()
		return nil
	case voter.FieldImportJobID:
		m.ResetImportJobID()
		return nil
	case voter.FieldName:
		m.ResetName()
		return nil
	case voter.FieldRelativeName:
		m.ResetRelativeName()
		return nil
	case voter.FieldRelationType:
		m.ResetRelationType()
		return nil
	case voter.FieldAge:
		m.ResetAge()
		return nil
	case voter.FieldGender:
		m.ResetGender()
		return nil
	case voter.FieldHouseNumber:
		m.ResetHouseNumber()
		return nil
	case voter.FieldBoothNumber:
		m.ResetBoothNumber()
		return nil
	case voter.FieldVillage:
		m.ResetVillage()
		return nil
	case voter.FieldArea:
		m.ResetArea()
		return nil
	case voter.FieldFamilySize:
		m.ResetFamilySize()
		return nil
	case voter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case voter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Voter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoterMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.assembly != nil {
		edges = append(edges, voter.EdgeAssembly)
	}
	if m.import_job != nil {
		edges = append(edges, voter.EdgeImportJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case voter.EdgeAssembly:
		if id := m.assembly; id != nil {
			return []ent.Value{*id}
		}
	case voter.EdgeImportJob:
		if id := m.import_job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedassembly {
		edges = append(edges, voter.EdgeAssembly)
	}
	if m.clearedimport_job {
		edges = append(edges, voter.EdgeImportJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoterMutation) EdgeCleared(name string) bool {
	switch name {
	case voter.EdgeAssembly:
		return m.clearedassembly
	case voter.EdgeImportJob:
		return m.clearedimport_job
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoterMutation) ClearEdge(name string) error {
	switch name {
	case voter.EdgeAssembly:
		m.ClearAssembly()
		return nil
	case voter.EdgeImportJob:
		m.ClearImportJob()
		return nil
	}
	return fmt.Errorf("unknown Voter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoterMutation) ResetEdge(name string) error {
	switch name {
	case voter.EdgeAssembly:
		m.ResetAssembly()
		return nil
	case voter.EdgeImportJob:
		m.ResetImportJob()
		return nil
	}
	return fmt.Errorf("unknown Voter edge %s", name)
}
