// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/gen/ent/assembly"
	"github.com/voteraction/voter-ingest/gen/ent/importjob"
	"github.com/voteraction/voter-ingest/gen/ent/predicate"
	"github.com/voteraction/voter-ingest/gen/ent/voter"
)

// VoterQuery is the builder for querying Voter entities.
type VoterQuery struct {
	config
	ctx           *QueryContext
	order         []voter.OrderOption
	inters        []Interceptor
	predicates    []predicate.Voter
	withAssembly  *AssemblyQuery
	withImportJob *ImportJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VoterQuery builder.
func (_q *VoterQuery) Where(ps ...predicate.Voter) *VoterQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *VoterQuery) Limit(limit int) *VoterQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *VoterQuery) Offset(offset int) *VoterQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *VoterQuery) Unique(unique bool) *VoterQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *VoterQuery) Order(o ...voter.OrderOption) *VoterQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAssembly chains the current query on the "assembly" edge.
func (_q *VoterQuery) QueryAssembly() *AssemblyQuery {
	query := (&AssemblyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(voter.Table, voter.FieldID, selector),
			sqlgraph.To(assembly.Table, assembly.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, voter.AssemblyTable, voter.AssemblyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryImportJob chains the current query on the "import_job" edge.
func (_q *VoterQuery) QueryImportJob() *ImportJobQuery {
	query := (&ImportJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(voter.Table, voter.FieldID, selector),
			sqlgraph.To(importjob.Table, importjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, voter.ImportJobTable, voter.ImportJobColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Voter entity from the query.
// Returns a *NotFoundError when no Voter was found.
func (_q *VoterQuery) First(ctx context.Context) (*Voter, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{voter.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *VoterQuery) FirstX(ctx context.Context) *Voter {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Voter ID from the query.
// Returns a *NotFoundError when no Voter ID was found.
func (_q *VoterQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{voter.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *VoterQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Voter entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Voter entity is found.
// Returns a *NotFoundError when no Voter entities are found.
func (_q *VoterQuery) Only(ctx context.Context) (*Voter, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{voter.Label}
	default:
		return nil, &NotSingularError{voter.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *VoterQuery) OnlyX(ctx context.Context) *Voter {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Voter ID in the query.
// Returns a *NotSingularError when more than one Voter ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *VoterQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{voter.Label}
	default:
		err = &NotSingularError{voter.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *VoterQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Voters.
func (_q *VoterQuery) All(ctx context.Context) ([]*Voter, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Voter, *VoterQuery]()
	return withInterceptors[[]*Voter](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *VoterQuery) AllX(ctx context.Context) []*Voter {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Voter IDs.
func (_q *VoterQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(voter.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *VoterQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *VoterQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*VoterQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *VoterQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *VoterQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *VoterQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VoterQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *VoterQuery) Clone() *VoterQuery {
	if _q == nil {
		return nil
	}
	return &VoterQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]voter.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Voter{}, _q.predicates...),
		withAssembly:  _q.withAssembly.Clone(),
		withImportJob: _q.withImportJob.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAssembly tells the query-builder to eager-load the nodes that are connected to
// the "assembly" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VoterQuery) WithAssembly(opts ...func(*AssemblyQuery)) *VoterQuery {
	query := (&AssemblyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssembly = query
	return _q
}

// WithImportJob tells the query-builder to eager-load the nodes that are connected to
// the "import_job" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VoterQuery) WithImportJob(opts ...func(*ImportJobQuery)) *VoterQuery {
	query := (&ImportJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withImportJob = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Epic string `json:"epic,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Voter.Query().
//		GroupBy(voter.FieldEpic).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *VoterQuery) GroupBy(field string, fields ...string) *VoterGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VoterGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = voter.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Epic string `json:"epic,omitempty"`
//	}
//
//	client.Voter.Query().
//		Select(voter.FieldEpic).
//		Scan(ctx, &v)
func (_q *VoterQuery) Select(fields ...string) *VoterSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &VoterSelect{VoterQuery: _q}
	sbuild.label = voter.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VoterSelect configured with the given aggregations.
func (_q *VoterQuery) Aggregate(fns ...AggregateFunc) *VoterSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *VoterQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !voter.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *VoterQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Voter, error) {
	var (
		nodes       = []*Voter{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withAssembly != nil,
			_q.withImportJob != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Voter).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Voter{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAssembly; query != nil {
		if err := _q.loadAssembly(ctx, query, nodes, nil,
			func(n *Voter, e *Assembly) { n.Edges.Assembly = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withImportJob; query != nil {
		if err := _q.loadImportJob(ctx, query, nodes, nil,
			func(n *Voter, e *ImportJob) { n.Edges.ImportJob = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *VoterQuery) loadAssembly(ctx context.Context, query *AssemblyQuery, nodes []*Voter, init func(*Voter), assign func(*Voter, *Assembly)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Voter)
	for i := range nodes {
		fk := nodes[i].AssemblyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(assembly.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "assembly_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *VoterQuery) loadImportJob(ctx context.Context, query *ImportJobQuery, nodes []*Voter, init func(*Voter), assign func(*Voter, *ImportJob)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Voter)
	for i := range nodes {
		if nodes[i].ImportJobID == nil {
			continue
		}
		fk := *nodes[i].ImportJobID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(importjob.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "import_job_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *VoterQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *VoterQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(voter.Table, voter.Columns, sqlgraph.NewFieldSpec(voter.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, voter.FieldID)
		for i := range fields {
			if fields[i] != voter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAssembly != nil {
			_spec.Node.AddColumnOnce(voter.FieldAssemblyID)
		}
		if _q.withImportJob != nil {
			_spec.Node.AddColumnOnce(voter.FieldImportJobID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *VoterQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(voter.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = voter.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VoterGroupBy is the group-by builder for Voter entities.
type VoterGroupBy struct {
	selector
	build *VoterQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *VoterGroupBy) Aggregate(fns ...AggregateFunc) *VoterGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *VoterGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VoterQuery, *VoterGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *VoterGroupBy) sqlScan(ctx context.Context, root *VoterQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VoterSelect is the builder for selecting fields of Voter entities.
type VoterSelect struct {
	*VoterQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *VoterSelect) Aggregate(fns ...AggregateFunc) *VoterSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *VoterSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VoterQuery, *VoterSelect](ctx, _s.VoterQuery, _s, _s.inters, v)
}

func (_s *VoterSelect) sqlScan(ctx context.Context, root *VoterQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
