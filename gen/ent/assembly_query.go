// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// AssemblyQuery is the builder for querying Assembly entities.
type AssemblyQuery struct {
	config
	ctx            *QueryContext
	order          []assembly.OrderOption
	inters         []Interceptor
	predicates     []predicate.Assembly
	withVoters     *VoterQuery
	withImportJobs *ImportJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AssemblyQuery builder.
func (_q *AssemblyQuery) Where(ps ...predicate.Assembly) *AssemblyQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AssemblyQuery) Limit(limit int) *AssemblyQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AssemblyQuery) Offset(offset int) *AssemblyQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AssemblyQuery) Unique(unique bool) *AssemblyQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AssemblyQuery) Order(o ...assembly.OrderOption) *AssemblyQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVoters chains the current query on the "voters" edge.
func (_q *AssemblyQuery) QueryVoters() *VoterQuery {
	query := (&VoterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assembly.Table, assembly.FieldID, selector),
			sqlgraph.To(voter.Table, voter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assembly.VotersTable, assembly.VotersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryImportJobs chains the current query on the "import_jobs" edge.
func (_q *AssemblyQuery) QueryImportJobs() *ImportJobQuery {
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
			sqlgraph.From(assembly.Table, assembly.FieldID, selector),
			sqlgraph.To(importjob.Table, importjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assembly.ImportJobsTable, assembly.ImportJobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Assembly entity from the query.
// Returns a *NotFoundError when no Assembly was found.
func (_q *AssemblyQuery) First(ctx context.Context) (*Assembly, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{assembly.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AssemblyQuery) FirstX(ctx context.Context) *Assembly {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Assembly ID from the query.
// Returns a *NotFoundError when no Assembly ID was found.
func (_q *AssemblyQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{assembly.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AssemblyQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Assembly entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Assembly entity is found.
// Returns a *NotFoundError when no Assembly entities are found.
func (_q *AssemblyQuery) Only(ctx context.Context) (*Assembly, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{assembly.Label}
	default:
		return nil, &NotSingularError{assembly.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AssemblyQuery) OnlyX(ctx context.Context) *Assembly {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Assembly ID in the query.
// Returns a *NotSingularError when more than one Assembly ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AssemblyQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{assembly.Label}
	default:
		err = &NotSingularError{assembly.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AssemblyQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Assemblies.
func (_q *AssemblyQuery) All(ctx context.Context) ([]*Assembly, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Assembly, *AssemblyQuery]()
	return withInterceptors[[]*Assembly](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AssemblyQuery) AllX(ctx context.Context) []*Assembly {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Assembly IDs.
func (_q *AssemblyQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(assembly.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AssemblyQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AssemblyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AssemblyQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AssemblyQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AssemblyQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AssemblyQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AssemblyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AssemblyQuery) Clone() *AssemblyQuery {
	if _q == nil {
		return nil
	}
	return &AssemblyQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]assembly.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Assembly{}, _q.predicates...),
		withVoters:     _q.withVoters.Clone(),
		withImportJobs: _q.withImportJobs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVoters tells the query-builder to eager-load the nodes that are connected to
// the "voters" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssemblyQuery) WithVoters(opts ...func(*VoterQuery)) *AssemblyQuery {
	query := (&VoterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVoters = query
	return _q
}

// WithImportJobs tells the query-builder to eager-load the nodes that are connected to
// the "import_jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssemblyQuery) WithImportJobs(opts ...func(*ImportJobQuery)) *AssemblyQuery {
	query := (&ImportJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withImportJobs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Assembly.Query().
//		GroupBy(assembly.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AssemblyQuery) GroupBy(field string, fields ...string) *AssemblyGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AssemblyGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = assembly.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Assembly.Query().
//		Select(assembly.FieldName).
//		Scan(ctx, &v)
func (_q *AssemblyQuery) Select(fields ...string) *AssemblySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AssemblySelect{AssemblyQuery: _q}
	sbuild.label = assembly.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AssemblySelect configured with the given aggregations.
func (_q *AssemblyQuery) Aggregate(fns ...AggregateFunc) *AssemblySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AssemblyQuery) prepareQuery(ctx context.Context) error {
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
		if !assembly.ValidColumn(f) {
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

func (_q *AssemblyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Assembly, error) {
	var (
		nodes       = []*Assembly{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withVoters != nil,
			_q.withImportJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Assembly).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Assembly{config: _q.config}
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
	if query := _q.withVoters; query != nil {
		if err := _q.loadVoters(ctx, query, nodes,
			func(n *Assembly) { n.Edges.Voters = []*Voter{} },
			func(n *Assembly, e *Voter) { n.Edges.Voters = append(n.Edges.Voters, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withImportJobs; query != nil {
		if err := _q.loadImportJobs(ctx, query, nodes,
			func(n *Assembly) { n.Edges.ImportJobs = []*ImportJob{} },
			func(n *Assembly, e *ImportJob) { n.Edges.ImportJobs = append(n.Edges.ImportJobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AssemblyQuery) loadVoters(ctx context.Context, query *VoterQuery, nodes []*Assembly, init func(*Assembly), assign func(*Assembly, *Voter)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Assembly)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(voter.FieldAssemblyID)
	}
	query.Where(predicate.Voter(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(assembly.VotersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AssemblyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "assembly_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AssemblyQuery) loadImportJobs(ctx context.Context, query *ImportJobQuery, nodes []*Assembly, init func(*Assembly), assign func(*Assembly, *ImportJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Assembly)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(importjob.FieldAssemblyID)
	}
	query.Where(predicate.ImportJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(assembly.ImportJobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AssemblyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "assembly_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AssemblyQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AssemblyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(assembly.Table, assembly.Columns, sqlgraph.NewFieldSpec(assembly.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assembly.FieldID)
		for i := range fields {
			if fields[i] != assembly.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *AssemblyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(assembly.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = assembly.Columns
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

// AssemblyGroupBy is the group-by builder for Assembly entities.
type AssemblyGroupBy struct {
	selector
	build *AssemblyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AssemblyGroupBy) Aggregate(fns ...AggregateFunc) *AssemblyGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AssemblyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssemblyQuery, *AssemblyGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AssemblyGroupBy) sqlScan(ctx context.Context, root *AssemblyQuery, v any) error {
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

// AssemblySelect is the builder for selecting fields of Assembly entities.
type AssemblySelect struct {
	*AssemblyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AssemblySelect) Aggregate(fns ...AggregateFunc) *AssemblySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AssemblySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssemblyQuery, *AssemblySelect](ctx, _s.AssemblyQuery, _s, _s.inters, v)
}

func (_s *AssemblySelect) sqlScan(ctx context.Context, root *AssemblyQuery, v any) error {
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
