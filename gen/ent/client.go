// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voteraction/voter-ingest/gen/ent/assembly"
	"github.com/voteraction/voter-ingest/gen/ent/importjob"
	"github.com/voteraction/voter-ingest/gen/ent/voter"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Assembly is the client for interacting with the Assembly builders.
	Assembly *AssemblyClient
	// ImportJob is the client for interacting with the ImportJob builders.
	ImportJob *ImportJobClient
	// Voter is the client for interacting with the Voter builders.
	Voter *VoterClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Assembly = NewAssemblyClient(c.config)
	c.ImportJob = NewImportJobClient(c.config)
	c.Voter = NewVoterClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		Assembly:  NewAssemblyClient(cfg),
		ImportJob: NewImportJobClient(cfg),
		Voter:     NewVoterClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		Assembly:  NewAssemblyClient(cfg),
		ImportJob: NewImportJobClient(cfg),
		Voter:     NewVoterClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Assembly.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Assembly.Use(hooks...)
	c.ImportJob.Use(hooks...)
	c.Voter.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Assembly.Intercept(interceptors...)
	c.ImportJob.Intercept(interceptors...)
	c.Voter.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssemblyMutation:
		return c.Assembly.mutate(ctx, m)
	case *ImportJobMutation:
		return c.ImportJob.mutate(ctx, m)
	case *VoterMutation:
		return c.Voter.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssemblyClient is a client for the Assembly schema.
type AssemblyClient struct {
	config
}

// NewAssemblyClient returns a client for the Assembly from the given config.
func NewAssemblyClient(c config) *AssemblyClient {
	return &AssemblyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assembly.Hooks(f(g(h())))`.
func (c *AssemblyClient) Use(hooks ...Hook) {
	c.hooks.Assembly = append(c.hooks.Assembly, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assembly.Intercept(f(g(h())))`.
func (c *AssemblyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assembly = append(c.inters.Assembly, interceptors...)
}

// Create returns a builder for creating a Assembly entity.
func (c *AssemblyClient) Create() *AssemblyCreate {
	mutation := newAssemblyMutation(c.config, OpCreate)
	return &AssemblyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assembly entities.
func (c *AssemblyClient) CreateBulk(builders ...*AssemblyCreate) *AssemblyCreateBulk {
	return &AssemblyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssemblyClient) MapCreateBulk(slice any, setFunc func(*AssemblyCreate, int)) *AssemblyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssemblyCreateBulk{err: fmt.Errorf("calling to AssemblyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssemblyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssemblyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assembly.
func (c *AssemblyClient) Update() *AssemblyUpdate {
	mutation := newAssemblyMutation(c.config, OpUpdate)
	return &AssemblyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssemblyClient) UpdateOne(_m *Assembly) *AssemblyUpdateOne {
	mutation := newAssemblyMutation(c.config, OpUpdateOne, withAssembly(_m))
	return &AssemblyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssemblyClient) UpdateOneID(id uuid.UUID) *AssemblyUpdateOne {
	mutation := newAssemblyMutation(c.config, OpUpdateOne, withAssemblyID(id))
	return &AssemblyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assembly.
func (c *AssemblyClient) Delete() *AssemblyDelete {
	mutation := newAssemblyMutation(c.config, OpDelete)
	return &AssemblyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssemblyClient) DeleteOne(_m *Assembly) *AssemblyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssemblyClient) DeleteOneID(id uuid.UUID) *AssemblyDeleteOne {
	builder := c.Delete().Where(assembly.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssemblyDeleteOne{builder}
}

// Query returns a query builder for Assembly.
func (c *AssemblyClient) Query() *AssemblyQuery {
	return &AssemblyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssembly},
		inters: c.Interceptors(),
	}
}

// Get returns a Assembly entity by its id.
func (c *AssemblyClient) Get(ctx context.Context, id uuid.UUID) (*Assembly, error) {
	return c.Query().Where(assembly.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssemblyClient) GetX(ctx context.Context, id uuid.UUID) *Assembly {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVoters queries the voters edge of a Assembly.
func (c *AssemblyClient) QueryVoters(_m *Assembly) *VoterQuery {
	query := (&VoterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assembly.Table, assembly.FieldID, id),
			sqlgraph.To(voter.Table, voter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assembly.VotersTable, assembly.VotersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImportJobs queries the import_jobs edge of a Assembly.
func (c *AssemblyClient) QueryImportJobs(_m *Assembly) *ImportJobQuery {
	query := (&ImportJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assembly.Table, assembly.FieldID, id),
			sqlgraph.To(importjob.Table, importjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assembly.ImportJobsTable, assembly.ImportJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssemblyClient) Hooks() []Hook {
	return c.hooks.Assembly
}

// Interceptors returns the client interceptors.
func (c *AssemblyClient) Interceptors() []Interceptor {
	return c.inters.Assembly
}

func (c *AssemblyClient) mutate(ctx context.Context, m *AssemblyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssemblyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssemblyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssemblyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssemblyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Assembly mutation op: %q", m.Op())
	}
}

// ImportJobClient is a client for the ImportJob schema.
type ImportJobClient struct {
	config
}

// NewImportJobClient returns a client for the ImportJob from the given config.
func NewImportJobClient(c config) *ImportJobClient {
	return &ImportJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importjob.Hooks(f(g(h())))`.
func (c *ImportJobClient) Use(hooks ...Hook) {
	c.hooks.ImportJob = append(c.hooks.ImportJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importjob.Intercept(f(g(h())))`.
func (c *ImportJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportJob = append(c.inters.ImportJob, interceptors...)
}

// Create returns a builder for creating a ImportJob entity.
func (c *ImportJobClient) Create() *ImportJobCreate {
	mutation := newImportJobMutation(c.config, OpCreate)
	return &ImportJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportJob entities.
func (c *ImportJobClient) CreateBulk(builders ...*ImportJobCreate) *ImportJobCreateBulk {
	return &ImportJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportJobClient) MapCreateBulk(slice any, setFunc func(*ImportJobCreate, int)) *ImportJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportJobCreateBulk{err: fmt.Errorf("calling to ImportJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportJob.
func (c *ImportJobClient) Update() *ImportJobUpdate {
	mutation := newImportJobMutation(c.config, OpUpdate)
	return &ImportJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportJobClient) UpdateOne(_m *ImportJob) *ImportJobUpdateOne {
	mutation := newImportJobMutation(c.config, OpUpdateOne, withImportJob(_m))
	return &ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportJobClient) UpdateOneID(id uuid.UUID) *ImportJobUpdateOne {
	mutation := newImportJobMutation(c.config, OpUpdateOne, withImportJobID(id))
	return &ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportJob.
func (c *ImportJobClient) Delete() *ImportJobDelete {
	mutation := newImportJobMutation(c.config, OpDelete)
	return &ImportJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportJobClient) DeleteOne(_m *ImportJob) *ImportJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportJobClient) DeleteOneID(id uuid.UUID) *ImportJobDeleteOne {
	builder := c.Delete().Where(importjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportJobDeleteOne{builder}
}

// Query returns a query builder for ImportJob.
func (c *ImportJobClient) Query() *ImportJobQuery {
	return &ImportJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportJob entity by its id.
func (c *ImportJobClient) Get(ctx context.Context, id uuid.UUID) (*ImportJob, error) {
	return c.Query().Where(importjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportJobClient) GetX(ctx context.Context, id uuid.UUID) *ImportJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssembly queries the assembly edge of a ImportJob.
func (c *ImportJobClient) QueryAssembly(_m *ImportJob) *AssemblyQuery {
	query := (&AssemblyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(importjob.Table, importjob.FieldID, id),
			sqlgraph.To(assembly.Table, assembly.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, importjob.AssemblyTable, importjob.AssemblyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVoters queries the voters edge of a ImportJob.
func (c *ImportJobClient) QueryVoters(_m *ImportJob) *VoterQuery {
	query := (&VoterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(importjob.Table, importjob.FieldID, id),
			sqlgraph.To(voter.Table, voter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, importjob.VotersTable, importjob.VotersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ImportJobClient) Hooks() []Hook {
	return c.hooks.ImportJob
}

// Interceptors returns the client interceptors.
func (c *ImportJobClient) Interceptors() []Interceptor {
	return c.inters.ImportJob
}

func (c *ImportJobClient) mutate(ctx context.Context, m *ImportJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportJob mutation op: %q", m.Op())
	}
}

// VoterClient is a client for the Voter schema.
type VoterClient struct {
	config
}

// NewVoterClient returns a client for the Voter from the given config.
func NewVoterClient(c config) *VoterClient {
	return &VoterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `voter.Hooks(f(g(h())))`.
func (c *VoterClient) Use(hooks ...Hook) {
	c.hooks.Voter = append(c.hooks.Voter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `voter.Intercept(f(g(h())))`.
func (c *VoterClient) Intercept(interceptors ...Interceptor) {
	c.inters.Voter = append(c.inters.Voter, interceptors...)
}

// Create returns a builder for creating a Voter entity.
func (c *VoterClient) Create() *VoterCreate {
	mutation := newVoterMutation(c.config, OpCreate)
	return &VoterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Voter entities.
func (c *VoterClient) CreateBulk(builders ...*VoterCreate) *VoterCreateBulk {
	return &VoterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoterClient) MapCreateBulk(slice any, setFunc func(*VoterCreate, int)) *VoterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoterCreateBulk{err: fmt.Errorf("calling to VoterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Voter.
func (c *VoterClient) Update() *VoterUpdate {
	mutation := newVoterMutation(c.config, OpUpdate)
	return &VoterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoterClient) UpdateOne(_m *Voter) *VoterUpdateOne {
	mutation := newVoterMutation(c.config, OpUpdateOne, withVoter(_m))
	return &VoterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoterClient) UpdateOneID(id uuid.UUID) *VoterUpdateOne {
	mutation := newVoterMutation(c.config, OpUpdateOne, withVoterID(id))
	return &VoterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Voter.
func (c *VoterClient) Delete() *VoterDelete {
	mutation := newVoterMutation(c.config, OpDelete)
	return &VoterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoterClient) DeleteOne(_m *Voter) *VoterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoterClient) DeleteOneID(id uuid.UUID) *VoterDeleteOne {
	builder := c.Delete().Where(voter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoterDeleteOne{builder}
}

// Query returns a query builder for Voter.
func (c *VoterClient) Query() *VoterQuery {
	return &VoterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVoter},
		inters: c.Interceptors(),
	}
}

// Get returns a Voter entity by its id.
func (c *VoterClient) Get(ctx context.Context, id uuid.UUID) (*Voter, error) {
	return c.Query().Where(voter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoterClient) GetX(ctx context.Context, id uuid.UUID) *Voter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssembly queries the assembly edge of a Voter.
func (c *VoterClient) QueryAssembly(_m *Voter) *AssemblyQuery {
	query := (&AssemblyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(voter.Table, voter.FieldID, id),
			sqlgraph.To(assembly.Table, assembly.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, voter.AssemblyTable, voter.AssemblyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImportJob queries the import_job edge of a Voter.
func (c *VoterClient) QueryImportJob(_m *Voter) *ImportJobQuery {
	query := (&ImportJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(voter.Table, voter.FieldID, id),
			sqlgraph.To(importjob.Table, importjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, voter.ImportJobTable, voter.ImportJobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VoterClient) Hooks() []Hook {
	return c.hooks.Voter
}

// Interceptors returns the client interceptors.
func (c *VoterClient) Interceptors() []Interceptor {
	return c.inters.Voter
}

func (c *VoterClient) mutate(ctx context.Context, m *VoterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Voter mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Assembly, ImportJob, Voter []ent.Hook
	}
	inters struct {
		Assembly, ImportJob, Voter []ent.Interceptor
	}
)
