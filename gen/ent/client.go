// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/extractjob"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradeentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/loadentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/sourcefile"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// GradeEntry is the client for interacting with the GradeEntry builders.
	GradeEntry *GradeEntryClient
	// GradeReport is the client for interacting with the GradeReport builders.
	GradeReport *GradeReportClient
	// LoadEntry is the client for interacting with the LoadEntry builders.
	LoadEntry *LoadEntryClient
	// Personnel is the client for interacting with the Personnel builders.
	Personnel *PersonnelClient
	// SourceFile is the client for interacting with the SourceFile builders.
	SourceFile *SourceFileClient
	// Student is the client for interacting with the Student builders.
	Student *StudentClient
	// SubjectEntry is the client for interacting with the SubjectEntry builders.
	SubjectEntry *SubjectEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.GradeEntry = NewGradeEntryClient(c.config)
	c.GradeReport = NewGradeReportClient(c.config)
	c.LoadEntry = NewLoadEntryClient(c.config)
	c.Personnel = NewPersonnelClient(c.config)
	c.SourceFile = NewSourceFileClient(c.config)
	c.Student = NewStudentClient(c.config)
	c.SubjectEntry = NewSubjectEntryClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		ExtractJob:   NewExtractJobClient(cfg),
		GradeEntry:   NewGradeEntryClient(cfg),
		GradeReport:  NewGradeReportClient(cfg),
		LoadEntry:    NewLoadEntryClient(cfg),
		Personnel:    NewPersonnelClient(cfg),
		SourceFile:   NewSourceFileClient(cfg),
		Student:      NewStudentClient(cfg),
		SubjectEntry: NewSubjectEntryClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		ExtractJob:   NewExtractJobClient(cfg),
		GradeEntry:   NewGradeEntryClient(cfg),
		GradeReport:  NewGradeReportClient(cfg),
		LoadEntry:    NewLoadEntryClient(cfg),
		Personnel:    NewPersonnelClient(cfg),
		SourceFile:   NewSourceFileClient(cfg),
		Student:      NewStudentClient(cfg),
		SubjectEntry: NewSubjectEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractJob.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ExtractJob, c.GradeEntry, c.GradeReport, c.LoadEntry, c.Personnel,
		c.SourceFile, c.Student, c.SubjectEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ExtractJob, c.GradeEntry, c.GradeReport, c.LoadEntry, c.Personnel,
		c.SourceFile, c.Student, c.SubjectEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *GradeEntryMutation:
		return c.GradeEntry.mutate(ctx, m)
	case *GradeReportMutation:
		return c.GradeReport.mutate(ctx, m)
	case *LoadEntryMutation:
		return c.LoadEntry.mutate(ctx, m)
	case *PersonnelMutation:
		return c.Personnel.mutate(ctx, m)
	case *SourceFileMutation:
		return c.SourceFile.mutate(ctx, m)
	case *StudentMutation:
		return c.Student.mutate(ctx, m)
	case *SubjectEntryMutation:
		return c.SubjectEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractJobClient is a client for the ExtractJob schema.
type ExtractJobClient struct {
	config
}

// NewExtractJobClient returns a client for the ExtractJob from the given config.
func NewExtractJobClient(c config) *ExtractJobClient {
	return &ExtractJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractjob.Hooks(f(g(h())))`.
func (c *ExtractJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractJob = append(c.hooks.ExtractJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractjob.Intercept(f(g(h())))`.
func (c *ExtractJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractJob = append(c.inters.ExtractJob, interceptors...)
}

// Create returns a builder for creating a ExtractJob entity.
func (c *ExtractJobClient) Create() *ExtractJobCreate {
	mutation := newExtractJobMutation(c.config, OpCreate)
	return &ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractJob entities.
func (c *ExtractJobClient) CreateBulk(builders ...*ExtractJobCreate) *ExtractJobCreateBulk {
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractJobClient) MapCreateBulk(slice any, setFunc func(*ExtractJobCreate, int)) *ExtractJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractJobCreateBulk{err: fmt.Errorf("calling to ExtractJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractJob.
func (c *ExtractJobClient) Update() *ExtractJobUpdate {
	mutation := newExtractJobMutation(c.config, OpUpdate)
	return &ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractJobClient) UpdateOne(_m *ExtractJob) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJob(_m))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractJobClient) UpdateOneID(id uuid.UUID) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJobID(id))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractJob.
func (c *ExtractJobClient) Delete() *ExtractJobDelete {
	mutation := newExtractJobMutation(c.config, OpDelete)
	return &ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractJobClient) DeleteOne(_m *ExtractJob) *ExtractJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractJobClient) DeleteOneID(id uuid.UUID) *ExtractJobDeleteOne {
	builder := c.Delete().Where(extractjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractJobDeleteOne{builder}
}

// Query returns a query builder for ExtractJob.
func (c *ExtractJobClient) Query() *ExtractJobQuery {
	return &ExtractJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractJob entity by its id.
func (c *ExtractJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractJob, error) {
	return c.Query().Where(extractjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ExtractJob.
func (c *ExtractJobClient) QueryFile(_m *ExtractJob) *SourceFileQuery {
	query := (&SourceFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(sourcefile.Table, sourcefile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractJobClient) Hooks() []Hook {
	return c.hooks.ExtractJob
}

// Interceptors returns the client interceptors.
func (c *ExtractJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractJob
}

func (c *ExtractJobClient) mutate(ctx context.Context, m *ExtractJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractJob mutation op: %q", m.Op())
	}
}

// GradeEntryClient is a client for the GradeEntry schema.
type GradeEntryClient struct {
	config
}

// NewGradeEntryClient returns a client for the GradeEntry from the given config.
func NewGradeEntryClient(c config) *GradeEntryClient {
	return &GradeEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gradeentry.Hooks(f(g(h())))`.
func (c *GradeEntryClient) Use(hooks ...Hook) {
	c.hooks.GradeEntry = append(c.hooks.GradeEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gradeentry.Intercept(f(g(h())))`.
func (c *GradeEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.GradeEntry = append(c.inters.GradeEntry, interceptors...)
}

// Create returns a builder for creating a GradeEntry entity.
func (c *GradeEntryClient) Create() *GradeEntryCreate {
	mutation := newGradeEntryMutation(c.config, OpCreate)
	return &GradeEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GradeEntry entities.
func (c *GradeEntryClient) CreateBulk(builders ...*GradeEntryCreate) *GradeEntryCreateBulk {
	return &GradeEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradeEntryClient) MapCreateBulk(slice any, setFunc func(*GradeEntryCreate, int)) *GradeEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradeEntryCreateBulk{err: fmt.Errorf("calling to GradeEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradeEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradeEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GradeEntry.
func (c *GradeEntryClient) Update() *GradeEntryUpdate {
	mutation := newGradeEntryMutation(c.config, OpUpdate)
	return &GradeEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradeEntryClient) UpdateOne(_m *GradeEntry) *GradeEntryUpdateOne {
	mutation := newGradeEntryMutation(c.config, OpUpdateOne, withGradeEntry(_m))
	return &GradeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradeEntryClient) UpdateOneID(id uuid.UUID) *GradeEntryUpdateOne {
	mutation := newGradeEntryMutation(c.config, OpUpdateOne, withGradeEntryID(id))
	return &GradeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GradeEntry.
func (c *GradeEntryClient) Delete() *GradeEntryDelete {
	mutation := newGradeEntryMutation(c.config, OpDelete)
	return &GradeEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradeEntryClient) DeleteOne(_m *GradeEntry) *GradeEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradeEntryClient) DeleteOneID(id uuid.UUID) *GradeEntryDeleteOne {
	builder := c.Delete().Where(gradeentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradeEntryDeleteOne{builder}
}

// Query returns a query builder for GradeEntry.
func (c *GradeEntryClient) Query() *GradeEntryQuery {
	return &GradeEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGradeEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a GradeEntry entity by its id.
func (c *GradeEntryClient) Get(ctx context.Context, id uuid.UUID) (*GradeEntry, error) {
	return c.Query().Where(gradeentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradeEntryClient) GetX(ctx context.Context, id uuid.UUID) *GradeEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a GradeEntry.
func (c *GradeEntryClient) QueryReport(_m *GradeEntry) *GradeReportQuery {
	query := (&GradeReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gradeentry.Table, gradeentry.FieldID, id),
			sqlgraph.To(gradereport.Table, gradereport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gradeentry.ReportTable, gradeentry.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GradeEntryClient) Hooks() []Hook {
	return c.hooks.GradeEntry
}

// Interceptors returns the client interceptors.
func (c *GradeEntryClient) Interceptors() []Interceptor {
	return c.inters.GradeEntry
}

func (c *GradeEntryClient) mutate(ctx context.Context, m *GradeEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradeEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradeEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradeEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GradeEntry mutation op: %q", m.Op())
	}
}

// GradeReportClient is a client for the GradeReport schema.
type GradeReportClient struct {
	config
}

// NewGradeReportClient returns a client for the GradeReport from the given config.
func NewGradeReportClient(c config) *GradeReportClient {
	return &GradeReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gradereport.Hooks(f(g(h())))`.
func (c *GradeReportClient) Use(hooks ...Hook) {
	c.hooks.GradeReport = append(c.hooks.GradeReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gradereport.Intercept(f(g(h())))`.
func (c *GradeReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.GradeReport = append(c.inters.GradeReport, interceptors...)
}

// Create returns a builder for creating a GradeReport entity.
func (c *GradeReportClient) Create() *GradeReportCreate {
	mutation := newGradeReportMutation(c.config, OpCreate)
	return &GradeReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GradeReport entities.
func (c *GradeReportClient) CreateBulk(builders ...*GradeReportCreate) *GradeReportCreateBulk {
	return &GradeReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradeReportClient) MapCreateBulk(slice any, setFunc func(*GradeReportCreate, int)) *GradeReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradeReportCreateBulk{err: fmt.Errorf("calling to GradeReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradeReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradeReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GradeReport.
func (c *GradeReportClient) Update() *GradeReportUpdate {
	mutation := newGradeReportMutation(c.config, OpUpdate)
	return &GradeReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradeReportClient) UpdateOne(_m *GradeReport) *GradeReportUpdateOne {
	mutation := newGradeReportMutation(c.config, OpUpdateOne, withGradeReport(_m))
	return &GradeReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradeReportClient) UpdateOneID(id uuid.UUID) *GradeReportUpdateOne {
	mutation := newGradeReportMutation(c.config, OpUpdateOne, withGradeReportID(id))
	return &GradeReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GradeReport.
func (c *GradeReportClient) Delete() *GradeReportDelete {
	mutation := newGradeReportMutation(c.config, OpDelete)
	return &GradeReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradeReportClient) DeleteOne(_m *GradeReport) *GradeReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradeReportClient) DeleteOneID(id uuid.UUID) *GradeReportDeleteOne {
	builder := c.Delete().Where(gradereport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradeReportDeleteOne{builder}
}

// Query returns a query builder for GradeReport.
func (c *GradeReportClient) Query() *GradeReportQuery {
	return &GradeReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGradeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a GradeReport entity by its id.
func (c *GradeReportClient) Get(ctx context.Context, id uuid.UUID) (*GradeReport, error) {
	return c.Query().Where(gradereport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradeReportClient) GetX(ctx context.Context, id uuid.UUID) *GradeReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStudent queries the student edge of a GradeReport.
func (c *GradeReportClient) QueryStudent(_m *GradeReport) *StudentQuery {
	query := (&StudentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gradereport.Table, gradereport.FieldID, id),
			sqlgraph.To(student.Table, student.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gradereport.StudentTable, gradereport.StudentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntries queries the entries edge of a GradeReport.
func (c *GradeReportClient) QueryEntries(_m *GradeReport) *GradeEntryQuery {
	query := (&GradeEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gradereport.Table, gradereport.FieldID, id),
			sqlgraph.To(gradeentry.Table, gradeentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, gradereport.EntriesTable, gradereport.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GradeReportClient) Hooks() []Hook {
	return c.hooks.GradeReport
}

// Interceptors returns the client interceptors.
func (c *GradeReportClient) Interceptors() []Interceptor {
	return c.inters.GradeReport
}

func (c *GradeReportClient) mutate(ctx context.Context, m *GradeReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradeReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradeReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradeReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradeReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GradeReport mutation op: %q", m.Op())
	}
}

// LoadEntryClient is a client for the LoadEntry schema.
type LoadEntryClient struct {
	config
}

// NewLoadEntryClient returns a client for the LoadEntry from the given config.
func NewLoadEntryClient(c config) *LoadEntryClient {
	return &LoadEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `loadentry.Hooks(f(g(h())))`.
func (c *LoadEntryClient) Use(hooks ...Hook) {
	c.hooks.LoadEntry = append(c.hooks.LoadEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `loadentry.Intercept(f(g(h())))`.
func (c *LoadEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LoadEntry = append(c.inters.LoadEntry, interceptors...)
}

// Create returns a builder for creating a LoadEntry entity.
func (c *LoadEntryClient) Create() *LoadEntryCreate {
	mutation := newLoadEntryMutation(c.config, OpCreate)
	return &LoadEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LoadEntry entities.
func (c *LoadEntryClient) CreateBulk(builders ...*LoadEntryCreate) *LoadEntryCreateBulk {
	return &LoadEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LoadEntryClient) MapCreateBulk(slice any, setFunc func(*LoadEntryCreate, int)) *LoadEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LoadEntryCreateBulk{err: fmt.Errorf("calling to LoadEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LoadEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LoadEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LoadEntry.
func (c *LoadEntryClient) Update() *LoadEntryUpdate {
	mutation := newLoadEntryMutation(c.config, OpUpdate)
	return &LoadEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LoadEntryClient) UpdateOne(_m *LoadEntry) *LoadEntryUpdateOne {
	mutation := newLoadEntryMutation(c.config, OpUpdateOne, withLoadEntry(_m))
	return &LoadEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LoadEntryClient) UpdateOneID(id uuid.UUID) *LoadEntryUpdateOne {
	mutation := newLoadEntryMutation(c.config, OpUpdateOne, withLoadEntryID(id))
	return &LoadEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LoadEntry.
func (c *LoadEntryClient) Delete() *LoadEntryDelete {
	mutation := newLoadEntryMutation(c.config, OpDelete)
	return &LoadEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LoadEntryClient) DeleteOne(_m *LoadEntry) *LoadEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LoadEntryClient) DeleteOneID(id uuid.UUID) *LoadEntryDeleteOne {
	builder := c.Delete().Where(loadentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LoadEntryDeleteOne{builder}
}

// Query returns a query builder for LoadEntry.
func (c *LoadEntryClient) Query() *LoadEntryQuery {
	return &LoadEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLoadEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a LoadEntry entity by its id.
func (c *LoadEntryClient) Get(ctx context.Context, id uuid.UUID) (*LoadEntry, error) {
	return c.Query().Where(loadentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LoadEntryClient) GetX(ctx context.Context, id uuid.UUID) *LoadEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPersonnel queries the personnel edge of a LoadEntry.
func (c *LoadEntryClient) QueryPersonnel(_m *LoadEntry) *PersonnelQuery {
	query := (&PersonnelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loadentry.Table, loadentry.FieldID, id),
			sqlgraph.To(personnel.Table, personnel.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, loadentry.PersonnelTable, loadentry.PersonnelColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LoadEntryClient) Hooks() []Hook {
	return c.hooks.LoadEntry
}

// Interceptors returns the client interceptors.
func (c *LoadEntryClient) Interceptors() []Interceptor {
	return c.inters.LoadEntry
}

func (c *LoadEntryClient) mutate(ctx context.Context, m *LoadEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LoadEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LoadEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LoadEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LoadEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LoadEntry mutation op: %q", m.Op())
	}
}

// PersonnelClient is a client for the Personnel schema.
type PersonnelClient struct {
	config
}

// NewPersonnelClient returns a client for the Personnel from the given config.
func NewPersonnelClient(c config) *PersonnelClient {
	return &PersonnelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `personnel.Hooks(f(g(h())))`.
func (c *PersonnelClient) Use(hooks ...Hook) {
	c.hooks.Personnel = append(c.hooks.Personnel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `personnel.Intercept(f(g(h())))`.
func (c *PersonnelClient) Intercept(interceptors ...Interceptor) {
	c.inters.Personnel = append(c.inters.Personnel, interceptors...)
}

// Create returns a builder for creating a Personnel entity.
func (c *PersonnelClient) Create() *PersonnelCreate {
	mutation := newPersonnelMutation(c.config, OpCreate)
	return &PersonnelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Personnel entities.
func (c *PersonnelClient) CreateBulk(builders ...*PersonnelCreate) *PersonnelCreateBulk {
	return &PersonnelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonnelClient) MapCreateBulk(slice any, setFunc func(*PersonnelCreate, int)) *PersonnelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonnelCreateBulk{err: fmt.Errorf("calling to PersonnelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonnelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonnelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Personnel.
func (c *PersonnelClient) Update() *PersonnelUpdate {
	mutation := newPersonnelMutation(c.config, OpUpdate)
	return &PersonnelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonnelClient) UpdateOne(_m *Personnel) *PersonnelUpdateOne {
	mutation := newPersonnelMutation(c.config, OpUpdateOne, withPersonnel(_m))
	return &PersonnelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonnelClient) UpdateOneID(id uuid.UUID) *PersonnelUpdateOne {
	mutation := newPersonnelMutation(c.config, OpUpdateOne, withPersonnelID(id))
	return &PersonnelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Personnel.
func (c *PersonnelClient) Delete() *PersonnelDelete {
	mutation := newPersonnelMutation(c.config, OpDelete)
	return &PersonnelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonnelClient) DeleteOne(_m *Personnel) *PersonnelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonnelClient) DeleteOneID(id uuid.UUID) *PersonnelDeleteOne {
	builder := c.Delete().Where(personnel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonnelDeleteOne{builder}
}

// Query returns a query builder for Personnel.
func (c *PersonnelClient) Query() *PersonnelQuery {
	return &PersonnelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersonnel},
		inters: c.Interceptors(),
	}
}

// Get returns a Personnel entity by its id.
func (c *PersonnelClient) Get(ctx context.Context, id uuid.UUID) (*Personnel, error) {
	return c.Query().Where(personnel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonnelClient) GetX(ctx context.Context, id uuid.UUID) *Personnel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoads queries the loads edge of a Personnel.
func (c *PersonnelClient) QueryLoads(_m *Personnel) *LoadEntryQuery {
	query := (&LoadEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(personnel.Table, personnel.FieldID, id),
			sqlgraph.To(loadentry.Table, loadentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, personnel.LoadsTable, personnel.LoadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PersonnelClient) Hooks() []Hook {
	return c.hooks.Personnel
}

// Interceptors returns the client interceptors.
func (c *PersonnelClient) Interceptors() []Interceptor {
	return c.inters.Personnel
}

func (c *PersonnelClient) mutate(ctx context.Context, m *PersonnelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonnelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonnelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonnelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonnelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Personnel mutation op: %q", m.Op())
	}
}

// SourceFileClient is a client for the SourceFile schema.
type SourceFileClient struct {
	config
}

// NewSourceFileClient returns a client for the SourceFile from the given config.
func NewSourceFileClient(c config) *SourceFileClient {
	return &SourceFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcefile.Hooks(f(g(h())))`.
func (c *SourceFileClient) Use(hooks ...Hook) {
	c.hooks.SourceFile = append(c.hooks.SourceFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcefile.Intercept(f(g(h())))`.
func (c *SourceFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceFile = append(c.inters.SourceFile, interceptors...)
}

// Create returns a builder for creating a SourceFile entity.
func (c *SourceFileClient) Create() *SourceFileCreate {
	mutation := newSourceFileMutation(c.config, OpCreate)
	return &SourceFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceFile entities.
func (c *SourceFileClient) CreateBulk(builders ...*SourceFileCreate) *SourceFileCreateBulk {
	return &SourceFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceFileClient) MapCreateBulk(slice any, setFunc func(*SourceFileCreate, int)) *SourceFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceFileCreateBulk{err: fmt.Errorf("calling to SourceFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceFile.
func (c *SourceFileClient) Update() *SourceFileUpdate {
	mutation := newSourceFileMutation(c.config, OpUpdate)
	return &SourceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceFileClient) UpdateOne(_m *SourceFile) *SourceFileUpdateOne {
	mutation := newSourceFileMutation(c.config, OpUpdateOne, withSourceFile(_m))
	return &SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceFileClient) UpdateOneID(id uuid.UUID) *SourceFileUpdateOne {
	mutation := newSourceFileMutation(c.config, OpUpdateOne, withSourceFileID(id))
	return &SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceFile.
func (c *SourceFileClient) Delete() *SourceFileDelete {
	mutation := newSourceFileMutation(c.config, OpDelete)
	return &SourceFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceFileClient) DeleteOne(_m *SourceFile) *SourceFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceFileClient) DeleteOneID(id uuid.UUID) *SourceFileDeleteOne {
	builder := c.Delete().Where(sourcefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceFileDeleteOne{builder}
}

// Query returns a query builder for SourceFile.
func (c *SourceFileClient) Query() *SourceFileQuery {
	return &SourceFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceFile},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceFile entity by its id.
func (c *SourceFileClient) Get(ctx context.Context, id uuid.UUID) (*SourceFile, error) {
	return c.Query().Where(sourcefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceFileClient) GetX(ctx context.Context, id uuid.UUID) *SourceFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a SourceFile.
func (c *SourceFileClient) QueryJobs(_m *SourceFile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcefile.Table, sourcefile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sourcefile.JobsTable, sourcefile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceFileClient) Hooks() []Hook {
	return c.hooks.SourceFile
}

// Interceptors returns the client interceptors.
func (c *SourceFileClient) Interceptors() []Interceptor {
	return c.inters.SourceFile
}

func (c *SourceFileClient) mutate(ctx context.Context, m *SourceFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceFile mutation op: %q", m.Op())
	}
}

// StudentClient is a client for the Student schema.
type StudentClient struct {
	config
}

// NewStudentClient returns a client for the Student from the given config.
func NewStudentClient(c config) *StudentClient {
	return &StudentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `student.Hooks(f(g(h())))`.
func (c *StudentClient) Use(hooks ...Hook) {
	c.hooks.Student = append(c.hooks.Student, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `student.Intercept(f(g(h())))`.
func (c *StudentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Student = append(c.inters.Student, interceptors...)
}

// Create returns a builder for creating a Student entity.
func (c *StudentClient) Create() *StudentCreate {
	mutation := newStudentMutation(c.config, OpCreate)
	return &StudentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Student entities.
func (c *StudentClient) CreateBulk(builders ...*StudentCreate) *StudentCreateBulk {
	return &StudentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentClient) MapCreateBulk(slice any, setFunc func(*StudentCreate, int)) *StudentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentCreateBulk{err: fmt.Errorf("calling to StudentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Student.
func (c *StudentClient) Update() *StudentUpdate {
	mutation := newStudentMutation(c.config, OpUpdate)
	return &StudentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentClient) UpdateOne(_m *Student) *StudentUpdateOne {
	mutation := newStudentMutation(c.config, OpUpdateOne, withStudent(_m))
	return &StudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentClient) UpdateOneID(id uuid.UUID) *StudentUpdateOne {
	mutation := newStudentMutation(c.config, OpUpdateOne, withStudentID(id))
	return &StudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Student.
func (c *StudentClient) Delete() *StudentDelete {
	mutation := newStudentMutation(c.config, OpDelete)
	return &StudentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentClient) DeleteOne(_m *Student) *StudentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentClient) DeleteOneID(id uuid.UUID) *StudentDeleteOne {
	builder := c.Delete().Where(student.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentDeleteOne{builder}
}

// Query returns a query builder for Student.
func (c *StudentClient) Query() *StudentQuery {
	return &StudentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudent},
		inters: c.Interceptors(),
	}
}

// Get returns a Student entity by its id.
func (c *StudentClient) Get(ctx context.Context, id uuid.UUID) (*Student, error) {
	return c.Query().Where(student.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentClient) GetX(ctx context.Context, id uuid.UUID) *Student {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubjects queries the subjects edge of a Student.
func (c *StudentClient) QuerySubjects(_m *Student) *SubjectEntryQuery {
	query := (&SubjectEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(student.Table, student.FieldID, id),
			sqlgraph.To(subjectentry.Table, subjectentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, student.SubjectsTable, student.SubjectsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGrades queries the grades edge of a Student.
func (c *StudentClient) QueryGrades(_m *Student) *GradeReportQuery {
	query := (&GradeReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(student.Table, student.FieldID, id),
			sqlgraph.To(gradereport.Table, gradereport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, student.GradesTable, student.GradesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StudentClient) Hooks() []Hook {
	return c.hooks.Student
}

// Interceptors returns the client interceptors.
func (c *StudentClient) Interceptors() []Interceptor {
	return c.inters.Student
}

func (c *StudentClient) mutate(ctx context.Context, m *StudentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Student mutation op: %q", m.Op())
	}
}

// SubjectEntryClient is a client for the SubjectEntry schema.
type SubjectEntryClient struct {
	config
}

// NewSubjectEntryClient returns a client for the SubjectEntry from the given config.
func NewSubjectEntryClient(c config) *SubjectEntryClient {
	return &SubjectEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subjectentry.Hooks(f(g(h())))`.
func (c *SubjectEntryClient) Use(hooks ...Hook) {
	c.hooks.SubjectEntry = append(c.hooks.SubjectEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subjectentry.Intercept(f(g(h())))`.
func (c *SubjectEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubjectEntry = append(c.inters.SubjectEntry, interceptors...)
}

// Create returns a builder for creating a SubjectEntry entity.
func (c *SubjectEntryClient) Create() *SubjectEntryCreate {
	mutation := newSubjectEntryMutation(c.config, OpCreate)
	return &SubjectEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubjectEntry entities.
func (c *SubjectEntryClient) CreateBulk(builders ...*SubjectEntryCreate) *SubjectEntryCreateBulk {
	return &SubjectEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectEntryClient) MapCreateBulk(slice any, setFunc func(*SubjectEntryCreate, int)) *SubjectEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectEntryCreateBulk{err: fmt.Errorf("calling to SubjectEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubjectEntry.
func (c *SubjectEntryClient) Update() *SubjectEntryUpdate {
	mutation := newSubjectEntryMutation(c.config, OpUpdate)
	return &SubjectEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectEntryClient) UpdateOne(_m *SubjectEntry) *SubjectEntryUpdateOne {
	mutation := newSubjectEntryMutation(c.config, OpUpdateOne, withSubjectEntry(_m))
	return &SubjectEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectEntryClient) UpdateOneID(id uuid.UUID) *SubjectEntryUpdateOne {
	mutation := newSubjectEntryMutation(c.config, OpUpdateOne, withSubjectEntryID(id))
	return &SubjectEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubjectEntry.
func (c *SubjectEntryClient) Delete() *SubjectEntryDelete {
	mutation := newSubjectEntryMutation(c.config, OpDelete)
	return &SubjectEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectEntryClient) DeleteOne(_m *SubjectEntry) *SubjectEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectEntryClient) DeleteOneID(id uuid.UUID) *SubjectEntryDeleteOne {
	builder := c.Delete().Where(subjectentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectEntryDeleteOne{builder}
}

// Query returns a query builder for SubjectEntry.
func (c *SubjectEntryClient) Query() *SubjectEntryQuery {
	return &SubjectEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubjectEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a SubjectEntry entity by its id.
func (c *SubjectEntryClient) Get(ctx context.Context, id uuid.UUID) (*SubjectEntry, error) {
	return c.Query().Where(subjectentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectEntryClient) GetX(ctx context.Context, id uuid.UUID) *SubjectEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStudent queries the student edge of a SubjectEntry.
func (c *SubjectEntryClient) QueryStudent(_m *SubjectEntry) *StudentQuery {
	query := (&StudentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subjectentry.Table, subjectentry.FieldID, id),
			sqlgraph.To(student.Table, student.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subjectentry.StudentTable, subjectentry.StudentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubjectEntryClient) Hooks() []Hook {
	return c.hooks.SubjectEntry
}

// Interceptors returns the client interceptors.
func (c *SubjectEntryClient) Interceptors() []Interceptor {
	return c.inters.SubjectEntry
}

func (c *SubjectEntryClient) mutate(ctx context.Context, m *SubjectEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubjectEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractJob, GradeEntry, GradeReport, LoadEntry, Personnel, SourceFile, Student,
		SubjectEntry []ent.Hook
	}
	inters struct {
		ExtractJob, GradeEntry, GradeReport, LoadEntry, Personnel, SourceFile, Student,
		SubjectEntry []ent.Interceptor
	}
)
