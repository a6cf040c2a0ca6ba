// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/clipdock/clipd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/clipdock/clipd/ent/modelcalllog"
	"github.com/clipdock/clipd/ent/modelentry"
	"github.com/clipdock/clipd/ent/purchaseevent"
	"github.com/clipdock/clipd/ent/summarycache"
	"github.com/clipdock/clipd/ent/tagmaster"
	"github.com/clipdock/clipd/ent/usagerecord"
	"github.com/clipdock/clipd/ent/usertagusage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ModelCallLog is the client for interacting with the ModelCallLog builders.
	ModelCallLog *ModelCallLogClient
	// ModelEntry is the client for interacting with the ModelEntry builders.
	ModelEntry *ModelEntryClient
	// PurchaseEvent is the client for interacting with the PurchaseEvent builders.
	PurchaseEvent *PurchaseEventClient
	// SummaryCache is the client for interacting with the SummaryCache builders.
	SummaryCache *SummaryCacheClient
	// TagMaster is the client for interacting with the TagMaster builders.
	TagMaster *TagMasterClient
	// UsageRecord is the client for interacting with the UsageRecord builders.
	UsageRecord *UsageRecordClient
	// UserTagUsage is the client for interacting with the UserTagUsage builders.
	UserTagUsage *UserTagUsageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ModelCallLog = NewModelCallLogClient(c.config)
	c.ModelEntry = NewModelEntryClient(c.config)
	c.PurchaseEvent = NewPurchaseEventClient(c.config)
	c.SummaryCache = NewSummaryCacheClient(c.config)
	c.TagMaster = NewTagMasterClient(c.config)
	c.UsageRecord = NewUsageRecordClient(c.config)
	c.UserTagUsage = NewUserTagUsageClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ModelCallLog:  NewModelCallLogClient(cfg),
		ModelEntry:    NewModelEntryClient(cfg),
		PurchaseEvent: NewPurchaseEventClient(cfg),
		SummaryCache:  NewSummaryCacheClient(cfg),
		TagMaster:     NewTagMasterClient(cfg),
		UsageRecord:   NewUsageRecordClient(cfg),
		UserTagUsage:  NewUserTagUsageClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ModelCallLog:  NewModelCallLogClient(cfg),
		ModelEntry:    NewModelEntryClient(cfg),
		PurchaseEvent: NewPurchaseEventClient(cfg),
		SummaryCache:  NewSummaryCacheClient(cfg),
		TagMaster:     NewTagMasterClient(cfg),
		UsageRecord:   NewUsageRecordClient(cfg),
		UserTagUsage:  NewUserTagUsageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ModelCallLog.
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
		c.ModelCallLog, c.ModelEntry, c.PurchaseEvent, c.SummaryCache, c.TagMaster,
		c.UsageRecord, c.UserTagUsage,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ModelCallLog, c.ModelEntry, c.PurchaseEvent, c.SummaryCache, c.TagMaster,
		c.UsageRecord, c.UserTagUsage,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ModelCallLogMutation:
		return c.ModelCallLog.mutate(ctx, m)
	case *ModelEntryMutation:
		return c.ModelEntry.mutate(ctx, m)
	case *PurchaseEventMutation:
		return c.PurchaseEvent.mutate(ctx, m)
	case *SummaryCacheMutation:
		return c.SummaryCache.mutate(ctx, m)
	case *TagMasterMutation:
		return c.TagMaster.mutate(ctx, m)
	case *UsageRecordMutation:
		return c.UsageRecord.mutate(ctx, m)
	case *UserTagUsageMutation:
		return c.UserTagUsage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ModelCallLogClient is a client for the ModelCallLog schema.
type ModelCallLogClient struct {
	config
}

// NewModelCallLogClient returns a client for the ModelCallLog from the given config.
func NewModelCallLogClient(c config) *ModelCallLogClient {
	return &ModelCallLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelcalllog.Hooks(f(g(h())))`.
func (c *ModelCallLogClient) Use(hooks ...Hook) {
	c.hooks.ModelCallLog = append(c.hooks.ModelCallLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelcalllog.Intercept(f(g(h())))`.
func (c *ModelCallLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelCallLog = append(c.inters.ModelCallLog, interceptors...)
}

// Create returns a builder for creating a ModelCallLog entity.
func (c *ModelCallLogClient) Create() *ModelCallLogCreate {
	mutation := newModelCallLogMutation(c.config, OpCreate)
	return &ModelCallLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelCallLog entities.
func (c *ModelCallLogClient) CreateBulk(builders ...*ModelCallLogCreate) *ModelCallLogCreateBulk {
	return &ModelCallLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelCallLogClient) MapCreateBulk(slice any, setFunc func(*ModelCallLogCreate, int)) *ModelCallLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelCallLogCreateBulk{err: fmt.Errorf("calling to ModelCallLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelCallLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelCallLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelCallLog.
func (c *ModelCallLogClient) Update() *ModelCallLogUpdate {
	mutation := newModelCallLogMutation(c.config, OpUpdate)
	return &ModelCallLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelCallLogClient) UpdateOne(_m *ModelCallLog) *ModelCallLogUpdateOne {
	mutation := newModelCallLogMutation(c.config, OpUpdateOne, withModelCallLog(_m))
	return &ModelCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelCallLogClient) UpdateOneID(id string) *ModelCallLogUpdateOne {
	mutation := newModelCallLogMutation(c.config, OpUpdateOne, withModelCallLogID(id))
	return &ModelCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelCallLog.
func (c *ModelCallLogClient) Delete() *ModelCallLogDelete {
	mutation := newModelCallLogMutation(c.config, OpDelete)
	return &ModelCallLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelCallLogClient) DeleteOne(_m *ModelCallLog) *ModelCallLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelCallLogClient) DeleteOneID(id string) *ModelCallLogDeleteOne {
	builder := c.Delete().Where(modelcalllog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelCallLogDeleteOne{builder}
}

// Query returns a query builder for ModelCallLog.
func (c *ModelCallLogClient) Query() *ModelCallLogQuery {
	return &ModelCallLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelCallLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelCallLog entity by its id.
func (c *ModelCallLogClient) Get(ctx context.Context, id string) (*ModelCallLog, error) {
	return c.Query().Where(modelcalllog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelCallLogClient) GetX(ctx context.Context, id string) *ModelCallLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelCallLogClient) Hooks() []Hook {
	return c.hooks.ModelCallLog
}

// Interceptors returns the client interceptors.
func (c *ModelCallLogClient) Interceptors() []Interceptor {
	return c.inters.ModelCallLog
}

func (c *ModelCallLogClient) mutate(ctx context.Context, m *ModelCallLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelCallLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelCallLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelCallLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelCallLog mutation op: %q", m.Op())
	}
}

// ModelEntryClient is a client for the ModelEntry schema.
type ModelEntryClient struct {
	config
}

// NewModelEntryClient returns a client for the ModelEntry from the given config.
func NewModelEntryClient(c config) *ModelEntryClient {
	return &ModelEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelentry.Hooks(f(g(h())))`.
func (c *ModelEntryClient) Use(hooks ...Hook) {
	c.hooks.ModelEntry = append(c.hooks.ModelEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelentry.Intercept(f(g(h())))`.
func (c *ModelEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelEntry = append(c.inters.ModelEntry, interceptors...)
}

// Create returns a builder for creating a ModelEntry entity.
func (c *ModelEntryClient) Create() *ModelEntryCreate {
	mutation := newModelEntryMutation(c.config, OpCreate)
	return &ModelEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelEntry entities.
func (c *ModelEntryClient) CreateBulk(builders ...*ModelEntryCreate) *ModelEntryCreateBulk {
	return &ModelEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelEntryClient) MapCreateBulk(slice any, setFunc func(*ModelEntryCreate, int)) *ModelEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelEntryCreateBulk{err: fmt.Errorf("calling to ModelEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelEntry.
func (c *ModelEntryClient) Update() *ModelEntryUpdate {
	mutation := newModelEntryMutation(c.config, OpUpdate)
	return &ModelEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelEntryClient) UpdateOne(_m *ModelEntry) *ModelEntryUpdateOne {
	mutation := newModelEntryMutation(c.config, OpUpdateOne, withModelEntry(_m))
	return &ModelEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelEntryClient) UpdateOneID(id string) *ModelEntryUpdateOne {
	mutation := newModelEntryMutation(c.config, OpUpdateOne, withModelEntryID(id))
	return &ModelEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelEntry.
func (c *ModelEntryClient) Delete() *ModelEntryDelete {
	mutation := newModelEntryMutation(c.config, OpDelete)
	return &ModelEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelEntryClient) DeleteOne(_m *ModelEntry) *ModelEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelEntryClient) DeleteOneID(id string) *ModelEntryDeleteOne {
	builder := c.Delete().Where(modelentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelEntryDeleteOne{builder}
}

// Query returns a query builder for ModelEntry.
func (c *ModelEntryClient) Query() *ModelEntryQuery {
	return &ModelEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelEntry entity by its id.
func (c *ModelEntryClient) Get(ctx context.Context, id string) (*ModelEntry, error) {
	return c.Query().Where(modelentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelEntryClient) GetX(ctx context.Context, id string) *ModelEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelEntryClient) Hooks() []Hook {
	return c.hooks.ModelEntry
}

// Interceptors returns the client interceptors.
func (c *ModelEntryClient) Interceptors() []Interceptor {
	return c.inters.ModelEntry
}

func (c *ModelEntryClient) mutate(ctx context.Context, m *ModelEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelEntry mutation op: %q", m.Op())
	}
}

// PurchaseEventClient is a client for the PurchaseEvent schema.
type PurchaseEventClient struct {
	config
}

// NewPurchaseEventClient returns a client for the PurchaseEvent from the given config.
func NewPurchaseEventClient(c config) *PurchaseEventClient {
	return &PurchaseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `purchaseevent.Hooks(f(g(h())))`.
func (c *PurchaseEventClient) Use(hooks ...Hook) {
	c.hooks.PurchaseEvent = append(c.hooks.PurchaseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `purchaseevent.Intercept(f(g(h())))`.
func (c *PurchaseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PurchaseEvent = append(c.inters.PurchaseEvent, interceptors...)
}

// Create returns a builder for creating a PurchaseEvent entity.
func (c *PurchaseEventClient) Create() *PurchaseEventCreate {
	mutation := newPurchaseEventMutation(c.config, OpCreate)
	return &PurchaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PurchaseEvent entities.
func (c *PurchaseEventClient) CreateBulk(builders ...*PurchaseEventCreate) *PurchaseEventCreateBulk {
	return &PurchaseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PurchaseEventClient) MapCreateBulk(slice any, setFunc func(*PurchaseEventCreate, int)) *PurchaseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PurchaseEventCreateBulk{err: fmt.Errorf("calling to PurchaseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PurchaseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PurchaseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PurchaseEvent.
func (c *PurchaseEventClient) Update() *PurchaseEventUpdate {
	mutation := newPurchaseEventMutation(c.config, OpUpdate)
	return &PurchaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PurchaseEventClient) UpdateOne(_m *PurchaseEvent) *PurchaseEventUpdateOne {
	mutation := newPurchaseEventMutation(c.config, OpUpdateOne, withPurchaseEvent(_m))
	return &PurchaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PurchaseEventClient) UpdateOneID(id string) *PurchaseEventUpdateOne {
	mutation := newPurchaseEventMutation(c.config, OpUpdateOne, withPurchaseEventID(id))
	return &PurchaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PurchaseEvent.
func (c *PurchaseEventClient) Delete() *PurchaseEventDelete {
	mutation := newPurchaseEventMutation(c.config, OpDelete)
	return &PurchaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PurchaseEventClient) DeleteOne(_m *PurchaseEvent) *PurchaseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PurchaseEventClient) DeleteOneID(id string) *PurchaseEventDeleteOne {
	builder := c.Delete().Where(purchaseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PurchaseEventDeleteOne{builder}
}

// Query returns a query builder for PurchaseEvent.
func (c *PurchaseEventClient) Query() *PurchaseEventQuery {
	return &PurchaseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePurchaseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PurchaseEvent entity by its id.
func (c *PurchaseEventClient) Get(ctx context.Context, id string) (*PurchaseEvent, error) {
	return c.Query().Where(purchaseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PurchaseEventClient) GetX(ctx context.Context, id string) *PurchaseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PurchaseEventClient) Hooks() []Hook {
	return c.hooks.PurchaseEvent
}

// Interceptors returns the client interceptors.
func (c *PurchaseEventClient) Interceptors() []Interceptor {
	return c.inters.PurchaseEvent
}

func (c *PurchaseEventClient) mutate(ctx context.Context, m *PurchaseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PurchaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PurchaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PurchaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PurchaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PurchaseEvent mutation op: %q", m.Op())
	}
}

// SummaryCacheClient is a client for the SummaryCache schema.
type SummaryCacheClient struct {
	config
}

// NewSummaryCacheClient returns a client for the SummaryCache from the given config.
func NewSummaryCacheClient(c config) *SummaryCacheClient {
	return &SummaryCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summarycache.Hooks(f(g(h())))`.
func (c *SummaryCacheClient) Use(hooks ...Hook) {
	c.hooks.SummaryCache = append(c.hooks.SummaryCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summarycache.Intercept(f(g(h())))`.
func (c *SummaryCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.SummaryCache = append(c.inters.SummaryCache, interceptors...)
}

// Create returns a builder for creating a SummaryCache entity.
func (c *SummaryCacheClient) Create() *SummaryCacheCreate {
	mutation := newSummaryCacheMutation(c.config, OpCreate)
	return &SummaryCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SummaryCache entities.
func (c *SummaryCacheClient) CreateBulk(builders ...*SummaryCacheCreate) *SummaryCacheCreateBulk {
	return &SummaryCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryCacheClient) MapCreateBulk(slice any, setFunc func(*SummaryCacheCreate, int)) *SummaryCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryCacheCreateBulk{err: fmt.Errorf("calling to SummaryCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SummaryCache.
func (c *SummaryCacheClient) Update() *SummaryCacheUpdate {
	mutation := newSummaryCacheMutation(c.config, OpUpdate)
	return &SummaryCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryCacheClient) UpdateOne(_m *SummaryCache) *SummaryCacheUpdateOne {
	mutation := newSummaryCacheMutation(c.config, OpUpdateOne, withSummaryCache(_m))
	return &SummaryCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryCacheClient) UpdateOneID(id string) *SummaryCacheUpdateOne {
	mutation := newSummaryCacheMutation(c.config, OpUpdateOne, withSummaryCacheID(id))
	return &SummaryCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SummaryCache.
func (c *SummaryCacheClient) Delete() *SummaryCacheDelete {
	mutation := newSummaryCacheMutation(c.config, OpDelete)
	return &SummaryCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryCacheClient) DeleteOne(_m *SummaryCache) *SummaryCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryCacheClient) DeleteOneID(id string) *SummaryCacheDeleteOne {
	builder := c.Delete().Where(summarycache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryCacheDeleteOne{builder}
}

// Query returns a query builder for SummaryCache.
func (c *SummaryCacheClient) Query() *SummaryCacheQuery {
	return &SummaryCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummaryCache},
		inters: c.Interceptors(),
	}
}

// Get returns a SummaryCache entity by its id.
func (c *SummaryCacheClient) Get(ctx context.Context, id string) (*SummaryCache, error) {
	return c.Query().Where(summarycache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryCacheClient) GetX(ctx context.Context, id string) *SummaryCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SummaryCacheClient) Hooks() []Hook {
	return c.hooks.SummaryCache
}

// Interceptors returns the client interceptors.
func (c *SummaryCacheClient) Interceptors() []Interceptor {
	return c.inters.SummaryCache
}

func (c *SummaryCacheClient) mutate(ctx context.Context, m *SummaryCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SummaryCache mutation op: %q", m.Op())
	}
}

// TagMasterClient is a client for the TagMaster schema.
type TagMasterClient struct {
	config
}

// NewTagMasterClient returns a client for the TagMaster from the given config.
func NewTagMasterClient(c config) *TagMasterClient {
	return &TagMasterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tagmaster.Hooks(f(g(h())))`.
func (c *TagMasterClient) Use(hooks ...Hook) {
	c.hooks.TagMaster = append(c.hooks.TagMaster, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tagmaster.Intercept(f(g(h())))`.
func (c *TagMasterClient) Intercept(interceptors ...Interceptor) {
	c.inters.TagMaster = append(c.inters.TagMaster, interceptors...)
}

// Create returns a builder for creating a TagMaster entity.
func (c *TagMasterClient) Create() *TagMasterCreate {
	mutation := newTagMasterMutation(c.config, OpCreate)
	return &TagMasterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TagMaster entities.
func (c *TagMasterClient) CreateBulk(builders ...*TagMasterCreate) *TagMasterCreateBulk {
	return &TagMasterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TagMasterClient) MapCreateBulk(slice any, setFunc func(*TagMasterCreate, int)) *TagMasterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TagMasterCreateBulk{err: fmt.Errorf("calling to TagMasterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TagMasterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TagMasterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TagMaster.
func (c *TagMasterClient) Update() *TagMasterUpdate {
	mutation := newTagMasterMutation(c.config, OpUpdate)
	return &TagMasterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TagMasterClient) UpdateOne(_m *TagMaster) *TagMasterUpdateOne {
	mutation := newTagMasterMutation(c.config, OpUpdateOne, withTagMaster(_m))
	return &TagMasterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TagMasterClient) UpdateOneID(id string) *TagMasterUpdateOne {
	mutation := newTagMasterMutation(c.config, OpUpdateOne, withTagMasterID(id))
	return &TagMasterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TagMaster.
func (c *TagMasterClient) Delete() *TagMasterDelete {
	mutation := newTagMasterMutation(c.config, OpDelete)
	return &TagMasterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TagMasterClient) DeleteOne(_m *TagMaster) *TagMasterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TagMasterClient) DeleteOneID(id string) *TagMasterDeleteOne {
	builder := c.Delete().Where(tagmaster.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TagMasterDeleteOne{builder}
}

// Query returns a query builder for TagMaster.
func (c *TagMasterClient) Query() *TagMasterQuery {
	return &TagMasterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTagMaster},
		inters: c.Interceptors(),
	}
}

// Get returns a TagMaster entity by its id.
func (c *TagMasterClient) Get(ctx context.Context, id string) (*TagMaster, error) {
	return c.Query().Where(tagmaster.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TagMasterClient) GetX(ctx context.Context, id string) *TagMaster {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUserUsages queries the user_usages edge of a TagMaster.
func (c *TagMasterClient) QueryUserUsages(_m *TagMaster) *UserTagUsageQuery {
	query := (&UserTagUsageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tagmaster.Table, tagmaster.FieldID, id),
			sqlgraph.To(usertagusage.Table, usertagusage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tagmaster.UserUsagesTable, tagmaster.UserUsagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TagMasterClient) Hooks() []Hook {
	return c.hooks.TagMaster
}

// Interceptors returns the client interceptors.
func (c *TagMasterClient) Interceptors() []Interceptor {
	return c.inters.TagMaster
}

func (c *TagMasterClient) mutate(ctx context.Context, m *TagMasterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TagMasterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TagMasterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TagMasterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TagMasterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TagMaster mutation op: %q", m.Op())
	}
}

// UsageRecordClient is a client for the UsageRecord schema.
type UsageRecordClient struct {
	config
}

// NewUsageRecordClient returns a client for the UsageRecord from the given config.
func NewUsageRecordClient(c config) *UsageRecordClient {
	return &UsageRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagerecord.Hooks(f(g(h())))`.
func (c *UsageRecordClient) Use(hooks ...Hook) {
	c.hooks.UsageRecord = append(c.hooks.UsageRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagerecord.Intercept(f(g(h())))`.
func (c *UsageRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageRecord = append(c.inters.UsageRecord, interceptors...)
}

// Create returns a builder for creating a UsageRecord entity.
func (c *UsageRecordClient) Create() *UsageRecordCreate {
	mutation := newUsageRecordMutation(c.config, OpCreate)
	return &UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageRecord entities.
func (c *UsageRecordClient) CreateBulk(builders ...*UsageRecordCreate) *UsageRecordCreateBulk {
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageRecordClient) MapCreateBulk(slice any, setFunc func(*UsageRecordCreate, int)) *UsageRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageRecordCreateBulk{err: fmt.Errorf("calling to UsageRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageRecord.
func (c *UsageRecordClient) Update() *UsageRecordUpdate {
	mutation := newUsageRecordMutation(c.config, OpUpdate)
	return &UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageRecordClient) UpdateOne(_m *UsageRecord) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecord(_m))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageRecordClient) UpdateOneID(id string) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecordID(id))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageRecord.
func (c *UsageRecordClient) Delete() *UsageRecordDelete {
	mutation := newUsageRecordMutation(c.config, OpDelete)
	return &UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageRecordClient) DeleteOne(_m *UsageRecord) *UsageRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageRecordClient) DeleteOneID(id string) *UsageRecordDeleteOne {
	builder := c.Delete().Where(usagerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageRecordDeleteOne{builder}
}

// Query returns a query builder for UsageRecord.
func (c *UsageRecordClient) Query() *UsageRecordQuery {
	return &UsageRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageRecord entity by its id.
func (c *UsageRecordClient) Get(ctx context.Context, id string) (*UsageRecord, error) {
	return c.Query().Where(usagerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageRecordClient) GetX(ctx context.Context, id string) *UsageRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageRecordClient) Hooks() []Hook {
	return c.hooks.UsageRecord
}

// Interceptors returns the client interceptors.
func (c *UsageRecordClient) Interceptors() []Interceptor {
	return c.inters.UsageRecord
}

func (c *UsageRecordClient) mutate(ctx context.Context, m *UsageRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageRecord mutation op: %q", m.Op())
	}
}

// UserTagUsageClient is a client for the UserTagUsage schema.
type UserTagUsageClient struct {
	config
}

// NewUserTagUsageClient returns a client for the UserTagUsage from the given config.
func NewUserTagUsageClient(c config) *UserTagUsageClient {
	return &UserTagUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usertagusage.Hooks(f(g(h())))`.
func (c *UserTagUsageClient) Use(hooks ...Hook) {
	c.hooks.UserTagUsage = append(c.hooks.UserTagUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usertagusage.Intercept(f(g(h())))`.
func (c *UserTagUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserTagUsage = append(c.inters.UserTagUsage, interceptors...)
}

// Create returns a builder for creating a UserTagUsage entity.
func (c *UserTagUsageClient) Create() *UserTagUsageCreate {
	mutation := newUserTagUsageMutation(c.config, OpCreate)
	return &UserTagUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserTagUsage entities.
func (c *UserTagUsageClient) CreateBulk(builders ...*UserTagUsageCreate) *UserTagUsageCreateBulk {
	return &UserTagUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserTagUsageClient) MapCreateBulk(slice any, setFunc func(*UserTagUsageCreate, int)) *UserTagUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserTagUsageCreateBulk{err: fmt.Errorf("calling to UserTagUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserTagUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserTagUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserTagUsage.
func (c *UserTagUsageClient) Update() *UserTagUsageUpdate {
	mutation := newUserTagUsageMutation(c.config, OpUpdate)
	return &UserTagUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserTagUsageClient) UpdateOne(_m *UserTagUsage) *UserTagUsageUpdateOne {
	mutation := newUserTagUsageMutation(c.config, OpUpdateOne, withUserTagUsage(_m))
	return &UserTagUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserTagUsageClient) UpdateOneID(id string) *UserTagUsageUpdateOne {
	mutation := newUserTagUsageMutation(c.config, OpUpdateOne, withUserTagUsageID(id))
	return &UserTagUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserTagUsage.
func (c *UserTagUsageClient) Delete() *UserTagUsageDelete {
	mutation := newUserTagUsageMutation(c.config, OpDelete)
	return &UserTagUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserTagUsageClient) DeleteOne(_m *UserTagUsage) *UserTagUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserTagUsageClient) DeleteOneID(id string) *UserTagUsageDeleteOne {
	builder := c.Delete().Where(usertagusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserTagUsageDeleteOne{builder}
}

// Query returns a query builder for UserTagUsage.
func (c *UserTagUsageClient) Query() *UserTagUsageQuery {
	return &UserTagUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserTagUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a UserTagUsage entity by its id.
func (c *UserTagUsageClient) Get(ctx context.Context, id string) (*UserTagUsage, error) {
	return c.Query().Where(usertagusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserTagUsageClient) GetX(ctx context.Context, id string) *UserTagUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTag queries the tag edge of a UserTagUsage.
func (c *UserTagUsageClient) QueryTag(_m *UserTagUsage) *TagMasterQuery {
	query := (&TagMasterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usertagusage.Table, usertagusage.FieldID, id),
			sqlgraph.To(tagmaster.Table, tagmaster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usertagusage.TagTable, usertagusage.TagColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserTagUsageClient) Hooks() []Hook {
	return c.hooks.UserTagUsage
}

// Interceptors returns the client interceptors.
func (c *UserTagUsageClient) Interceptors() []Interceptor {
	return c.inters.UserTagUsage
}

func (c *UserTagUsageClient) mutate(ctx context.Context, m *UserTagUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserTagUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserTagUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserTagUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserTagUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserTagUsage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ModelCallLog, ModelEntry, PurchaseEvent, SummaryCache, TagMaster, UsageRecord,
		UserTagUsage []ent.Hook
	}
	inters struct {
		ModelCallLog, ModelEntry, PurchaseEvent, SummaryCache, TagMaster, UsageRecord,
		UserTagUsage []ent.Interceptor
	}
)
