package engine

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"goFrame/internal/bind"
	"goFrame/internal/frame"
	"goFrame/internal/query"
	"goFrame/internal/storage"
)

// DBEngine runs bind operations over the tables of a catalog.
type DBEngine struct {
	started bool
	store   storage.Catalog
	logger  *log.Logger
}

// New creates a new DBEngine instance on top of store.
func New(store storage.Catalog) *DBEngine {
	return &DBEngine{
		started: false,
		store:   store,
	}
}

// SetLogger enables statement logging. A nil logger disables it.
func (e *DBEngine) SetLogger(l *log.Logger) {
	e.logger = l
}

func (e *DBEngine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// Start runs initialization steps for the engine.
func (e *DBEngine) Start() error {
	if e.started {
		return errors.New("engine already started")
	}
	e.started = true
	return nil
}

func (e *DBEngine) checkStarted() error {
	if !e.started {
		return errors.New("engine not started")
	}
	return nil
}

// CreateTable registers a table in the catalog.
func (e *DBEngine) CreateTable(name string, t *frame.Table) error {
	if err := e.checkStarted(); err != nil {
		return err
	}
	return e.store.CreateTable(name, t)
}

// Table returns a table from the catalog.
func (e *DBEngine) Table(name string) (*frame.Table, error) {
	if err := e.checkStarted(); err != nil {
		return nil, err
	}
	return e.store.Table(name)
}

// ListTables returns the names of all tables in the catalog.
func (e *DBEngine) ListTables() ([]string, error) {
	if err := e.checkStarted(); err != nil {
		return nil, err
	}
	return e.store.ListTables()
}

// RowBind stacks the named tables and stores the result under into.
// An empty into skips storing.
func (e *DBEngine) RowBind(ctx context.Context, into string, sources ...string) (*frame.Table, error) {
	tables, err := e.resolve(sources)
	if err != nil {
		return nil, err
	}
	out, err := bind.RowBind(ctx, tables)
	if err != nil {
		return nil, err
	}
	return out, e.save(into, out)
}

// ColumnBind places the named tables side by side and stores the result
// under into.
func (e *DBEngine) ColumnBind(ctx context.Context, into string, sources ...string) (*frame.Table, error) {
	tables, err := e.resolve(sources)
	if err != nil {
		return nil, err
	}
	out, err := bind.ColumnBind(ctx, tables)
	if err != nil {
		return nil, err
	}
	return out, e.save(into, out)
}

// Combine concatenates the referenced columns into a one-column table whose
// column is named into.
func (e *DBEngine) Combine(ctx context.Context, into string, refs ...query.ColumnRef) (*frame.Table, error) {
	if err := e.checkStarted(); err != nil {
		return nil, err
	}

	vectors := make([]*frame.Vector, len(refs))
	for i, ref := range refs {
		t, err := e.store.Table(ref.Table)
		if err != nil {
			return nil, errors.Wrap(err, "combine")
		}
		v, ok := t.ColumnByName(ref.Column)
		if !ok {
			return nil, errors.Errorf("combine: table %s has no column %q", ref.Table, ref.Column)
		}
		vectors[i] = v
	}

	v, err := bind.Combine(ctx, vectors)
	if err != nil {
		return nil, err
	}
	name := into
	if name == "" {
		name = "value"
	}
	out := frame.FromColumns([]string{name}, []*frame.Vector{v}, v.Len(), frame.ClassDataFrame)
	return out, e.save(into, out)
}

func (e *DBEngine) resolve(names []string) ([]*frame.Table, error) {
	if err := e.checkStarted(); err != nil {
		return nil, err
	}
	tables := make([]*frame.Table, len(names))
	for i, name := range names {
		t, err := e.store.Table(name)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve source %d", i+1)
		}
		tables[i] = t
	}
	return tables, nil
}

func (e *DBEngine) save(into string, t *frame.Table) error {
	if into == "" {
		return nil
	}
	if err := e.store.ReplaceTable(into, t); err != nil {
		return errors.Wrapf(err, "store %s", into)
	}
	e.logf("stored %s: %d rows x %d columns", into, t.NumRows(), t.NumCols())
	return nil
}
