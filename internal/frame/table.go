package frame

import (
	"github.com/pkg/errors"
)

// Class markers attached to tables.
var (
	ClassDataFrame = []string{"data.frame"}
	ClassTbl       = []string{"tbl_df", "tbl", "data.frame"}
	classGrouped   = "grouped_df"
)

// Table is an ordered collection of named, equal-length columns.
// Column vectors are shared, never copied, between tables.
type Table struct {
	names  []string
	cols   []*Vector
	nrows  int
	class  []string
	groups []string
}

// NewTable builds a plain table and checks that every column has the same
// length. A table without columns has zero rows.
func NewTable(names []string, cols []*Vector) (*Table, error) {
	if len(names) != len(cols) {
		return nil, errors.Errorf("table: %d names for %d columns", len(names), len(cols))
	}
	nrows := 0
	for i, c := range cols {
		if c == nil {
			return nil, errors.Errorf("table: column %q is nil", names[i])
		}
		if i == 0 {
			nrows = c.Len()
			continue
		}
		if c.Len() != nrows {
			return nil, errors.Errorf("table: column %q has %d rows, expected %d", names[i], c.Len(), nrows)
		}
	}
	return FromColumns(names, cols, nrows, ClassDataFrame), nil
}

// MustTable is NewTable that panics on error. Meant for tests and literals.
func MustTable(names []string, cols ...*Vector) *Table {
	t, err := NewTable(names, cols)
	if err != nil {
		panic(err)
	}
	return t
}

// FromColumns assembles a table without validation. Callers guarantee that
// every column has nrows elements.
func FromColumns(names []string, cols []*Vector, nrows int, class []string) *Table {
	return &Table{
		names: names,
		cols:  cols,
		nrows: nrows,
		class: append([]string(nil), class...),
	}
}

func (t *Table) NumRows() int { return t.nrows }
func (t *Table) NumCols() int { return len(t.cols) }

// Empty reports whether the table has no columns or no rows.
func (t *Table) Empty() bool { return len(t.cols) == 0 || t.nrows == 0 }

// Names returns a copy of the column names.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

func (t *Table) Name(i int) string { return t.names[i] }
func (t *Table) Column(i int) *Vector { return t.cols[i] }
func (t *Table) Class() []string { return append([]string(nil), t.class...) }
func (t *Table) GroupVars() []string { return append([]string(nil), t.groups...) }
func (t *Table) IsGrouped() bool { return len(t.groups) > 0 }

// ColumnByName returns the first column with the given name.
func (t *Table) ColumnByName(name string) (*Vector, bool) {
	for i, n := range t.names {
		if n == name {
			return t.cols[i], true
		}
	}
	return nil, false
}

// GroupBy returns a grouped view of t. Columns are shared.
func (t *Table) GroupBy(vars ...string) (*Table, error) {
	for _, v := range vars {
		if _, ok := t.ColumnByName(v); !ok {
			return nil, errors.Errorf("group by: unknown column %q", v)
		}
	}
	g := FromColumns(t.names, t.cols, t.nrows, append([]string{classGrouped}, ClassTbl...))
	g.groups = append([]string(nil), vars...)
	return g, nil
}
