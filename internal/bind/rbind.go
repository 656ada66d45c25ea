package bind

import (
	"context"

	"github.com/pkg/errors"

	"goFrame/internal/frame"
)

// registry maps column names to output slots in order of first appearance.
type registry struct {
	names []string
	cols  []*Column
	slots map[string]int
}

func newRegistry() *registry {
	return &registry{slots: make(map[string]int)}
}

func (r *registry) lookup(name string) (int, bool) {
	slot, ok := r.slots[name]
	return slot, ok
}

func (r *registry) add(name string, c *Column) int {
	slot := len(r.cols)
	r.names = append(r.names, name)
	r.cols = append(r.cols, c)
	r.slots[name] = slot
	return slot
}

// RowBind stacks tables vertically, matching columns by name.
//
// Tables that are nil, have no columns or have no rows are skipped. The
// output has one column per distinct name, ordered by first appearance, and
// rows from a table lacking a column are NA there. Differing column types
// are reconciled through Join. ctx is checked once per input table.
func RowBind(ctx context.Context, tables []*frame.Table) (*frame.Table, error) {
	n := 0
	for _, t := range tables {
		if t != nil && !t.Empty() {
			n += t.NumRows()
		}
	}

	reg := newRegistry()
	k := 0
	for i, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "rbind")
		}
		if t == nil || t.Empty() {
			continue
		}

		nrows := t.NumRows()
		for j := 0; j < t.NumCols(); j++ {
			name, src := t.Name(j), t.Column(j)

			slot, ok := reg.lookup(name)
			if !ok {
				slot = reg.add(name, NewColumn(src, n))
			}
			col := reg.cols[slot]

			switch {
			case col.Compatible(src):
				col.Collect(Range{Start: k, Len: nrows}, src)
			case col.CanPromote(src):
				promoted := col.Promote(src, n)
				promoted.Collect(Range{Start: k, Len: nrows}, src)
				promoted.Collect(Range{Start: 0, Len: k}, col.Get())
				reg.cols[slot] = promoted
			case src.AllNA():
				// slots are already NA in the column's own type
			default:
				return nil, &TypeIncompatibilityError{
					Op:     "rbind",
					Index:  i + 1,
					Column: name,
					Have:   col.Describe(),
					Got:    src.TypeName(),
				}
			}
		}
		k += nrows
	}

	out := make([]*frame.Vector, len(reg.cols))
	for i, c := range reg.cols {
		out[i] = c.Get()
	}
	return frame.FromColumns(reg.names, out, n, frame.ClassTbl), nil
}
