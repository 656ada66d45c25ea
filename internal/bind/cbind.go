package bind

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"goFrame/internal/frame"
)

// ColumnBind places tables side by side. All tables must have the row count
// of the first one. Columns are shared with the inputs, not copied, and
// duplicate names are kept as they are.
func ColumnBind(ctx context.Context, tables []*frame.Table) (*frame.Table, error) {
	if len(tables) == 0 {
		return frame.FromColumns(nil, nil, 0, frame.ClassDataFrame), nil
	}
	for i, t := range tables {
		if t == nil {
			return nil, &ValidationError{Op: "cbind", Msg: fmt.Sprintf("table %d is nil", i+1)}
		}
	}

	nrows := tables[0].NumRows()
	nv := tables[0].NumCols()
	for i := 1; i < len(tables); i++ {
		cur := tables[i]
		if cur.NumRows() != nrows {
			msg := fmt.Sprintf("incompatible number of rows (table %d: %d columns of %d rows, expecting %d)",
				i+1, cur.NumCols(), cur.NumRows(), nrows)
			return nil, &ValidationError{Op: "cbind", Msg: msg}
		}
		nv += cur.NumCols()
	}

	names := make([]string, 0, nv)
	cols := make([]*frame.Vector, 0, nv)
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "cbind")
		}
		for j := 0; j < t.NumCols(); j++ {
			names = append(names, t.Name(j))
			cols = append(cols, t.Column(j))
		}
	}
	return frame.FromColumns(names, cols, nrows, frame.ClassDataFrame), nil
}
