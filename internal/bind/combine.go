package bind

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"goFrame/internal/frame"
)

// Combine concatenates bare vectors into one, promoting the element type
// along the way. ctx is checked once per input vector.
func Combine(ctx context.Context, vectors []*frame.Vector) (*frame.Vector, error) {
	if len(vectors) == 0 {
		return nil, &ValidationError{Op: "combine", Msg: "empty input: needs at least one vector"}
	}
	n := 0
	for i, v := range vectors {
		if v == nil {
			return nil, &ValidationError{Op: "combine", Msg: fmt.Sprintf("element %d is nil", i+1)}
		}
		n += v.Len()
	}

	var col *Column
	k := 0
	for i, cur := range vectors {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "combine")
		}
		r := Range{Start: k, Len: cur.Len()}

		switch {
		case col == nil:
			col = NewColumn(cur, n)
			col.Collect(r, cur)
		case col.Compatible(cur):
			col.Collect(r, cur)
		case col.CanPromote(cur):
			promoted := col.Promote(cur, n)
			promoted.Collect(r, cur)
			promoted.Collect(Range{Start: 0, Len: k}, col.Get())
			col = promoted
		default:
			return nil, &TypeIncompatibilityError{
				Op:    "combine",
				Index: i + 1,
				Have:  col.Describe(),
				Got:   cur.TypeName(),
			}
		}
		k += cur.Len()
	}
	return col.Get(), nil
}
