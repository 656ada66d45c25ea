package bind

import (
	"fmt"

	"goFrame/internal/frame"
)

// Range is the half-open output interval [Start, Start+Len).
type Range struct {
	Start, Len int
}

// Column is a typed output buffer of fixed length. Every slot starts NA and
// is written at most once by Collect. A Column is owned by exactly one
// registry slot; Promote hands back a replacement and the receiver must be
// dropped once its data has been copied over.
type Column struct {
	typ  frame.Type
	buf  *frame.Vector
	done bool
}

// NewColumn creates a column typed after sample with n NA slots.
func NewColumn(sample *frame.Vector, n int) *Column {
	return newColumn(sample.Type(), n)
}

func newColumn(t frame.Type, n int) *Column {
	return &Column{typ: t, buf: frame.NewVector(t, n)}
}

// Compatible reports whether v has exactly the column's type.
func (c *Column) Compatible(v *frame.Vector) bool {
	return c.typ.Equal(v.Type())
}

// CanPromote reports whether the lattice has a join of the column's type
// and v's type.
func (c *Column) CanPromote(v *frame.Vector) bool {
	_, ok := Join(c.typ, v.Type())
	return ok
}

// Promote returns a new NA-filled column of n slots typed at the join of the
// column's type and v's type. The caller must collect both v and the
// receiver's written prefix into it.
func (c *Column) Promote(v *frame.Vector, n int) *Column {
	j, ok := Join(c.typ, v.Type())
	if !ok {
		panic(fmt.Sprintf("bind: no promotion from %s to %s", c.typ, v.Type()))
	}
	return newColumn(j, n)
}

// Describe names the column's current type.
func (c *Column) Describe() string {
	return c.typ.String()
}

// Type returns the column's current type.
func (c *Column) Type() frame.Type {
	return c.typ
}

// Get finalizes the column and returns its backing vector.
func (c *Column) Get() *frame.Vector {
	c.done = true
	return c.buf
}

// Collect writes src[0:r.Len] into slots [r.Start, r.Start+r.Len), converting
// to the column's type. NA values leave their slot untouched.
func (c *Column) Collect(r Range, src *frame.Vector) {
	if c.done {
		panic("bind: collect on finalized column")
	}
	if r.Start < 0 || r.Len < 0 || r.Start+r.Len > c.buf.Len() || r.Len > src.Len() {
		panic(InternalBoundsError{Start: r.Start, Len: r.Len, Size: c.buf.Len()})
	}
	put := c.writer(src)
	for i := 0; i < r.Len; i++ {
		if src.IsNA(i) {
			continue
		}
		put(r.Start+i, i)
	}
}

// writer returns the per-slot conversion from src into the buffer.
func (c *Column) writer(src *frame.Vector) func(d, i int) {
	dst, from := c.buf, src.Kind()
	switch c.typ.Kind {
	case frame.KindLogical:
		if from == frame.KindLogical {
			return func(d, i int) { dst.SetBool(d, src.Bool(i)) }
		}
	case frame.KindInteger:
		switch from {
		case frame.KindLogical:
			return func(d, i int) { dst.SetInt(d, boolToInt(src.Bool(i))) }
		case frame.KindInteger:
			return func(d, i int) { dst.SetInt(d, src.Int(i)) }
		}
	case frame.KindDouble:
		switch from {
		case frame.KindLogical:
			return func(d, i int) { dst.SetFloat(d, float64(boolToInt(src.Bool(i)))) }
		case frame.KindInteger:
			return func(d, i int) { dst.SetFloat(d, float64(src.Int(i))) }
		case frame.KindDouble:
			return func(d, i int) { dst.SetFloat(d, src.Float(i)) }
		}
	case frame.KindCharacter:
		if from == frame.KindCharacter || from == frame.KindFactor {
			return func(d, i int) { dst.SetStr(d, src.Str(i)) }
		}
	case frame.KindFactor:
		if c.typ.Equal(src.Type()) {
			return func(d, i int) { dst.SetCode(d, src.Code(i)) }
		}
	case frame.KindOpaque:
		if c.typ.Equal(src.Type()) {
			return func(d, i int) { dst.SetObject(d, src.Object(i)) }
		}
	}
	panic(fmt.Sprintf("bind: cannot collect %s into %s", src.Type(), c.typ))
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
