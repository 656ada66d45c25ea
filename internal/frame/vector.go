package frame

import (
	"fmt"
	"strconv"
)

// Vector is a homogeneous sequence of values sharing one Type.
//
// Only the backing slice matching the kind is allocated; the others stay nil.
// Missing values are tracked in a separate mask so every kind gets a
// well-defined NA without reserving a sentinel value. Data slots that are NA
// always hold the zero value of their element type.
type Vector struct {
	typ Type

	bools  []bool    // KindLogical
	ints   []int64   // KindInteger
	floats []float64 // KindDouble
	strs   []string  // KindCharacter
	codes  []int     // KindFactor, 1-based level index
	objs   []any     // KindOpaque

	na []bool
}

// NewVector allocates a vector of type t and length n with every slot NA.
func NewVector(t Type, n int) *Vector {
	v := &Vector{typ: t, na: make([]bool, n)}
	for i := range v.na {
		v.na[i] = true
	}
	switch t.Kind {
	case KindLogical:
		v.bools = make([]bool, n)
	case KindInteger:
		v.ints = make([]int64, n)
	case KindDouble:
		v.floats = make([]float64, n)
	case KindCharacter:
		v.strs = make([]string, n)
	case KindFactor:
		v.codes = make([]int, n)
	case KindOpaque:
		v.objs = make([]any, n)
	}
	return v
}

// Logicals builds a logical vector.
func Logicals(vals ...bool) *Vector {
	return &Vector{typ: Logical, bools: vals, na: make([]bool, len(vals))}
}

// Integers builds an integer vector.
func Integers(vals ...int64) *Vector {
	return &Vector{typ: Integer, ints: vals, na: make([]bool, len(vals))}
}

// Doubles builds a double vector.
func Doubles(vals ...float64) *Vector {
	return &Vector{typ: Double, floats: vals, na: make([]bool, len(vals))}
}

// Strings builds a character vector.
func Strings(vals ...string) *Vector {
	return &Vector{typ: Character, strs: vals, na: make([]bool, len(vals))}
}

// Factor builds a factor vector from 1-based level codes. Code 0 is NA.
func Factor(levels []string, codes ...int) *Vector {
	v := &Vector{typ: FactorOf(levels...), codes: codes, na: make([]bool, len(codes))}
	for i, c := range codes {
		if c == 0 {
			v.na[i] = true
		}
	}
	return v
}

// Opaques builds an opaque vector of the given class. Nil elements are NA.
func Opaques(class string, vals ...any) *Vector {
	v := &Vector{typ: OpaqueOf(class), objs: vals, na: make([]bool, len(vals))}
	for i, o := range vals {
		if o == nil {
			v.na[i] = true
		}
	}
	return v
}

// WithNA marks the given positions as missing and returns v.
func (v *Vector) WithNA(idx ...int) *Vector {
	for _, i := range idx {
		v.SetNA(i)
	}
	return v
}

func (v *Vector) Type() Type { return v.typ }
func (v *Vector) Kind() Kind { return v.typ.Kind }
func (v *Vector) Len() int { return len(v.na) }

// TypeName is the diagnostic name of the vector's runtime type.
func (v *Vector) TypeName() string { return v.typ.String() }

// IsNA reports whether slot i is missing.
func (v *Vector) IsNA(i int) bool { return v.na[i] }

// AllNA reports whether every value is missing. An empty vector is all NA.
func (v *Vector) AllNA() bool {
	for _, m := range v.na {
		if !m {
			return false
		}
	}
	return true
}

// Bool returns slot i of a logical vector.
func (v *Vector) Bool(i int) bool { return v.bools[i] }

// Int returns slot i of an integer vector.
func (v *Vector) Int(i int) int64 { return v.ints[i] }

// Float returns slot i of a double vector.
func (v *Vector) Float(i int) float64 { return v.floats[i] }

// Code returns the 1-based level code at slot i of a factor (0 when NA).
func (v *Vector) Code(i int) int { return v.codes[i] }

// Object returns slot i of an opaque vector.
func (v *Vector) Object(i int) any { return v.objs[i] }

// Str returns slot i of a character vector, or the level label of a factor.
func (v *Vector) Str(i int) string {
	if v.typ.Kind == KindFactor {
		if v.na[i] {
			return ""
		}
		return v.typ.Levels[v.codes[i]-1]
	}
	return v.strs[i]
}

// Value returns slot i as a Go value, nil when NA. Factors yield their label.
func (v *Vector) Value(i int) any {
	if v.na[i] {
		return nil
	}
	switch v.typ.Kind {
	case KindLogical:
		return v.bools[i]
	case KindInteger:
		return v.ints[i]
	case KindDouble:
		return v.floats[i]
	case KindCharacter, KindFactor:
		return v.Str(i)
	default:
		return v.objs[i]
	}
}

// Values returns every slot as a Go value (see Value).
func (v *Vector) Values() []any {
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Value(i)
	}
	return out
}

// Format renders slot i for display, using na for missing values.
func (v *Vector) Format(i int, na string) string {
	if v.na[i] {
		return na
	}
	switch v.typ.Kind {
	case KindLogical:
		if v.bools[i] {
			return "TRUE"
		}
		return "FALSE"
	case KindInteger:
		return strconv.FormatInt(v.ints[i], 10)
	case KindDouble:
		return strconv.FormatFloat(v.floats[i], 'g', -1, 64)
	case KindCharacter, KindFactor:
		return v.Str(i)
	default:
		return fmt.Sprint(v.objs[i])
	}
}

// SetNA marks slot i as missing and clears its data.
func (v *Vector) SetNA(i int) {
	v.na[i] = true
	switch v.typ.Kind {
	case KindLogical:
		v.bools[i] = false
	case KindInteger:
		v.ints[i] = 0
	case KindDouble:
		v.floats[i] = 0
	case KindCharacter:
		v.strs[i] = ""
	case KindFactor:
		v.codes[i] = 0
	case KindOpaque:
		v.objs[i] = nil
	}
}

func (v *Vector) SetBool(i int, b bool) { v.bools[i], v.na[i] = b, false }
func (v *Vector) SetInt(i int, n int64) { v.ints[i], v.na[i] = n, false }
func (v *Vector) SetFloat(i int, f float64) { v.floats[i], v.na[i] = f, false }
func (v *Vector) SetStr(i int, s string) { v.strs[i], v.na[i] = s, false }
func (v *Vector) SetCode(i int, c int) { v.codes[i], v.na[i] = c, false }
func (v *Vector) SetObject(i int, o any) { v.objs[i], v.na[i] = o, false }
