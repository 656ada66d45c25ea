package frame

import "strings"

// Kind represents the element kind of a vector.
type Kind uint8

const (
	KindLogical Kind = iota
	KindInteger
	KindDouble
	KindCharacter
	KindFactor
	KindOpaque
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLogical:
		return "logical"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindCharacter:
		return "character"
	case KindFactor:
		return "factor"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name back to a Kind. A few common aliases are accepted.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "logical", "bool", "boolean":
		return KindLogical, true
	case "integer", "int":
		return KindInteger, true
	case "double", "float", "numeric":
		return KindDouble, true
	case "character", "string", "str":
		return KindCharacter, true
	case "factor":
		return KindFactor, true
	case "opaque":
		return KindOpaque, true
	default:
		return 0, false
	}
}

// Type is the full element type of a vector: a kind plus the extra
// information that distinguishes two vectors of the same kind.
// Levels is only meaningful for KindFactor, Class only for KindOpaque.
type Type struct {
	Kind   Kind
	Levels []string
	Class  string
}

// Logical, Integer, Double and Character are the parameterless types.
var (
	Logical   = Type{Kind: KindLogical}
	Integer   = Type{Kind: KindInteger}
	Double    = Type{Kind: KindDouble}
	Character = Type{Kind: KindCharacter}
)

// FactorOf returns a factor type with the given ordered levels.
func FactorOf(levels ...string) Type {
	return Type{Kind: KindFactor, Levels: append([]string(nil), levels...)}
}

// OpaqueOf returns an opaque type tagged with the given class name.
func OpaqueOf(class string) Type {
	return Type{Kind: KindOpaque, Class: class}
}

// Equal reports whether two types are exactly the same.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindFactor:
		if len(t.Levels) != len(o.Levels) {
			return false
		}
		for i := range t.Levels {
			if t.Levels[i] != o.Levels[i] {
				return false
			}
		}
		return true
	case KindOpaque:
		return t.Class == o.Class
	default:
		return true
	}
}

// String describes the type for diagnostics, e.g. "factor<a,b>" or "opaque<Date>".
func (t Type) String() string {
	switch t.Kind {
	case KindFactor:
		return "factor<" + strings.Join(t.Levels, ",") + ">"
	case KindOpaque:
		return "opaque<" + t.Class + ">"
	default:
		return t.Kind.String()
	}
}
