package filestore

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"goFrame/internal/frame"
)

// document is the YAML (or JSON) shape of one table file:
//
//	columns:
//	  - name: id
//	    type: integer
//	    values: [1, 2, null]
//	  - name: size
//	    type: factor
//	    levels: [small, large]
//	    values: [large, small, null]
//	groups: [size]
//
// null is NA. type may be omitted, in which case it is inferred from the
// first non-null value (bool, int, float, string), defaulting to logical.
type document struct {
	Columns []columnDoc `yaml:"columns"`
	Groups  []string    `yaml:"groups,omitempty"`
}

type columnDoc struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type,omitempty"`
	Levels []string `yaml:"levels,omitempty"`
	Class  string   `yaml:"class,omitempty"`
	Values []any    `yaml:"values"`
}

// Decode reads one table document from r.
func Decode(r io.Reader) (*frame.Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("filestore: empty table document")
		}
		return nil, errors.Wrap(err, "filestore: decode")
	}

	names := make([]string, len(doc.Columns))
	cols := make([]*frame.Vector, len(doc.Columns))
	for i, c := range doc.Columns {
		v, err := decodeColumn(c)
		if err != nil {
			return nil, errors.Wrapf(err, "filestore: column %q", c.Name)
		}
		names[i], cols[i] = c.Name, v
	}

	t, err := frame.NewTable(names, cols)
	if err != nil {
		return nil, errors.Wrap(err, "filestore")
	}
	if len(doc.Groups) > 0 {
		return t.GroupBy(doc.Groups...)
	}
	return t, nil
}

// Encode writes t to w as a table document.
func Encode(w io.Writer, t *frame.Table) error {
	doc := document{
		Columns: make([]columnDoc, t.NumCols()),
		Groups:  t.GroupVars(),
	}
	for i := range doc.Columns {
		v := t.Column(i)
		typ := v.Type()
		doc.Columns[i] = columnDoc{
			Name:   t.Name(i),
			Type:   typ.Kind.String(),
			Levels: typ.Levels,
			Class:  typ.Class,
			Values: v.Values(),
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "filestore: encode")
	}
	return enc.Close()
}

func decodeColumn(c columnDoc) (*frame.Vector, error) {
	typ, err := columnType(c)
	if err != nil {
		return nil, err
	}

	var levelCode map[string]int
	if typ.Kind == frame.KindFactor {
		levelCode = make(map[string]int, len(typ.Levels))
		for i, l := range typ.Levels {
			levelCode[l] = i + 1
		}
	}

	v := frame.NewVector(typ, len(c.Values))
	for i, raw := range c.Values {
		if raw == nil {
			continue
		}
		switch typ.Kind {
		case frame.KindLogical:
			b, ok := raw.(bool)
			if !ok {
				return nil, badValue(i, raw, typ)
			}
			v.SetBool(i, b)
		case frame.KindInteger:
			n, ok := toInt(raw)
			if !ok {
				return nil, badValue(i, raw, typ)
			}
			v.SetInt(i, n)
		case frame.KindDouble:
			f, ok := toFloat(raw)
			if !ok {
				return nil, badValue(i, raw, typ)
			}
			v.SetFloat(i, f)
		case frame.KindCharacter:
			s, ok := raw.(string)
			if !ok {
				return nil, badValue(i, raw, typ)
			}
			v.SetStr(i, s)
		case frame.KindFactor:
			s, _ := raw.(string)
			code, ok := levelCode[s]
			if !ok {
				return nil, errors.Errorf("value %d: %v is not a level of %s", i+1, raw, typ)
			}
			v.SetCode(i, code)
		case frame.KindOpaque:
			v.SetObject(i, raw)
		}
	}
	return v, nil
}

func columnType(c columnDoc) (frame.Type, error) {
	if c.Type == "" {
		return inferType(c.Values), nil
	}
	kind, ok := frame.ParseKind(c.Type)
	if !ok {
		return frame.Type{}, errors.Errorf("unknown type %q", c.Type)
	}
	switch kind {
	case frame.KindFactor:
		return frame.FactorOf(c.Levels...), nil
	case frame.KindOpaque:
		if c.Class == "" {
			return frame.Type{}, errors.New("opaque column needs a class")
		}
		return frame.OpaqueOf(c.Class), nil
	default:
		return frame.Type{Kind: kind}, nil
	}
}

func inferType(values []any) frame.Type {
	for _, raw := range values {
		switch raw.(type) {
		case nil:
			continue
		case bool:
			return frame.Logical
		case int, int64, uint64:
			return frame.Integer
		case float64:
			return frame.Double
		case string:
			return frame.Character
		default:
			return frame.OpaqueOf(fmt.Sprintf("%T", raw))
		}
	}
	return frame.Logical
}

func toInt(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat(raw any) (float64, bool) {
	if f, ok := raw.(float64); ok {
		return f, true
	}
	if n, ok := toInt(raw); ok {
		return float64(n), true
	}
	if n, ok := raw.(uint64); ok {
		return float64(n), true
	}
	return 0, false
}

func badValue(i int, raw any, typ frame.Type) error {
	return errors.Errorf("value %d: %v (%T) is not %s", i+1, raw, raw, typ)
}
