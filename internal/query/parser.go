package query

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse parses a single bind statement string into a Statement.
func Parse(query string) (Statement, error) {
	// Trim leading & trailing whitespace
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, errors.New("empty query")
	}

	// Remove trailing semicolon if present
	if strings.HasSuffix(q, ";") {
		q = strings.TrimSpace(q[:len(q)-1])
	}

	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return nil, errors.New("invalid statement")
	}
	rest := strings.TrimSpace(q[len(tokens[0]):])

	switch strings.ToUpper(tokens[0]) {
	case "ROWBIND", "RBIND":
		sources, into, err := parseSourcesInto("ROWBIND", rest)
		if err != nil {
			return nil, err
		}
		return &RowBindStmt{Sources: sources, Into: into}, nil
	case "COLBIND", "CBIND":
		sources, into, err := parseSourcesInto("COLBIND", rest)
		if err != nil {
			return nil, err
		}
		return &ColBindStmt{Sources: sources, Into: into}, nil
	case "COMBINE":
		return parseCombine(rest)
	case "SHOW":
		name, err := parseSingleName("SHOW", rest)
		if err != nil {
			return nil, err
		}
		return &ShowStmt{Table: name}, nil
	case "DROP":
		name, err := parseSingleName("DROP", strings.TrimSpace(trimKeyword(rest, "TABLE")))
		if err != nil {
			return nil, err
		}
		return &DropStmt{Table: name}, nil
	default:
		return nil, errors.Errorf("unsupported statement %q (supported: ROWBIND, COLBIND, COMBINE, SHOW, DROP)", tokens[0])
	}
}

// parseSourcesInto splits "a, b INTO c" into its table list and target.
func parseSourcesInto(kw, s string) ([]string, string, error) {
	sources, into, err := parseSourcesIntoRaw(kw, s)
	if err != nil {
		return nil, "", err
	}
	for _, src := range sources {
		if !isIdent(src) {
			return nil, "", errors.Errorf("%s: invalid table name %q", kw, src)
		}
	}
	return sources, into, nil
}

func parseCombine(s string) (Statement, error) {
	parts, into, err := parseSourcesIntoRaw("COMBINE", s)
	if err != nil {
		return nil, err
	}

	refs := make([]ColumnRef, 0, len(parts))
	for _, p := range parts {
		dot := strings.IndexByte(p, '.')
		if dot <= 0 || dot == len(p)-1 {
			return nil, errors.Errorf("COMBINE: expected table.column, got %q", p)
		}
		ref := ColumnRef{Table: p[:dot], Column: p[dot+1:]}
		if !isIdent(ref.Table) {
			return nil, errors.Errorf("COMBINE: invalid table name %q", ref.Table)
		}
		refs = append(refs, ref)
	}
	return &CombineStmt{Sources: refs, Into: into}, nil
}

// parseSourcesIntoRaw splits "x, y INTO c" without checking the sources.
func parseSourcesIntoRaw(kw, s string) ([]string, string, error) {
	idx := indexKeyword(s, "INTO")
	if idx < 0 {
		return nil, "", errors.Errorf("%s: expected INTO", kw)
	}
	into, err := parseSingleName(kw+" INTO", s[idx+len("INTO"):])
	if err != nil {
		return nil, "", err
	}
	sources := splitCommaSeparated(s[:idx])
	if len(sources) == 0 {
		return nil, "", errors.Errorf("%s: expected at least one source", kw)
	}
	return sources, into, nil
}

func parseSingleName(kw, s string) (string, error) {
	fields := strings.Fields(s)
	if len(fields) != 1 {
		return "", errors.Errorf("%s: expected exactly one table name", kw)
	}
	if !isIdent(fields[0]) {
		return "", errors.Errorf("%s: invalid table name %q", kw, fields[0])
	}
	return fields[0], nil
}
