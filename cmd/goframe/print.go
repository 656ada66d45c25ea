package main

import (
	"fmt"
	"io"
	"strings"

	"goFrame/internal/config"
	"goFrame/internal/frame"
)

// printTable writes a header line, one line per row and a shape footer.
func printTable(w io.Writer, t *frame.Table, cfg *config.Config) error {
	if _, err := fmt.Fprintln(w, strings.Join(t.Names(), cfg.Separator)); err != nil {
		return err
	}

	n := t.NumRows()
	if cfg.MaxRows > 0 && n > cfg.MaxRows {
		n = cfg.MaxRows
	}
	parts := make([]string, t.NumCols())
	for i := 0; i < n; i++ {
		for j := range parts {
			parts[j] = t.Column(j).Format(i, cfg.NAString)
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, cfg.Separator)); err != nil {
			return err
		}
	}
	if n < t.NumRows() {
		if _, err := fmt.Fprintf(w, "... %d more rows\n", t.NumRows()-n); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "(%d rows x %d columns; %s)\n", t.NumRows(), t.NumCols(), describeTypes(t))
	return err
}

func describeTypes(t *frame.Table) string {
	types := make([]string, t.NumCols())
	for j := range types {
		types[j] = t.Column(j).TypeName()
	}
	return strings.Join(types, ", ")
}
