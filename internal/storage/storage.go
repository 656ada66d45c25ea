package storage

import "goFrame/internal/frame"

// Catalog holds named tables that bind statements read from and write into.
//
// Different implementations are possible:
//   - in-memory (memstore)
//   - one YAML document per table in a directory (filestore)
type Catalog interface {
	// CreateTable registers a new table. It fails if the name is taken.
	CreateTable(name string, t *frame.Table) error

	// ReplaceTable stores t under name, overwriting any existing table.
	ReplaceTable(name string, t *frame.Table) error

	// Table returns the table stored under name.
	Table(name string) (*frame.Table, error)

	// DropTable removes a table.
	DropTable(name string) error

	// ListTables returns the names of all tables, sorted.
	ListTables() ([]string, error)
}
