package query

// Statement is the common interface for all bind statements.
type Statement interface {
	stmtNode()
}

// RowBindStmt represents ROWBIND a, b INTO c.
type RowBindStmt struct {
	Sources []string
	Into    string
}

// ColBindStmt represents COLBIND a, b INTO c.
type ColBindStmt struct {
	Sources []string
	Into    string
}

// ColumnRef names one column of one table: table.column.
type ColumnRef struct {
	Table  string
	Column string
}

func (r ColumnRef) String() string { return r.Table + "." + r.Column }

// CombineStmt represents COMBINE a.x, b.y INTO c.
// The result is stored as a one-column table whose column is named Into.
type CombineStmt struct {
	Sources []ColumnRef
	Into    string
}

// ShowStmt represents SHOW t.
type ShowStmt struct {
	Table string
}

// DropStmt represents DROP t.
type DropStmt struct {
	Table string
}

func (*RowBindStmt) stmtNode() {}
func (*ColBindStmt) stmtNode() {}
func (*CombineStmt) stmtNode() {}
func (*ShowStmt) stmtNode() {}
func (*DropStmt) stmtNode() {}
