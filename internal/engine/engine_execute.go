package engine

import (
	"context"

	"github.com/pkg/errors"

	"goFrame/internal/frame"
	"goFrame/internal/query"
)

// Execute runs a parsed statement. It returns the table the statement
// produced or showed; DROP returns nil.
func (e *DBEngine) Execute(ctx context.Context, stmt query.Statement) (*frame.Table, error) {
	if err := e.checkStarted(); err != nil {
		return nil, err
	}

	switch s := stmt.(type) {
	case *query.RowBindStmt:
		e.logf("ROWBIND %v INTO %s", s.Sources, s.Into)
		return e.RowBind(ctx, s.Into, s.Sources...)

	case *query.ColBindStmt:
		e.logf("COLBIND %v INTO %s", s.Sources, s.Into)
		return e.ColumnBind(ctx, s.Into, s.Sources...)

	case *query.CombineStmt:
		e.logf("COMBINE %v INTO %s", s.Sources, s.Into)
		return e.Combine(ctx, s.Into, s.Sources...)

	case *query.ShowStmt:
		return e.store.Table(s.Table)

	case *query.DropStmt:
		e.logf("DROP %s", s.Table)
		return nil, e.store.DropTable(s.Table)

	default:
		return nil, errors.Errorf("unsupported statement type %T", stmt)
	}
}

// ExecuteString parses and executes a single statement.
func (e *DBEngine) ExecuteString(ctx context.Context, q string) (*frame.Table, error) {
	stmt, err := query.Parse(q)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return e.Execute(ctx, stmt)
}
