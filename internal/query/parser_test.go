package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowBind_Basic(t *testing.T) {
	stmt, err := Parse("ROWBIND users, archived_users INTO all_users;")
	require.NoError(t, err)

	rb, ok := stmt.(*RowBindStmt)
	require.True(t, ok, "expected *RowBindStmt, got %T", stmt)
	assert.Equal(t, []string{"users", "archived_users"}, rb.Sources)
	assert.Equal(t, "all_users", rb.Into)
}

func TestParseRowBind_CaseAndSpaces(t *testing.T) {
	stmt, err := Parse("  rbind   a ,b,   c   into   Out  ;  ")
	require.NoError(t, err)

	rb, ok := stmt.(*RowBindStmt)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, rb.Sources)
	assert.Equal(t, "Out", rb.Into)
}

func TestParseColBind(t *testing.T) {
	stmt, err := Parse("COLBIND left_part, right_part INTO wide")
	require.NoError(t, err)

	cb, ok := stmt.(*ColBindStmt)
	require.True(t, ok)
	assert.Equal(t, []string{"left_part", "right_part"}, cb.Sources)
	assert.Equal(t, "wide", cb.Into)
}

func TestParseCombine(t *testing.T) {
	stmt, err := Parse("combine a.x, b.total_amount into v")
	require.NoError(t, err)

	c, ok := stmt.(*CombineStmt)
	require.True(t, ok)
	assert.Equal(t, []ColumnRef{{Table: "a", Column: "x"}, {Table: "b", Column: "total_amount"}}, c.Sources)
	assert.Equal(t, "v", c.Into)
	assert.Equal(t, "b.total_amount", c.Sources[1].String())
}

func TestParseShowAndDrop(t *testing.T) {
	stmt, err := Parse("SHOW users")
	require.NoError(t, err)
	assert.Equal(t, &ShowStmt{Table: "users"}, stmt)

	stmt, err = Parse("DROP TABLE users;")
	require.NoError(t, err)
	assert.Equal(t, &DropStmt{Table: "users"}, stmt)

	stmt, err = Parse("drop users")
	require.NoError(t, err)
	assert.Equal(t, &DropStmt{Table: "users"}, stmt)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"", "empty query"},
		{"   ;", "invalid statement"},
		{"SELECT * FROM users", "unsupported statement"},
		{"ROWBIND a, b", "expected INTO"},
		{"ROWBIND INTO c", "at least one source"},
		{"ROWBIND a, b INTO", "exactly one table name"},
		{"ROWBIND a, b INTO c d", "exactly one table name"},
		{"COLBIND a, 9b INTO c", "invalid table name"},
		{"COMBINE a, b.y INTO c", "expected table.column"},
		{"COMBINE a. INTO c", "expected table.column"},
		{"SHOW", "exactly one table name"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, err := Parse(tt.query)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestIndexKeyword_WholeWord(t *testing.T) {
	assert.Equal(t, -1, indexKeyword("intox", "INTO"))
	assert.Equal(t, 5, indexKeyword("a, b into c", "INTO"))
	assert.Equal(t, 9, indexKeyword("into_a b INTO c", "INTO"))
}
