package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector_AllNA(t *testing.T) {
	for _, typ := range []Type{Logical, Integer, Double, Character, FactorOf("a"), OpaqueOf("Date")} {
		v := NewVector(typ, 3)
		assert.Equal(t, 3, v.Len(), typ.String())
		assert.True(t, v.AllNA(), typ.String())
		assert.Equal(t, []any{nil, nil, nil}, v.Values(), typ.String())
	}
}

func TestVector_AllNA(t *testing.T) {
	assert.True(t, Integers().AllNA(), "empty vector counts as all NA")
	assert.False(t, Integers(1, 2).WithNA(0).AllNA())
	assert.True(t, Integers(1, 2).WithNA(0, 1).AllNA())
	assert.True(t, Factor([]string{"a"}, 0, 0).AllNA())
	assert.True(t, Opaques("Date", nil).AllNA())
}

func TestVector_WithNAClearsData(t *testing.T) {
	v := Integers(5, 6).WithNA(1)
	assert.Equal(t, int64(0), v.Int(1))
	assert.True(t, v.IsNA(1))
	assert.Equal(t, []any{int64(5), nil}, v.Values())
}

func TestVector_FactorLabels(t *testing.T) {
	v := Factor([]string{"lo", "hi"}, 2, 1, 0)
	assert.Equal(t, "factor<lo,hi>", v.TypeName())
	assert.Equal(t, "hi", v.Str(0))
	assert.Equal(t, "lo", v.Str(1))
	assert.Equal(t, []any{"hi", "lo", nil}, v.Values())
}

func TestVector_Format(t *testing.T) {
	assert.Equal(t, "TRUE", Logicals(true).Format(0, "NA"))
	assert.Equal(t, "42", Integers(42).Format(0, "NA"))
	assert.Equal(t, "3.5", Doubles(3.5).Format(0, "NA"))
	assert.Equal(t, "<missing>", Doubles(0).WithNA(0).Format(0, "<missing>"))
	assert.Equal(t, "2024-01-01", Opaques("Date", "2024-01-01").Format(0, "NA"))
}

func TestType_Equal(t *testing.T) {
	assert.True(t, Double.Equal(Double))
	assert.False(t, Double.Equal(Integer))
	assert.True(t, FactorOf("a", "b").Equal(FactorOf("a", "b")))
	assert.False(t, FactorOf("a", "b").Equal(FactorOf("b", "a")))
	assert.False(t, FactorOf("a").Equal(FactorOf("a", "b")))
	assert.True(t, OpaqueOf("Date").Equal(OpaqueOf("Date")))
	assert.False(t, OpaqueOf("Date").Equal(OpaqueOf("POSIXct")))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindLogical, KindInteger, KindDouble, KindCharacter, KindFactor, KindOpaque} {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	got, ok := ParseKind(" STRING ")
	require.True(t, ok)
	assert.Equal(t, KindCharacter, got)

	_, ok = ParseKind("complex")
	assert.False(t, ok)
}

func TestNewTable(t *testing.T) {
	tbl, err := NewTable([]string{"id", "name"}, []*Vector{Integers(1, 2), Strings("a", "b")})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
	assert.False(t, tbl.Empty())
	assert.Equal(t, ClassDataFrame, tbl.Class())

	col, ok := tbl.ColumnByName("name")
	require.True(t, ok)
	assert.Equal(t, "b", col.Str(1))

	_, ok = tbl.ColumnByName("missing")
	assert.False(t, ok)
}

func TestNewTable_Errors(t *testing.T) {
	_, err := NewTable([]string{"a", "b"}, []*Vector{Integers(1, 2), Integers(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "b" has 1 rows, expected 2`)

	_, err = NewTable([]string{"a"}, nil)
	require.Error(t, err)

	_, err = NewTable([]string{"a"}, []*Vector{nil})
	require.Error(t, err)
}

func TestTable_Empty(t *testing.T) {
	assert.True(t, MustTable(nil).Empty())
	assert.True(t, MustTable([]string{"a"}, Integers()).Empty())
}

func TestTable_GroupBy(t *testing.T) {
	tbl := MustTable([]string{"g", "v"}, Strings("x"), Integers(1))

	g, err := tbl.GroupBy("g")
	require.NoError(t, err)
	assert.True(t, g.IsGrouped())
	assert.Equal(t, []string{"g"}, g.GroupVars())
	assert.Equal(t, "grouped_df", g.Class()[0])
	assert.Same(t, tbl.Column(1), g.Column(1))
	assert.False(t, tbl.IsGrouped())

	_, err = tbl.GroupBy("nope")
	assert.Error(t, err)
}
