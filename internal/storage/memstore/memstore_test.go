package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goFrame/internal/frame"
)

// TestMemstoreCreateAndRead verifies that a table can be created and read back.
func TestMemstoreCreateAndRead(t *testing.T) {
	store := New()

	users := frame.MustTable([]string{"id", "name"}, frame.Integers(1, 2), frame.Strings("Alice", "Bob"))
	require.NoError(t, store.CreateTable("users", users))

	got, err := store.Table("users")
	require.NoError(t, err)
	assert.Same(t, users, got)

	err = store.CreateTable("users", users)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestMemstoreReplaceAndDrop(t *testing.T) {
	store := New()

	first := frame.MustTable([]string{"x"}, frame.Integers(1))
	second := frame.MustTable([]string{"x"}, frame.Doubles(2.5))

	require.NoError(t, store.ReplaceTable("t", first))
	require.NoError(t, store.ReplaceTable("t", second))

	got, err := store.Table("t")
	require.NoError(t, err)
	assert.Same(t, second, got)

	require.NoError(t, store.DropTable("t"))
	_, err = store.Table("t")
	assert.Error(t, err)
	assert.Error(t, store.DropTable("t"))
}

func TestMemstoreListTablesSorted(t *testing.T) {
	store := New()
	for _, name := range []string{"b", "c", "a"} {
		require.NoError(t, store.CreateTable(name, frame.MustTable(nil)))
	}

	names, err := store.ListTables()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestMemstoreRejectsNil(t *testing.T) {
	store := New()
	assert.Error(t, store.CreateTable("t", nil))
	assert.Error(t, store.ReplaceTable("t", nil))
}
