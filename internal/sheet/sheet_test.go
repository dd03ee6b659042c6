package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	path := writeTemp(t, "Name,Region\n山田太郎,東京\n鈴木一郎\n")

	table, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Region"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"山田太郎", "東京"}, table.Rows[0])
	// Short rows are padded to header width.
	assert.Equal(t, []string{"鈴木一郎", ""}, table.Rows[1])
}

func TestReadTrimsOverlongRows(t *testing.T) {
	path := writeTemp(t, "Name,Region\n山田太郎,東京,extra,cells\n")

	table, err := Read(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"山田太郎", "東京"}, table.Rows[0])

	// Appended columns line up with their headers even after a ragged read.
	require.NoError(t, table.AppendColumn("Name_Romaji", []string{"yamada tarou"}))
	idx, err := table.ColumnIndex("Name_Romaji")
	require.NoError(t, err)
	assert.Equal(t, "yamada tarou", table.Rows[0][idx])
}

func TestReadEmptyFile(t *testing.T) {
	path := writeTemp(t, "")
	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestColumnIndex(t *testing.T) {
	table := &Table{Headers: []string{"Name", "Region"}}

	idx, err := table.ColumnIndex("name")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = table.ColumnIndex("missing")
	require.Error(t, err)
}

func TestAppendColumn(t *testing.T) {
	table := &Table{
		Headers: []string{"Name"},
		Rows:    [][]string{{"山田"}, {"鈴木"}},
	}

	require.NoError(t, table.AppendColumn("Name_Romaji", []string{"yamada", "suzuki"}))
	assert.Equal(t, []string{"Name", "Name_Romaji"}, table.Headers)
	assert.Equal(t, []string{"山田", "yamada"}, table.Rows[0])

	err := table.AppendColumn("bad", []string{"only one"})
	require.Error(t, err)
}

func TestWriteBatches(t *testing.T) {
	dir := t.TempDir()
	table := &Table{
		Headers: []string{"Name"},
		Rows:    [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}},
	}

	paths, err := WriteBatches(dir, "out", table, 2)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "out_001.csv"), paths[0])

	// Every batch repeats the header and carries its slice of rows.
	second, err := Read(paths[1])
	require.NoError(t, err)
	assert.Equal(t, table.Headers, second.Headers)
	assert.Equal(t, [][]string{{"c"}, {"d"}}, second.Rows)

	last, err := Read(paths[2])
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"e"}}, last.Rows)
}

func TestWriteBatchesSingleFile(t *testing.T) {
	dir := t.TempDir()
	table := &Table{Headers: []string{"Name"}, Rows: [][]string{{"a"}, {"b"}}}

	paths, err := WriteBatches(dir, "out", table, 0)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "out.csv"), paths[0])
}
