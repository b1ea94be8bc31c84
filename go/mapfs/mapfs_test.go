package mapfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMapFS(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "one/query.sql", "SELECT 1")
	b := writeFile(t, dir, "two/query.sql", "SELECT 2")
	c := writeFile(t, dir, "other.sql", "SELECT 3")

	m := New(a, b, c, a)
	assert.Len(t, m, 3)
	assert.Equal(t, a, m.Path("query.sql"))
	assert.Equal(t, b, m.Path("query.2.sql"))
	assert.Equal(t, "missing.sql", m.Path("missing.sql"))

	data, err := fs.ReadFile(m, "query.2.sql")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 2", string(data))

	var walked []string
	require.NoError(t, fs.WalkDir(m, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if !d.IsDir() {
			walked = append(walked, path)
		}
		return nil
	}))
	assert.Equal(t, []string{"other.sql", "query.2.sql", "query.sql"}, walked)

	_, err = m.Open("nope.sql")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMapFS_SkipsVanishedFiles(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "gone.sql"))
	entries, err := fs.ReadDir(m, ".")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
