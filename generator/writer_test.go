package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	out, err := Compile(userSchema())
	require.NoError(t, err)

	stale := filepath.Join(dir, "ts-model", "table", "User.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

	written, err := WriteFiles(dir, out)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "ts-model", "enum", "Status.ts"),
		filepath.Join(dir, "ts-model", "table", "User.ts"),
	}, written)

	for _, f := range out.Files() {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(f.Name)))
		require.NoError(t, err)
		assert.Equal(t, f.Content, string(data))
	}
}

func TestWriteFilesUnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not a folder"), 0644))

	out, err := Compile(userSchema())
	require.NoError(t, err)

	_, err = WriteFiles(blocker, out)
	assert.Error(t, err)
}
