package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtexzv/graphql-parser/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectGraphQLFiles_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.graphql"), "{ a }")
	writeFile(t, filepath.Join(dir, "b.gql"), "{ b }")
	writeFile(t, filepath.Join(dir, "ignore.txt"), "not graphql")

	files, err := fs.CollectGraphQLFiles(dir)
	require.NoError(t, err)
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	assert.Len(t, files, 2)
}

func TestCollectGraphQLFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "op.graphql")
	writeFile(t, path, "{ a }")

	files, err := fs.CollectGraphQLFiles(path)
	require.NoError(t, err)
	require.Len(t, files, 1)
	files[0].Close()
}

func TestCollectGraphQLFiles_RejectsNonGraphQLSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "op.txt")
	writeFile(t, path, "not graphql")

	_, err := fs.CollectGraphQLFiles(path)
	assert.Error(t, err)
}

func TestCollectGraphQLFiles_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := fs.CollectGraphQLFiles(dir)
	assert.Error(t, err)
}
