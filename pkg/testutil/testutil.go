package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "create parent of %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "create %s", path)
	return path
}

// CreateDir creates a directory in the specified parent directory.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	require.NoError(t, os.MkdirAll(path, 0755), "create directory %s", path)
	return path
}

// CreateSymlink creates a symbolic link pointing to target.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755), "create parent of %s", link)
	require.NoError(t, os.Symlink(target, link), "symlink %s -> %s", link, target)
}

// ImageFolder creates <tmp>/<name> holding one file per entry of files,
// each containing its own base name, and returns the folder path.
func ImageFolder(t *testing.T, name string, files ...string) string {
	t.Helper()

	folder := CreateDir(t, t.TempDir(), name)
	for _, file := range files {
		CreateFile(t, folder, file, filepath.Base(file))
	}
	return folder
}

// MemImageFolder is ImageFolder on a fresh in-memory filesystem rooted at
// folder.
func MemImageFolder(t *testing.T, folder string, files ...string) afero.Fs {
	t.Helper()

	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll(folder, 0755))
	for _, file := range files {
		require.NoError(t, afero.WriteFile(mem, filepath.Join(folder, file), []byte(filepath.Base(file)), 0644))
	}
	return mem
}

// AssertFileContent fails the test unless path holds exactly want.
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()

	got, err := os.ReadFile(path)
	require.NoError(t, err, "read %s", path)
	require.Equal(t, want, string(got), "content of %s", path)
}

// DirNames returns the sorted entry names of dir.
func DirNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "read directory %s", dir)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
