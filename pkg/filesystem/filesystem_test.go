// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), afero MemMapFs
// PURPOSE: Verify both types.FS implementations behave the same way

package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/imgreorder/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture writes a file outside of the FS under test.
type fixture struct {
	write func(path, content string, perm os.FileMode)
	read  func(path string) string
}

func diskFixture(t *testing.T) fixture {
	return fixture{
		write: func(path, content string, perm os.FileMode) {
			require.NoError(t, os.WriteFile(path, []byte(content), perm))
		},
		read: func(path string) string {
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			return string(content)
		},
	}
}

func memFixture(t *testing.T, mem afero.Fs) fixture {
	return fixture{
		write: func(path, content string, perm os.FileMode) {
			require.NoError(t, afero.WriteFile(mem, path, []byte(content), perm))
		},
		read: func(path string) string {
			content, err := afero.ReadFile(mem, path)
			require.NoError(t, err)
			return string(content)
		},
	}
}

func exerciseFS(t *testing.T, fs types.FS, fx fixture, root string) {
	t.Helper()

	folder := filepath.Join(root, "pics")
	outDir := filepath.Join(root, "pics_reordered")
	require.NoError(t, fs.MkdirAll(folder, 0755))
	require.NoError(t, fs.MkdirAll(outDir, 0755))
	// Already existing is fine
	require.NoError(t, fs.MkdirAll(outDir, 0755))

	source := filepath.Join(folder, "a.png")
	fx.write(source, "image bytes", 0640)

	target := filepath.Join(outDir, "0001.png")
	require.NoError(t, fs.CopyFile(source, target))
	assert.Equal(t, "image bytes", fx.read(target))

	info, err := fs.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.Equal(t, int64(len("image bytes")), info.Size())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
	}

	// Copying over an existing, longer target replaces it
	other := filepath.Join(folder, "b.png")
	fx.write(other, "b", 0644)
	fx.write(filepath.Join(outDir, "0002.png"), "stale and much longer", 0644)
	require.NoError(t, fs.CopyFile(other, filepath.Join(outDir, "0002.png")))
	assert.Equal(t, "b", fx.read(filepath.Join(outDir, "0002.png")))

	entries, err := fs.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "0001.png", entries[0].Name())
	assert.False(t, entries[0].IsDir())

	// Sources are left alone
	assert.Equal(t, "image bytes", fx.read(source))

	_, err = fs.Stat(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))

	err = fs.CopyFile(filepath.Join(root, "missing.png"), filepath.Join(outDir, "0003.png"))
	assert.Error(t, err)

	err = fs.CopyFile(folder, filepath.Join(outDir, "0004.png"))
	assert.Error(t, err, "directories are not copied")
}

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)
	exerciseFS(t, fs, diskFixture(t), t.TempDir())
}

func TestNewAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := NewAferoFS(mem)
	assert.NotNil(t, fs)
	exerciseFS(t, fs, memFixture(t, mem), "/work")
}

func TestOSCopyFile_RelativePaths(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile("a.png", []byte("relative"), 0644))
	require.NoError(t, os.Mkdir("out", 0755))

	require.NoError(t, NewOS().CopyFile("a.png", filepath.Join("out", "0001.png")))

	content, err := os.ReadFile(filepath.Join(dir, "out", "0001.png"))
	require.NoError(t, err)
	assert.Equal(t, "relative", string(content))
}
