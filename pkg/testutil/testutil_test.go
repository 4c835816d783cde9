package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFolder(t *testing.T) {
	folder := ImageFolder(t, "pics", "b.png", "a.jpg")

	assert.Equal(t, "pics", filepath.Base(folder))
	assert.Equal(t, []string{"a.jpg", "b.png"}, DirNames(t, folder))
	AssertFileContent(t, filepath.Join(folder, "b.png"), "b.png")
}

func TestMemImageFolder(t *testing.T) {
	mem := MemImageFolder(t, "/pics", "a.png")

	content, err := afero.ReadFile(mem, "/pics/a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png", string(content))
}
