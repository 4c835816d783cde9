// pkg/ui/ui_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify format parsing and that every renderer writes command results

package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/imgreorder/pkg/errors"
	"github.com/arthur-debert/imgreorder/pkg/types"
	"github.com/arthur-debert/imgreorder/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReorder(dryRun bool) *types.ReorderResult {
	return &types.ReorderResult{
		Folder:    "/pics",
		OutputDir: "/pics_reordered",
		DryRun:    dryRun,
		Mappings: []types.Mapping{
			{Position: 1, Source: "/pics/c.png", Target: "/pics_reordered/0001.png"},
			{Position: 2, Source: "/pics/a.png", Target: "/pics_reordered/0002.png"},
			{Position: 3, Source: "/pics/b.jpg", Target: "/pics_reordered/0003.jpg"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ui.Format
		wantErr bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"terminal", ui.FormatTerminal, false},
		{"TEXT", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yml", ui.FormatYAML, false},
		{"toml", ui.FormatTOML, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "toml", ui.FormatTOML.String())
	assert.Equal(t, "unknown", ui.Format(99).String())
}

func TestNewRenderer_AutoOnBufferIsPlainText(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.ListImagesResult{Folder: "/pics", Files: []string{"/pics/a.png", "/pics/c.JPG"}}))
	assert.Equal(t, "/pics/a.png\n/pics/c.JPG\n", buf.String())
}

func TestTextRenderer_Reorder(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleReorder(false)))
	assert.Equal(t, strings.Join([]string{
		"0001.png <- /pics/c.png",
		"0002.png <- /pics/a.png",
		"0003.jpg <- /pics/b.jpg",
		"Copied 3 file(s) to /pics_reordered",
		"",
	}, "\n"), buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult(sampleReorder(true)))
	assert.Contains(t, buf.String(), "Dry run: would copy 3 file(s) to /pics_reordered")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrEmptyInput, "no files to process")))
	assert.Equal(t, "Error: [EMPTY_INPUT] no files to process\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleReorder(false)))
	out := buf.String()
	assert.Contains(t, out, "/pics_reordered")
	assert.Contains(t, out, "0001.png <- /pics/c.png")
	assert.Contains(t, out, "Copied 3 file(s)")

	buf.Reset()
	require.NoError(t, r.RenderResult(&types.ListImagesResult{Folder: "/pics", Files: []string{"/pics/a.png"}}))
	assert.Contains(t, buf.String(), "1 image(s) in /pics")
	assert.Contains(t, buf.String(), "a.png")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleReorder(true)))

	var decoded types.ReorderResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleReorder(true), decoded)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.IO(stderrors.New("denied"), "copy", "/pics/a.png")))
	var errObj map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &errObj))
	assert.Equal(t, "IO", errObj["code"])
	assert.Contains(t, errObj["error"], "copy /pics/a.png")
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleReorder(false)))

	var decoded types.ReorderResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleReorder(false), decoded)

	buf.Reset()
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "message: hello\n", buf.String())
}

func TestTOMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTOML, &buf)
	require.NoError(t, err)

	list := &types.ListImagesResult{Folder: "/pics", Files: []string{"/pics/a.png", "/pics/c.JPG"}}
	require.NoError(t, r.RenderResult(list))

	var decoded types.ListImagesResult
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *list, decoded)

	buf.Reset()
	require.NoError(t, r.RenderResult(sampleReorder(false)))
	var reordered types.ReorderResult
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &reordered))
	assert.Equal(t, *sampleReorder(false), reordered)
}
