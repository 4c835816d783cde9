// cmd/imgreorder/root_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: Real filesystem (t.TempDir), cobra command tree
// PURPOSE: Run every subcommand through NewRootCmd and check its output and side effects

package imgreorder

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/imgreorder/pkg/errors"
	"github.com/arthur-debert/imgreorder/pkg/testutil"
	"github.com/arthur-debert/imgreorder/pkg/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCmd builds the command tree with an empty user config so the
// machine's own configuration cannot leak into the result.
func newTestCmd(t *testing.T, args ...string) (*cobra.Command, *appState, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("IMGREORDER_LOGGING_FILE", "false")

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[output]\nprogress = false\n"), 0644))

	var stdout, stderr bytes.Buffer
	cmd, state := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	return cmd, state, &stdout, &stderr
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd, _, stdout, stderr := newTestCmd(t, args...)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// executeCLI runs the command line the way main does and returns the exit code.
func executeCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	cmd, state, stdout, stderr := newTestCmd(t, args...)
	code := run(cmd, state)
	return code, stdout.String(), stderr.String()
}

func TestListCmd(t *testing.T) {
	folder := testutil.ImageFolder(t, "book", "b.jpg", "a.png", "notes.txt")

	out, _, err := execute(t, "list", folder)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(folder, "a.png")+"\n"+filepath.Join(folder, "b.jpg")+"\n", out)
}

func TestListCmd_MissingFolder(t *testing.T) {
	_, _, err := execute(t, "list", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestReorderCmd_ScansAndCopies(t *testing.T) {
	folder := testutil.ImageFolder(t, "book", "p1.png", "p2.png", "p3.png", "p4.png", "p5.png")

	out, _, err := execute(t, "reorder", folder)
	require.NoError(t, err)

	outDir := folder + "_reordered"
	assert.Contains(t, out, "Copied 5 file(s) to "+outDir)

	want := map[string]string{
		"0001.png": "p5.png",
		"0002.png": "p3.png",
		"0003.png": "p4.png",
		"0004.png": "p1.png",
		"0005.png": "p2.png",
	}
	for target, src := range want {
		testutil.AssertFileContent(t, filepath.Join(outDir, target), src)
	}
}

func TestReorderCmd_ExplicitFiles(t *testing.T) {
	folder := testutil.ImageFolder(t, "book", "x.png", "y.jpg", "z.gif")

	_, _, err := execute(t, "reorder", folder,
		filepath.Join(folder, "x.png"),
		filepath.Join(folder, "y.jpg"))
	require.NoError(t, err)

	assert.Equal(t, []string{"0001.jpg", "0002.png"}, testutil.DirNames(t, folder+"_reordered"))
	testutil.AssertFileContent(t, filepath.Join(folder+"_reordered", "0001.jpg"), "y.jpg")
}

func TestReorderCmd_DryRunWritesNothing(t *testing.T) {
	folder := testutil.ImageFolder(t, "book", "a.png", "b.png")

	out, _, err := execute(t, "reorder", "--dry-run", folder)
	require.NoError(t, err)

	assert.Contains(t, out, "0001.png <- "+filepath.Join(folder, "b.png"))
	assert.Contains(t, out, "Dry run: would copy 2 file(s)")
	_, err = os.Stat(folder + "_reordered")
	assert.True(t, os.IsNotExist(err))
}

func TestReorderCmd_EmptyFolder(t *testing.T) {
	folder := testutil.ImageFolder(t, "book", "readme.md")

	_, _, err := execute(t, "reorder", folder)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyInput))

	_, statErr := os.Stat(folder + "_reordered")
	assert.True(t, os.IsNotExist(statErr))
}

func TestPreviewCmd_JSON(t *testing.T) {
	folder := testutil.ImageFolder(t, "book", "a.png", "b.png", "c.tiff")

	out, _, err := execute(t, "--format", "json", "preview", folder)
	require.NoError(t, err)

	var result types.ReorderResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.DryRun)
	assert.Equal(t, folder+"_reordered", result.OutputDir)
	assert.Equal(t, []string{
		filepath.Join(folder, "c.tiff"),
		filepath.Join(folder, "a.png"),
		filepath.Join(folder, "b.png"),
	}, result.Sources())
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	folder := testutil.ImageFolder(t, "book", "a.png")

	_, _, err := execute(t, "--format", "xml", "list", folder)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootCmd_NoSubcommand(t *testing.T) {
	_, _, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestExplainCmd(t *testing.T) {
	out, _, err := execute(t, "explain")
	require.NoError(t, err)

	assert.Contains(t, out, "# How imgreorder orders images")
	assert.Contains(t, out, "| a b c | c a b |")
	assert.Contains(t, out, "| a b c d e | e c d a b |")
	assert.Contains(t, out, "| a b c d e f g h | h f g b c a d e |")
}

func TestGenConfigCmd(t *testing.T) {
	out, _, err := execute(t, "gen-config")
	require.NoError(t, err)

	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, `# format = "text"`)
	for _, line := range strings.Split(out, "\n") {
		assert.False(t, strings.HasPrefix(line, "format"), "value lines are commented out")
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "imgreorder dev (commit unknown, built unknown)\n", out)
}

func TestCompletionCmd(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "imgreorder")

	_, _, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestManCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "man")

	out, _, err := execute(t, "--format", "yaml", "man", dir)
	require.NoError(t, err)
	assert.Equal(t, "message: Wrote man pages to "+dir+"\n", out)

	_, err = os.Stat(filepath.Join(dir, "imgreorder.1"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "imgreorder-reorder.1"))
	assert.NoError(t, err)
}

func TestRun_ExitCodes(t *testing.T) {
	folder := testutil.ImageFolder(t, "book", "a.png")

	code, out, stderr := executeCLI(t, "list", folder)
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(folder, "a.png")+"\n", out)
	assert.Empty(t, stderr)
}

func TestRun_ErrorAsText(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	code, out, stderr := executeCLI(t, "list", missing)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
	assert.Contains(t, stderr, "folder does not exist: "+missing)
}

func TestRun_ErrorInConfiguredFormat(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	code, out, stderr := executeCLI(t, "--format", "json", "reorder", missing)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)

	var reported map[string]string
	require.NoError(t, json.Unmarshal([]byte(stderr), &reported))
	assert.Equal(t, string(errors.ErrNotFound), reported["code"])
	assert.Contains(t, reported["error"], missing)
}

func TestRun_ConfigErrorFallsBackToText(t *testing.T) {
	code, _, stderr := executeCLI(t, "--format", "xml", "version")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: ")
	assert.Contains(t, stderr, "unknown output format")
}

func TestRenderMarkdown(t *testing.T) {
	out := renderMarkdown(explainMarkdown())
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "imgreorder orders images")
}
