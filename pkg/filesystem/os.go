package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/imgreorder/pkg/logging"
	"github.com/arthur-debert/imgreorder/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	synthfsfs "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
)

// osFS implements types.FS using the OS filesystem. Copies run through a
// synthfs executor rooted at "/".
type osFS struct {
	synth synthfs.FileSystem
}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{synth: synthfsfs.NewOSFileSystem("/")}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile runs a single synthfs copy operation. synthfs works on paths
// relative to its root, so both paths are made absolute and then relative
// to "/".
func (o *osFS) CopyFile(source, target string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return &fs.PathError{Op: "copy", Path: source, Err: fs.ErrInvalid}
	}

	relSource, err := relToRoot(source)
	if err != nil {
		return err
	}
	relTarget, err := relToRoot(target)
	if err != nil {
		return err
	}

	// synthfs validation rejects existing targets; replace them
	if existing, err := os.Lstat(target); err == nil && !existing.IsDir() {
		logger := logging.GetLogger("filesystem")
		logger.Debug().
			Str("target", target).
			Msg("Removing existing file to allow overwrite")
		if err := os.Remove(target); err != nil {
			return err
		}
	}

	opID := core.OperationID(fmt.Sprintf("copy-%s-to-%s", filepath.Base(source), target))
	copyOp := operations.NewCopyOperation(opID, relTarget)
	copyOp.SetPaths(relSource, relTarget)

	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(copyOp)); err != nil {
		return err
	}

	result := synthfs.NewExecutor().Run(context.Background(), pipeline, o.synth)
	if err := result.GetError(); err != nil {
		return err
	}

	return os.Chmod(target, info.Mode().Perm())
}

func relToRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Rel("/", abs)
}
