package reorder

import (
	"github.com/arthur-debert/imgreorder/pkg/filesystem"
	"github.com/arthur-debert/imgreorder/pkg/logging"
	"github.com/arthur-debert/imgreorder/pkg/materialize"
	"github.com/arthur-debert/imgreorder/pkg/types"
)

// ReorderOptions defines the options for the ReorderAndMaterialize and
// PlanReorder commands.
type ReorderOptions struct {
	// Folder is the original folder; it only determines where the output
	// directory goes and what it is called.
	Folder string
	// Files are the paths to reorder, usually the output of ListImages or
	// a caller-edited selection of it.
	Files []string
	// FileSystem defaults to the OS filesystem.
	FileSystem types.FS
	// OnCopied is forwarded to the materializer.
	OnCopied func(done, total int, m types.Mapping)
}

// ReorderAndMaterialize reorders the files and copies them into the
// output directory under their new names.
func ReorderAndMaterialize(opts ReorderOptions) (*types.ReorderResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().
		Str("command", "ReorderAndMaterialize").
		Str("folder", opts.Folder).
		Int("fileCount", len(opts.Files)).
		Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	result, err := materialize.Materialize(fsys, opts.Folder, opts.Files, materialize.Options{
		OnCopied: opts.OnCopied,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "ReorderAndMaterialize").
		Str("outputDir", result.OutputDir).
		Int("copied", len(result.Mappings)).
		Msg("Command finished")
	return result, nil
}

// PlanReorder computes what ReorderAndMaterialize would write without
// touching the filesystem.
func PlanReorder(opts ReorderOptions) (*types.ReorderResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "PlanReorder").Str("folder", opts.Folder).Msg("Executing command")

	return materialize.Plan(opts.Folder, opts.Files)
}
