package materialize

import (
	"path/filepath"

	"github.com/arthur-debert/imgreorder/pkg/errors"
	"github.com/arthur-debert/imgreorder/pkg/logging"
	"github.com/arthur-debert/imgreorder/pkg/reorder"
	"github.com/arthur-debert/imgreorder/pkg/types"
)

// Options tunes a materialization run.
type Options struct {
	// OnCopied is called after each successful copy with the number of
	// files copied so far and the total.
	OnCopied func(done, total int, m types.Mapping)
}

// Plan computes the output directory and the source → target mapping for
// files without touching the filesystem.
func Plan(folder string, files []string) (*types.ReorderResult, error) {
	if len(files) == 0 {
		return nil, errors.New(errors.ErrEmptyInput, "no files to process").
			WithDetail("folder", folder)
	}

	outputDir := OutputDir(folder)
	ordered := reorder.Reorder(files)

	mappings := make([]types.Mapping, len(ordered))
	for i, source := range ordered {
		mappings[i] = types.Mapping{
			Position: i + 1,
			Source:   source,
			Target:   filepath.Join(outputDir, TargetName(i+1, source)),
		}
	}

	return &types.ReorderResult{
		Folder:    folder,
		OutputDir: outputDir,
		Mappings:  mappings,
		DryRun:    true,
	}, nil
}

// Materialize reorders files, creates the output directory for folder and
// copies every file into it under its new name. It stops at the first
// failure; copies made before it are left in place.
func Materialize(fsys types.FS, folder string, files []string, opts Options) (*types.ReorderResult, error) {
	logger := logging.GetLogger("materialize")

	plan, err := Plan(folder, files)
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(logger, "materialize")
	defer done()

	if err := fsys.MkdirAll(plan.OutputDir, 0755); err != nil {
		return nil, errors.IO(err, "create output directory", plan.OutputDir)
	}

	total := len(plan.Mappings)
	for i, m := range plan.Mappings {
		if err := fsys.CopyFile(m.Source, m.Target); err != nil {
			logger.Error().
				Err(err).
				Str("source", m.Source).
				Int("copied", i).
				Int("total", total).
				Msg("Copy failed, leaving partial output")
			return nil, errors.IO(err, "copy", m.Source).WithDetail("target", m.Target)
		}

		logger.Debug().Str("source", m.Source).Str("target", m.Target).Msg("Copied")
		if opts.OnCopied != nil {
			opts.OnCopied(i+1, total, m)
		}
	}

	plan.DryRun = false

	logger.Info().
		Str("outputDir", plan.OutputDir).
		Int("count", total).
		Msg("Files materialized")

	return plan, nil
}
