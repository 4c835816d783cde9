package list

import (
	"github.com/arthur-debert/imgreorder/pkg/filesystem"
	"github.com/arthur-debert/imgreorder/pkg/logging"
	"github.com/arthur-debert/imgreorder/pkg/scanner"
	"github.com/arthur-debert/imgreorder/pkg/types"
)

// ListImagesOptions defines the options for the ListImages command.
type ListImagesOptions struct {
	// Folder is the directory to scan.
	Folder string
	// FileSystem defaults to the OS filesystem.
	FileSystem types.FS
}

// ListImages finds the image files directly inside the folder.
func ListImages(opts ListImagesOptions) (*types.ListImagesResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListImages").Str("folder", opts.Folder).Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	files, err := scanner.ListImages(fsys, opts.Folder)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ListImages").Int("imageCount", len(files)).Msg("Command finished")
	return &types.ListImagesResult{
		Folder: opts.Folder,
		Files:  files,
	}, nil
}
