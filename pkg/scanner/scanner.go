// Package scanner lists the image files directly inside a folder.
package scanner

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/imgreorder/pkg/errors"
	"github.com/arthur-debert/imgreorder/pkg/logging"
	"github.com/arthur-debert/imgreorder/pkg/types"
)

// ListImages returns the paths of the regular files directly inside folder
// whose extension is an image extension, sorted lexicographically.
// Directories, symlinks to directories, and non-image files are skipped.
func ListImages(fsys types.FS, folder string) ([]string, error) {
	logger := logging.GetLogger("scanner")

	info, err := fsys.Stat(folder)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrNotFound, "folder does not exist: %s", folder).
				WithDetail(errors.DetailPath, folder)
		}
		return nil, errors.IO(err, "stat", folder)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "not a directory: %s", folder).
			WithDetail(errors.DetailPath, folder)
	}

	entries, err := fsys.ReadDir(folder)
	if err != nil {
		return nil, errors.IO(err, "read directory", folder)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !IsImageExtension(Extension(entry.Name())) {
			continue
		}

		path := filepath.Join(folder, entry.Name())

		// Stat follows symlinks, so a link to an image counts and a link to a
		// directory does not. Entries that cannot be resolved are skipped.
		entryInfo, err := fsys.Stat(path)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unresolvable entry")
			continue
		}
		if !entryInfo.Mode().IsRegular() {
			continue
		}

		images = append(images, path)
	}

	sort.Strings(images)

	logger.Debug().
		Str("folder", folder).
		Int("entries", len(entries)).
		Int("images", len(images)).
		Msg("Folder scanned")

	return images, nil
}
