package materialize

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/imgreorder/pkg/scanner"
)

// OutputSuffix is appended to the input folder's name to form the output
// directory name.
const OutputSuffix = "_reordered"

// fallbackName stands in for folders without a usable name.
const fallbackName = "output"

// OutputDir returns the directory reordered copies of folder are written
// to: a sibling of folder named after it with OutputSuffix. The path is
// read lexically without resolving "..": a folder whose last component is
// not a name ("/", ".", "..", "/a/..") uses fallbackName, and its parent is
// what precedes that component ("/a/.." gives "/a/output_reordered"). A
// folder with no parent yields a path relative to the working directory.
func OutputDir(folder string) string {
	volume := filepath.VolumeName(folder)
	rest := filepath.ToSlash(folder[len(volume):])

	root := volume
	if strings.HasPrefix(rest, "/") {
		root += string(filepath.Separator)
	}

	// "." components and repeated separators do not count
	var components []string
	for _, c := range strings.Split(rest, "/") {
		if c != "" && c != "." {
			components = append(components, c)
		}
	}

	if len(components) == 0 {
		return fallbackName + OutputSuffix
	}

	name := components[len(components)-1]
	if name == ".." {
		name = fallbackName
	}
	parent := append([]string{root}, components[:len(components)-1]...)

	return filepath.Join(append(parent, name+OutputSuffix)...)
}

// TargetName returns the file name for the file at 1-based position:
// the position zero-padded to four digits, a dot, and the source's
// extension verbatim. A source without extension gives a trailing dot.
func TargetName(position int, source string) string {
	return fmt.Sprintf("%04d.%s", position, scanner.Extension(source))
}
