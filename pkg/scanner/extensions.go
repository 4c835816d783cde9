package scanner

import (
	"path/filepath"
	"sort"
	"strings"
)

// imageExtensions is the fixed set of lower-cased suffixes the scanner accepts.
var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
	"tiff": true,
	"tif":  true,
}

// ImageExtensions returns the accepted extensions, lower-cased, without
// the leading dot, in sorted order.
func ImageExtensions() []string {
	exts := make([]string, 0, len(imageExtensions))
	for ext := range imageExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsImageExtension reports whether ext (without dot) is an image extension,
// ignoring case.
func IsImageExtension(ext string) bool {
	return imageExtensions[strings.ToLower(ext)]
}

// Extension returns the text after the last dot of the path's final
// element, case preserved. A name whose only dot is its first character
// (".png") has no extension.
func Extension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}
