// Package winpath manipulates backslash-delimited paths as plain strings.
//
// Inspection reports and solution files record paths in the Windows
// convention regardless of where this tool runs; the separator is a property
// of the data, so none of these functions consult the host filesystem.
package winpath

import (
	"path/filepath"
	"strings"
)

// Separator is the directory separator used inside inspection data.
const Separator = `\`

// Segments splits a path into its directory segments.
func Segments(path string) []string {
	return strings.Split(path, Separator)
}

// SolutionDepth derives the number of directories between the filesystem
// root and the solution directory from the input report's own path. A depth
// of 0 means the solution sits directly under the drive root and no segment
// stripping is needed.
func SolutionDepth(inputFilePath string) int {
	depth := len(Segments(inputFilePath)) - 2
	if depth < 0 {
		return 0
	}
	return depth
}

// StripLeadingSegments removes the first n segments from path. When path has
// n or fewer segments the last segment is returned unchanged.
func StripLeadingSegments(path string, n int) string {
	if n <= 0 {
		return path
	}
	segments := Segments(path)
	if n >= len(segments) {
		return segments[len(segments)-1]
	}
	return strings.Join(segments[n:], Separator)
}

// FirstSegment returns the nearest-root segment of path.
func FirstSegment(path string) string {
	return Segments(path)[0]
}

// Dir returns the directory portion of path, or "" when path holds a single
// segment.
func Dir(path string) string {
	idx := strings.LastIndex(path, Separator)
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// ToHost converts a data path to the host separator convention. Only the
// report writer should need this.
func ToHost(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, Separator, "/"))
}
