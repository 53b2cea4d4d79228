// Package fileutil provides file and path helpers.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Ext returns the extension of path, including the dot.
// Unlike filepath.Ext, a base name that is only a dot-prefixed word
// (".groceries") has no extension.
func Ext(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}

// ReplaceExt swaps the extension of path for ext (without the dot).
// Paths without an extension get ext appended.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, Ext(path)) + "." + ext
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./shopping.yaml" -> true (relative path)
//   - "/etc/grocerylist/home.yaml" -> true (absolute)
//   - "C:\lists\home.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SamePath reports whether a and b name the same file.
// Existing files are compared with os.SameFile so links are seen through;
// otherwise the cleaned absolute paths are compared.
func SamePath(a, b string) bool {
	ia, errA := os.Stat(a)
	ib, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(ia, ib)
	}

	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
