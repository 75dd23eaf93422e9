// Package imports derives the single dependency-import string recorded per
// class from the originating file's location.
package imports

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect distinguishes the two recognized Kotlin source flavors.
type Dialect string

const (
	DialectKotlin Dialect = "kt"  // regular source file
	DialectScript Dialect = "kts" // script file
)

// UnsupportedDialectError reports a file extension outside the recognized
// set. It is fatal only for the one import string, never for the breakdown.
type UnsupportedDialectError struct {
	Path string
	Ext  string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("unsupported source dialect %q for %s", e.Ext, e.Path)
}

// DetectDialect inspects the file extension.
func DetectDialect(path string) (Dialect, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kt":
		return DialectKotlin, nil
	case ".kts":
		return DialectScript, nil
	default:
		return "", &UnsupportedDialectError{Path: path, Ext: filepath.Ext(path)}
	}
}

// Resolve turns a source file path into a dotted import path. The package
// part is everything after the last "kotlin" (or, failing that, "src") path
// segment; with neither marker the whole relative path is used.
func Resolve(path string) (string, error) {
	if _, err := DetectDialect(path); err != nil {
		return "", err
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	segments := strings.Split(clean, "/")

	start := 0
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "kotlin" || segments[i] == "java" {
			start = i + 1
			break
		}
		if segments[i] == "src" && start == 0 {
			start = i + 1
		}
	}

	rest := segments[start:]
	if len(rest) == 0 {
		rest = segments[len(segments)-1:]
	}
	last := rest[len(rest)-1]
	rest[len(rest)-1] = strings.TrimSuffix(last, filepath.Ext(last))

	var parts []string
	for _, s := range rest {
		if s == "" || s == "." {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "."), nil
}
