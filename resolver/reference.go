package resolver

import (
	"fmt"
	"path/filepath"
	"strings"
)

// splitRef separates the file portion of an external reference from its
// optional fragment. "components/Button.json#/properties/label" yields
// ("components/Button.json", "/properties/label").
func splitRef(ref string) (filePart, fragment string) {
	parts := strings.SplitN(ref, "#", 2)
	filePart = parts[0]
	if len(parts) > 1 {
		fragment = parts[1]
	}
	return filePart, fragment
}

// resolveRefPath turns the file portion of a reference into a concrete
// filesystem path relative to the directory of the current file, appending
// the .json extension when absent.
func resolveRefPath(refPath, currentFile string) string {
	if !strings.HasSuffix(refPath, ".json") {
		refPath += ".json"
	}
	if filepath.IsAbs(refPath) {
		return filepath.Clean(refPath)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(currentFile), refPath))
}

// parseFragment validates internal-reference syntax and returns the
// /-delimited key segments. A fragment must begin with "#/" and every
// segment must be non-empty. Fragments address object keys only; array
// indices are not part of this scheme.
func parseFragment(ref string) ([]string, error) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, fmt.Errorf("fragment must begin with #/")
	}
	segments := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("fragment contains an empty segment")
		}
	}
	return segments, nil
}

// lookupFragment walks doc by successively indexing into object keys.
// Returns false as soon as any segment is missing or the current value is
// not an object.
func lookupFragment(doc any, segments []string) (any, bool) {
	current := doc
	for _, seg := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := obj[seg]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}
