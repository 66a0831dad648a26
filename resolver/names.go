package resolver

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser uppercases the first letter of each word without lowering the
// rest, so "layoutElement" becomes "LayoutElement" rather than "Layoutelement".
var titleCaser = cases.Title(language.English, cases.NoLower)

// componentName determines the canonical name of a loaded component schema:
// the schema's own "name" field when present, falling back to a name derived
// from the file's base name.
func componentName(schema map[string]any, path string) string {
	if name, ok := schema["name"].(string); ok && name != "" {
		return name
	}
	return componentNameFromFile(path)
}

// componentNameFromFile derives a component name from a file path:
// "layout-element.json" and "layout_element.json" both become "LayoutElement".
func componentNameFromFile(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(titleCaser.String(part))
	}
	return b.String()
}
