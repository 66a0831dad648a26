package release

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ComponentStatus is one schema file's release standing on a platform.
type ComponentStatus struct {
	// File is the schema path relative to the scanned directory.
	File string `json:"file" yaml:"file"`
	// Name is the schema's declared name, if any.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Status is the raw status string ("" when absent).
	Status string `json:"status" yaml:"status"`
	// Released reports whether Status counts as released.
	Released bool `json:"released" yaml:"released"`
}

// Report summarizes the release standing of every schema under a directory
// for one platform.
type Report struct {
	Platform      Platform          `json:"platform" yaml:"platform"`
	Total         int               `json:"total" yaml:"total"`
	ReleasedCount int               `json:"released_count" yaml:"released_count"`
	Components    []ComponentStatus `json:"components" yaml:"components"`
}

// ScanDir walks dir recursively, parses every .json file, and reports each
// schema's release status on the given platform. Files that fail to parse or
// are not JSON objects are reported with status "unparsable" rather than
// aborting the scan. Entries are ordered by file path.
func ScanDir(dir string, platform Platform) (*Report, error) {
	report := &Report{Platform: platform}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		entry := ComponentStatus{File: rel}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			entry.Status = "unparsable"
			report.Components = append(report.Components, entry)
			return nil
		}
		var schema map[string]any
		if jsonErr := json.Unmarshal(data, &schema); jsonErr != nil {
			entry.Status = "unparsable"
			report.Components = append(report.Components, entry)
			return nil
		}

		if name, ok := schema["name"].(string); ok {
			entry.Name = name
		}
		versions := ParseVersions(schema)
		entry.Status = versions.Status(platform)
		entry.Released = versions.IsReleased(platform)
		report.Components = append(report.Components, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(report.Components, func(i, j int) bool {
		return report.Components[i].File < report.Components[j].File
	})
	report.Total = len(report.Components)
	for _, entry := range report.Components {
		if entry.Released {
			report.ReleasedCount++
		}
	}
	return report, nil
}
