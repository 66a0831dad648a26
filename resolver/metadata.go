package resolver

// ComponentNavigation summarizes where a component appears in the resolved
// document: the canonical first-expansion path plus every registered path.
type ComponentNavigation struct {
	FirstPath string   `json:"first_path" yaml:"first_path"`
	Count     int      `json:"count" yaml:"count"`
	Paths     []string `json:"paths" yaml:"paths"`
}

// Metadata describes a resolution run. It is returned on the ResolveResult
// and embedded in the resolved document under the "_metadata" key.
type Metadata struct {
	SourcePath       string                         `json:"source_path" yaml:"source_path"`
	TotalResolutions int                            `json:"total_resolutions" yaml:"total_resolutions"`
	TotalStubs       int                            `json:"total_stubs" yaml:"total_stubs"`
	UniqueComponents int                            `json:"unique_components" yaml:"unique_components"`
	OccurrenceCounts map[string]int                 `json:"occurrence_counts" yaml:"occurrence_counts"`
	Navigation       map[string]ComponentNavigation `json:"navigation" yaml:"navigation"`
}

// buildMetadata snapshots the run's counters and tracker state.
func (c *resolveContext) buildMetadata(sourcePath string) *Metadata {
	counts := make(map[string]int, len(c.tracker.occurrenceCounts))
	nav := make(map[string]ComponentNavigation, len(c.tracker.occurrenceCounts))
	for name, count := range c.tracker.occurrenceCounts {
		counts[name] = count
		first, _ := c.tracker.firstOccurrence(name)
		paths := c.tracker.pathsByName[name]
		nav[name] = ComponentNavigation{
			FirstPath: first,
			Count:     count,
			Paths:     append([]string(nil), paths...),
		}
	}
	return &Metadata{
		SourcePath:       sourcePath,
		TotalResolutions: c.totalResolutions,
		TotalStubs:       c.stubCount,
		UniqueComponents: c.tracker.uniqueComponents(),
		OccurrenceCounts: counts,
		Navigation:       nav,
	}
}

// asMap converts the metadata to plain JSON-shaped values for embedding in
// the resolved document.
func (m *Metadata) asMap() map[string]any {
	counts := make(map[string]any, len(m.OccurrenceCounts))
	for name, count := range m.OccurrenceCounts {
		counts[name] = count
	}
	nav := make(map[string]any, len(m.Navigation))
	for name, entry := range m.Navigation {
		paths := make([]any, len(entry.Paths))
		for i, p := range entry.Paths {
			paths[i] = p
		}
		nav[name] = map[string]any{
			"first_path": entry.FirstPath,
			"count":      entry.Count,
			"paths":      paths,
		}
	}
	return map[string]any{
		"source_path":       m.SourcePath,
		"total_resolutions": m.TotalResolutions,
		"total_stubs":       m.TotalStubs,
		"unique_components": m.UniqueComponents,
		"occurrence_counts": counts,
		"navigation":        nav,
	}
}
