package resolver

// componentTracker is the per-run occurrence bookkeeping for named
// components. It is owned exclusively by one resolution run; it is created
// fresh at the start of a run and discarded at the end.
type componentTracker struct {
	// firstOccurrences maps component name to the navigation path of its
	// first full expansion. Once set for a name it is never overwritten.
	firstOccurrences map[string]string
	// occurrenceCounts maps component name to the number of registration
	// requests, counting both expansions and stub substitutions.
	occurrenceCounts map[string]int
	// pathsByName records every navigation path where a name was registered,
	// in registration order.
	pathsByName map[string][]string
	// nameByFirstPath is the reverse index used by owningComponent.
	nameByFirstPath map[string]string
}

func newComponentTracker() *componentTracker {
	return &componentTracker{
		firstOccurrences: make(map[string]string),
		occurrenceCounts: make(map[string]int),
		pathsByName:      make(map[string][]string),
		nameByFirstPath:  make(map[string]string),
	}
}

// register records an occurrence request for name at path and returns the
// 1-based occurrence number. The first registration for a name remembers
// path as the canonical first-occurrence path.
func (t *componentTracker) register(name, path string) int {
	t.occurrenceCounts[name]++
	t.pathsByName[name] = append(t.pathsByName[name], path)
	if _, ok := t.firstOccurrences[name]; !ok {
		t.firstOccurrences[name] = path
		t.nameByFirstPath[path] = name
	}
	return t.occurrenceCounts[name]
}

// firstOccurrence returns the canonical first-occurrence path for name.
func (t *componentTracker) firstOccurrence(name string) (string, bool) {
	path, ok := t.firstOccurrences[name]
	return path, ok
}

// uniqueComponents returns the number of distinct component names seen.
func (t *componentTracker) uniqueComponents() int {
	return len(t.occurrenceCounts)
}

// owningComponent walks path outward segment by segment, probing for a
// component whose first expansion contains it. This is a best-effort
// diagnostic lookup used to annotate depth-limit stubs; it may find nothing.
func (t *componentTracker) owningComponent(path string) (name, firstPath string, ok bool) {
	for p := path; p != ""; p = parentPath(p) {
		if n, found := t.nameByFirstPath[p]; found {
			return n, p, true
		}
	}
	return "", "", false
}
