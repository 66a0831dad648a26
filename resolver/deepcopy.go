package resolver

// deepCopyValue copies a parsed JSON value so that referencing-site keys can
// be merged into a resolved target without aliasing mutations back into a
// cached parse tree. Scalars are returned as-is since they are immutable.
func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, val := range t {
			cp[k] = deepCopyValue(val)
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, val := range t {
			cp[i] = deepCopyValue(val)
		}
		return cp
	default:
		return t
	}
}
