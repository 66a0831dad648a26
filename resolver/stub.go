package resolver

import "github.com/sduikit/sduitools/sduierrors"

// Stub reason values. A stub's "_reason" key carries one of these, or the
// duplicate form "duplicate_limit_reached_<name>".
const (
	StubReasonMaxDepth       = "max_depth_reached"
	StubReasonFileNotFound   = "file_not_found"
	StubReasonNotWebReleased = "not_web_released"

	stubReasonDuplicatePrefix = "duplicate_limit_reached_"
)

// duplicateStubReason builds the reason string for a duplicate-cap stub.
func duplicateStubReason(name string) string {
	return stubReasonDuplicatePrefix + name
}

// newStub builds the synthetic object substituted in place of a $ref
// expansion that was intentionally not inlined. Callers may add
// "_component_name" and "_first_occurrence_path" where known; the
// referencing site's required/description/default keys are merged in later
// by the generic $ref-site merge.
func newStub(ref, reason string) map[string]any {
	return map[string]any{
		"_ref_stub": true,
		"$ref":      ref,
		"_reason":   reason,
	}
}

// IsStub reports whether a resolved node is a stub substituted for a $ref.
func IsStub(node any) bool {
	m, ok := node.(map[string]any)
	if !ok {
		return false
	}
	flag, ok := m["_ref_stub"].(bool)
	return ok && flag
}

// errorMarker builds the soft inline marker for a malformed or unresolvable
// reference fragment. Unlike a stub, it signals a broken reference rather
// than an expected limitation.
func errorMarker(err *sduierrors.ReferenceError) map[string]any {
	return map[string]any{"_error": err.Error()}
}
