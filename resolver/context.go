package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sduikit/sduitools/release"
	"github.com/sduikit/sduitools/sduierrors"
)

// compositionKeywords are the schema composition keys whose list items are
// resolved under the keyword's own navigation segment.
var compositionKeywords = [...]string{"oneOf", "anyOf", "allOf"}

// refSiteKeys are the referencing-site keys merged into a resolved target
// when the target does not already set them. This lets a usage site add a
// local description without forking the component schema.
var refSiteKeys = [...]string{"required", "description", "default"}

// resolveContext is the per-run mutable state threaded through the recursive
// walk. One instance exists per top-level Resolve call and is owned
// exclusively by that call; the algorithm is not safe for a shared context.
type resolveContext struct {
	depth    int
	maxDepth int
	webOnly  bool
	path     navPath
	cyclic   map[string]bool

	tracker *componentTracker
	loader  *documentLoader
	logger  Logger

	totalResolutions int
	stubCount        int
}

// duplicateCap returns the total occurrence cap for a component name.
func (c *resolveContext) duplicateCap(name string) int {
	if c.cyclic[name] {
		return CyclicDuplicateCap
	}
	return DefaultDuplicateCap
}

// newStubNode builds a stub, counts it, and logs the substitution.
func (c *resolveContext) newStubNode(ref, reason string) map[string]any {
	c.stubCount++
	c.logger.Debug("substituted stub", "ref", ref, "reason", reason, "path", c.path.current())
	return newStub(ref, reason)
}

// resolveSchema walks one node, returning a rebuilt copy with every
// reachable $ref inlined or stubbed. Depth is incremented on entry and
// released on exit regardless of outcome, so stub substitution or early
// returns cannot leak depth into sibling branches.
//
// currentFile is the file the node was loaded from; relative references
// resolve against its directory. currentDoc is that file's whole document,
// the target of internal "#/" fragments.
func (c *resolveContext) resolveSchema(node any, currentFile string, currentDoc any) any {
	c.depth++
	defer func() { c.depth-- }()

	switch n := node.(type) {
	case map[string]any:
		if ref, ok := n["$ref"].(string); ok {
			resolved := c.resolveReference(ref, currentFile, currentDoc)
			return mergeRefSiteKeys(resolved, n)
		}
		if hasComposition(n) {
			return c.resolveComposition(n, currentFile, currentDoc)
		}
		out := make(map[string]any, len(n))
		for _, key := range sortedKeys(n) {
			c.path.push(key)
			out[key] = c.resolveSchema(n[key], currentFile, currentDoc)
			c.path.pop()
		}
		return out

	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			c.path.push(fmt.Sprintf("[%d]", i))
			out[i] = c.resolveSchema(item, currentFile, currentDoc)
			c.path.pop()
		}
		return out

	default:
		return n
	}
}

// resolveComposition resolves the items of every composition keyword present
// on the node. Only the keyword is pushed onto the navigation path: sibling
// branches of a composition share the same reported path, an accepted
// low-fidelity tradeoff for diagnostics.
func (c *resolveContext) resolveComposition(n map[string]any, currentFile string, currentDoc any) map[string]any {
	out := make(map[string]any, len(n))
	for key, val := range n {
		out[key] = deepCopyValue(val)
	}
	for _, keyword := range compositionKeywords {
		items, ok := n[keyword].([]any)
		if !ok {
			continue
		}
		c.path.push(keyword)
		resolved := make([]any, len(items))
		for i, item := range items {
			resolved[i] = c.resolveSchema(item, currentFile, currentDoc)
		}
		c.path.pop()
		out[keyword] = resolved
	}
	return out
}

// resolveReference is the core decision tree for a $ref, evaluated in order:
// depth guard, internal fragment, external file.
func (c *resolveContext) resolveReference(ref, currentFile string, currentDoc any) any {
	c.totalResolutions++

	if c.depth >= c.maxDepth {
		stub := c.newStubNode(ref, StubReasonMaxDepth)
		if name, first, ok := c.tracker.owningComponent(c.path.current()); ok {
			stub["_component_name"] = name
			stub["_first_occurrence_path"] = first
		}
		return stub
	}

	if strings.HasPrefix(ref, "#") {
		return c.resolveInternal(ref, currentFile, currentDoc)
	}
	return c.resolveExternal(ref, currentFile)
}

// resolveInternal walks a "#/" fragment within the document currently being
// resolved (not the root). Malformed or unresolvable fragments produce a
// soft error marker rather than a stub.
func (c *resolveContext) resolveInternal(ref, currentFile string, currentDoc any) any {
	segments, err := parseFragment(ref)
	if err != nil {
		return errorMarker(&sduierrors.ReferenceError{Ref: ref, RefType: "internal", Message: "invalid fragment", Cause: err})
	}
	target, ok := lookupFragment(currentDoc, segments)
	if !ok {
		return errorMarker(&sduierrors.ReferenceError{Ref: ref, RefType: "internal", Message: "fragment not found"})
	}
	return c.resolveSchema(target, currentFile, currentDoc)
}

// resolveExternal loads the referenced file, applies the web-only filter and
// the duplicate cap, then resolves the selected sub-schema with the loaded
// file as the new current-file context.
func (c *resolveContext) resolveExternal(ref, currentFile string) any {
	filePart, fragment := splitRef(ref)
	targetPath := resolveRefPath(filePart, currentFile)

	doc, err := c.loader.load(targetPath)
	if err != nil {
		c.logger.Debug("referenced file unavailable", "ref", ref, "path", targetPath, "error", err)
		return c.newStubNode(ref, StubReasonFileNotFound)
	}

	schema, _ := doc.(map[string]any)

	if c.webOnly && !release.ParseVersions(schema).IsReleased(release.PlatformWeb) {
		return c.newStubNode(ref, StubReasonNotWebReleased)
	}

	name := componentName(schema, targetPath)
	occurrence := c.tracker.register(name, c.path.current())
	// The cap check happens before fragment resolution: a capped component
	// never has its fragment evaluated.
	if occurrence > c.duplicateCap(name) {
		stub := c.newStubNode(ref, duplicateStubReason(name))
		stub["_component_name"] = name
		if first, ok := c.tracker.firstOccurrence(name); ok {
			stub["_first_occurrence_path"] = first
		}
		return stub
	}

	target := doc
	if fragment != "" {
		segments, err := parseFragment("#" + fragment)
		if err != nil {
			return errorMarker(&sduierrors.ReferenceError{Ref: ref, RefType: "file", Message: "invalid fragment", Cause: err})
		}
		found, ok := lookupFragment(doc, segments)
		if !ok {
			return errorMarker(&sduierrors.ReferenceError{Ref: ref, RefType: "file", Message: "fragment not found in " + targetPath})
		}
		target = found
	}

	return c.resolveSchema(target, targetPath, doc)
}

// mergeRefSiteKeys merges the referencing node's required/description/default
// into a resolved target when absent there. Values are deep-copied so a
// site-local override never aliases back into a cached parse tree.
func mergeRefSiteKeys(resolved any, refNode map[string]any) any {
	m, ok := resolved.(map[string]any)
	if !ok {
		return resolved
	}
	for _, key := range refSiteKeys {
		val, present := refNode[key]
		if !present {
			continue
		}
		if _, exists := m[key]; exists {
			continue
		}
		m[key] = deepCopyValue(val)
	}
	return m
}

// hasComposition reports whether the node carries any composition keyword.
func hasComposition(n map[string]any) bool {
	for _, keyword := range compositionKeywords {
		if _, ok := n[keyword]; ok {
			return true
		}
	}
	return false
}

// sortedKeys returns the node's keys in sorted order. Parsed JSON objects in
// Go carry no insertion order, so sorted order is the fixed traversal order
// that keeps occurrence counts and first-occurrence paths deterministic
// across runs.
func sortedKeys(n map[string]any) []string {
	keys := make([]string, 0, len(n))
	for key := range n {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
