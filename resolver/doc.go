// Package resolver expands $ref pointers in SDUI schema documents.
//
// Import path: github.com/sduikit/sduitools/resolver
//
// Given a root schema file, the resolver walks the document tree depth-first
// and inlines every reachable $ref. References come in three forms:
//
//   - "relative/path.json" — an external file
//   - "relative/path.json#/fragment/path" — an external file plus a fragment
//   - "#/fragment/path" — a fragment within the current document
//
// SDUI component graphs are highly recursive (a layout element can contain
// layout elements indefinitely), so unbounded inlining would never terminate.
// The resolver bounds output two ways:
//
//   - a per-run duplicate cap: each named component is fully expanded at most
//     [DefaultDuplicateCap] times ([CyclicDuplicateCap] for the known highly
//     cyclic names); further occurrences become stub nodes pointing back at
//     the first expansion
//   - a recursion depth ceiling (default [DefaultMaxDepth]); expansion past
//     it becomes a stub
//
// A stub is a synthetic object carrying "_ref_stub": true, the original $ref,
// and a "_reason". Missing or unparsable referenced files also degrade to
// stubs rather than failing the run: the resolver always produces a document,
// and only an unreadable root file is a fatal error. The resolved root gains
// a "_metadata" block summarizing the run (resolution and stub counts, unique
// components, per-component occurrence counts and navigation paths).
//
// # Quick Start
//
//	result, err := resolver.ResolveWithOptions(
//		resolver.WithFilePath("Screen.json"),
//		resolver.WithMaxDepth(50),
//	)
//	if err != nil {
//		log.Fatal(err) // root file missing or not valid JSON
//	}
//	out, _ := json.MarshalIndent(result.Document, "", "  ")
//
// The resolver never mutates loaded documents; it rebuilds every visited
// node, so parsed files may be shared read-only through a [DocumentCache]
// across concurrent runs. A single Resolver value is safe for concurrent use;
// all per-run state lives in a context created per Resolve call.
package resolver
