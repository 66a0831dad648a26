// Package sduitools provides tools for working with Server-Driven UI (SDUI)
// schema documents.
//
// SDUI schemas are JSON Schema-like documents describing UI component trees.
// Each component schema may declare a name, a releaseVersion compatibility
// map per platform (web/ios/android), nested properties, composition
// keywords (oneOf/anyOf/allOf), and $ref pointers to other component files
// or to fragments within the current document.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - resolver: Expand $ref pointers into a fully inlined document with
//     bounded duplication and recursion depth
//   - release: Parse and evaluate releaseVersion platform compatibility maps
//   - sduierrors: Structured error types for programmatic error handling
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/sduikit/sduitools
//
// # Quick Start
//
// Resolve a component schema:
//
//	import "github.com/sduikit/sduitools/resolver"
//
//	result, err := resolver.ResolveWithOptions(
//		resolver.WithFilePath("Screen.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Resolved %d references (%d stubbed)\n",
//		result.Metadata.TotalResolutions, result.Metadata.TotalStubs)
//
// Check platform availability:
//
//	import "github.com/sduikit/sduitools/release"
//
//	versions := release.ParseVersions(schema)
//	if versions.IsReleased(release.PlatformWeb) {
//		// component is safe to serve to web clients
//	}
//
// # Command Line
//
// The sduitools CLI exposes the same functionality:
//
//	sduitools resolve --max-depth 50 Screen.json
//	sduitools compat --platform web ./schemas
//	sduitools mcp
package sduitools
