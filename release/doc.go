// Package release parses and evaluates the releaseVersion compatibility maps
// attached to SDUI component schemas.
//
// Import path: github.com/sduikit/sduitools/release
//
// Each component schema may carry a per-platform status map:
//
//	{
//	  "name": "Carousel",
//	  "releaseVersion": {"web": "released", "ios": "1.42.0", "android": "notReleased"}
//	}
//
// A platform counts as released when its status is the literal "released" or
// a version string (first character is a digit). Anything else, including a
// missing entry or a missing releaseVersion map entirely, counts as not
// released.
package release
