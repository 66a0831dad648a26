package release

// Key is the schema key carrying the platform compatibility map.
const Key = "releaseVersion"

// Platform identifies a client platform in a releaseVersion map.
type Platform string

// Known platforms.
const (
	PlatformWeb     Platform = "web"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// Well-known status values. A status may also be a version string such as
// "1.42.0", which counts as released.
const (
	StatusReleased    = "released"
	StatusNotReleased = "notReleased"
)

// Versions is a parsed releaseVersion map: platform to status.
type Versions map[Platform]string

// ParseVersions extracts the releaseVersion map from a parsed schema object.
// A nil schema, a missing key, or a malformed map yields an empty Versions:
// every platform reads as not released.
func ParseVersions(schema map[string]any) Versions {
	v := Versions{}
	raw, ok := schema[Key].(map[string]any)
	if !ok {
		return v
	}
	for platform, status := range raw {
		if s, ok := status.(string); ok {
			v[Platform(platform)] = s
		}
	}
	return v
}

// Status returns the raw status string for a platform, or "" when absent.
func (v Versions) Status(p Platform) string {
	return v[p]
}

// IsReleased reports whether the platform's status counts as released.
func (v Versions) IsReleased(p Platform) bool {
	return IsReleasedStatus(v.Status(p))
}

// IsReleasedStatus reports whether a status string counts as released: the
// literal "released", or a version string whose first character is a digit.
func IsReleasedStatus(status string) bool {
	if status == StatusReleased {
		return true
	}
	return status != "" && status[0] >= '0' && status[0] <= '9'
}
