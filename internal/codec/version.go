package codec

import "golang.org/x/mod/semver"

// ProtocolVersion is the envelope version written by Encode. Decode accepts
// any version with the same major.
const ProtocolVersion = "v1.0.0"

// checkVersion accepts v when it is valid semver sharing ProtocolVersion's
// major version.
func checkVersion(v string) error {
	if !semver.IsValid(v) || semver.Major(v) != semver.Major(ProtocolVersion) {
		return &VersionError{Got: v, Want: semver.Major(ProtocolVersion)}
	}
	return nil
}
