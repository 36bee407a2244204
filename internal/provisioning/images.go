package provisioning

import "strings"

// Operating systems offered to lab users. Anything else falls back to
// the Ubuntu image, it does not fail validation.
const (
	OSUbuntu     = "Ubuntu"
	OSRockyLinux = "Rocky Linux"
	OSOpenSUSE   = "OpenSUSE"
)

// ImageProjectFor maps an OS name to the public image project hosting
// its family. Unrecognized names return the Ubuntu project.
func ImageProjectFor(osType string) string {
	switch osType {
	case OSRockyLinux:
		return "rocky-linux-cloud"
	case OSOpenSUSE:
		return "opensuse-cloud"
	default:
		return "ubuntu-os-cloud"
	}
}

// ImageFamilyFor maps an OS name to its image family. Unrecognized
// names return the Ubuntu family.
func ImageFamilyFor(osType string) string {
	switch osType {
	case OSRockyLinux:
		return "rocky-linux-9"
	case OSOpenSUSE:
		return "opensuse-leap-15-4"
	default:
		return "ubuntu-2204-lts"
	}
}

// InstanceNameFor derives the instance name from the OS and session:
// "lab-" + lowercased, hyphenated OS name + "-" + first 8 characters of
// the session id. Uniqueness is left to the compute API.
func InstanceNameFor(osType, sessionID string) string {
	os := strings.ReplaceAll(strings.ToLower(osType), " ", "-")
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}
	return "lab-" + os + "-" + sessionID
}
