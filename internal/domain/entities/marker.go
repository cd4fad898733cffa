package entities

import "strings"

const (
	// CredentialsMarker is the literal counted to decide whether a file was already patched.
	CredentialsMarker = "credentials: 'include'"

	// DefaultThreshold is the marker count at which a file is considered patched.
	DefaultThreshold = 5
)

// CountMarkers returns the number of CredentialsMarker occurrences in content.
func CountMarkers(content string) int {
	return strings.Count(content, CredentialsMarker)
}

// IsSaturated reports whether content already carries at least threshold markers.
func IsSaturated(content string, threshold int) bool {
	return CountMarkers(content) >= threshold
}
