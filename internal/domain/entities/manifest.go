package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ManifestVersion is the schema version written to new manifests.
const ManifestVersion = 1

// Manifest records the content hash of every file after it was patched, so a
// later run can tell an already-patched file apart from one that changed since.
type Manifest struct {
	Version int                      `yaml:"version"`
	Entries map[string]ManifestEntry `yaml:"entries"`
}

// ManifestEntry is the record kept for one patched file.
type ManifestEntry struct {
	SHA256     string    `yaml:"sha256"`
	Insertions int       `yaml:"insertions"`
	PatchedAt  time.Time `yaml:"patched_at"`
}

// NewManifest returns an empty manifest at the current schema version.
func NewManifest() *Manifest {
	return &Manifest{
		Version: ManifestVersion,
		Entries: make(map[string]ManifestEntry),
	}
}

// Matches reports whether path was recorded with the given content hash.
func (m *Manifest) Matches(path, sha string) bool {
	if m == nil || m.Entries == nil {
		return false
	}
	entry, ok := m.Entries[path]
	return ok && entry.SHA256 == sha
}

// Record stores (or replaces) the entry for path.
func (m *Manifest) Record(path string, entry ManifestEntry) {
	if m.Entries == nil {
		m.Entries = make(map[string]ManifestEntry)
	}
	m.Entries[path] = entry
}

// ContentHash returns the hex-encoded SHA-256 of content.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
