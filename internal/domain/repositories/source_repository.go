package repositories

// SourceRepository reads and writes the script files being patched.
type SourceRepository interface {
	// Exists reports whether path names an existing regular file.
	Exists(path string) bool

	// Read returns the full UTF-8 contents of path.
	Read(path string) (string, error)

	// Write replaces the contents of path, keeping its permissions.
	Write(path, content string) error
}
