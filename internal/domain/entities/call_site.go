package entities

// CallSite is one fetch call found in a script.
type CallSite struct {
	FilePath       string
	Line           int // 1-based
	Column         int // 1-based, in bytes
	Snippet        string
	HasCredentials bool
}

// MissingCredentials returns the call sites without a credentials option.
func MissingCredentials(sites []CallSite) []CallSite {
	var missing []CallSite
	for _, s := range sites {
		if !s.HasCredentials {
			missing = append(missing, s)
		}
	}
	return missing
}
