package entities

// FileStatus is the outcome of processing one configured file.
type FileStatus string

const (
	FileStatusNotFound       FileStatus = "not_found"
	FileStatusAlreadyApplied FileStatus = "already_applied"
	FileStatusPatched        FileStatus = "patched"
	FileStatusUnchanged      FileStatus = "unchanged"
)

// FileReport describes what happened to a single file during a run.
type FileReport struct {
	Path       string
	Status     FileStatus
	Before     int // marker count before patching
	After      int // marker count after patching
	Insertions int
	Original   string
	Patched    string
}

// RunReport aggregates the per-file reports of one run, in configured order.
type RunReport struct {
	Files []FileReport
}

// Add appends a file report.
func (r *RunReport) Add(report FileReport) {
	r.Files = append(r.Files, report)
}

// TotalInsertions sums the insertions across all files.
func (r *RunReport) TotalInsertions() int {
	total := 0
	for _, f := range r.Files {
		total += f.Insertions
	}
	return total
}

// CountByStatus returns how many files ended with the given status.
func (r *RunReport) CountByStatus(status FileStatus) int {
	count := 0
	for _, f := range r.Files {
		if f.Status == status {
			count++
		}
	}
	return count
}
