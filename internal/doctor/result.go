// Package doctor checks that the host and an installation are usable.
package doctor

// Status is the outcome of a single check.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "OK"
	// StatusWarn means the check found something worth attention that does not block use.
	StatusWarn Status = "WARN"
	// StatusFail means the check found a problem that blocks use.
	StatusFail Status = "FAIL"
)

// Result is a single check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
