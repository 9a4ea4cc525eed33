package export

import (
	"git.home.luguber.info/inful/docugen/internal/docset"
)

// PushStatus is the per-section outcome of a remote export.
type PushStatus string

const (
	PushSuccess PushStatus = "Success"
	PushFailed  PushStatus = "Failed"
	PushSkipped PushStatus = "Skipped (No Content)"
)

// SectionResult records the outcome of one section upsert.
type SectionResult struct {
	Section docset.Section `json:"section"`
	Path    string         `json:"path"`
	Status  PushStatus     `json:"status"`
	Detail  string         `json:"detail,omitempty"`
}

// PushReport collects per-section outcomes of a remote export. One section's
// failure never blocks the others; the aggregate verdict is derived, not
// accumulated inline.
type PushReport struct {
	Results []SectionResult `json:"results"`
}

func (r *PushReport) add(result SectionResult) {
	r.Results = append(r.Results, result)
}

// Success reports the aggregate verdict: true only if every attempted
// section succeeded. Skipped sections were not attempted and do not count
// against it; any Failed result makes the aggregate false.
func (r *PushReport) Success() bool {
	for _, res := range r.Results {
		if res.Status == PushFailed {
			return false
		}
	}
	return true
}

// Attempted returns how many sections were actually pushed.
func (r *PushReport) Attempted() int {
	n := 0
	for _, res := range r.Results {
		if res.Status != PushSkipped {
			n++
		}
	}
	return n
}
