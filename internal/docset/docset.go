package docset

import (
	"sync"
)

// Snapshot is a stable copy of all four sections at one point in time.
// Exports and readers work from snapshots so a concurrent regeneration can
// never produce a half-updated view.
type Snapshot map[Section]string

// Has reports whether the section holds non-empty content.
func (s Snapshot) Has(section Section) bool {
	return s[section] != ""
}

// Empty reports whether no section holds content.
func (s Snapshot) Empty() bool {
	for _, section := range Sections {
		if s[section] != "" {
			return false
		}
	}
	return true
}

// DocumentSet is the mutable in-memory result of a generation cycle. All four
// section keys always exist; values are empty strings until first generation.
//
// Mutations follow the pipeline rules: a full generation replaces all four
// values as one unit, a regeneration or user edit replaces exactly one.
type DocumentSet struct {
	mu       sync.RWMutex
	sections map[Section]string
}

// New returns an empty DocumentSet with all four keys present.
func New() *DocumentSet {
	d := &DocumentSet{sections: make(map[Section]string, len(Sections))}
	for _, s := range Sections {
		d.sections[s] = ""
	}
	return d
}

// ReplaceAll overwrites all four sections atomically from a full-generation
// response. Observers never see a state with only some fields updated.
func (d *DocumentSet) ReplaceAll(readme, apiDocs, userManual, faq string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sections[SectionReadme] = readme
	d.sections[SectionAPIDocs] = apiDocs
	d.sections[SectionUserManual] = userManual
	d.sections[SectionFAQ] = faq
}

// Replace overwrites exactly one section with regenerated content. The other
// three sections are untouched.
func (d *DocumentSet) Replace(section Section, markdown string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sections[section] = markdown
}

// Edit overwrites exactly one section with user-supplied text, bypassing the
// generation capability entirely.
func (d *DocumentSet) Edit(section Section, markdown string) {
	d.Replace(section, markdown)
}

// Clear resets every section to empty. Called before a new full-generation
// submission so no stale cross-submission content is observable while the
// call is pending.
func (d *DocumentSet) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range Sections {
		d.sections[s] = ""
	}
}

// Get returns the current content of one section.
func (d *DocumentSet) Get(section Section) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sections[section]
}

// Snapshot returns a stable copy of all sections.
func (d *DocumentSet) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	snap := make(Snapshot, len(d.sections))
	for k, v := range d.sections {
		snap[k] = v
	}
	return snap
}

// Generated reports whether any section currently holds content.
func (d *DocumentSet) Generated() bool {
	return !d.Snapshot().Empty()
}
