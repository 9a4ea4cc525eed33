// Package docset holds the in-memory document set produced by the generation
// pipeline: four fixed named markdown sections, mutable by regeneration and
// direct user edits.
package docset

import (
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
)

// Section identifies one of the four fixed documentation artifacts.
type Section string

const (
	SectionReadme     Section = "readme"
	SectionAPIDocs    Section = "apiDocs"
	SectionUserManual Section = "userManual"
	SectionFAQ        Section = "faq"
)

// Sections lists all sections in their fixed pipeline order. Remote export
// upserts follow this order.
var Sections = []Section{SectionReadme, SectionAPIDocs, SectionUserManual, SectionFAQ}

// Filenames maps each section to its canonical archive filename.
var Filenames = map[Section]string{
	SectionReadme:     "README.md",
	SectionAPIDocs:    "API_DOCS.md",
	SectionUserManual: "USER_MANUAL.md",
	SectionFAQ:        "FAQ.md",
}

// ParseSection validates a section identifier.
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionReadme, SectionAPIDocs, SectionUserManual, SectionFAQ:
		return Section(s), nil
	}
	return "", derrors.InvalidSection(s)
}

// Filename returns the canonical archive filename for the section.
func (s Section) Filename() string {
	return Filenames[s]
}

// Tone is the enumerated stylistic parameter applied during regeneration of
// a single section.
type Tone string

const (
	ToneDeveloperFriendly Tone = "developer-friendly"
	ToneBusinessFriendly  Tone = "business-friendly"
	ToneConcise           Tone = "concise"
	ToneDetailed          Tone = "detailed"
	ToneFormal            Tone = "formal"
	ToneInformal          Tone = "informal"
)

// Tones lists the fixed enumerated tone set.
var Tones = []Tone{
	ToneDeveloperFriendly,
	ToneBusinessFriendly,
	ToneConcise,
	ToneDetailed,
	ToneFormal,
	ToneInformal,
}

// ParseTone validates a tone label.
func ParseTone(s string) (Tone, error) {
	for _, t := range Tones {
		if Tone(s) == t {
			return t, nil
		}
	}
	return "", derrors.InvalidTone(s)
}
