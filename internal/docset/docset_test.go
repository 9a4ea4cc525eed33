package docset

import (
	"testing"

	derrors "git.home.luguber.info/inful/docugen/internal/errors"
)

func TestParseSection(t *testing.T) {
	for _, s := range []string{"readme", "apiDocs", "userManual", "faq"} {
		if _, err := ParseSection(s); err != nil {
			t.Errorf("ParseSection(%q) failed: %v", s, err)
		}
	}

	_, err := ParseSection("changelog")
	if err == nil {
		t.Fatal("expected error for unknown section")
	}
	if !derrors.IsCategory(err, derrors.CategoryValidation) {
		t.Errorf("expected validation category, got %v", err)
	}
}

func TestParseTone(t *testing.T) {
	if _, err := ParseTone("concise"); err != nil {
		t.Errorf("ParseTone(concise) failed: %v", err)
	}
	if _, err := ParseTone("sarcastic"); err == nil {
		t.Error("expected error for unknown tone")
	}
}

func TestCanonicalFilenames(t *testing.T) {
	want := map[Section]string{
		SectionReadme:     "README.md",
		SectionAPIDocs:    "API_DOCS.md",
		SectionUserManual: "USER_MANUAL.md",
		SectionFAQ:        "FAQ.md",
	}
	for section, filename := range want {
		if got := section.Filename(); got != filename {
			t.Errorf("%s filename = %q, want %q", section, got, filename)
		}
	}
}

func TestReplaceAllIsAtomicUnit(t *testing.T) {
	d := New()
	d.ReplaceAll("r", "a", "u", "f")

	snap := d.Snapshot()
	for _, section := range Sections {
		if !snap.Has(section) {
			t.Errorf("section %s missing after ReplaceAll", section)
		}
	}
	if !d.Generated() {
		t.Error("Generated() should be true after ReplaceAll")
	}
}

func TestReplaceTouchesExactlyOneSection(t *testing.T) {
	d := New()
	d.ReplaceAll("r", "a", "u", "f")
	before := d.Snapshot()

	d.Replace(SectionFAQ, "regenerated faq")

	after := d.Snapshot()
	for _, section := range Sections {
		if section == SectionFAQ {
			if after[section] != "regenerated faq" {
				t.Errorf("faq = %q, want regenerated content", after[section])
			}
			continue
		}
		if after[section] != before[section] {
			t.Errorf("section %s changed by regeneration of faq", section)
		}
	}
}

func TestEditBypassesOtherSections(t *testing.T) {
	d := New()
	d.ReplaceAll("r", "a", "u", "f")
	d.Edit(SectionReadme, "hand-written readme")

	if d.Get(SectionReadme) != "hand-written readme" {
		t.Error("edit did not take effect")
	}
	if d.Get(SectionAPIDocs) != "a" {
		t.Error("edit mutated a sibling section")
	}
}

func TestClearResetsAllSections(t *testing.T) {
	d := New()
	d.ReplaceAll("r", "a", "u", "f")
	d.Clear()

	if d.Generated() {
		t.Error("Generated() should be false after Clear")
	}
	snap := d.Snapshot()
	if !snap.Empty() {
		t.Error("snapshot should be empty after Clear")
	}
	// All four keys remain present as a unit.
	if len(snap) != len(Sections) {
		t.Errorf("expected %d keys, got %d", len(Sections), len(snap))
	}
}

func TestSnapshotIsStableCopy(t *testing.T) {
	d := New()
	d.ReplaceAll("r", "a", "u", "f")
	snap := d.Snapshot()

	d.Replace(SectionReadme, "changed")

	if snap[SectionReadme] != "r" {
		t.Error("snapshot should not observe later mutations")
	}
}
