package commands

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/docugen/internal/docset"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/input"
)

func TestSubmissionKindInference(t *testing.T) {
	tests := []struct {
		name  string
		flags sourceFlags
		want  input.Kind
	}{
		{"url", sourceFlags{URL: "https://github.com/acme/widgets"}, input.KindURL},
		{"text", sourceFlags{Text: "package main"}, input.KindText},
		{"ui description", sourceFlags{UIDescription: "a settings screen", UIOnly: true}, input.KindUIDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := tt.flags.submission()
			if err != nil {
				t.Fatalf("submission() error: %v", err)
			}
			if sub.Kind != tt.want {
				t.Errorf("expected kind %q, got %q", tt.want, sub.Kind)
			}
		})
	}
}

func TestSubmissionFileUpload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codebase.zip")
	if err := os.WriteFile(path, []byte("PK\x03\x04"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	sub, err := (&sourceFlags{File: path}).submission()
	if err != nil {
		t.Fatalf("submission() error: %v", err)
	}
	if sub.Kind != input.KindFile {
		t.Errorf("expected file kind, got %q", sub.Kind)
	}
	if sub.File == nil || sub.File.Name != "codebase.zip" {
		t.Fatalf("file upload not populated: %+v", sub.File)
	}
	if sub.File.ContentType == "" {
		t.Error("content type missing for zip upload")
	}
}

func TestDocsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	snap := docset.Snapshot{
		docset.SectionReadme: "# Overview\n",
		docset.SectionFAQ:    "# FAQ\n",
	}

	if err := writeDocs(dir, snap); err != nil {
		t.Fatalf("writeDocs: %v", err)
	}

	loaded, err := readDocs(dir)
	if err != nil {
		t.Fatalf("readDocs: %v", err)
	}
	if loaded[docset.SectionReadme] != "# Overview\n" {
		t.Errorf("readme content mismatch: %q", loaded[docset.SectionReadme])
	}
	if _, ok := loaded[docset.SectionAPIDocs]; ok {
		t.Error("absent section should not appear in snapshot")
	}
}

func TestReadDocsEmptyDirectory(t *testing.T) {
	_, err := readDocs(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory without sections")
	}
	if !derrors.IsCategory(err, derrors.CategoryValidation) {
		t.Errorf("expected validation category, got %v", err)
	}
}
